package domain

type SchedulerState int32

const (
	StateUnauthenticated SchedulerState = iota
	StateAuthenticated
	StateRunning
	StateStopped
)

func (s SchedulerState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
