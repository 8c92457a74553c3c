package domain

import (
	"maps"
	"time"
)

type Session struct {
	AccountID  AccountID
	Token      string
	Address    string
	Power      Amount
	Balance    Amount
	LastFeedAt time.Time
	LastReward Amount
	Processed  ProcessedMissions
}

func NewSession(id AccountID, token string) Session {
	return Session{
		AccountID: id,
		Token:     token,
		Processed: ProcessedMissions{},
	}
}

// NextFeedAt returns the zero time when no feed has succeeded yet, which
// makes the feed due immediately.
func (s Session) NextFeedAt(interval time.Duration) time.Time {
	if s.LastFeedAt.IsZero() {
		return time.Time{}
	}
	return s.LastFeedAt.Add(interval)
}

func (s Session) FeedDue(now time.Time, interval time.Duration) bool {
	return !now.Before(s.NextFeedAt(interval))
}

func (s Session) Clone() Session {
	clone := s
	clone.Processed = maps.Clone(s.Processed)
	if clone.Processed == nil {
		clone.Processed = ProcessedMissions{}
	}
	return clone
}
