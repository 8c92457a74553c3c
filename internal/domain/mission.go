package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type MissionCategory string

const (
	MissionCategorySocial MissionCategory = "social"
	MissionCategoryDaily  MissionCategory = "daily"
)

type MissionStatus int

const MissionStatusPending MissionStatus = 0

// MissionID holds the server's user_mission_id token exactly as it arrived:
// `42` for a numeric id, `"42"` for a string id. It is echoed back verbatim.
type MissionID string

func (id MissionID) MarshalJSON() ([]byte, error) {
	if _, ok := decodeMissionID([]byte(id)); ok {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *MissionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if _, ok := decodeMissionID(data); !ok {
		return fmt.Errorf("decode mission id: unsupported token %s", data)
	}
	*id = MissionID(data)
	return nil
}

// String returns the id without JSON quoting, for logs.
func (id MissionID) String() string {
	if value, ok := decodeMissionID([]byte(id)); ok {
		return value
	}
	return string(id)
}

// decodeMissionID reports whether raw is a single JSON string or number and
// returns its unquoted text.
func decodeMissionID(raw []byte) (string, bool) {
	if len(raw) == 0 || !json.Valid(raw) {
		return "", false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

type Mission struct {
	ID       MissionID       `json:"user_mission_id"`
	Title    string          `json:"title"`
	Status   MissionStatus   `json:"status"`
	Category MissionCategory `json:"-"`
}

func (m Mission) Pending() bool {
	return m.Status == MissionStatusPending
}

// ProcessedMissions remembers missions finished during this process
// lifetime. It is not persisted.
type ProcessedMissions map[MissionID]struct{}

func (p ProcessedMissions) Has(id MissionID) bool {
	_, ok := p[id]
	return ok
}

func (p ProcessedMissions) Add(id MissionID) {
	p[id] = struct{}{}
}
