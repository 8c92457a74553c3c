package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Amount is a stat or reward value as reported by the server. The API is
// inconsistent about numbers versus strings, so the textual form is kept.
type Amount string

func (a Amount) String() string {
	if a == "" {
		return "n/a"
	}
	return string(a)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode amount: %w", err)
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}
