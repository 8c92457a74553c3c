package domain

import (
	"fmt"
	"strings"
)

type AccountID string

type CredentialKind string

const (
	CredentialInitData CredentialKind = "init_data"
	CredentialToken    CredentialKind = "token"
)

func (k CredentialKind) Valid() bool {
	switch k {
	case CredentialInitData, CredentialToken:
		return true
	default:
		return false
	}
}

type Credential struct {
	ID    AccountID
	Kind  CredentialKind
	Value string
	// Source names where the credential was loaded from, e.g. "data.txt:3".
	Source string
}

func (c Credential) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return fmt.Errorf("credential id is required")
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("credential %s: unsupported kind %q", c.ID, c.Kind)
	}
	if strings.TrimSpace(c.Value) == "" {
		return fmt.Errorf("credential %s: value is empty", c.ID)
	}

	return nil
}

// Masked keeps the first and last four characters of the value.
func (c Credential) Masked() string {
	value := strings.TrimSpace(c.Value)
	if len(value) <= 12 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + "..." + value[len(value)-4:]
}
