package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	Name     string `toml:"name"`
	InitData string `toml:"init_data,omitempty"`
	Token    string `toml:"token,omitempty"`
	// The *_ref fields name a secret resolved through pass or the secrets
	// directory instead of keeping the value in this file.
	InitDataRef string `toml:"init_data_ref,omitempty"`
	TokenRef    string `toml:"token_ref,omitempty"`
	Disabled    bool   `toml:"disabled,omitempty"`
}
