package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// Source reads named accounts from an accounts.toml file:
//
//	version = 1
//
//	[[accounts]]
//	name = "main"
//	init_data = "query_id=..."
//
//	[[accounts]]
//	name = "alt"
//	token = "eyJ..."
//
//	[[accounts]]
//	name = "vault"
//	init_data_ref = "owd/vault/init_data"
type Source struct {
	path    string
	secrets ports.SecretReader
}

var _ ports.CredentialSource = (*Source)(nil)

// NewSource reads path. secrets resolves *_ref entries and may be nil when
// no entry uses one.
func NewSource(path string, secrets ports.SecretReader) *Source {
	return &Source{path: path, secrets: secrets}
}

func (s *Source) Load(ctx context.Context) ([]domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.path) == "" {
		return nil, nil
	}

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	base := filepath.Base(s.path)
	credentials := make([]domain.Credential, 0, len(file.Accounts))
	for i, entry := range file.Accounts {
		if entry.Disabled {
			continue
		}

		credential, err := s.fromSchema(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("%s: account #%d: %w", base, i+1, err)
		}
		credential.Source = fmt.Sprintf("%s#%d", base, i+1)
		credentials = append(credentials, credential)
	}

	return credentials, nil
}

func (s *Source) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

type entryValue struct {
	kind  domain.CredentialKind
	value string
	ref   bool
}

func (s *Source) fromSchema(ctx context.Context, entry accountSchema) (domain.Credential, error) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return domain.Credential{}, errors.New("name is required")
	}

	var set []entryValue
	for _, candidate := range []entryValue{
		{kind: domain.CredentialInitData, value: entry.InitData},
		{kind: domain.CredentialInitData, value: entry.InitDataRef, ref: true},
		{kind: domain.CredentialToken, value: entry.Token},
		{kind: domain.CredentialToken, value: entry.TokenRef, ref: true},
	} {
		candidate.value = strings.TrimSpace(candidate.value)
		if candidate.value != "" {
			set = append(set, candidate)
		}
	}

	switch len(set) {
	case 0:
		return domain.Credential{}, fmt.Errorf("%s: init_data or token is required", name)
	case 1:
	default:
		return domain.Credential{}, fmt.Errorf("%s: set only one of init_data, init_data_ref, token, token_ref", name)
	}

	chosen := set[0]
	if !chosen.ref {
		return domain.Credential{ID: domain.AccountID(name), Kind: chosen.kind, Value: chosen.value}, nil
	}

	if s.secrets == nil {
		return domain.Credential{}, fmt.Errorf("%s: %s needs a secret store", name, chosen.value)
	}
	value, err := s.secrets.Get(ctx, chosen.value)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%s: resolve %s: %w", name, chosen.value, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Credential{}, fmt.Errorf("%s: secret %s is empty", name, chosen.value)
	}

	return domain.Credential{ID: domain.AccountID(name), Kind: chosen.kind, Value: value}, nil
}
