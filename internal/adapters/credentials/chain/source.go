package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
)

// Source concatenates credentials from several sources in order.
type Source struct {
	sources []ports.CredentialSource
}

var _ ports.CredentialSource = (*Source)(nil)

var errNilSource = errors.New("credential source is nil")

func NewSource(sources ...ports.CredentialSource) (*Source, error) {
	for i, source := range sources {
		if source == nil {
			return nil, fmt.Errorf("source #%d: %w", i+1, errNilSource)
		}
	}

	return &Source{sources: sources}, nil
}

func (s *Source) Load(ctx context.Context) ([]domain.Credential, error) {
	var all []domain.Credential
	seen := map[domain.AccountID]string{}

	for _, source := range s.sources {
		credentials, err := source.Load(ctx)
		if err != nil {
			return nil, err
		}

		for _, credential := range credentials {
			if err := credential.Validate(); err != nil {
				return nil, err
			}
			if previous, ok := seen[credential.ID]; ok {
				return nil, fmt.Errorf("%w: %s (%s and %s)", domain.ErrDuplicateAccount, credential.ID, previous, credential.Source)
			}
			seen[credential.ID] = credential.Source
			all = append(all, credential)
		}
	}

	return all, nil
}
