package ports

import (
	"context"

	"github.com/bnema/owdragon-cli/internal/domain"
)

type CredentialSource interface {
	Load(ctx context.Context) ([]domain.Credential, error)
}
