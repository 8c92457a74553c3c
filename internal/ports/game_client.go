package ports

import (
	"context"

	"github.com/bnema/owdragon-cli/internal/domain"
)

// GameClient performs one request per call against the game API. Token
// credentials are accepted by Authenticate without a network call.
type GameClient interface {
	Authenticate(ctx context.Context, credential domain.Credential) (domain.Session, error)
	FetchAddress(ctx context.Context, token string) (string, error)
	FetchPower(ctx context.Context, token string) (domain.Amount, error)
	FetchBalance(ctx context.Context, token string) (domain.Amount, error)
	Feed(ctx context.Context, token string) (domain.Amount, error)
	ListMissions(ctx context.Context, token string, category domain.MissionCategory) ([]domain.Mission, error)
	SubmitMission(ctx context.Context, token string, id domain.MissionID, category domain.MissionCategory, value string) error
	FinishMission(ctx context.Context, token string, id domain.MissionID, category domain.MissionCategory) error
}
