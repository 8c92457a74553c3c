package application

import (
	"context"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
	"github.com/phuslu/log"
)

type AccountStatus struct {
	ID      domain.AccountID
	Kind    domain.CredentialKind
	Source  string
	Address string
	Power   domain.Amount
	Balance domain.Amount
	Err     error
}

func (s AccountStatus) OK() bool {
	return s.Err == nil
}

// StatusService authenticates each account once and reads its stats without
// feeding or touching missions.
type StatusService struct {
	client ports.GameClient
	logger *log.Logger
}

func NewStatusService(client ports.GameClient, logger *log.Logger) *StatusService {
	if logger == nil {
		logger = &log.DefaultLogger
	}

	return &StatusService{client: client, logger: logger}
}

// StatusProgress is called after each account has been checked.
type StatusProgress func(done, total int, status AccountStatus)

// Check returns one status per credential, in credential order. A failing
// account is reported through its Err field.
func (s *StatusService) Check(ctx context.Context, credentials []domain.Credential) ([]AccountStatus, error) {
	return s.CheckWithProgress(ctx, credentials, nil)
}

func (s *StatusService) CheckWithProgress(ctx context.Context, credentials []domain.Credential, progress StatusProgress) ([]AccountStatus, error) {
	statuses := make([]AccountStatus, 0, len(credentials))
	for _, credential := range credentials {
		if err := ctx.Err(); err != nil {
			return statuses, err
		}
		status := s.checkOne(ctx, credential)
		statuses = append(statuses, status)
		if progress != nil {
			progress(len(statuses), len(credentials), status)
		}
	}

	return statuses, nil
}

func (s *StatusService) checkOne(ctx context.Context, credential domain.Credential) AccountStatus {
	status := AccountStatus{ID: credential.ID, Kind: credential.Kind, Source: credential.Source}

	session, err := s.client.Authenticate(ctx, credential)
	if err != nil {
		s.logger.Warn().Err(err).Str("account", string(credential.ID)).Msg("status: authentication failed")
		status.Err = err
		return status
	}

	if status.Address, err = s.client.FetchAddress(ctx, session.Token); err != nil {
		status.Err = err
		return status
	}
	if status.Power, err = s.client.FetchPower(ctx, session.Token); err != nil {
		status.Err = err
		return status
	}
	if status.Balance, err = s.client.FetchBalance(ctx, session.Token); err != nil {
		status.Err = err
		return status
	}

	return status
}
