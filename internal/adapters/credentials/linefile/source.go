package linefile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
	"github.com/phuslu/log"
)

// Init-data blobs are long URL-encoded strings; the default scanner token
// limit of 64KiB is not enough for some of them.
const maxLineBytes = 1 << 20

// Source reads one credential per non-blank line.
type Source struct {
	path   string
	kind   domain.CredentialKind
	logger *log.Logger
}

var _ ports.CredentialSource = (*Source)(nil)

func NewSource(path string, kind domain.CredentialKind, logger *log.Logger) *Source {
	return &Source{path: path, kind: kind, logger: logger}
}

func (s *Source) Load(ctx context.Context) ([]domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.path) == "" {
		return nil, nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if s.logger != nil {
				s.logger.Info().Str("file", s.path).Str("kind", string(s.kind)).Msg("credential file not found, no accounts loaded from it")
			}
			return nil, nil
		}
		return nil, fmt.Errorf("open credential file: %w", err)
	}
	defer func() { _ = file.Close() }()

	prefix := idPrefix(s.kind)
	base := filepath.Base(s.path)

	var credentials []domain.Credential
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		value := strings.TrimSpace(scanner.Text())
		if value == "" {
			continue
		}

		credentials = append(credentials, domain.Credential{
			ID:     domain.AccountID(fmt.Sprintf("%s-%d", prefix, len(credentials)+1)),
			Kind:   s.kind,
			Value:  value,
			Source: fmt.Sprintf("%s:%d", base, lineNo),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read credential file %s: %w", s.path, err)
	}

	return credentials, nil
}

func idPrefix(kind domain.CredentialKind) string {
	if kind == domain.CredentialInitData {
		return "init"
	}
	return string(kind)
}
