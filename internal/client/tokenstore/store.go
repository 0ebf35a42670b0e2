// Package tokenstore keeps the bearer token in a single slot of the local
// secure store. Failures are logged and never returned: a token that cannot
// be written or read simply behaves as "no token".
package tokenstore

import (
	"context"

	"github.com/dmitrijs2005/calcms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/calcms/internal/common"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

// Sealer protects the value at rest. *cryptox.Sealer implements it.
type Sealer interface {
	Seal(plaintext []byte, label string) []byte
	Open(sealed []byte, label string) ([]byte, error)
}

type Store struct {
	repo   metadata.Repository
	sealer Sealer
	log    logging.Logger
	key    string
}

// New returns a Store over repo. A nil sealer stores the token unsealed.
func New(repo metadata.Repository, sealer Sealer, log logging.Logger) *Store {
	return &Store{repo: repo, sealer: sealer, log: log, key: common.AccessTokenKey}
}

// Store persists token, replacing any previous value.
func (s *Store) Store(ctx context.Context, token string) {
	value := []byte(token)
	if s.sealer != nil {
		value = s.sealer.Seal(value, s.key)
	}
	if err := s.repo.Set(ctx, s.key, value); err != nil {
		s.log.Error(ctx, "error storing access token", "error", err)
	}
}

// Get returns the stored token, or "" when there is none or it cannot be read.
func (s *Store) Get(ctx context.Context) string {
	value, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Error(ctx, "error getting access token", "error", err)
		return ""
	}
	if len(value) == 0 {
		return ""
	}
	if s.sealer == nil {
		return string(value)
	}

	plain, err := s.sealer.Open(value, s.key)
	if err != nil {
		s.log.Error(ctx, "error opening access token", "error", err)
		return ""
	}
	defer common.WipeByteArray(plain)
	return string(plain)
}

// Clear erases the slot.
func (s *Store) Clear(ctx context.Context) {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.log.Error(ctx, "error clearing access token", "error", err)
	}
}
