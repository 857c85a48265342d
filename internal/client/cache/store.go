// Package cache is the local data store for fetched users. It sits on top
// of the repositories and absorbs their errors: a failed write is logged
// and the session carries on with whatever is in memory.
package cache

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/dmitrijs2005/randomusers/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/randomusers/internal/client/repositories/users"
	"github.com/dmitrijs2005/randomusers/internal/logging"
)

type Store struct {
	users    users.Repository
	metadata metadata.Repository
	logger   logging.Logger
}

func NewStore(usersRepo users.Repository, metadataRepo metadata.Repository, logger logging.Logger) *Store {
	return &Store{
		users:    usersRepo,
		metadata: metadataRepo,
		logger:   logger.With("component", "cache"),
	}
}

func (s *Store) AddOrReplace(ctx context.Context, user models.User) {
	s.check(ctx, "add or replace", s.users.AddOrReplace(ctx, user))
}

func (s *Store) AddOrReplaceAll(ctx context.Context, list []models.User) {
	s.check(ctx, "add or replace all", s.users.AddOrReplaceAll(ctx, list), "count", len(list))
}

// ReplaceAll swaps the whole cached set for list. A nil list clears it.
func (s *Store) ReplaceAll(ctx context.Context, list []models.User) {
	s.check(ctx, "replace all", s.users.ReplaceAll(ctx, list), "count", len(list))
}

// ReadAll returns the cached users in insertion order, or an empty slice
// when they cannot be read.
func (s *Store) ReadAll(ctx context.Context) []models.User {
	list, err := s.users.GetAll(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cache read failed", "error", err)
		return []models.User{}
	}
	return list
}

// Seed returns the stored seed, or "" if none was saved.
func (s *Store) Seed(ctx context.Context) string {
	v, err := s.metadata.Get(ctx, metadata.KeySeed)
	if err != nil {
		s.logger.Warn(ctx, "seed read failed", "error", err)
		return ""
	}
	return string(v)
}

func (s *Store) SetSeed(ctx context.Context, seed string) {
	s.check(ctx, "set seed", s.metadata.Set(ctx, metadata.KeySeed, []byte(seed)))
}

func (s *Store) check(ctx context.Context, op string, err error, args ...any) {
	if err == nil {
		return
	}
	err = fmt.Errorf("%s: %w: %w", op, ErrStorageWriteFailed, err)
	s.logger.Warn(ctx, "cache write dropped", append([]any{"error", err}, args...)...)
}
