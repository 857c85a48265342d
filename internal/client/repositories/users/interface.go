package users

import (
	"context"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/google/uuid"
)

// Repository stores random users locally.
type Repository interface {
	// AddOrReplace upserts a single user by ID.
	AddOrReplace(ctx context.Context, user models.User) error

	// AddOrReplaceAll upserts users in order, in one transaction.
	AddOrReplaceAll(ctx context.Context, users []models.User) error

	// ReplaceAll drops every stored user and inserts users, atomically.
	ReplaceAll(ctx context.Context, users []models.User) error

	// GetAll returns the stored users in insertion order.
	GetAll(ctx context.Context) ([]models.User, error)
}

func withID(u models.User) models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return u
}
