package client

import (
	"context"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
)

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks -source=client.go Fetcher

// Fetcher downloads one page of random users.
type Fetcher interface {
	FetchPage(ctx context.Context, req models.PageRequest) ([]models.User, error)
}
