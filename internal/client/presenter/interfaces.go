package presenter

import (
	"context"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/dmitrijs2005/randomusers/internal/client/services"
)

// Interactor is the fetch coordinator as the presenter sees it.
// services.Coordinator implements it.
type Interactor interface {
	RequestPage(ctx context.Context, req models.PageRequest, l services.Listener) bool
	LoadCached(ctx context.Context, l services.Listener) bool
	ClearCache(ctx context.Context)
	EnableFetching()
	IsFetching() bool
	Busy() bool
	Seed(ctx context.Context) string
	RememberSeed(ctx context.Context, seed string)
}

// View is the display surface.
type View interface {
	// DataAvailable asks for a re-render. ack must be called once the rows
	// are on screen; until then no further page is requested.
	DataAvailable(ack func())
	RefreshStarting()
	PagingEnded()
	ErrorOccurred(msg string)
}

type Router interface {
	ShowDetails(user models.User)
}

type Poster interface {
	Post(fn func())
}
