package presenter

import (
	"context"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
)

func (p *Presenter) PageFetched(ctx context.Context, req models.PageRequest, users []models.User) {
	if req.Seed != p.seed {
		p.logger.Debug(ctx, "stale page ignored", "page", req.Page)
		p.interactor.EnableFetching()
		return
	}

	p.users = append(p.users, users...)
	p.state = StateIdle

	if len(users) < p.pageSize {
		p.exhausted = true
		p.interactor.EnableFetching()
		p.view.PagingEnded()
		return
	}
	p.view.DataAvailable(p.ack)
}

func (p *Presenter) PageFailed(ctx context.Context, req models.PageRequest, err error) {
	p.state = StateIdle
	p.logger.Warn(ctx, "page failed", "page", req.Page, "error", err)
	p.view.ErrorOccurred(err.Error())
}

// CacheLoaded restores a previous session. A cached count that is not a
// whole number of pages means the last stored page was short, so the
// session is already over.
func (p *Presenter) CacheLoaded(ctx context.Context, users []models.User) {
	p.users = append(p.users, users...)
	p.state = StateIdle

	if len(p.users)%p.pageSize != 0 {
		p.exhausted = true
		p.interactor.EnableFetching()
		p.view.PagingEnded()
		return
	}
	p.view.DataAvailable(p.ack)
}

func (p *Presenter) CacheMissed(ctx context.Context, err error) {
	p.logger.Debug(ctx, "falling back to remote", "reason", err)
	p.state = StateIdle
	p.GetRandomUsers(ctx)
}
