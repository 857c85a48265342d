// Package services contains the fetch coordinator: it guards the remote
// feed with a single in-flight flag, mirrors fetched pages into the local
// store and serves cold starts from it.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/randomusers/internal/client/cache"
	"github.com/dmitrijs2005/randomusers/internal/client/client"
	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/dmitrijs2005/randomusers/internal/logging"
)

// Poster schedules a function on the goroutine that owns the session
// state. loop.Loop implements it.
type Poster interface {
	Post(fn func())
}

// Listener receives the outcome of a request. Every method is invoked
// through the Poster.
type Listener interface {
	PageFetched(ctx context.Context, req models.PageRequest, users []models.User)
	PageFailed(ctx context.Context, req models.PageRequest, err error)
	CacheLoaded(ctx context.Context, users []models.User)
	CacheMissed(ctx context.Context, err error)
}

// Coordinator is not safe for concurrent use. Call it from the Poster's
// goroutine only; it does its blocking work on goroutines of its own.
type Coordinator struct {
	fetcher client.Fetcher
	store   *cache.Store
	poster  Poster
	logger  logging.Logger

	fetching bool
	busy     bool
}

func NewCoordinator(fetcher client.Fetcher, store *cache.Store, poster Poster, logger logging.Logger) *Coordinator {
	return &Coordinator{
		fetcher: fetcher,
		store:   store,
		poster:  poster,
		logger:  logger.With("component", "coordinator"),
	}
}

// RequestPage fetches req in the background and stores the result. It
// returns false without doing anything while another request is in
// flight.
//
// After the first page the flag stays set until EnableFetching is called,
// so the display decides when paging may continue.
func (c *Coordinator) RequestPage(ctx context.Context, req models.PageRequest, l Listener) bool {
	if c.fetching {
		c.logger.Debug(ctx, "page request dropped", "page", req.Page)
		return false
	}
	c.fetching = true
	c.busy = true

	c.logger.Debug(ctx, "fetching page", "page", req.Page, "results", req.Results)

	go func() {
		users, err := c.fetcher.FetchPage(ctx, req)
		if err != nil {
			c.poster.Post(func() {
				c.busy = false
				c.fetching = false
				c.logger.Warn(ctx, "page fetch failed", "page", req.Page, "error", err)
				l.PageFailed(ctx, req, fmt.Errorf("fetch page %d: %w", req.Page, err))
			})
			return
		}

		if req.IsFirst() {
			c.store.ReplaceAll(ctx, users)
		} else {
			c.store.AddOrReplaceAll(ctx, users)
		}

		c.poster.Post(func() {
			c.busy = false
			if !req.IsFirst() {
				c.fetching = false
			}
			c.logger.Info(ctx, "page fetched", "page", req.Page, "count", len(users))
			l.PageFetched(ctx, req, users)
		})
	}()
	return true
}

// LoadCached reads every stored user in the background. It returns false
// while another request is in flight.
func (c *Coordinator) LoadCached(ctx context.Context, l Listener) bool {
	if c.fetching {
		return false
	}
	c.fetching = true
	c.busy = true

	go func() {
		users := c.store.ReadAll(ctx)
		c.poster.Post(func() {
			c.busy = false
			c.fetching = false
			if len(users) == 0 {
				c.logger.Debug(ctx, "cache is empty")
				l.CacheMissed(ctx, ErrNoCachedData)
				return
			}
			c.logger.Info(ctx, "cache loaded", "count", len(users))
			l.CacheLoaded(ctx, users)
		})
	}()
	return true
}

// ClearCache drops every stored user. The seed is kept.
func (c *Coordinator) ClearCache(ctx context.Context) {
	c.store.ReplaceAll(ctx, nil)
}

// EnableFetching clears the in-flight flag.
func (c *Coordinator) EnableFetching() {
	c.fetching = false
}

func (c *Coordinator) IsFetching() bool {
	return c.fetching
}

// Busy reports whether a request was dispatched and has not come back
// yet. A held first page is not busy.
func (c *Coordinator) Busy() bool {
	return c.busy
}

// Seed returns the stored seed, or "" when none has been saved yet.
func (c *Coordinator) Seed(ctx context.Context) string {
	return c.store.Seed(ctx)
}

func (c *Coordinator) RememberSeed(ctx context.Context, seed string) {
	c.store.SetSeed(ctx, seed)
}
