// Package presenter holds the paging session: the users accumulated since
// the last refresh, the seed they were generated with and the page math
// that decides what to fetch next.
//
// A Presenter is driven from a single goroutine (see package loop). The
// coordinator and the refresh timer hand their results back through the
// Poster given in Options.
package presenter

import (
	"context"
	"time"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/google/uuid"
	"k8s.io/utils/clock"
)

const (
	DefaultPageSize     = 10
	DefaultRefreshDelay = 330 * time.Millisecond
)

type Options struct {
	PageSize int
	// Seed overrides the stored seed. Empty means load it from the
	// interactor, generating one if nothing is stored.
	Seed    string
	NewSeed func() string
	Clock   clock.WithDelayedExecution
	Poster  Poster
	Logger  logging.Logger
}

type Presenter struct {
	interactor Interactor
	view       View
	router     Router

	pageSize int
	newSeed  func() string
	clock    clock.WithDelayedExecution
	poster   Poster
	logger   logging.Logger

	users     []models.User
	seed      string
	state     State
	exhausted bool

	// refreshGen identifies the latest refresh; older timers are ignored.
	refreshGen   uint64
	refreshTimer clock.Timer
}

func New(interactor Interactor, view View, router Router, opts Options) *Presenter {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.NewSeed == nil {
		opts.NewSeed = uuid.NewString
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Presenter{
		interactor: interactor,
		view:       view,
		router:     router,
		pageSize:   opts.PageSize,
		newSeed:    opts.NewSeed,
		clock:      opts.Clock,
		poster:     opts.Poster,
		logger:     opts.Logger.With("component", "presenter"),
		seed:       opts.Seed,
	}
}

// GetCachedUsers starts a session from the local store. An empty store
// falls through to fetching the first page.
func (p *Presenter) GetCachedUsers(ctx context.Context) {
	if p.state != StateIdle {
		return
	}
	p.ensureSeed(ctx)
	p.state = StateFetchingInitial
	if !p.interactor.LoadCached(ctx, p) {
		p.state = StateIdle
	}
}

// GetRandomUsers requests the page after the accumulated ones. It reports
// whether a request was dispatched.
func (p *Presenter) GetRandomUsers(ctx context.Context) bool {
	if p.state == StateRefreshing {
		return false
	}
	return p.requestNext(ctx)
}

func (p *Presenter) requestNext(ctx context.Context) bool {
	if p.exhausted || p.interactor.IsFetching() {
		return false
	}
	p.ensureSeed(ctx)

	req := models.PageRequest{
		Page:    models.NextPage(len(p.users), p.pageSize),
		Results: p.pageSize,
		Seed:    p.seed,
	}
	if !p.interactor.RequestPage(ctx, req, p) {
		return false
	}
	if req.IsFirst() {
		p.state = StateFetchingInitial
	} else {
		p.state = StateFetchingPage
	}
	return true
}

// Refresh starts a new session with a fresh seed. The first page is
// requested after delay. A refresh issued while the previous one is still
// waiting replaces it.
//
// Refresh is refused while a request is outstanding, so a page can never
// arrive under a seed it was not requested with. It returns false then and
// changes nothing; the display should let the user retry.
func (p *Presenter) Refresh(ctx context.Context, delay time.Duration) bool {
	if p.interactor.Busy() {
		p.logger.Debug(ctx, "refresh dropped, request outstanding")
		return false
	}
	if p.refreshTimer != nil {
		p.refreshTimer.Stop()
		p.refreshTimer = nil
	}
	p.refreshGen++
	gen := p.refreshGen

	p.users = nil
	p.exhausted = false
	p.interactor.ClearCache(ctx)
	p.interactor.EnableFetching()

	p.seed = p.newSeed()
	p.interactor.RememberSeed(ctx, p.seed)
	p.state = StateRefreshing
	p.logger.Info(ctx, "refresh started", "seed", p.seed, "delay", delay)
	p.view.RefreshStarting()

	p.refreshTimer = p.clock.AfterFunc(delay, func() {
		p.poster.Post(func() {
			if gen != p.refreshGen {
				return
			}
			p.refreshTimer = nil
			p.state = StateIdle
			p.requestNext(ctx)
		})
	})
	return true
}

// DisplayRow returns the user shown at index. Rendering the first row past
// the loaded ones asks for the next page.
func (p *Presenter) DisplayRow(ctx context.Context, index int) (models.User, bool) {
	if index >= 0 && index < len(p.users) {
		return p.users[index], true
	}
	if index >= len(p.users) && len(p.users)%p.pageSize == 0 && !p.exhausted {
		p.GetRandomUsers(ctx)
	}
	return models.User{}, false
}

// Select routes to the detail view of the user at index.
func (p *Presenter) Select(index int) bool {
	if index < 0 || index >= len(p.users) {
		return false
	}
	p.router.ShowDetails(p.users[index])
	return true
}

// CurrentMaxUsers is the row count to lay out: the loaded users rounded
// up to the page being fetched next.
func (p *Presenter) CurrentMaxUsers() int {
	return models.NextPage(len(p.users), p.pageSize) * p.pageSize
}

func (p *Presenter) NumberOfDistinctNamedPeople() int {
	names := make(map[string]struct{}, len(p.users))
	for _, u := range p.users {
		names[u.FullName()] = struct{}{}
	}
	return len(names)
}

func (p *Presenter) Users() []models.User {
	out := make([]models.User, len(p.users))
	copy(out, p.users)
	return out
}

func (p *Presenter) Count() int {
	return len(p.users)
}

func (p *Presenter) Seed() string {
	return p.seed
}

func (p *Presenter) State() State {
	return p.state
}

// Exhausted reports whether the last page came back short.
func (p *Presenter) Exhausted() bool {
	return p.exhausted
}

func (p *Presenter) ensureSeed(ctx context.Context) {
	if p.seed != "" {
		return
	}
	if p.seed = p.interactor.Seed(ctx); p.seed != "" {
		return
	}
	p.seed = p.newSeed()
	p.interactor.RememberSeed(ctx, p.seed)
}

func (p *Presenter) ack() {
	p.interactor.EnableFetching()
}
