package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/randomusers/internal/client/cache"
	"github.com/dmitrijs2005/randomusers/internal/client/client"
	"github.com/dmitrijs2005/randomusers/internal/client/config"
	"github.com/dmitrijs2005/randomusers/internal/client/loop"
	"github.com/dmitrijs2005/randomusers/internal/client/presenter"
	"github.com/dmitrijs2005/randomusers/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/randomusers/internal/client/repositories/users"
	"github.com/dmitrijs2005/randomusers/internal/client/services"
	"github.com/dmitrijs2005/randomusers/internal/filex"
	"github.com/dmitrijs2005/randomusers/internal/logging"
	"golang.org/x/term"
	"k8s.io/utils/clock"
)

const defaultWindow = 10

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	loop      *loop.Loop
	presenter *presenter.Presenter
	in        io.Reader

	// next row shown by "more"
	cursor int
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}
	return newApp(context.Background(), c, logger, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("error preparing database dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := cache.NewStore(users.NewSQLiteRepository(db), metadata.NewSQLiteRepository(db), logger)
	l := loop.New()
	fetcher := client.NewHTTPFetcher(c.APIBaseURL, c.RequestTimeout)
	coordinator := services.NewCoordinator(fetcher, store, l, logger)
	view := newTerminalView(out)

	p := presenter.New(coordinator, view, view, presenter.Options{
		PageSize: c.PageSize,
		Clock:    clock.RealClock{},
		Poster:   l,
		Logger:   logger,
	})

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		loop:      l,
		presenter: p,
		in:        in,
	}, nil
}

// Run starts the event loop, loads the cached users and serves the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "error closing database", "error", err)
		}
	}()

	loopErr := make(chan error, 1)
	go func() { loopErr <- a.loop.Run(ctx) }()

	a.loop.Post(func() { a.presenter.GetCachedUsers(ctx) })

	printlnFn("Random users (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(a.in))

	cancel()
	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// List prints a window of rows starting at from. Rows that are not loaded
// yet print as placeholders and may trigger the next page.
func (a *App) List(ctx context.Context, from int) error {
	if from < 0 {
		from = 0
	}
	window := windowSize()

	var lines []string
	err := a.loop.Call(ctx, func() {
		limit := a.presenter.CurrentMaxUsers()
		if a.presenter.Exhausted() {
			limit = a.presenter.Count()
		}
		for i := from; i < from+window && i < limit; i++ {
			u, ok := a.presenter.DisplayRow(ctx, i)
			lines = append(lines, formatRow(i, u, ok))
		}
	})
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		printlnFn("No rows to show.")
	}
	for _, line := range lines {
		printlnFn(line)
	}
	a.cursor = from + len(lines)
	return nil
}

// More continues the listing where the last one stopped.
func (a *App) More(ctx context.Context) error {
	return a.List(ctx, a.cursor)
}

// Show prints details of row n (1-based, as listed).
func (a *App) Show(ctx context.Context, n int) error {
	var ok bool
	if err := a.loop.Call(ctx, func() { ok = a.presenter.Select(n - 1) }); err != nil {
		return err
	}
	if !ok {
		printlnFn("No such row:", n)
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	var ok bool
	if err := a.loop.Call(ctx, func() { ok = a.presenter.Refresh(ctx, a.config.RefreshDelay) }); err != nil {
		return err
	}
	if !ok {
		printlnFn("A request is in progress, try again shortly.")
		return nil
	}
	a.cursor = 0
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	var s string
	err := a.loop.Call(ctx, func() {
		s = fmt.Sprintf("users: %d, distinct names: %d, rows: %d, seed: %s, state: %s",
			a.presenter.Count(),
			a.presenter.NumberOfDistinctNamedPeople(),
			a.presenter.CurrentMaxUsers(),
			a.presenter.Seed(),
			a.presenter.State(),
		)
	})
	if err != nil {
		return err
	}
	printlnFn(s)
	return nil
}

// termSize is a test seam for term.GetSize on stdout.
var termSize = func() (width, height int, err error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

// windowSize is the number of rows that fit the terminal, leaving room for
// the prompt.
func windowSize() int {
	_, h, err := termSize()
	if err != nil || h-2 < 1 {
		return defaultWindow
	}
	return h - 2
}
