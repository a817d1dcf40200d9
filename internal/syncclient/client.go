package syncclient

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"tempo/internal/errors"
	"tempo/internal/usecase"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Request describes one stats read for the local date of Date in Location.
type Request struct {
	Date        time.Time
	Location    *time.Location
	Since       *time.Time
	KnownAppIDs []uuid.UUID
}

// Fetcher reads aggregated stats from the ledger.
type Fetcher interface {
	Fetch(ctx context.Context, req *Request) (*usecase.Stats, error)
}

// Client caches today's stats and refreshes them incrementally.
// It is safe for concurrent use.
type Client struct {
	fetcher Fetcher
	loc     *time.Location
	clock   quartz.Clock
	maxAge  time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	snapshot *Snapshot
}

// Option configures a Client.
type Option func(*Client)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock quartz.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithMaxAge forces a full fetch once the last full fetch is older than maxAge.
// Zero keeps the cache until the local date changes or Invalidate is called.
func WithMaxAge(maxAge time.Duration) Option {
	return func(c *Client) {
		c.maxAge = maxAge
	}
}

// WithLogger sets the logger used for refresh diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client reading the local day in loc through fetcher.
func NewClient(fetcher Fetcher, loc *time.Location, opts ...Option) *Client {
	if loc == nil {
		loc = time.UTC
	}

	c := &Client{
		fetcher: fetcher,
		loc:     loc,
		clock:   quartz.NewReal(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Refresh brings the cache up to date and returns it. The returned stats are shared
// with the cache and must not be modified.
func (c *Client) Refresh(ctx context.Context) (*usecase.Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	req := &Request{Date: now, Location: c.loc}

	if c.needsFullFetch(now) {
		stats, err := c.fetcher.Fetch(ctx, req)
		if err != nil {
			return nil, errors.Wrap(err, "full stats fetch")
		}
		c.snapshot = &Snapshot{Stats: stats, BuiltAt: now, FetchedAt: now}
		c.logger.Debug("Stats cache rebuilt", slog.String("date", stats.From))

		return stats, nil
	}

	req.Since = c.snapshot.Cursor()
	req.KnownAppIDs = c.snapshot.KnownAppIDs()

	delta, err := c.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "incremental stats fetch")
	}
	c.snapshot = &Snapshot{
		Stats:     MergeStats(c.snapshot.Stats, delta),
		BuiltAt:   c.snapshot.BuiltAt,
		FetchedAt: now,
	}
	c.logger.Debug("Stats cache merged",
		slog.Int("new_apps", len(delta.Apps)),
		slog.Int("hours", len(delta.Hourly)),
	)

	return c.snapshot.Stats, nil
}

// Invalidate drops the cache so the next Refresh performs a full fetch.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
}

// Snapshot returns the current cache, nil before the first Refresh.
func (c *Client) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot
}

func (c *Client) needsFullFetch(now time.Time) bool {
	switch {
	case c.snapshot == nil || c.snapshot.Cursor() == nil:
		return true
	case ShouldReset(c.snapshot.FetchedAt, now, c.loc):
		return true
	case c.maxAge > 0 && now.Sub(c.snapshot.BuiltAt) >= c.maxAge:
		return true
	default:
		return false
	}
}
