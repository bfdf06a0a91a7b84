package dataset

import (
	"context"
	"sync"

	"github.com/YuminosukeSato/pimastat/pkg/log"
)

// CachedLoader is a single-slot cache around a TableLoader: the first
// successful Load is kept and returned by every later call. There is no
// eviction. A failed load leaves the slot empty.
type CachedLoader struct {
	mu      sync.Mutex
	loader  TableLoader
	table   *Table
	fetches int
	logger  log.Logger
}

// CacheOption configures a CachedLoader.
type CacheOption func(*CachedLoader)

// WithCacheLogger sets the logger. Defaults to log.GetLogger().
func WithCacheLogger(logger log.Logger) CacheOption {
	return func(c *CachedLoader) {
		c.logger = logger
	}
}

// NewCachedLoader wraps loader.
func NewCachedLoader(loader TableLoader, opts ...CacheOption) *CachedLoader {
	c := &CachedLoader{loader: loader}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.GetLogger().With(log.ComponentKey, "dataset")
	}
	return c
}

// Load returns the cached table, fetching it on first use. The check and the
// fetch happen under one lock, so concurrent callers trigger a single fetch.
func (c *CachedLoader) Load(ctx context.Context) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table != nil {
		return c.table, nil
	}
	c.logger.Debug("Loading data set for first and last time")
	c.fetches++
	t, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.table = t
	return t, nil
}

// Fetches returns how many times the wrapped loader has been invoked.
func (c *CachedLoader) Fetches() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetches
}

var (
	sharedOnce   sync.Once
	sharedLoader *CachedLoader
)

// SharedLoader returns the process-wide CachedLoader. The first call creates
// it from src, names and opts; later calls return the same instance and
// ignore their arguments. The logger given through WithLogger is used by the
// cache as well.
func SharedLoader(src Source, names []string, opts ...LoadOption) *CachedLoader {
	sharedOnce.Do(func() {
		l := NewLoader(src, names, opts...)
		l.logger.Debug("Creating shared loader")
		sharedLoader = NewCachedLoader(l, WithCacheLogger(l.logger))
	})
	return sharedLoader
}
