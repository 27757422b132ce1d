package catalog

import (
  "context"
  "fmt"
  "sync"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/ysgstore/menubot/internal/models"
)

const DefaultTTL = 5 * time.Minute

type Fetcher interface {
  FetchSnapshot(ctx context.Context) (*models.CatalogSnapshot, error)
}

type Clock interface {
  Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Dependencies struct {
  Client Fetcher
  Clock  Clock
  TTL    time.Duration
}

// Cache is a single process-wide snapshot slot: all users share one store's
// catalog. The slot is guarded for memory safety only; concurrent misses may
// both fetch, and last write wins, which is fine since both writes carry an
// equally fresh snapshot.
type Cache struct {
  mu       sync.Mutex
  deps     Dependencies
  snapshot *models.CatalogSnapshot
}

func NewCache(deps Dependencies) *Cache {
  if deps.Clock == nil {
    deps.Clock = systemClock{}
  }
  if deps.TTL <= 0 {
    deps.TTL = DefaultTTL
  }
  return &Cache{deps: deps}
}

// Snapshot returns the cached catalog when fresh, otherwise refetches.
// A failed refetch falls back to the stale snapshot when one exists; the
// classified fetch error propagates only from a cold start.
func (c *Cache) Snapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
  now := c.deps.Clock.Now()

  if cached := c.freshSnapshot(now); cached != nil {
    log.Debug("catalog cache hit")
    return cached, nil
  }

  fetched, err := c.deps.Client.FetchSnapshot(ctx)
  if err != nil {
    if stale := c.storedSnapshot(); stale != nil {
      log.
        WithField("fetched_at", stale.FetchedAt).
        Warnf("catalog fetch failed, serving stale snapshot: %v", err)

      return stale, nil
    }
    return nil, fmt.Errorf("c.deps.Client.FetchSnapshot: %w", err)
  }

  fetched.FetchedAt = now

  c.mu.Lock()
  c.snapshot = fetched
  c.mu.Unlock()

  return fetched, nil
}

// Invalidate zeroes the snapshot's freshness so the next Snapshot call is
// forced to refetch. The data itself is kept: should that refetch fail, the
// stale fallback still has something to serve.
func (c *Cache) Invalidate() {
  c.mu.Lock()
  defer c.mu.Unlock()

  if c.snapshot != nil {
    c.snapshot.FetchedAt = time.Time{}
  }
}

func (c *Cache) freshSnapshot(now time.Time) *models.CatalogSnapshot {
  c.mu.Lock()
  defer c.mu.Unlock()

  if c.snapshot == nil {
    return nil
  }
  if now.Sub(c.snapshot.FetchedAt) >= c.deps.TTL {
    return nil
  }
  return c.snapshot
}

func (c *Cache) storedSnapshot() *models.CatalogSnapshot {
  c.mu.Lock()
  defer c.mu.Unlock()

  return c.snapshot
}
