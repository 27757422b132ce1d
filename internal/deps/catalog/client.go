package catalog

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "net/http"
  neturl "net/url"
  "os"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ysgstore/menubot/internal/models"
)

const (
  storesEndpoint     = "/stores/public/slug"
  categoriesEndpoint = "/categories/store/slug"
  productsEndpoint   = "/products/public-store/slug"
)

// Failure categories surfaced to callers. The raw cause stays wrapped inside
// for the logs and is never shown to end users.
var (
  ErrRateLimited = errors.New("catalog upstream rate limited")
  ErrTimeout     = errors.New("catalog upstream timeout")
  ErrUnavailable = errors.New("catalog upstream unavailable")
)

type Config struct {
  BaseURL   string
  StoreSlug string

  // FetchDelay staggers the three snapshot sub-requests to avoid tripping
  // the upstream rate limit.
  FetchDelay time.Duration
}

type Dependencies struct {
  Client *resty.Client
}

type Client struct {
  config Config
  deps   Dependencies
}

func NewClient(config Config, deps Dependencies) *Client {
  return &Client{config: config, deps: deps}
}

func (c *Client) FetchStore(ctx context.Context) (*models.Store, error) {
  store := new(models.Store)

  if err := c.fetchJSON(ctx, storesEndpoint, store); err != nil {
    return nil, fmt.Errorf("c.fetchJSON: %w", err)
  }
  return store, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
  var categories []models.Category

  if err := c.fetchJSON(ctx, categoriesEndpoint, &categories); err != nil {
    return nil, fmt.Errorf("c.fetchJSON: %w", err)
  }
  return categories, nil
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
  var products []models.Product

  if err := c.fetchJSON(ctx, productsEndpoint, &products); err != nil {
    return nil, fmt.Errorf("c.fetchJSON: %w", err)
  }
  return products, nil
}

// FetchSnapshot fetches the full catalog tuple. A failure in any sub-fetch
// fails the whole snapshot: partial snapshots are never returned.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
  store, err := c.FetchStore(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.FetchStore: %w", err)
  }

  if err = c.sleep(ctx); err != nil {
    return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
  }

  categories, err := c.FetchCategories(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.FetchCategories: %w", err)
  }

  if err = c.sleep(ctx); err != nil {
    return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
  }

  products, err := c.FetchProducts(ctx)
  if err != nil {
    return nil, fmt.Errorf("c.FetchProducts: %w", err)
  }

  return &models.CatalogSnapshot{
    Store:      *store,
    Categories: categories,
    Products:   products,
  }, nil
}

func (c *Client) fetchJSON(ctx context.Context, endpoint string, out any) error {
  url, err := neturl.JoinPath(c.config.BaseURL, endpoint, c.config.StoreSlug)
  if err != nil {
    return fmt.Errorf("neturl.JoinPath: %w", err)
  }

  log.
    WithField("url", url).
    Debug("catalog api request")

  resp, err := c.deps.Client.R().SetContext(ctx).Get(url)
  if err != nil {
    return classifyTransportError(err)
  }

  if resp.StatusCode() == http.StatusTooManyRequests {
    return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode())
  }
  if !resp.IsSuccess() {
    return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
  }

  if err = json.Unmarshal(resp.Body(), out); err != nil {
    return fmt.Errorf("%w: body unmarshal: %v", ErrUnavailable, err)
  }

  return nil
}

func (c *Client) sleep(ctx context.Context) error {
  if c.config.FetchDelay <= 0 {
    return nil
  }

  select {
  case <-ctx.Done():
    return ctx.Err()
  case <-time.After(c.config.FetchDelay):
    return nil
  }
}

func classifyTransportError(err error) error {
  if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
    return fmt.Errorf("%w: %v", ErrTimeout, err)
  }
  return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
