package config

import (
  "fmt"
  "os"
  "time"

  "github.com/go-playground/validator/v10"
  "github.com/joho/godotenv"
  "github.com/spf13/cast"
)

type Config struct {
  TelegramToken string `validate:"required"`
  APIBaseURL    string `validate:"required,url"`
  StoreSlug     string `validate:"required"`

  CacheTTL   time.Duration
  FetchDelay time.Duration

  // SalesChatId is the chat inquiries are mirrored into; zero disables the
  // mirror, the inquiry is still logged. SalesContact is the handle users
  // are pointed at as a fallback.
  SalesChatId  int64
  SalesContact string

  HTTPPort int
}

// Load reads the process configuration from the environment, with an
// optional .env file for local runs. A missing bot token is fatal upstream.
func Load() (*Config, error) {
  _ = godotenv.Load()

  config := &Config{
    TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
    APIBaseURL:    os.Getenv("API_BASE_URL"),
    StoreSlug:     "ysg",
    CacheTTL:      5 * time.Minute,
    FetchDelay:    500 * time.Millisecond,
    SalesContact:  "@ysg_sales",
    HTTPPort:      8080,
  }

  if slug := os.Getenv("STORE_SLUG"); slug != "" {
    config.StoreSlug = slug
  }

  if raw := os.Getenv("CACHE_TTL"); raw != "" {
    ttl, err := time.ParseDuration(raw)
    if err != nil {
      return nil, fmt.Errorf("CACHE_TTL invalid: %w", err)
    }
    config.CacheTTL = ttl
  }

  if raw := os.Getenv("FETCH_DELAY"); raw != "" {
    delay, err := time.ParseDuration(raw)
    if err != nil {
      return nil, fmt.Errorf("FETCH_DELAY invalid: %w", err)
    }
    config.FetchDelay = delay
  }

  if raw := os.Getenv("SALES_CHAT_ID"); raw != "" {
    chatId, err := cast.ToInt64E(raw)
    if err != nil {
      return nil, fmt.Errorf("SALES_CHAT_ID invalid: %w", err)
    }
    config.SalesChatId = chatId
  }

  if contact := os.Getenv("SALES_CONTACT"); contact != "" {
    config.SalesContact = contact
  }

  if raw := os.Getenv("HTTP_PORT"); raw != "" {
    port, err := cast.ToIntE(raw)
    if err != nil {
      return nil, fmt.Errorf("HTTP_PORT invalid: %w", err)
    }
    config.HTTPPort = port
  }

  if err := validator.New().Struct(config); err != nil {
    return nil, fmt.Errorf("config validation: %w", err)
  }

  return config, nil
}
