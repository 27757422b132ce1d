package main

import (
  "context"
  "os"
  "os/signal"
  "syscall"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  transport "github.com/ysgstore/menubot/internal/app/telegram"
  "github.com/ysgstore/menubot/internal/catalog"
  "github.com/ysgstore/menubot/internal/config"
  catalogdeps "github.com/ysgstore/menubot/internal/deps/catalog"
  "github.com/ysgstore/menubot/internal/deps/telegram"
  "github.com/ysgstore/menubot/internal/health"
  "github.com/ysgstore/menubot/pkg/logger"
)

const fetchTimeout = 10 * time.Second

func main() {
  logger.Init()

  ctx := context.Background()

  cfg, err := config.Load()
  if err != nil {
    log.Fatalf("config.Load: %v", err)
  }

  restyClient := resty.New().
    SetTimeout(fetchTimeout).
    SetHeader("User-Agent", "store-menu-bot/1.0")

  catalogClient := catalogdeps.NewClient(
    catalogdeps.Config{
      BaseURL:    cfg.APIBaseURL,
      StoreSlug:  cfg.StoreSlug,
      FetchDelay: cfg.FetchDelay,
    },
    catalogdeps.Dependencies{
      Client: restyClient,
    })

  catalogCache := catalog.NewCache(catalog.Dependencies{
    Client: catalogClient,
    TTL:    cfg.CacheTTL,
  })

  telegramClient, err := telegram.NewBotClient(telegram.Config{
    Token: cfg.TelegramToken,
  })
  if err != nil {
    log.Fatalf("telegram.NewBotClient: %v", err)
  }

  telegramBot := transport.NewTransport(transport.Dependencies{
    Telegram: telegramClient,
    Catalog:  catalogCache,
    Sales: transport.SalesConfig{
      ChatId:  cfg.SalesChatId,
      Contact: cfg.SalesContact,
    },
  })

  telegramBot.Start(ctx)

  healthService := health.NewService(cfg.HTTPPort)
  healthService.Start()

  log.
    WithField("store_slug", cfg.StoreSlug).
    Info("store menu bot started")

  exitSignal := make(chan os.Signal, 1)
  signal.Notify(exitSignal, syscall.SIGINT, syscall.SIGTERM)
  <-exitSignal

  shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
  defer cancel()

  if err = healthService.Shutdown(shutdownCtx); err != nil {
    log.Errorf("healthService.Shutdown: %v", err)
  }
}
