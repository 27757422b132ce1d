package health

import (
  "context"
  "fmt"
  "net/http"

  "github.com/labstack/echo/v4"
  "github.com/labstack/echo/v4/middleware"
  log "github.com/sirupsen/logrus"
)

// Service exposes the liveness surface hosting platforms poll. The bot
// itself talks to Telegram via long polling and needs no inbound routes.
type Service struct {
  echo *echo.Echo
  port int
}

func NewService(port int) *Service {
  e := echo.New()
  e.HideBanner = true
  e.HidePort = true

  e.Use(middleware.Recover())

  e.GET("/", func(c echo.Context) error {
    return c.JSON(http.StatusOK, map[string]string{
      "status":  "healthy",
      "service": "store-menu-bot",
    })
  })

  e.GET("/health", func(c echo.Context) error {
    return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
  })

  return &Service{echo: e, port: port}
}

func (s *Service) Start() {
  go func() {
    address := fmt.Sprintf(":%d", s.port)

    if err := s.echo.Start(address); err != nil && err != http.ErrServerClosed {
      log.Errorf("health.Service: echo.Start: %v", err)
    }
  }()
}

func (s *Service) Shutdown(ctx context.Context) error {
  if err := s.echo.Shutdown(ctx); err != nil {
    return fmt.Errorf("echo.Shutdown: %w", err)
  }
  return nil
}
