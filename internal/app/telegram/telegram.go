package telegram

import (
  "context"

  telegram "github.com/go-telegram/bot"
  "github.com/ysgstore/menubot/internal/catalog"
)

type Transport struct {
  deps Dependencies
}

type Dependencies struct {
  Telegram *telegram.Bot
  Catalog  *catalog.Cache
  Sales    SalesConfig
}

// SalesConfig drives the contact-sales flow. ChatId is the channel inquiry
// summaries are mirrored into (zero disables the mirror); Contact is the
// human handle users are pointed at as a fallback.
type SalesConfig struct {
  ChatId  int64
  Contact string
}

func NewTransport(deps Dependencies) *Transport {
  return &Transport{deps: deps}
}

func (b *Transport) Start(ctx context.Context) {
  b.registerHandlers(ctx)

  go b.deps.Telegram.Start(ctx)
}
