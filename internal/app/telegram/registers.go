package telegram

import (
  "context"
  "strings"

  set "github.com/deckarep/golang-set/v2"
  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
)

const (
  allItemsButton       = "🍽️ All Items"
  refreshButton        = "🔄 Refresh"
  categoryButtonPrefix = "📂 "
)

var (
  controlButtons = set.NewSet(allItemsButton, refreshButton)
  knownCommands  = set.NewSet("/start", "/menu", "/help")
)

func (b *Transport) registerHandlers(_ context.Context) {
  b.registerCommandHandler("/start", b.handleStartMenu)
  b.registerCommandHandler("/menu", b.handleStartMenu)
  b.registerCommandHandler("/help", b.handleHelpMenu)

  // Reply keyboard presses arrive as plain text carrying the button label.
  b.deps.Telegram.RegisterHandler(
    telegram.HandlerTypeMessageText, allItemsButton,
    telegram.MatchTypeExact, b.handleAllItemsMenu,
  )
  b.deps.Telegram.RegisterHandler(
    telegram.HandlerTypeMessageText, refreshButton,
    telegram.MatchTypeExact, b.handleRefreshMenu,
  )
  b.deps.Telegram.RegisterHandler(
    telegram.HandlerTypeMessageText, categoryButtonPrefix,
    telegram.MatchTypePrefix, b.handleCategoryMenu,
  )

  b.deps.Telegram.RegisterHandlerMatchFunc(matchUnknownText, b.handleUnknownText)
}

func (b *Transport) registerCommandHandler(command string, handler telegram.HandlerFunc) {
  b.deps.Telegram.RegisterHandler(
    telegram.HandlerTypeMessageText, command,
    telegram.MatchTypeExact, handler,
  )
}

// matchUnknownText catches input with no registered handler, so the user
// gets a hint instead of silence. That includes commands the bot does not
// know.
func matchUnknownText(update *tgmodels.Update) bool {
  if update == nil || update.Message == nil {
    return false
  }

  text := update.Message.Text

  if text == "" {
    return false
  }
  if strings.HasPrefix(text, "/") {
    return !knownCommands.ContainsOne(text)
  }
  if strings.HasPrefix(text, categoryButtonPrefix) {
    return false
  }

  return !controlButtons.ContainsOne(text)
}
