package telegram

import (
  "context"
  "strings"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/ysgstore/menubot/internal/message"
  "github.com/ysgstore/menubot/internal/models"
)

func (b *Transport) handleStartMenu(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      WithField("nav", models.NavTopLevel).
      Warn("chat_id not found")

    return
  }

  b.showEntryMenu(ctx, chatId)
}

func (b *Transport) handleHelpMenu(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      Warn("chat_id not found")

    return
  }

  res := message.Do().BuildHelpMessage()

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   res.Message.TextValue,
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.sendMessage: %v", err)
  }
}

func (b *Transport) handleRefreshMenu(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      Warn("chat_id not found")

    return
  }

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   "🔄 <b>Refreshing menu...</b>",
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.sendMessage: %v", err)
  }

  b.deps.Catalog.Invalidate()

  b.showEntryMenu(ctx, chatId)
}

// handleCategoryMenu resolves a reply-keyboard category press by exact name.
// An unresolvable name falls through to the flat product list: the keyboard
// may be stale after a catalog change, and that is not the user's fault.
func (b *Transport) handleCategoryMenu(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      WithField("nav", models.NavCategory).
      Warn("chat_id not found")

    return
  }

  categoryName := strings.TrimPrefix(update.Message.Text, categoryButtonPrefix)

  snapshot, ok := b.fetchSnapshot(ctx, chatId)
  if !ok {
    return
  }

  category, found := snapshot.FindCategoryByName(categoryName)
  if !found {
    log.
      WithField("chat_id", chatId).
      WithField("category_name", categoryName).
      Warn("category not resolved, falling back to all items")

    b.showAllProducts(ctx, chatId, snapshot)
    return
  }

  b.showCategoryProducts(ctx, chatId, snapshot, category)
}

func (b *Transport) handleAllItemsMenu(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      WithField("nav", models.NavTopLevel).
      Warn("chat_id not found")

    return
  }

  snapshot, ok := b.fetchSnapshot(ctx, chatId)
  if !ok {
    return
  }

  b.showAllProducts(ctx, chatId, snapshot)
}

func (b *Transport) handleUnknownText(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    return
  }

  res := message.Do().BuildHintMessage()

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   res.Message.TextValue,
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.sendMessage: %v", err)
  }
}

// handleInlineAction is the single decode point for inline keyboard
// callback payloads.
func (b *Transport) handleInlineAction(ctx context.Context, bot *telegram.Bot, mes tgmodels.MaybeInaccessibleMessage, data []byte) {
  chatId, ok := findChatIdInMaybeInaccessible(mes)
  if !ok {
    log.
      WithField("inaccessible_message", mes).
      Warn("chat_id not found")

    return
  }

  action, err := models.DecodeAction(data)
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("payload", string(data)).
      Errorf("models.DecodeAction: %v", err)

    return
  }

  switch action.Kind {

  case models.ActionShowProduct:
    snapshot, ok := b.fetchSnapshot(ctx, chatId)
    if !ok {
      return
    }
    b.showProductDetail(ctx, chatId, snapshot, models.NavigateProduct(action.Id))

  case models.ActionShowCategories:
    b.showEntryMenu(ctx, chatId)

  case models.ActionShowAll:
    snapshot, ok := b.fetchSnapshot(ctx, chatId)
    if !ok {
      return
    }
    b.showAllProducts(ctx, chatId, snapshot)

  case models.ActionRefresh:
    b.deps.Catalog.Invalidate()
    b.showEntryMenu(ctx, chatId)

  case models.ActionContactSales:
    b.handleContactSales(ctx, chatId, mes, action.Id)
  }
}

// handleContactSales is a best-effort, single-attempt flow: resolve the
// product, confirm to the requester, mirror the summary to the sales chat
// and log it. No queue, no retry.
func (b *Transport) handleContactSales(ctx context.Context, chatId int64, mes tgmodels.MaybeInaccessibleMessage, productId string) {
  snapshot, ok := b.fetchSnapshot(ctx, chatId)
  if !ok {
    return
  }

  product, found := snapshot.FindProduct(productId)
  if !found {
    res := message.Do().
      SetSalesContact(b.deps.Sales.Contact).
      BuildSalesNotFoundMessage()

    err := b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   res.Message.TextValue,
    })
    if err != nil {
      log.
        WithField("chat_id", chatId).
        Errorf("b.sendMessage: %v", err)
    }
    return
  }

  inquiry := message.Do().
    SetProduct(product).
    SetRequester(findRequesterInMaybeInaccessible(mes)).
    BuildInquiry()

  log.
    WithField("inquiry_uuid", inquiry.UUID).
    WithField("chat_id", chatId).
    WithField("product_id", product.Id).
    WithField("product_title", product.Title).
    WithField("requester", inquiry.Requester).
    Info("sales inquiry created")

  confirmation := message.Do().
    SetInquiry(inquiry).
    SetSalesContact(b.deps.Sales.Contact).
    BuildInquiryConfirmationMessage()

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   confirmation.Message.TextValue,
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("inquiry_uuid", inquiry.UUID).
      Errorf("b.sendMessage: %v", err)
  }

  if b.deps.Sales.ChatId == 0 {
    return
  }

  summary := message.Do().
    SetInquiry(inquiry).
    BuildInquirySummaryMessage()

  err = b.sendMessage(ctx, sendMessageParams{
    ChatId: b.deps.Sales.ChatId,
    Text:   summary.Message.TextValue,
  })
  if err != nil {
    log.
      WithField("chat_id", b.deps.Sales.ChatId).
      WithField("inquiry_uuid", inquiry.UUID).
      Errorf("b.sendMessage: %v", err)
  }
}
