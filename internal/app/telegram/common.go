package telegram

import (
  "context"
  "fmt"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  tginline "github.com/go-telegram/ui/keyboard/inline"
  "github.com/google/uuid"
  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
  "github.com/ysgstore/menubot/internal/message"
  "github.com/ysgstore/menubot/internal/models"
  "github.com/ysgstore/menubot/pkg/stringer"
)

const detailButtonLabelLimit = 28

// showEntryMenu runs the entry flow: store info, then the category menu.
// With zero categories the flat product list is shown straight away.
func (b *Transport) showEntryMenu(ctx context.Context, chatId int64) {
  snapshot, ok := b.fetchSnapshot(ctx, chatId)
  if !ok {
    return
  }

  info := message.Do().
    SetSnapshotPtr(snapshot).
    BuildStoreInfoMessage()

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   info.Message.TextValue,
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("nav", models.NavTopLevel).
      Errorf("b.sendMessage: %v", err)

    return
  }

  menu := message.Do().
    SetSnapshotPtr(snapshot).
    BuildCategoryMenuMessage()

  if !menu.IsSendable {
    b.showAllProducts(ctx, chatId, snapshot)
    return
  }

  err = b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   menu.Message.TextValue,
    Reply:  makeMenuKeyboard(snapshot),
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("nav", models.NavTopLevel).
      Errorf("b.sendMessage: %v", err)
  }
}

func (b *Transport) showCategoryProducts(ctx context.Context, chatId int64, snapshot *models.CatalogSnapshot, category models.Category) {
  res := message.Do().
    SetSnapshotPtr(snapshot).
    SetCategory(category).
    BuildCategoryProductsMessage()

  keyboard := b.newListKeyboard(snapshot.ProductsInCategory(category.Id))

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   res.Message.TextValue,
    Reply:  keyboard,
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("nav", models.NavCategory).
      WithField("category_id", category.Id).
      Errorf("b.sendMessage: %v", err)
  }
}

func (b *Transport) showAllProducts(ctx context.Context, chatId int64, snapshot *models.CatalogSnapshot) {
  res := message.Do().
    SetSnapshotPtr(snapshot).
    BuildAllProductsMessage()

  keyboard := b.newListKeyboard(snapshot.Products)

  err := b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   res.Message.TextValue,
    Reply:  keyboard,
  })
  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("nav", models.NavTopLevel).
      Errorf("b.sendMessage: %v", err)
  }
}

func (b *Transport) showProductDetail(ctx context.Context, chatId int64, snapshot *models.CatalogSnapshot, nav models.Navigation) {
  product, found := snapshot.FindProduct(nav.ProductId)
  if !found {
    res := message.Do().BuildProductNotFoundMessage()

    err := b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   res.Message.TextValue,
      Reply:  b.newNavKeyboard(),
    })
    if err != nil {
      log.
        WithField("chat_id", chatId).
        WithField("nav", nav.Kind).
        WithField("product_id", nav.ProductId).
        Errorf("b.sendMessage: %v", err)
    }
    return
  }

  res := message.Do().
    SetProduct(product).
    BuildProductDetailMessage()

  keyboard := b.newDetailKeyboard(product)

  var err error

  if res.Message.PhotoURL != "" {
    err = b.sendPhoto(ctx, sendPhotoParams{
      ChatId:   chatId,
      PhotoURL: res.Message.PhotoURL,
      Caption:  res.Message.TextValue,
      Reply:    keyboard,
    })
  } else {
    err = b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   res.Message.TextValue,
      Reply:  keyboard,
    })
  }

  if err != nil {
    log.
      WithField("chat_id", chatId).
      WithField("nav", nav.Kind).
      WithField("product_id", product.Id).
      Errorf("product detail send: %v", err)
  }
}

// fetchSnapshot wraps the cache call and reports classified failures to the
// user. A false return means the caller has nothing to render.
func (b *Transport) fetchSnapshot(ctx context.Context, chatId int64) (*models.CatalogSnapshot, bool) {
  snapshot, err := b.deps.Catalog.Snapshot(ctx)
  if err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.deps.Catalog.Snapshot: %v", err)

    res := message.Do().BuildFetchErrorMessage(err)

    sendErr := b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   res.Message.TextValue,
    })
    if sendErr != nil {
      log.
        WithField("chat_id", chatId).
        Errorf("b.sendMessage: %v", sendErr)
    }
    return nil, false
  }

  return snapshot, true
}

type sendMessageParams struct {
  ChatId int64
  Text   string
  Reply  tgmodels.ReplyMarkup
}

func (b *Transport) sendMessage(ctx context.Context, params sendMessageParams) error {
  _, err := b.deps.Telegram.SendMessage(ctx, &telegram.SendMessageParams{
    ChatID:      params.ChatId,
    Text:        params.Text,
    ParseMode:   tgmodels.ParseModeHTML,
    ReplyMarkup: params.Reply,
    LinkPreviewOptions: &tgmodels.LinkPreviewOptions{
      IsDisabled: lo.ToPtr(true),
    },
  })
  if err != nil {
    return fmt.Errorf("b.deps.Telegram.SendMessage: %w", err)
  }

  return nil
}

type sendPhotoParams struct {
  ChatId   int64
  PhotoURL string
  Caption  string
  Reply    tgmodels.ReplyMarkup
}

func (b *Transport) sendPhoto(ctx context.Context, params sendPhotoParams) error {
  _, err := b.deps.Telegram.SendPhoto(ctx, &telegram.SendPhotoParams{
    ChatID:      params.ChatId,
    Photo:       &tgmodels.InputFileString{Data: params.PhotoURL},
    Caption:     params.Caption,
    ParseMode:   tgmodels.ParseModeHTML,
    ReplyMarkup: params.Reply,
  })
  if err != nil {
    return fmt.Errorf("b.deps.Telegram.SendPhoto: %w", err)
  }

  return nil
}

// makeMenuKeyboard is the persistent reply keyboard for the entry menu.
// Labels are data-driven per snapshot, so it is built raw rather than with
// the ui helper, which wants handlers wired per button at build time.
func makeMenuKeyboard(snapshot *models.CatalogSnapshot) *tgmodels.ReplyKeyboardMarkup {
  rows := make([][]tgmodels.KeyboardButton, 0, len(snapshot.Categories)+2)

  rows = append(rows, []tgmodels.KeyboardButton{{Text: allItemsButton}})

  for _, category := range snapshot.Categories {
    rows = append(rows, []tgmodels.KeyboardButton{
      {Text: categoryButtonPrefix + category.Name},
    })
  }

  rows = append(rows, []tgmodels.KeyboardButton{{Text: refreshButton}})

  return &tgmodels.ReplyKeyboardMarkup{
    Keyboard:       rows,
    ResizeKeyboard: true,
    IsPersistent:   true,
  }
}

// newListKeyboard attaches a detail button per product, two per row, plus
// the navigation row.
func (b *Transport) newListKeyboard(products []models.Product) *tginline.Keyboard {
  keyboard := b.newInlineKeyboard("list")

  for index, product := range products {
    if index%2 == 0 {
      keyboard = keyboard.Row()
    }

    label := "🔍 " + stringer.Truncate(product.Title, detailButtonLabelLimit)
    payload := models.Action{Kind: models.ActionShowProduct, Id: product.Id}.Encode()

    keyboard = keyboard.Button(label, payload, b.handleInlineAction)
  }

  return keyboard.
    Row().
    Button("🔙 Categories", models.Action{Kind: models.ActionShowCategories}.Encode(), b.handleInlineAction).
    Button(refreshButton, models.Action{Kind: models.ActionRefresh}.Encode(), b.handleInlineAction)
}

func (b *Transport) newDetailKeyboard(product models.Product) *tginline.Keyboard {
  return b.newInlineKeyboard("detail").
    Row().
    Button("📞 Contact Sales", models.Action{Kind: models.ActionContactSales, Id: product.Id}.Encode(), b.handleInlineAction).
    Row().
    Button("🔙 Categories", models.Action{Kind: models.ActionShowCategories}.Encode(), b.handleInlineAction).
    Button(allItemsButton, models.Action{Kind: models.ActionShowAll}.Encode(), b.handleInlineAction)
}

func (b *Transport) newNavKeyboard() *tginline.Keyboard {
  return b.newInlineKeyboard("nav").
    Row().
    Button("🔙 Categories", models.Action{Kind: models.ActionShowCategories}.Encode(), b.handleInlineAction).
    Button(refreshButton, models.Action{Kind: models.ActionRefresh}.Encode(), b.handleInlineAction)
}

// newInlineKeyboard builds a keyboard with a unique prefix per instance.
// Keyboards register a callback handler on the bot, and a shared prefix
// would let an older keyboard intercept callbacks for buttons it does not
// carry.
func (b *Transport) newInlineKeyboard(prefix string) *tginline.Keyboard {
  return tginline.New(b.deps.Telegram,
    tginline.OnError(func(err error) {
      log.Errorf("telegram.InlineKeyboard: %v", err)
    }),
    tginline.WithPrefix(fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])),
    tginline.NoDeleteAfterClick(),
  )
}

func findChatIdInUpdate(update *tgmodels.Update) (int64, bool) {
  if update != nil && update.Message != nil && update.Message.Chat.ID != 0 {
    return update.Message.Chat.ID, true
  }
  return 0, false
}

func findChatIdInMaybeInaccessible(msg tgmodels.MaybeInaccessibleMessage) (int64, bool) {
  if msg.Message != nil && msg.Message.Chat.ID != 0 {
    return msg.Message.Chat.ID, true
  }
  if msg.InaccessibleMessage != nil && msg.InaccessibleMessage.Chat.ID != 0 {
    return msg.InaccessibleMessage.Chat.ID, true
  }
  return 0, false
}

// findRequesterInMaybeInaccessible reads the requester identity off the
// chat. The bot only runs in private chats, where the chat mirrors the user.
func findRequesterInMaybeInaccessible(msg tgmodels.MaybeInaccessibleMessage) models.Requester {
  var chat tgmodels.Chat

  if msg.Message != nil {
    chat = msg.Message.Chat
  } else if msg.InaccessibleMessage != nil {
    chat = msg.InaccessibleMessage.Chat
  }

  displayName := stringer.Strip(fmt.Sprintf("%s %s", chat.FirstName, chat.LastName))

  return models.Requester{
    ChatId:      chat.ID,
    UserId:      chat.ID,
    DisplayName: displayName,
    Username:    chat.Username,
  }
}
