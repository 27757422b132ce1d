package message

import (
  "errors"
  "fmt"
  "html"
  "strings"
  "time"

  "github.com/google/uuid"
  "github.com/ysgstore/menubot/internal/deps/catalog"
  "github.com/ysgstore/menubot/internal/models"
  "github.com/ysgstore/menubot/pkg/imageurl"
  "github.com/ysgstore/menubot/pkg/money"
  "github.com/ysgstore/menubot/pkg/stringer"
  "github.com/ysgstore/menubot/pkg/validator"
)

// Per-product description budgets. The flat list packs many products into
// one message, so it gets the tighter budget.
const (
  CategoryDescriptionLimit = 100
  FlatDescriptionLimit     = 80
  InquiryDescriptionLimit  = 100
)

type Builder struct {
  snapshot  models.CatalogSnapshot
  category  models.Category
  product   models.Product
  inquiry   models.Inquiry
  requester models.Requester
  contact   string
}

func Do() Builder {
  return Builder{}
}

func (b Builder) SetSnapshot(snapshot models.CatalogSnapshot) Builder {
  b.snapshot = snapshot
  return b
}

func (b Builder) SetSnapshotPtr(snapshot *models.CatalogSnapshot) Builder {
  if snapshot != nil {
    b.snapshot = *snapshot
  }
  return b
}

func (b Builder) SetCategory(category models.Category) Builder {
  b.category = category
  return b
}

func (b Builder) SetProduct(product models.Product) Builder {
  b.product = product
  return b
}

func (b Builder) SetRequester(requester models.Requester) Builder {
  b.requester = requester
  return b
}

func (b Builder) SetInquiry(inquiry models.Inquiry) Builder {
  b.inquiry = inquiry
  return b
}

func (b Builder) SetSalesContact(contact string) Builder {
  b.contact = contact
  return b
}

type Message struct {
  TextValue string
  PhotoURL  string
}

type BuildResult struct {
  Message    Message
  IsSendable bool
}

func (b Builder) BuildStoreInfoMessage() BuildResult {
  store := b.snapshot.Store

  text := fmt.Sprintf("🏪 <b>%s</b>\n", stringer.SanitizeString(store.Name))

  if !stringer.IsEmptyStr(store.Description) {
    text += fmt.Sprintf("📝 %s\n", stringer.SanitizeString(store.Description))
  }
  if !stringer.IsEmptyStr(store.Address) {
    text += fmt.Sprintf("📍 %s\n", stringer.SanitizeString(store.Address))
  }
  if !stringer.IsEmptyStr(store.Phone) {
    text += fmt.Sprintf("📞 %s\n", stringer.SanitizeString(store.Phone))
  }

  // Social links are operator entered upstream; a malformed one would
  // break the whole HTML message, so it is dropped instead.
  links := make([]string, 0, 3)

  if validator.URL(store.FacebookURL) == nil {
    links = append(links, makeSocialLink(store.FacebookURL, "Facebook"))
  }
  if validator.URL(store.TelegramURL) == nil {
    links = append(links, makeSocialLink(store.TelegramURL, "Telegram"))
  }
  if validator.URL(store.TiktokURL) == nil {
    links = append(links, makeSocialLink(store.TiktokURL, "TikTok"))
  }
  if len(links) > 0 {
    text += fmt.Sprintf("\n🔗 %s", strings.Join(links, " | "))
  }

  return BuildResult{
    Message:    Message{TextValue: strings.TrimSpace(text)},
    IsSendable: true,
  }
}

func (b Builder) BuildCategoryMenuMessage() BuildResult {
  return BuildResult{
    Message:    Message{TextValue: "📋 <b>Select a Category:</b>"},
    IsSendable: len(b.snapshot.Categories) > 0,
  }
}

func (b Builder) BuildCategoryProductsMessage() BuildResult {
  products := b.snapshot.ProductsInCategory(b.category.Id)

  if len(products) == 0 {
    text := fmt.Sprintf("📭 No items found in %s.", stringer.SanitizeString(b.category.Name))

    return BuildResult{
      Message:    Message{TextValue: text},
      IsSendable: true,
    }
  }

  text := fmt.Sprintf("📂 <b>%s</b>\n\n", stringer.SanitizeString(b.category.Name))

  for _, product := range products {
    text += makeProductLines(product, CategoryDescriptionLimit)
    text += "\n"
  }

  text += `🔄 Tap "Refresh" to see the latest menu`

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func (b Builder) BuildAllProductsMessage() BuildResult {
  if len(b.snapshot.Products) == 0 {
    return BuildResult{
      Message:    Message{TextValue: "📭 No items found in the menu."},
      IsSendable: true,
    }
  }

  text := "🍽️ <b>All Items</b>\n\n"

  for _, group := range groupProductsByCategory(b.snapshot.Products) {
    text += fmt.Sprintf("📂 <b>%s</b>\n", stringer.SanitizeString(group.Name))

    for _, product := range group.Products {
      text += makeProductLines(product, FlatDescriptionLimit)
    }

    text += "\n"
  }

  text += `🔄 Tap "Refresh" to see the latest menu`

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func (b Builder) BuildProductDetailMessage() BuildResult {
  product := b.product

  text := fmt.Sprintf("%s <b>%s</b>\n", availabilityMarker(product), stringer.SanitizeString(product.Title))

  if product.Price != "" {
    text += fmt.Sprintf("💵 %s\n", money.Display(string(product.Price)))
  }

  text += fmt.Sprintf("📂 %s\n", stringer.SanitizeString(product.CategoryName()))

  if product.Available() {
    text += "✅ Available now\n"
  } else {
    text += "❌ Currently unavailable\n"
  }

  if !stringer.IsEmptyStr(product.Description) {
    text += fmt.Sprintf("\n📝 %s", stringer.StripTags(product.Description))
  }

  return BuildResult{
    Message: Message{
      TextValue: strings.TrimSpace(text),
      PhotoURL:  imageurl.Downscale(product.PhotoURL()),
    },
    IsSendable: true,
  }
}

func (b Builder) BuildProductNotFoundMessage() BuildResult {
  return BuildResult{
    Message: Message{
      TextValue: `😕 This item is no longer on the menu. Tap "🔄 Refresh" to reload it.`,
    },
    IsSendable: true,
  }
}

// BuildInquiry composes the inquiry record itself; the texts below render it.
func (b Builder) BuildInquiry() models.Inquiry {
  return models.Inquiry{
    UUID:      uuid.NewString(),
    Product:   b.product,
    Requester: b.requester,
    CreatedAt: time.Now(),
  }
}

func (b Builder) BuildInquiryConfirmationMessage() BuildResult {
  text := fmt.Sprintf(`📞 Thanks! We passed your inquiry about <b>%s</b> to our sales team.
They will message you shortly. You can also reach us directly at %s`,
    stringer.SanitizeString(b.inquiry.Product.Title), b.contact)

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func (b Builder) BuildInquirySummaryMessage() BuildResult {
  product := b.inquiry.Product

  text := fmt.Sprintf("📞 <b>New sales inquiry</b> <code>%s</code>\n\n", b.inquiry.UUID)
  text += fmt.Sprintf("%s <b>%s</b>", availabilityMarker(product), stringer.SanitizeString(product.Title))

  if product.Price != "" {
    text += fmt.Sprintf(" - %s", money.Display(string(product.Price)))
  }

  text += fmt.Sprintf("\n📂 %s\n", stringer.SanitizeString(product.CategoryName()))

  if !stringer.IsEmptyStr(product.Description) {
    text += fmt.Sprintf("📝 %s\n", stringer.Truncate(stringer.StripTags(product.Description), InquiryDescriptionLimit))
  }

  requester := b.inquiry.Requester

  text += fmt.Sprintf("\n👤 %s", stringer.SanitizeString(requester.DisplayName))

  if requester.Username != "" {
    text += fmt.Sprintf(" (@%s)", requester.Username)
  }

  text += fmt.Sprintf("\n<a href=\"tg://user?id=%d\">Message the customer</a>", requester.UserId)

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func (b Builder) BuildSalesNotFoundMessage() BuildResult {
  text := fmt.Sprintf("😕 This item is no longer on the menu.\nPlease contact %s directly.", b.contact)

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func (b Builder) BuildHelpMessage() BuildResult {
  text := `🤖 <b>Store Menu Bot Help</b>

<b>Commands:</b>
/start - Show the store menu
/help - Show this help

<b>Features:</b>
• Browse menu by categories
• See prices and descriptions
• Open item details with photos
• Contact sales about an item

🔄 Use the "Refresh" button to get the latest menu`

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func (b Builder) BuildHintMessage() BuildResult {
  return BuildResult{
    Message: Message{
      TextValue: "🤔 I did not recognize that.\nSend /start to open the store menu, or use the keyboard buttons.",
    },
    IsSendable: true,
  }
}

// BuildFetchErrorMessage maps a classified catalog failure to a short
// user-facing text. The raw cause never reaches the chat.
func (b Builder) BuildFetchErrorMessage(err error) BuildResult {
  var text string

  switch {
  case errors.Is(err, catalog.ErrRateLimited):
    text = "⏳ Menu server is busy. Please try again in a moment."

  case errors.Is(err, catalog.ErrTimeout):
    text = "⌛ Menu server timeout. Please try again."

  default:
    text = "❌ Failed to fetch menu data. Please try again later."
  }

  return BuildResult{
    Message:    Message{TextValue: text},
    IsSendable: true,
  }
}

func makeSocialLink(href, label string) string {
  return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), label)
}

type productGroup struct {
  Name     string
  Products []models.Product
}

// groupProductsByCategory buckets products under their category name in
// first-seen order. Products without a category land in "Uncategorized".
func groupProductsByCategory(products []models.Product) []productGroup {
  order := make([]string, 0)
  groups := make(map[string][]models.Product)

  for _, product := range products {
    name := product.CategoryName()

    if _, ok := groups[name]; !ok {
      order = append(order, name)
    }
    groups[name] = append(groups[name], product)
  }

  result := make([]productGroup, 0, len(order))

  for _, name := range order {
    result = append(result, productGroup{
      Name:     name,
      Products: groups[name],
    })
  }

  return result
}

func makeProductLines(product models.Product, descriptionLimit int) string {
  text := fmt.Sprintf("%s <b>%s</b>", availabilityMarker(product), stringer.SanitizeString(product.Title))

  if product.Price != "" {
    text += fmt.Sprintf(" - %s", money.Display(string(product.Price)))
  }
  text += "\n"

  if !stringer.IsEmptyStr(product.Description) {
    description := stringer.Truncate(stringer.StripTags(product.Description), descriptionLimit)

    text += fmt.Sprintf("   📝 %s\n", description)
  }

  return text
}

func availabilityMarker(product models.Product) string {
  if product.Available() {
    return "✅"
  }
  return "❌"
}
