package message

import (
  "errors"
  "fmt"
  "strings"
  "testing"

  "github.com/samber/lo"
  "github.com/ysgstore/menubot/internal/deps/catalog"
  "github.com/ysgstore/menubot/internal/models"
)

var drinks = models.Category{Id: "cat-1", Name: "Drinks"}

func menuSnapshot() models.CatalogSnapshot {
  return models.CatalogSnapshot{
    Store: models.Store{
      Id:    "store-1",
      Name:  "YSG Store",
      Phone: "+1 555 0100",
    },
    Categories: []models.Category{drinks},
    Products: []models.Product{
      {Id: "p-1", Title: "Cola", Price: "1", Category: &drinks, Description: "Cold and fizzy"},
      {Id: "p-2", Title: "Mystery Box", Price: "contact us"},
    },
  }
}

func TestBuildStoreInfoMessageSkipsEmptyFields(t *testing.T) {
  snapshot := menuSnapshot()
  snapshot.Store.TelegramURL = "https://t.me/ysgstore"

  res := Do().SetSnapshot(snapshot).BuildStoreInfoMessage()
  text := res.Message.TextValue

  if !strings.Contains(text, "🏪 <b>YSG Store</b>") {
    t.Fatalf("missing store title: %q", text)
  }
  if !strings.Contains(text, "📞 +1 555 0100") {
    t.Fatalf("missing phone line: %q", text)
  }
  if strings.Contains(text, "📍") || strings.Contains(text, "📝") {
    t.Fatalf("empty fields must not render: %q", text)
  }
  if !strings.Contains(text, `<a href="https://t.me/ysgstore">Telegram</a>`) {
    t.Fatalf("missing social link: %q", text)
  }
}

func TestBuildStoreInfoMessageGuardsSocialLinks(t *testing.T) {
  snapshot := menuSnapshot()
  snapshot.Store.FacebookURL = "javascript:alert(1)"
  snapshot.Store.TelegramURL = `https://t.me/ysgstore?a=1&b="x"`
  snapshot.Store.TiktokURL = "not a url"

  res := Do().SetSnapshot(snapshot).BuildStoreInfoMessage()
  text := res.Message.TextValue

  if strings.Contains(text, "javascript:") || strings.Contains(text, "Facebook") {
    t.Fatalf("non-http scheme must be dropped: %q", text)
  }
  if strings.Contains(text, "TikTok") {
    t.Fatalf("malformed url must be dropped: %q", text)
  }
  if !strings.Contains(text, `<a href="https://t.me/ysgstore?a=1&amp;b=&#34;x&#34;">Telegram</a>`) {
    t.Fatalf("href must be escaped into the markup: %q", text)
  }
}

func TestBuildCategoryMenuMessageNotSendableWithoutCategories(t *testing.T) {
  res := Do().SetSnapshot(models.CatalogSnapshot{}).BuildCategoryMenuMessage()

  if res.IsSendable {
    t.Fatal("category menu must not be sendable with zero categories")
  }
}

func TestBuildCategoryProductsMessage(t *testing.T) {
  res := Do().
    SetSnapshot(menuSnapshot()).
    SetCategory(drinks).
    BuildCategoryProductsMessage()

  text := res.Message.TextValue

  if strings.Contains(text, "No items found") {
    t.Fatalf("non-empty category reported as empty: %q", text)
  }
  if !strings.Contains(text, "📂 <b>Drinks</b>") {
    t.Fatalf("missing category header: %q", text)
  }
  if !strings.Contains(text, "✅ <b>Cola</b> - $1.00") {
    t.Fatalf("missing product line: %q", text)
  }
  if !strings.Contains(text, "   📝 Cold and fizzy") {
    t.Fatalf("missing description line: %q", text)
  }
  if strings.Contains(text, "Mystery Box") {
    t.Fatalf("product from another bucket leaked in: %q", text)
  }
}

func TestBuildCategoryProductsMessageEmptyCategory(t *testing.T) {
  empty := models.Category{Id: "cat-9", Name: "Desserts"}

  res := Do().
    SetSnapshot(menuSnapshot()).
    SetCategory(empty).
    BuildCategoryProductsMessage()

  if res.Message.TextValue != "📭 No items found in Desserts." {
    t.Fatalf("unexpected empty category text: %q", res.Message.TextValue)
  }
}

func TestBuildAllProductsMessageGroupsInFirstSeenOrder(t *testing.T) {
  res := Do().SetSnapshot(menuSnapshot()).BuildAllProductsMessage()
  text := res.Message.TextValue

  drinksAt := strings.Index(text, "📂 <b>Drinks</b>")
  uncategorizedAt := strings.Index(text, "📂 <b>Uncategorized</b>")

  if drinksAt < 0 || uncategorizedAt < 0 {
    t.Fatalf("missing category group headers: %q", text)
  }
  if drinksAt > uncategorizedAt {
    t.Fatalf("groups out of first-seen order: %q", text)
  }
  if !strings.Contains(text, "✅ <b>Mystery Box</b> - contact us") {
    t.Fatalf("non-numeric price must render verbatim: %q", text)
  }
}

func TestBuildAllProductsMessageEmptyMenu(t *testing.T) {
  res := Do().SetSnapshot(models.CatalogSnapshot{}).BuildAllProductsMessage()

  if res.Message.TextValue != "📭 No items found in the menu." {
    t.Fatalf("unexpected empty menu text: %q", res.Message.TextValue)
  }
}

func TestBuildAllProductsMessageTruncatesDescriptions(t *testing.T) {
  long := strings.Repeat("a", FlatDescriptionLimit+50)

  snapshot := models.CatalogSnapshot{
    Products: []models.Product{
      {Id: "p-1", Title: "Cola", Description: long},
    },
  }

  res := Do().SetSnapshot(snapshot).BuildAllProductsMessage()

  want := strings.Repeat("a", FlatDescriptionLimit) + "..."

  if !strings.Contains(res.Message.TextValue, want) {
    t.Fatalf("description not truncated to limit: %q", res.Message.TextValue)
  }
  if strings.Contains(res.Message.TextValue, long) {
    t.Fatal("full overlong description leaked into the message")
  }
}

func TestBuildProductDetailMessage(t *testing.T) {
  product := models.Product{
    Id:          "p-1",
    Title:       "Cola",
    Price:       "1.5",
    Category:    &drinks,
    IsAvailable: lo.ToPtr(false),
    Description: "<p>Cold and fizzy, served with ice</p>",
    Image:       "https://res.cloudinary.com/demo/image/upload/v1/cola.jpg",
  }

  res := Do().SetProduct(product).BuildProductDetailMessage()
  text := res.Message.TextValue

  if !strings.Contains(text, "❌ <b>Cola</b>") {
    t.Fatalf("missing unavailable marker: %q", text)
  }
  if !strings.Contains(text, "💵 $1.50") {
    t.Fatalf("missing price line: %q", text)
  }
  if !strings.Contains(text, "❌ Currently unavailable") {
    t.Fatalf("missing availability line: %q", text)
  }
  if !strings.Contains(text, "📝 Cold and fizzy, served with ice") {
    t.Fatalf("markup not stripped from description: %q", text)
  }
  if !strings.Contains(res.Message.PhotoURL, "/upload/w_500,q_auto,f_auto/") {
    t.Fatalf("photo url not downscaled: %q", res.Message.PhotoURL)
  }
}

func TestBuildInquirySummaryMessage(t *testing.T) {
  inquiry := Do().
    SetProduct(menuSnapshot().Products[0]).
    SetRequester(models.Requester{
      ChatId:      42,
      UserId:      42,
      DisplayName: "Jane Doe",
      Username:    "janedoe",
    }).
    BuildInquiry()

  if inquiry.UUID == "" {
    t.Fatal("inquiry must carry a uuid")
  }

  res := Do().SetInquiry(inquiry).BuildInquirySummaryMessage()
  text := res.Message.TextValue

  if !strings.Contains(text, fmt.Sprintf("<code>%s</code>", inquiry.UUID)) {
    t.Fatalf("missing inquiry uuid: %q", text)
  }
  if !strings.Contains(text, "✅ <b>Cola</b> - $1.00") {
    t.Fatalf("missing product line: %q", text)
  }
  if !strings.Contains(text, "👤 Jane Doe (@janedoe)") {
    t.Fatalf("missing requester line: %q", text)
  }
  if !strings.Contains(text, `<a href="tg://user?id=42">`) {
    t.Fatalf("missing customer deep link: %q", text)
  }
}

func TestBuildFetchErrorMessage(t *testing.T) {
  cases := []struct {
    name string
    err  error
    want string
  }{
    {
      name: "rate limited",
      err:  fmt.Errorf("wrap: %w", catalog.ErrRateLimited),
      want: "⏳ Menu server is busy. Please try again in a moment.",
    },
    {
      name: "timeout",
      err:  fmt.Errorf("wrap: %w", catalog.ErrTimeout),
      want: "⌛ Menu server timeout. Please try again.",
    },
    {
      name: "generic",
      err:  errors.New("boom"),
      want: "❌ Failed to fetch menu data. Please try again later.",
    },
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      res := Do().BuildFetchErrorMessage(tc.err)

      if res.Message.TextValue != tc.want {
        t.Fatalf("got %q, want %q", res.Message.TextValue, tc.want)
      }
    })
  }
}
