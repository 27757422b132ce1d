package telegram

import (
  "testing"

  tgmodels "github.com/go-telegram/bot/models"
  "github.com/ysgstore/menubot/internal/models"
)

func menuKeyboardSnapshot() *models.CatalogSnapshot {
  return &models.CatalogSnapshot{
    Categories: []models.Category{
      {Id: "cat-1", Name: "Drinks"},
      {Id: "cat-2", Name: "Snacks"},
    },
  }
}

func textUpdate(text string) *tgmodels.Update {
  return &tgmodels.Update{
    Message: &tgmodels.Message{
      Text: text,
      Chat: tgmodels.Chat{ID: 42},
    },
  }
}

func TestMatchUnknownText(t *testing.T) {
  cases := []struct {
    name string
    text string
    want bool
  }{
    {name: "free text matches", text: "hello there", want: true},
    {name: "known command does not match", text: "/start", want: false},
    {name: "menu command does not match", text: "/menu", want: false},
    {name: "help command does not match", text: "/help", want: false},
    {name: "unknown command matches", text: "/whatever", want: true},
    {name: "category button does not match", text: categoryButtonPrefix + "Drinks", want: false},
    {name: "all items button does not match", text: allItemsButton, want: false},
    {name: "refresh button does not match", text: refreshButton, want: false},
    {name: "empty text does not match", text: "", want: false},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if got := matchUnknownText(textUpdate(tc.text)); got != tc.want {
        t.Fatalf("matchUnknownText(%q) = %v, want %v", tc.text, got, tc.want)
      }
    })
  }
}

func TestMatchUnknownTextNilSafe(t *testing.T) {
  if matchUnknownText(nil) {
    t.Fatal("nil update must not match")
  }
  if matchUnknownText(&tgmodels.Update{}) {
    t.Fatal("update without a message must not match")
  }
}

func TestMakeMenuKeyboardLayout(t *testing.T) {
  snapshot := menuKeyboardSnapshot()

  keyboard := makeMenuKeyboard(snapshot)

  if !keyboard.IsPersistent || !keyboard.ResizeKeyboard {
    t.Fatal("menu keyboard must be persistent and resizable")
  }

  rows := keyboard.Keyboard

  if len(rows) != 4 {
    t.Fatalf("expected 4 rows, got %d", len(rows))
  }
  if rows[0][0].Text != allItemsButton {
    t.Fatalf("first row must be the all items button, got %q", rows[0][0].Text)
  }
  if rows[1][0].Text != categoryButtonPrefix+"Drinks" {
    t.Fatalf("unexpected category row: %q", rows[1][0].Text)
  }
  if rows[2][0].Text != categoryButtonPrefix+"Snacks" {
    t.Fatalf("unexpected category row: %q", rows[2][0].Text)
  }
  if rows[3][0].Text != refreshButton {
    t.Fatalf("last row must be the refresh button, got %q", rows[3][0].Text)
  }
}
