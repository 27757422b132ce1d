package models

import (
  "encoding/json"
  "fmt"

  "github.com/spf13/cast"
)

const UncategorizedName = "Uncategorized"

type Store struct {
  Id          string `json:"_id"`
  Name        string `json:"name"`
  Description string `json:"description"`
  Address     string `json:"address"`
  Phone       string `json:"phone"`
  FacebookURL string `json:"facebookUrl"`
  TelegramURL string `json:"telegramUrl"`
  TiktokURL   string `json:"tiktokUrl"`
}

type Category struct {
  Id   string `json:"_id"`
  Name string `json:"name"`
}

// Price is a display value. The upstream API is loose here and returns
// either a string or a bare number depending on how the item was entered.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
  var value any

  if err := json.Unmarshal(data, &value); err != nil {
    return fmt.Errorf("price unmarshal json: %w", err)
  }
  if value == nil {
    *p = ""
    return nil
  }

  str, err := cast.ToStringE(value)
  if err != nil {
    return fmt.Errorf("cast %v with type: %[1]T to string failed: %w", value, err)
  }
  *p = Price(str)

  return nil
}

type Product struct {
  Id          string    `json:"_id"`
  Title       string    `json:"title"`
  Price       Price     `json:"price"`
  Description string    `json:"description"`
  IsAvailable *bool     `json:"isAvailable"`
  Category    *Category `json:"category"`
  Image       string    `json:"image"`
  ImageURL    string    `json:"imageUrl"`
}

// Available defaults to true: items created before the availability flag
// existed have no field at all.
func (p Product) Available() bool {
  return p.IsAvailable == nil || *p.IsAvailable
}

func (p Product) CategoryName() string {
  if p.Category == nil || p.Category.Name == "" {
    return UncategorizedName
  }
  return p.Category.Name
}

// PhotoURL prefers the hosted asset over an arbitrary external link.
func (p Product) PhotoURL() string {
  if p.Image != "" {
    return p.Image
  }
  return p.ImageURL
}
