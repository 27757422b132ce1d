package models

import "time"

// Requester identifies the user behind a sales inquiry.
type Requester struct {
  ChatId      int64  `json:"chat_id"`
  UserId      int64  `json:"user_id"`
  DisplayName string `json:"display_name"`
  Username    string `json:"username"`
}

// Inquiry is a best-effort sales notification. It is composed, sent once
// and logged; there is no queue and no delivery guarantee.
type Inquiry struct {
  UUID      string    `json:"uuid"`
  Product   Product   `json:"product"`
  Requester Requester `json:"requester"`
  CreatedAt time.Time `json:"created_at"`
}
