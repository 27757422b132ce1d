package models

import (
  "bytes"
  "testing"
)

func TestActionEncodeDecode(t *testing.T) {
  cases := []struct {
    name   string
    action Action
  }{
    {name: "product with id", action: Action{Kind: ActionShowProduct, Id: "p-1"}},
    {name: "sales with id", action: Action{Kind: ActionContactSales, Id: "p-2"}},
    {name: "categories", action: Action{Kind: ActionShowCategories}},
    {name: "all items", action: Action{Kind: ActionShowAll}},
    {name: "refresh", action: Action{Kind: ActionRefresh}},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      decoded, err := DecodeAction(tc.action.Encode())
      if err != nil {
        t.Fatalf("DecodeAction: %v", err)
      }
      if decoded != tc.action {
        t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, tc.action)
      }
    })
  }
}

func TestActionEncodePayloadFitsCallbackData(t *testing.T) {
  // Telegram caps callback data at 64 bytes. Mongo object ids are 24 hex
  // chars, so the longest payload stays well under the cap.
  payload := Action{Kind: ActionShowProduct, Id: "66b1f0a2c4d5e6f7a8b9c0d1"}.Encode()

  if len(payload) > 64 {
    t.Fatalf("payload exceeds callback data cap: %d bytes", len(payload))
  }
  if !bytes.Equal(payload, []byte("product:66b1f0a2c4d5e6f7a8b9c0d1")) {
    t.Fatalf("unexpected payload: %q", payload)
  }
}

func TestDecodeActionRejectsUnknownKind(t *testing.T) {
  if _, err := DecodeAction([]byte("drop_tables:1")); err == nil {
    t.Fatal("expected an error for an unknown action kind")
  }
}

func TestDecodeActionRequiresIdForProductActions(t *testing.T) {
  for _, payload := range []string{"product", "product:", "sales", "sales:"} {
    if _, err := DecodeAction([]byte(payload)); err == nil {
      t.Fatalf("expected an error for payload %q", payload)
    }
  }
}
