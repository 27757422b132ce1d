package models

import (
  "fmt"
  "strings"
)

type ActionKind string

const (
  ActionShowProduct    ActionKind = "product"
  ActionShowCategories ActionKind = "categories"
  ActionShowAll        ActionKind = "all"
  ActionRefresh        ActionKind = "refresh"
  ActionContactSales   ActionKind = "sales"
)

// Action is the decoded form of an inline keyboard callback payload.
// Payloads are decoded exactly once at the transport boundary.
type Action struct {
  Kind ActionKind
  Id   string
}

func (a Action) Encode() []byte {
  if a.Id == "" {
    return []byte(a.Kind)
  }
  return []byte(fmt.Sprintf("%s:%s", a.Kind, a.Id))
}

func DecodeAction(data []byte) (Action, error) {
  kind, id, _ := strings.Cut(string(data), ":")

  switch ActionKind(kind) {
  case ActionShowCategories, ActionShowAll, ActionRefresh:
    return Action{Kind: ActionKind(kind)}, nil

  case ActionShowProduct, ActionContactSales:
    if id == "" {
      return Action{}, fmt.Errorf("action %q requires an id", kind)
    }
    return Action{Kind: ActionKind(kind), Id: id}, nil
  }

  return Action{}, fmt.Errorf("unknown action kind: %q", kind)
}
