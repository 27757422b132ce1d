package models

type NavKind string

const (
  NavTopLevel      NavKind = "top_level"
  NavCategory      NavKind = "category_selected"
  NavProductDetail NavKind = "product_detail"
)

// Navigation is the per-action view state. It is derived from each incoming
// update and never stored: every view is re-rendered from the full snapshot.
type Navigation struct {
  Kind       NavKind
  CategoryId string
  ProductId  string
}

func NavigateTopLevel() Navigation {
  return Navigation{Kind: NavTopLevel}
}

func NavigateCategory(categoryId string) Navigation {
  return Navigation{Kind: NavCategory, CategoryId: categoryId}
}

func NavigateProduct(productId string) Navigation {
  return Navigation{Kind: NavProductDetail, ProductId: productId}
}
