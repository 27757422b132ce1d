package models

import (
  "time"

  "github.com/samber/lo"
)

// CatalogSnapshot is the unit of caching: either all three resources were
// fetched successfully, or the snapshot does not exist at all.
type CatalogSnapshot struct {
  Store      Store      `json:"store"`
  Categories []Category `json:"categories"`
  Products   []Product  `json:"products"`
  FetchedAt  time.Time  `json:"fetched_at"`
}

func (s *CatalogSnapshot) FindCategoryByName(name string) (Category, bool) {
  return lo.Find(s.Categories, func(category Category) bool {
    return category.Name == name
  })
}

func (s *CatalogSnapshot) FindCategoryById(id string) (Category, bool) {
  return lo.Find(s.Categories, func(category Category) bool {
    return category.Id == id
  })
}

func (s *CatalogSnapshot) FindProduct(id string) (Product, bool) {
  return lo.Find(s.Products, func(product Product) bool {
    return product.Id == id
  })
}

func (s *CatalogSnapshot) ProductsInCategory(categoryId string) []Product {
  return lo.Filter(s.Products, func(product Product, _ int) bool {
    return product.Category != nil && product.Category.Id == categoryId
  })
}
