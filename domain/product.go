package domain

type ProductMetadata struct {
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
}

// ProductCatalog maps a product id to its metadata.
type ProductCatalog map[string]ProductMetadata

// NewProductCatalog de-duplicates products from the transaction table.
// The first transaction seen for a product decides its category.
func NewProductCatalog(transactions []Transaction) ProductCatalog {
	catalog := make(ProductCatalog)
	for _, t := range transactions {
		if t.ProductID == "" {
			continue
		}
		if _, ok := catalog[t.ProductID]; ok {
			continue
		}
		catalog[t.ProductID] = ProductMetadata{
			ProductID: t.ProductID,
			Category:  t.Category,
		}
	}
	return catalog
}

type Recommendation struct {
	ProductID string  `json:"product_id"`
	Category  string  `json:"category"`
	Score     float64 `json:"score"`
}
