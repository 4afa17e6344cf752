package models

// ProductFilter is a transient query descriptor built per request. Unset
// criteria impose no constraint; set criteria combine with logical AND.
type ProductFilter struct {
	Category string   `json:"category"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	// InStockOnly is declared in the data model but not evaluated anywhere:
	// the catalog has no stock concept yet.
	InStockOnly bool `json:"in_stock"`
}

// ProductListing is the view data for one page of the storefront catalog.
type ProductListing struct {
	Products        []Product `json:"products"`
	Categories      []string  `json:"categories"`
	CurrentCategory string    `json:"current_category"`
	CurrentPage     int       `json:"current_page"`
	TotalItems      int64     `json:"total_items"`
	PageSize        int       `json:"page_size"`
}
