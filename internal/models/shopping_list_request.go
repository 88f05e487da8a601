package models

// AddListItemRequest represents the request body for adding a shopping-list
// item. Everything except product_name is an optional snapshot field copied
// from the price listing the user clicked.
type AddListItemRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	ProductID   *int     `json:"product_id,omitempty"`
	StoreID     *int     `json:"store_id,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Category    *string  `json:"category,omitempty"`
	StoreName   *string  `json:"store_name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	OnSale      bool     `json:"on_sale,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"` // defaults to 1
}

// UpdateQuantityRequest represents the request body for changing an item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
