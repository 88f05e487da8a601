package entities

import "time"

// ShoppingListItem is a denormalized snapshot of a price/product taken at
// add-time, so later catalog changes never rewrite a user's saved list.
type ShoppingListItem struct {
	ID          string    `json:"id"` // UUID
	UserID      string    `json:"-"`
	ProductID   *int      `json:"product_id,omitempty"`
	StoreID     *int      `json:"store_id,omitempty"`
	ProductName string    `json:"product_name"`
	Brand       *string   `json:"brand,omitempty"`
	Unit        *string   `json:"unit,omitempty"`
	Category    *string   `json:"category,omitempty"`
	StoreName   *string   `json:"store_name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	OnSale      bool      `json:"on_sale"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}
