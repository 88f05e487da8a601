package entities

// PriceEntry is one row of the prices ⋈ stores ⋈ products join returned by
// the /prices listing.
type PriceEntry struct {
	Store    string  `json:"store"`
	Product  string  `json:"product"`
	Brand    *string `json:"brand,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Category *string `json:"category,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Price    float64 `json:"price"`
	OnSale   bool    `json:"on_sale"`
}
