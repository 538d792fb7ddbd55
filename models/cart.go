package models

import "time"

// CartItem is one line of a cart ledger. At most one line exists per
// productid within a cart; Quantity is never below 1.
type CartItem struct {
	ProductID string  `json:"productid" bson:"productid"`
	Name      string  `json:"name" bson:"name"`
	Brand     string  `json:"brand" bson:"brand"`
	Price     float64 `json:"price" bson:"price"` // unit price, base currency
	Size      string  `json:"size,omitempty" bson:"size,omitempty"`
	Img       string  `json:"img,omitempty" bson:"img,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// WishlistItem is a compact product reference. Wishlists have set
// semantics keyed by productid.
type WishlistItem struct {
	ProductID string    `json:"productid" bson:"productid"`
	Name      string    `json:"name" bson:"name"`
	Brand     string    `json:"brand" bson:"brand"`
	Price     float64   `json:"price" bson:"price"`
	Img       string    `json:"img,omitempty" bson:"img,omitempty"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

// CartTotals holds the checkout figures. All four values carry the same
// currency; conversion multiplies each independently.
type CartTotals struct {
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
	Shipping  float64 `json:"shipping" bson:"shipping"`
	Tax       float64 `json:"tax" bson:"tax"`
	Total     float64 `json:"total" bson:"total"`
	ItemCount int     `json:"itemCount" bson:"itemCount"`
}
