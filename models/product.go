package models

import "time"

// Product is a catalog entry. Prices are stored in the base currency (USD);
// display conversion happens in the currency package.
type Product struct {
	ProductID   string    `json:"productid" bson:"productid"`
	Name        string    `json:"name" bson:"name"`
	Brand       string    `json:"brand" bson:"brand"`
	Price       float64   `json:"price" bson:"price"`
	Size        string    `json:"size" bson:"size"`
	Category    string    `json:"category" bson:"category"`
	Rating      float64   `json:"rating" bson:"rating"`
	Reviews     int       `json:"reviews" bson:"reviews"`
	Img         string    `json:"img" bson:"img"`
	Description string    `json:"description" bson:"description"`
	Notes       []string  `json:"notes" bson:"notes"`
	InStock     bool      `json:"inStock" bson:"inStock"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductFilter holds catalog filter criteria. All provided criteria must
// match (AND); within a multi-valued criterion any value matches (OR).
type ProductFilter struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	MinPrice   float64  `json:"minPrice"`
	MaxPrice   float64  `json:"maxPrice"`
}
