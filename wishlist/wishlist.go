// Package wishlist maintains the deduplicated saved-products set for one
// account, keyed by product id.
package wishlist

import (
	"time"

	"mavrix/models"
)

// Add appends a product reference unless it is already present.
func Add(items []models.WishlistItem, product models.Product, now time.Time) []models.WishlistItem {
	if Contains(items, product.ProductID) {
		return items
	}
	out := make([]models.WishlistItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, models.WishlistItem{
		ProductID: product.ProductID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Img:       product.Img,
		AddedAt:   now,
	})
}

// Remove drops the entry for productID if present.
func Remove(items []models.WishlistItem, productID string) []models.WishlistItem {
	out := make([]models.WishlistItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Toggle adds the product if absent, removes it if present.
func Toggle(items []models.WishlistItem, product models.Product, now time.Time) []models.WishlistItem {
	if Contains(items, product.ProductID) {
		return Remove(items, product.ProductID)
	}
	return Add(items, product, now)
}

func Contains(items []models.WishlistItem, productID string) bool {
	for _, it := range items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}
