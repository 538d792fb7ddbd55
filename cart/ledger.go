// Package cart implements the cart ledger: the keyed collection of line
// items for one account, with quantity merging and checkout totals.
package cart

import (
	"mavrix/currency"
	"mavrix/models"
)

const (
	freeShippingOver = 200.0 // strictly greater than, in base currency
	flatShipping     = 15.0
	taxRate          = 0.08
)

// AddItem merges product into items: an existing line for the same product
// gains qty, otherwise a new line is appended. qty must be >= 1.
func AddItem(items []models.CartItem, product models.Product, qty int) []models.CartItem {
	if qty < 1 {
		qty = 1
	}
	for i := range items {
		if items[i].ProductID == product.ProductID {
			out := make([]models.CartItem, len(items))
			copy(out, items)
			out[i].Quantity += qty
			return out
		}
	}
	out := make([]models.CartItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, models.CartItem{
		ProductID: product.ProductID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Size:      product.Size,
		Img:       product.Img,
		Quantity:  qty,
	})
}

// UpdateQuantity applies delta to the line for productID, flooring at 1.
// Decrementing a quantity-1 line is a no-op; lines are only removed via
// RemoveItem. Unknown product ids leave the ledger unchanged.
func UpdateQuantity(items []models.CartItem, productID string, delta int) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = max(1, out[i].Quantity+delta)
			break
		}
	}
	return out
}

// RemoveItem deletes the line for productID entirely.
func RemoveItem(items []models.CartItem, productID string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Merge folds a guest-held cart into an account cart: quantities add for
// shared product ids, unseen lines append in guest order. An empty guest
// cart returns the account cart unchanged.
func Merge(account, guest []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(account))
	copy(out, account)
	for _, g := range guest {
		merged := false
		for i := range out {
			if out[i].ProductID == g.ProductID {
				out[i].Quantity += g.Quantity
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, g)
		}
	}
	return out
}

// Totals computes checkout figures in the requested display currency.
// Subtotal, shipping and tax are computed in the base currency first, then
// each figure is converted independently; rates are linear so the order
// does not change the result, but it must stay consistent everywhere.
func Totals(items []models.CartItem, currencyCode string) (models.CartTotals, error) {
	rate, err := currency.Rate(currencyCode)
	if err != nil {
		return models.CartTotals{}, err
	}

	var subtotal float64
	var count int
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		count += it.Quantity
	}

	shipping := flatShipping
	if subtotal > freeShippingOver {
		shipping = 0
	}
	tax := subtotal * taxRate

	return models.CartTotals{
		Subtotal:  subtotal * rate,
		Shipping:  shipping * rate,
		Tax:       tax * rate,
		Total:     (subtotal + shipping + tax) * rate,
		ItemCount: count,
	}, nil
}
