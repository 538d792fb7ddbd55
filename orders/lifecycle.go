// Package orders owns the order lifecycle: creation from a cart snapshot,
// the forward-only-or-cancel status machine, tracking history and notes.
package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mavrix/errs"
	"mavrix/models"
	"mavrix/utils"
)

// transitions is the allowed status graph. Delivered and cancelled are
// terminal; everything else moves forward or cancels.
var transitions = map[string][]string{
	models.StatusProcessing:     {models.StatusShipped, models.StatusCancelled},
	models.StatusShipped:        {models.StatusOutForDelivery, models.StatusCancelled},
	models.StatusOutForDelivery: {models.StatusDelivered},
	models.StatusDelivered:      {},
	models.StatusCancelled:      {},
}

var trackingMessages = map[string]string{
	models.StatusProcessing:     "Order is being processed",
	models.StatusShipped:        "Package has been shipped",
	models.StatusOutForDelivery: "Package is out for delivery",
	models.StatusDelivered:      "Package delivered successfully",
}

// CanTransition reports whether from → to is an allowed status change.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition validates a status change, rejecting unknown target
// statuses and moves outside the graph.
func CheckTransition(from, to string) error {
	if _, known := transitions[to]; !known {
		return fmt.Errorf("unknown status %q: %w", to, errs.ErrValidation)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%s -> %s: %w", from, to, errs.ErrInvalidTransition)
	}
	return nil
}

// TrackingMessage returns the canonical human-readable text for a status.
func TrackingMessage(status string) string {
	if msg, ok := trackingMessages[status]; ok {
		return msg
	}
	return "Order status updated"
}

// TrackingLocation derives the tracking entry location from the shipping
// address, defaulting to the warehouse.
func TrackingLocation(shipping models.ShippingInfo) string {
	if shipping.City != "" {
		if shipping.State != "" {
			return shipping.City + ", " + shipping.State
		}
		return shipping.City
	}
	return "Warehouse"
}

// NewOrderNumber builds a collision-resistant order number: base36 millis
// plus a random digit suffix. Uniqueness is not delegated to the storage
// layer alone.
func NewOrderNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return "MX-" + ts + "-" + utils.GenerateRandomDigitString(4)
}

// NewOrder snapshots a cart into an immutable order record with status
// processing and an initial warehouse tracking entry. The items slice is
// copied; later catalog changes cannot reach a placed order.
func NewOrder(userID, userEmail string, items []models.CartItem, shipping models.ShippingInfo, totals models.CartTotals, now time.Time) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("cart is empty: %w", errs.ErrValidation)
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 || it.Price < 0 {
			return models.Order{}, fmt.Errorf("bad cart line %q: %w", it.ProductID, errs.ErrValidation)
		}
	}
	if shipping.FullName == "" || shipping.Email == "" || shipping.Address1 == "" ||
		shipping.City == "" || shipping.State == "" || shipping.Zip == "" || shipping.Phone == "" {
		return models.Order{}, fmt.Errorf("incomplete shipping info: %w", errs.ErrValidation)
	}

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	return models.Order{
		OrderNumber: NewOrderNumber(now),
		UserID:      userID,
		UserEmail:   userEmail,
		Items:       snapshot,
		Shipping:    shipping,
		Totals:      totals,
		Status:      models.StatusProcessing,
		TrackingHistory: []models.TrackingEntry{{
			Status:   TrackingMessage(models.StatusProcessing),
			Location: "Warehouse",
			Date:     now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
