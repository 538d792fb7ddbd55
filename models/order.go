package models

import "time"

// Order statuses. Transitions are validated in the orders package.
const (
	StatusProcessing     = "processing"
	StatusShipped        = "shipped"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// ShippingInfo is the checkout shipping form.
type ShippingInfo struct {
	FullName string `json:"fullName" bson:"fullName"`
	Email    string `json:"email" bson:"email"`
	Address1 string `json:"address1" bson:"address1"`
	Address2 string `json:"address2,omitempty" bson:"address2,omitempty"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Zip      string `json:"zip" bson:"zip"`
	Phone    string `json:"phone" bson:"phone"`
}

// TrackingEntry is one append-only tracking-history record.
type TrackingEntry struct {
	Status   string    `json:"status" bson:"status"`
	Location string    `json:"location" bson:"location"`
	Date     time.Time `json:"date" bson:"date"`
}

// OrderNote is an admin note on an order.
type OrderNote struct {
	Text string    `json:"text" bson:"text"`
	By   string    `json:"by" bson:"by"`
	Date time.Time `json:"date" bson:"date"`
}

// Order is the canonical order record. Items and Totals are frozen at
// checkout; only status, tracking history, notes and updatedAt change
// afterwards.
type Order struct {
	OrderNumber     string          `json:"orderNumber" bson:"orderNumber"`
	UserID          string          `json:"userId" bson:"userId"`
	UserEmail       string          `json:"userEmail" bson:"userEmail"`
	Items           []CartItem      `json:"items" bson:"items"`
	Shipping        ShippingInfo    `json:"shipping" bson:"shipping"`
	Totals          CartTotals      `json:"totals" bson:"totals"`
	Status          string          `json:"status" bson:"status"`
	TrackingHistory []TrackingEntry `json:"trackingHistory" bson:"trackingHistory"`
	Notes           []OrderNote     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}
