package models

import "time"

// UserSettings holds per-user preferences. Currency defaults to INR.
type UserSettings struct {
	Currency string `json:"currency" bson:"currency"`
}

// User is the account document. Cart, wishlist and settings are embedded
// and rewritten field-by-field; the embedded Orders list is a denormalized
// convenience copy of the canonical orders collection.
type User struct {
	UserID        string         `json:"userid" bson:"userid"`
	Username      string         `json:"username" bson:"username"`
	Email         string         `json:"email" bson:"email"`
	Password      string         `json:"password,omitempty" bson:"-"`
	PasswordHash  string         `json:"-" bson:"password_hash"`
	Role          []string       `json:"role" bson:"role"`
	Name          string         `json:"name,omitempty" bson:"name,omitempty"`
	Avatar        string         `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Cart          []CartItem     `json:"cart" bson:"cart"`
	Wishlist      []WishlistItem `json:"wishlist" bson:"wishlist"`
	Orders        []Order        `json:"orders,omitempty" bson:"orders,omitempty"`
	Settings      UserSettings   `json:"settings" bson:"settings"`
	RefreshToken  string         `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time      `json:"-" bson:"refresh_expiry,omitempty"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time      `json:"last_login" bson:"last_login"`
}
