package cart

import (
	"context"
	"fmt"
	"time"

	"mavrix/currency"
	"mavrix/db"
	"mavrix/errs"
	"mavrix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Load reads the account's cart field. A missing user is NotFound; an
// absent field is an empty ledger.
func Load(ctx context.Context, userID string) ([]models.CartItem, error) {
	var user struct {
		Cart []models.CartItem `bson:"cart"`
	}
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", errs.ErrPersistenceFailure)
	}
	if user.Cart == nil {
		return []models.CartItem{}, nil
	}
	return user.Cart, nil
}

// savedCurrency returns the account's display currency preference. Falls
// back to the base currency when the user or the setting is missing.
func savedCurrency(ctx context.Context, userID string) string {
	var user struct {
		Settings models.UserSettings `bson:"settings"`
	}
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil || user.Settings.Currency == "" {
		return currency.BaseCode
	}
	return user.Settings.Currency
}

// Save rewrites only the cart field (plus updated_at). Whole-field replace,
// last writer wins across devices; concurrent writes to other fields are
// unaffected.
func Save(ctx context.Context, userID string, items []models.CartItem) error {
	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"cart": items, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", errs.ErrPersistenceFailure)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}
	return nil
}
