package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"mavrix/db"
	"mavrix/errs"
	"mavrix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByNumber loads one canonical order record.
func FindByNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderNumber": orderNumber}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, fmt.Errorf("order %s: %w", orderNumber, errs.ErrNotFound)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("find order: %w", errs.ErrPersistenceFailure)
	}
	return order, nil
}

// FindByUser lists a user's canonical orders, newest first.
func FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", errs.ErrPersistenceFailure)
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("find orders: %w", errs.ErrPersistenceFailure)
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

// Insert writes the canonical record, then appends the denormalized copy
// onto the owning user document. The second write is best-effort: the
// canonical record is the source of truth and the embedded list can always
// be rebuilt from it, so a failure there is logged, not fatal.
func Insert(ctx context.Context, order models.Order) error {
	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", errs.ErrPersistenceFailure)
	}

	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": order.UserID},
		bson.M{
			"$push": bson.M{"orders": order},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		log.Printf("order %s: denormalized user copy failed: %v", order.OrderNumber, err)
	}

	return nil
}

// SetStatus validates and applies a status transition, appending the
// derived tracking entry. Returns the updated order.
func SetStatus(ctx context.Context, orderNumber, newStatus string) (models.Order, error) {
	order, err := FindByNumber(ctx, orderNumber)
	if err != nil {
		return models.Order{}, err
	}

	if err := CheckTransition(order.Status, newStatus); err != nil {
		return models.Order{}, err
	}

	now := time.Now()
	entry := models.TrackingEntry{
		Status:   TrackingMessage(newStatus),
		Location: TrackingLocation(order.Shipping),
		Date:     now,
	}

	_, err = db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderNumber": orderNumber},
		bson.M{
			"$set":  bson.M{"status": newStatus, "updatedAt": now},
			"$push": bson.M{"trackingHistory": entry},
		},
	)
	if err != nil {
		return models.Order{}, fmt.Errorf("update order status: %w", errs.ErrPersistenceFailure)
	}

	order.Status = newStatus
	order.UpdatedAt = now
	order.TrackingHistory = append(order.TrackingHistory, entry)
	return order, nil
}

// AddNote appends an admin note. Notes never affect status.
func AddNote(ctx context.Context, orderNumber, text, author string) (models.OrderNote, error) {
	if text == "" {
		return models.OrderNote{}, fmt.Errorf("empty note: %w", errs.ErrValidation)
	}

	note := models.OrderNote{Text: text, By: author, Date: time.Now()}

	res, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderNumber": orderNumber},
		bson.M{"$push": bson.M{"notes": note}},
	)
	if err != nil {
		return models.OrderNote{}, fmt.Errorf("add note: %w", errs.ErrPersistenceFailure)
	}
	if res.MatchedCount == 0 {
		return models.OrderNote{}, fmt.Errorf("order %s: %w", orderNumber, errs.ErrNotFound)
	}
	return note, nil
}
