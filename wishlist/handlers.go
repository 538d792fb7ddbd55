package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"mavrix/db"
	"mavrix/errs"
	"mavrix/models"
	"mavrix/mq"
	"mavrix/products"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func load(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var user struct {
		Wishlist []models.WishlistItem `bson:"wishlist"`
	}
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", errs.ErrPersistenceFailure)
	}
	if user.Wishlist == nil {
		return []models.WishlistItem{}, nil
	}
	return user.Wishlist, nil
}

func save(ctx context.Context, userID string, items []models.WishlistItem) error {
	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"wishlist": items, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("save wishlist: %w", errs.ErrPersistenceFailure)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}
	return nil
}

// GetWishlist returns the caller's saved products.
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := load(ctx, userID)
	if err != nil {
		log.Println("GetWishlist load error:", err)
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve wishlist")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

func mutate(w http.ResponseWriter, r *http.Request, apply func([]models.WishlistItem, models.Product) []models.WishlistItem) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Missing product id", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	product, err := products.Get(ctx, payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Product not found")
		return
	}

	items, err := load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve wishlist")
		return
	}

	items = apply(items, product)
	if err := save(ctx, userID, items); err != nil {
		log.Println("wishlist save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to update wishlist")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "wishlist", Method: "updated", EntityID: payload.ProductID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// AddToWishlist saves a product; already-present products are a no-op.
func AddToWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	mutate(w, r, func(items []models.WishlistItem, p models.Product) []models.WishlistItem {
		return Add(items, p, time.Now())
	})
}

// ToggleWishlist adds the product if absent, removes it if present.
func ToggleWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	mutate(w, r, func(items []models.WishlistItem, p models.Product) []models.WishlistItem {
		return Toggle(items, p, time.Now())
	})
}

// RemoveFromWishlist drops the entry for the path product id.
func RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve wishlist")
		return
	}

	items = Remove(items, productID)
	if err := save(ctx, userID, items); err != nil {
		log.Println("RemoveFromWishlist save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to update wishlist")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "wishlist", Method: "updated", EntityID: productID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// ClearWishlist empties the set.
func ClearWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := save(ctx, userID, []models.WishlistItem{}); err != nil {
		log.Println("ClearWishlist save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to clear wishlist")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "wishlist", Method: "updated", UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, []models.WishlistItem{})
}
