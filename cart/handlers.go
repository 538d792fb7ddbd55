package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mavrix/errs"
	"mavrix/models"
	"mavrix/mq"
	"mavrix/products"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
)

// GetCart returns the caller's ledger.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := Load(ctx, userID)
	if err != nil {
		log.Println("GetCart load error:", err)
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// AddToCart merges a product into the ledger. The product snapshot comes
// from the catalog, never from the client payload.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productid"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if payload.ProductID == "" {
		http.Error(w, "Missing product id", http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	if payload.Quantity < 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	product, err := products.Get(ctx, payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Product not found")
		return
	}

	items, err := Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	items = AddItem(items, product, payload.Quantity)
	if err := Save(ctx, userID, items); err != nil {
		log.Println("AddToCart save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to add to cart")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "cart", Method: "updated", EntityID: payload.ProductID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusCreated, items)
}

// UpdateCartItem applies a quantity delta, flooring at 1.
func UpdateCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	items = UpdateQuantity(items, productID, payload.Delta)
	if err := Save(ctx, userID, items); err != nil {
		log.Println("UpdateCartItem save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to update cart")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "cart", Method: "updated", EntityID: productID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// RemoveCartItem deletes a line entirely.
func RemoveCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	items = RemoveItem(items, productID)
	if err := Save(ctx, userID, items); err != nil {
		log.Println("RemoveCartItem save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to update cart")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "cart", Method: "updated", EntityID: productID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// ClearCart empties the ledger.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := Save(ctx, userID, []models.CartItem{}); err != nil {
		log.Println("ClearCart save error:", err)
		utils.RespondWithError(w, errs.Status(err), "Failed to clear cart")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "cart", Method: "updated", UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, []models.CartItem{})
}

// MergeGuestCart folds a device-held guest cart into the account cart.
// Fires once at sign-in. The client keeps its local copy until this call
// succeeds, so a failed persist loses nothing; an empty payload is a no-op.
func MergeGuestCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Items []models.CartItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	for _, it := range payload.Items {
		if it.ProductID == "" || it.Quantity < 1 || it.Price < 0 {
			http.Error(w, "Invalid guest cart item", http.StatusBadRequest)
			return
		}
	}

	items, err := Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	if len(payload.Items) > 0 {
		items = Merge(items, payload.Items)
		if err := Save(ctx, userID, items); err != nil {
			log.Println("MergeGuestCart save error:", err)
			utils.RespondWithError(w, errs.Status(err), "Failed to merge cart")
			return
		}
		mq.Emit(ctx, mq.Event{EntityType: "cart", Method: "updated", UserID: userID})
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GetCartTotals computes checkout figures in the requested currency
// (default: the caller's saved setting, else the base currency).
func GetCartTotals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	code := r.URL.Query().Get("currency")
	if code == "" {
		code = savedCurrency(ctx, userID)
	}

	items, err := Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	totals, err := Totals(items, code)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"currency": code, "totals": totals})
}
