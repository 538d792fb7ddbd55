package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"time"

	"mavrix/cart"
	"mavrix/currency"
	"mavrix/errs"
	"mavrix/globals"
	"mavrix/models"
	"mavrix/mq"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
)

func isAdmin(r *http.Request) bool {
	roles, ok := r.Context().Value(globals.RoleKey).([]string)
	return ok && slices.Contains(roles, "admin")
}

// CreateOrder is the checkout submission: it snapshots the caller's cart
// into a canonical order record, then clears the cart. Totals are computed
// server-side in the base currency and frozen.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Shipping  models.ShippingInfo `json:"shipping"`
		UserEmail string              `json:"userEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("CreateOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := cart.Load(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve cart")
		return
	}

	totals, err := cart.Totals(items, currency.BaseCode)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute totals")
		return
	}

	email := payload.UserEmail
	if email == "" {
		email = payload.Shipping.Email
	}

	order, err := NewOrder(userID, email, items, payload.Shipping, totals, time.Now())
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), err.Error())
		return
	}

	if err := Insert(ctx, order); err != nil {
		log.Println("CreateOrder insert error:", err)
		utils.RespondWithError(w, errs.Status(err), "Order creation failed")
		return
	}

	// Cart clear is downstream of the committed order; a failure here
	// leaves a stale cart, never a lost order.
	if err := cart.Save(ctx, userID, []models.CartItem{}); err != nil {
		log.Println("CreateOrder cart cleanup error:", err)
	}

	mq.Emit(ctx, mq.Event{EntityType: "order", Method: "created", EntityID: order.OrderNumber, UserID: userID})
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetMyOrders lists the caller's orders from the canonical collection,
// newest first.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := FindByUser(ctx, userID)
	if err != nil {
		log.Println("GetMyOrders error:", err)
		utils.RespondWithError(w, errs.Status(err), "Could not retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder returns one order. Non-admin callers only see their own.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, err := loadOwned(ctx, r, ps.ByName("ordernumber"), userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

func loadOwned(ctx context.Context, r *http.Request, orderNumber, userID string) (models.Order, error) {
	order, err := FindByNumber(ctx, orderNumber)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != userID && !isAdmin(r) {
		// Hide other users' orders entirely.
		return models.Order{}, fmt.Errorf("order %s: %w", orderNumber, errs.ErrNotFound)
	}
	return order, nil
}
