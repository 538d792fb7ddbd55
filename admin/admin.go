package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mavrix/db"
	"mavrix/errs"
	"mavrix/middleware"
	"mavrix/models"
	"mavrix/mq"
	"mavrix/orders"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllOrders lists every order, newest first. Optional ?status= filter.
func GetAllOrders(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := db.OrderCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch orders")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to decode orders")
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// UpdateOrderStatus advances an order through its lifecycle. Moves outside
// the allowed graph come back as 409 without touching the record.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	orderNumber := ps.ByName("ordernumber")
	order, err := orders.SetStatus(ctx, orderNumber, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTransition):
			utils.RespondWithError(w, errs.Status(err), "Invalid status transition")
		case errors.Is(err, errs.ErrNotFound):
			utils.RespondWithError(w, errs.Status(err), "Order not found")
		case errors.Is(err, errs.ErrValidation):
			utils.RespondWithError(w, errs.Status(err), "Unknown order status")
		default:
			utils.RespondWithError(w, errs.Status(err), "Failed to update order")
		}
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "order", Method: "updated", EntityID: order.OrderNumber, UserID: order.UserID})
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// AddOrderNote attaches an internal note to an order, attributed to the
// acting admin.
func AddOrderNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	author := "admin"
	if claims, err := middleware.ValidateJWT(r.Header.Get("Authorization")); err == nil && claims.Username != "" {
		author = claims.Username
	}

	orderNumber := ps.ByName("ordernumber")
	note, err := orders.AddNote(ctx, orderNumber, payload.Text, author)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			utils.RespondWithError(w, errs.Status(err), "Note text is required")
		case errors.Is(err, errs.ErrNotFound):
			utils.RespondWithError(w, errs.Status(err), "Order not found")
		default:
			utils.RespondWithError(w, errs.Status(err), "Failed to add note")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, note)
}

// UpdateUserRole replaces a user's role set.
func UpdateUserRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Role []string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.Role) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	for _, role := range payload.Role {
		if role != "user" && role != "admin" {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown role: "+role)
			return
		}
	}

	userID := ps.ByName("userid")
	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"role": payload.Role, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to update role")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "user", Method: "updated", EntityID: userID, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"userid": userID, "role": payload.Role})
}

// ListUsers returns a trimmed view of all accounts.
func ListUsers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projection := bson.M{"userid": 1, "username": 1, "email": 1, "role": 1, "created_at": 1}
	cursor, err := db.UserCollection.Find(ctx, bson.M{},
		options.Find().SetProjection(projection).SetSort(bson.M{"created_at": -1}))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch users")
		return
	}
	defer cursor.Close(ctx)

	var users []bson.M
	if err := cursor.All(ctx, &users); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to decode users")
		return
	}
	if users == nil {
		users = []bson.M{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetStats aggregates order counts and revenue grouped by status, plus
// top-line catalog and account counts.
func GetStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totals.total"},
		}},
	}
	cursor, err := db.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to aggregate orders")
		return
	}
	defer cursor.Close(ctx)

	type bucket struct {
		Status  string  `bson:"_id"`
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	var buckets []bucket
	if err := cursor.All(ctx, &buckets); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to decode stats")
		return
	}

	byStatus := map[string]utils.M{}
	var totalOrders int64
	var totalRevenue float64
	for _, b := range buckets {
		byStatus[b.Status] = utils.M{"count": b.Count, "revenue": b.Revenue}
		totalOrders += b.Count
		if b.Status != models.StatusCancelled {
			totalRevenue += b.Revenue
		}
	}

	userCount, _ := db.UserCollection.CountDocuments(ctx, bson.M{})
	productCount, _ := db.ProductCollection.CountDocuments(ctx, bson.M{})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orders":   utils.M{"total": totalOrders, "byStatus": byStatus},
		"revenue":  totalRevenue,
		"users":    userCount,
		"products": productCount,
	})
}
