package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mavrix/currency"
	"mavrix/db"
	"mavrix/errs"
	"mavrix/models"
	"mavrix/mq"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func defaultSettings() models.UserSettings {
	return models.UserSettings{Currency: "INR"}
}

// GetSettings returns the user's settings, initializing defaults if missing.
func GetSettings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch settings")
		return
	}

	settings := user.Settings
	if settings.Currency == "" {
		settings = defaultSettings()
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"settings":   settings,
		"currencies": currency.Codes(),
	})
}

// UpdateCurrency sets the user's display currency. Unknown codes are rejected
// before anything is written.
func UpdateCurrency(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !currency.IsSupported(payload.Currency) {
		utils.RespondWithError(w, errs.Status(errs.ErrValidation), "Unsupported currency code")
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"settings.currency": payload.Currency, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, errs.Status(errs.ErrPersistenceFailure), "Failed to update currency")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "settings", Method: "updated", EntityID: payload.Currency, UserID: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"currency": payload.Currency})
}
