package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mavrix/db"
	"mavrix/errs"
	"mavrix/models"
	"mavrix/mq"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func parseFilter(r *http.Request) models.ProductFilter {
	var f models.ProductFilter
	q := r.URL.Query()

	if v := q.Get("brands"); v != "" {
		f.Brands = strings.Split(v, ",")
	}
	if v := q.Get("categories"); v != "" {
		f.Categories = strings.Split(v, ",")
	}
	if v := q.Get("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = n
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = n
		}
	}
	return f
}

// GetProducts lists the catalog, optionally filtered by brands, categories
// and price bounds.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list := Filter(All(), parseFilter(r))
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetProduct returns a single catalog entry.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := Get(ctx, ps.ByName("productid"))
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func GetBrands(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Brands())
}

func GetCategories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}

func validateProduct(p *models.Product) string {
	if p.Name == "" || p.Brand == "" {
		return "Name and brand are required"
	}
	if p.Price < 0 {
		return "Price must not be negative"
	}
	if p.Rating < 0 || p.Rating > 5 {
		return "Rating must be between 0 and 5"
	}
	return ""
}

// CreateProduct adds a catalog entry. Admin only.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Println("CreateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if msg := validateProduct(&product); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if product.ProductID == "" {
		product.ProductID = "p" + utils.GenerateRandomString(13)
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "product", Method: "created", EntityID: product.ProductID})
	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// EditProduct updates a catalog entry. Admin only.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if msg := validateProduct(&product); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	product.ProductID = productID
	product.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"brand":       product.Brand,
		"price":       product.Price,
		"size":        product.Size,
		"category":    product.Category,
		"rating":      product.Rating,
		"reviews":     product.Reviews,
		"img":         product.Img,
		"description": product.Description,
		"notes":       product.Notes,
		"inStock":     product.InStock,
		"updatedAt":   product.UpdatedAt,
	}}

	res, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": productID}, update)
	if err != nil {
		log.Println("EditProduct UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "product", Method: "updated", EntityID: productID})
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a catalog entry. Admin only.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": productID})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	mq.Emit(ctx, mq.Event{EntityType: "product", Method: "deleted", EntityID: productID})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
