// Package products serves the catalog through a read-through in-memory
// cache. Admin mutations go to MongoDB and emit a product event; the event
// worker reloads the cache, so every process converges without change
// streams. Iteration order of the cached set is not stable across reloads.
package products

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"

	"mavrix/db"
	"mavrix/errs"
	"mavrix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var catalog = struct {
	mu   sync.RWMutex
	byID map[string]models.Product
	list []models.Product
}{byID: make(map[string]models.Product)}

// ReloadCatalog replaces the cache with the full remote product set.
func ReloadCatalog(ctx context.Context) error {
	cursor, err := db.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("reload catalog: %w", errs.ErrPersistenceFailure)
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		return fmt.Errorf("reload catalog: %w", errs.ErrPersistenceFailure)
	}

	byID := make(map[string]models.Product, len(list))
	for _, p := range list {
		byID[p.ProductID] = p
	}

	catalog.mu.Lock()
	catalog.byID = byID
	catalog.list = list
	catalog.mu.Unlock()

	log.Printf("Loaded %d products into catalog cache", len(list))
	return nil
}

// Get returns one product: cache first, then a single remote fetch. A
// product absent from both is NotFound; nothing is ever synthesized.
func Get(ctx context.Context, productID string) (models.Product, error) {
	catalog.mu.RLock()
	p, ok := catalog.byID[productID]
	catalog.mu.RUnlock()
	if ok {
		return p, nil
	}

	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, fmt.Errorf("product %s: %w", productID, errs.ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product: %w", errs.ErrPersistenceFailure)
	}

	catalog.mu.Lock()
	catalog.byID[p.ProductID] = p
	catalog.list = append(catalog.list, p)
	catalog.mu.Unlock()

	return p, nil
}

// All returns a copy of the cached product set.
func All() []models.Product {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	out := make([]models.Product, len(catalog.list))
	copy(out, catalog.list)
	return out
}

// Filter applies the criteria in-memory: AND across criteria, OR within a
// multi-valued one. Zero-valued criteria are ignored.
func Filter(list []models.Product, f models.ProductFilter) []models.Product {
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Brands lists the distinct brands in the cached catalog.
func Brands() []string {
	return distinct(func(p models.Product) string { return p.Brand })
}

// Categories lists the distinct categories in the cached catalog.
func Categories() []string {
	return distinct(func(p models.Product) string { return p.Category })
}

func distinct(key func(models.Product) string) []string {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range catalog.list {
		k := key(p)
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
