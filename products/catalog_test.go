package products

import (
	"testing"

	"mavrix/models"

	"github.com/stretchr/testify/assert"
)

var testList = []models.Product{
	{ProductID: "p1", Name: "Noir Essence", Brand: "Chanel", Category: "men", Price: 125},
	{ProductID: "p2", Name: "Rose Veil", Brand: "Dior", Category: "women", Price: 150},
	{ProductID: "p3", Name: "Citrus Sport", Brand: "Chanel", Category: "men", Price: 85},
	{ProductID: "p4", Name: "Amber Oud", Brand: "Armani", Category: "unisex", Price: 195},
}

func ids(list []models.Product) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ProductID
	}
	return out
}

func TestFilterEmptyCriteriaReturnsAll(t *testing.T) {
	got := Filter(testList, models.ProductFilter{})
	assert.Len(t, got, len(testList))
}

func TestFilterBrandsORWithin(t *testing.T) {
	got := Filter(testList, models.ProductFilter{Brands: []string{"Chanel", "Armani"}})
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(got))
}

func TestFilterANDAcrossCriteria(t *testing.T) {
	got := Filter(testList, models.ProductFilter{
		Brands:     []string{"Chanel"},
		Categories: []string{"men"},
		MinPrice:   100,
	})
	assert.Equal(t, []string{"p1"}, ids(got))
}

func TestFilterPriceBoundsAreInclusive(t *testing.T) {
	got := Filter(testList, models.ProductFilter{MinPrice: 125, MaxPrice: 150})
	assert.Equal(t, []string{"p1", "p2"}, ids(got))
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(testList, models.ProductFilter{Brands: []string{"Gucci"}})
	assert.Empty(t, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(testList, models.ProductFilter{Categories: []string{"men", "unisex"}})
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(got))
}
