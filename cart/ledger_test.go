package cart

import (
	"testing"

	"mavrix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64) models.Product {
	return models.Product{ProductID: id, Name: "Perfume " + id, Brand: "House", Price: price}
}

func TestAddItemMergesByProductID(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 1)
	items = AddItem(items, product("p1", 125), 2)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemAppendsNewLine(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 1)
	items = AddItem(items, product("p2", 85), 1)

	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)
}

func TestAddItemFloorsQuantityToOne(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 0)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 2)
	_ = AddItem(items, product("p1", 125), 5)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 2)
	items = UpdateQuantity(items, "p1", -5)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityDecrementAtOneIsNoOp(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 1)
	items = UpdateQuantity(items, "p1", -1)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityUnknownProductUnchanged(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 2)
	out := UpdateQuantity(items, "nope", 3)
	assert.Equal(t, items, out)
}

func TestRemoveItemDeletesLine(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 1)
	items = AddItem(items, product("p2", 85), 1)
	items = RemoveItem(items, "p1")

	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestMergeAddsQuantitiesForSharedLines(t *testing.T) {
	account := AddItem(nil, product("p1", 125), 2)
	guest := AddItem(nil, product("p1", 125), 3)
	guest = AddItem(guest, product("p2", 85), 1)

	merged := Merge(account, guest)

	require.Len(t, merged, 2)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, "p2", merged[1].ProductID)
	assert.Equal(t, 1, merged[1].Quantity)
}

func TestMergeEmptyGuestIsNoOp(t *testing.T) {
	account := AddItem(nil, product("p1", 125), 2)
	merged := Merge(account, nil)
	assert.Equal(t, account, merged)
}

func TestMergeNeverDuplicatesProductIDs(t *testing.T) {
	account := AddItem(nil, product("p1", 125), 1)
	account = AddItem(account, product("p2", 85), 1)
	guest := AddItem(nil, product("p2", 85), 2)
	guest = AddItem(guest, product("p3", 60), 1)

	merged := Merge(account, guest)

	seen := map[string]bool{}
	for _, it := range merged {
		assert.False(t, seen[it.ProductID], "duplicate line for %s", it.ProductID)
		seen[it.ProductID] = true
	}
}

func TestTotalsFlatShippingUnderThreshold(t *testing.T) {
	items := AddItem(nil, product("p1", 100), 1)

	totals, err := Totals(items, "USD")
	require.NoError(t, err)

	assert.InDelta(t, 100.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 15.0, totals.Shipping, 1e-9)
	assert.InDelta(t, 8.0, totals.Tax, 1e-9)
	assert.InDelta(t, 123.0, totals.Total, 1e-9)
	assert.Equal(t, 1, totals.ItemCount)
}

func TestTotalsFreeShippingIsStrictlyOver(t *testing.T) {
	// Exactly at the threshold still pays shipping.
	atThreshold := AddItem(nil, product("p1", 200), 1)
	totals, err := Totals(atThreshold, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, totals.Shipping, 1e-9)

	justOver := AddItem(nil, product("p2", 200.01), 1)
	totals, err = Totals(justOver, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, totals.Shipping, 1e-9)
}

func TestTotalsTwoBottlesFreeShipping(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 2)

	totals, err := Totals(items, "USD")
	require.NoError(t, err)

	assert.InDelta(t, 250.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, totals.Shipping, 1e-9)
	assert.InDelta(t, 20.0, totals.Tax, 1e-9)
	assert.InDelta(t, 270.0, totals.Total, 1e-9)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestTotalsConvertedPerFigure(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 2)

	totals, err := Totals(items, "EUR")
	require.NoError(t, err)

	// Each figure is the base figure times the rate.
	assert.InDelta(t, 250*0.92, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, totals.Shipping, 1e-9)
	assert.InDelta(t, 20*0.92, totals.Tax, 1e-9)
	assert.InDelta(t, 270*0.92, totals.Total, 1e-9)
}

func TestTotalsUnknownCurrency(t *testing.T) {
	items := AddItem(nil, product("p1", 125), 1)
	_, err := Totals(items, "XYZ")
	require.Error(t, err)
}

func TestTotalsEmptyCart(t *testing.T) {
	totals, err := Totals(nil, "USD")
	require.NoError(t, err)

	assert.InDelta(t, 0.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 15.0, totals.Shipping, 1e-9)
	assert.Equal(t, 0, totals.ItemCount)
}
