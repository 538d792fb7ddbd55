package wishlist

import (
	"testing"
	"time"

	"mavrix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func product(id string) models.Product {
	return models.Product{ProductID: id, Name: "Scent " + id, Brand: "House", Price: 99}
}

func TestAddIsIdempotent(t *testing.T) {
	items := Add(nil, product("p1"), now)
	items = Add(items, product("p1"), now.Add(time.Hour))

	require.Len(t, items, 1)
	assert.Equal(t, now, items[0].AddedAt)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	items := Add(nil, product("p1"), now)
	items = Add(items, product("p2"), now)
	items = Add(items, product("p3"), now)

	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p3", items[2].ProductID)
}

func TestRemove(t *testing.T) {
	items := Add(nil, product("p1"), now)
	items = Add(items, product("p2"), now)

	items = Remove(items, "p1")
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	items = Remove(items, "missing")
	assert.Len(t, items, 1)
}

func TestToggleRoundTrip(t *testing.T) {
	items := Toggle(nil, product("p1"), now)
	require.Len(t, items, 1)
	assert.True(t, Contains(items, "p1"))

	items = Toggle(items, product("p1"), now)
	assert.Empty(t, items)
	assert.False(t, Contains(items, "p1"))
}
