package orders

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"mavrix/errs"
	"mavrix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Address1: "12 Rose Street",
		City:     "Mumbai",
		State:    "MH",
		Zip:      "400001",
		Phone:    "9876543210",
	}
}

func validItems() []models.CartItem {
	return []models.CartItem{
		{ProductID: "p1", Name: "Noir Essence", Brand: "House", Price: 125, Quantity: 2},
	}
}

func TestCanTransitionForwardPath(t *testing.T) {
	assert.True(t, CanTransition(models.StatusProcessing, models.StatusShipped))
	assert.True(t, CanTransition(models.StatusShipped, models.StatusOutForDelivery))
	assert.True(t, CanTransition(models.StatusOutForDelivery, models.StatusDelivered))
}

func TestCanTransitionCancellation(t *testing.T) {
	assert.True(t, CanTransition(models.StatusProcessing, models.StatusCancelled))
	assert.True(t, CanTransition(models.StatusShipped, models.StatusCancelled))
	assert.False(t, CanTransition(models.StatusOutForDelivery, models.StatusCancelled))
	assert.False(t, CanTransition(models.StatusDelivered, models.StatusCancelled))
}

func TestCanTransitionNoSkipping(t *testing.T) {
	assert.False(t, CanTransition(models.StatusProcessing, models.StatusDelivered))
	assert.False(t, CanTransition(models.StatusProcessing, models.StatusOutForDelivery))
}

func TestCanTransitionNoGoingBack(t *testing.T) {
	assert.False(t, CanTransition(models.StatusShipped, models.StatusProcessing))
	assert.False(t, CanTransition(models.StatusDelivered, models.StatusShipped))
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	all := []string{
		models.StatusProcessing, models.StatusShipped,
		models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled,
	}
	for _, terminal := range []string{models.StatusDelivered, models.StatusCancelled} {
		for _, to := range all {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestCheckTransitionErrors(t *testing.T) {
	err := CheckTransition(models.StatusProcessing, "lost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))

	err = CheckTransition(models.StatusProcessing, models.StatusDelivered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))

	assert.NoError(t, CheckTransition(models.StatusProcessing, models.StatusShipped))
}

func TestTrackingMessage(t *testing.T) {
	assert.Equal(t, "Package has been shipped", TrackingMessage(models.StatusShipped))
	assert.Equal(t, "Order status updated", TrackingMessage("mystery"))
}

func TestTrackingLocation(t *testing.T) {
	assert.Equal(t, "Mumbai, MH", TrackingLocation(validShipping()))
	assert.Equal(t, "Warehouse", TrackingLocation(models.ShippingInfo{}))

	cityOnly := models.ShippingInfo{City: "Pune"}
	assert.Equal(t, "Pune", TrackingLocation(cityOnly))
}

func TestNewOrderNumberFormat(t *testing.T) {
	num := NewOrderNumber(time.Now())
	assert.Regexp(t, regexp.MustCompile(`^MX-[0-9A-Z]+-\d{4}$`), num)
}

func TestNewOrderStartsProcessing(t *testing.T) {
	now := time.Now()
	order, err := NewOrder("u1", "asha@example.com", validItems(), validShipping(), models.CartTotals{}, now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusProcessing, order.Status)
	require.Len(t, order.TrackingHistory, 1)
	assert.Equal(t, "Order is being processed", order.TrackingHistory[0].Status)
	assert.Equal(t, "Warehouse", order.TrackingHistory[0].Location)
	assert.Equal(t, now, order.CreatedAt)
}

func TestNewOrderSnapshotsItems(t *testing.T) {
	items := validItems()
	order, err := NewOrder("u1", "asha@example.com", items, validShipping(), models.CartTotals{}, time.Now())
	require.NoError(t, err)

	items[0].Price = 1
	assert.Equal(t, 125.0, order.Items[0].Price)
}

func TestNewOrderRejectsEmptyCart(t *testing.T) {
	_, err := NewOrder("u1", "asha@example.com", nil, validShipping(), models.CartTotals{}, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestNewOrderRejectsIncompleteShipping(t *testing.T) {
	shipping := validShipping()
	shipping.Zip = ""
	_, err := NewOrder("u1", "asha@example.com", validItems(), shipping, models.CartTotals{}, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestNewOrderRejectsBadLine(t *testing.T) {
	items := validItems()
	items[0].Quantity = 0
	_, err := NewOrder("u1", "asha@example.com", items, validShipping(), models.CartTotals{}, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}
