package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutCart(t *testing.T) *Cart {
	t.Helper()
	var cart Cart
	cart.AddItem(sampleProduct(10, 1000), 1)
	return &cart
}

func checkoutInfo() OrderInfo {
	return OrderInfo{
		CustomerName:   "Amine B.",
		BillingAddress: "12 Rue Didouche Mourad",
		Wilaya:         "Alger",
		Commune:        "Alger Centre",
		PhoneNumber:    "0550123456",
		ShippingMethod: Domicile,
		ShippingCost:   400,
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Now()
	order, err := NewOrder(checkoutCart(t), checkoutInfo(), "track-123", now)
	require.NoError(t, err)

	assert.Equal(t, 1400.0, order.TotalPrice, "subtotal plus shipping")
	assert.Equal(t, StatusPendingApproval, order.Status)
	assert.Equal(t, "track-123", order.TrackingCode)

	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, StatusPendingApproval, order.StatusHistory[0].Status)
	assert.Equal(t, "Order created.", order.StatusHistory[0].Notes)
	assert.NoError(t, order.CheckHistory())
}

func TestNewOrderRejectsEmptyCart(t *testing.T) {
	var empty Cart
	_, err := NewOrder(&empty, checkoutInfo(), "track-123", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = NewOrder(nil, checkoutInfo(), "track-123", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewOrderRejectsMissingFields(t *testing.T) {
	info := checkoutInfo()
	info.PhoneNumber = "   "
	_, err := NewOrder(checkoutCart(t), info, "track-123", time.Now())
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestNewOrderRejectsMissingMethod(t *testing.T) {
	info := checkoutInfo()
	info.ShippingMethod = ""
	_, err := NewOrder(checkoutCart(t), info, "track-123", time.Now())
	assert.ErrorIs(t, err, ErrNoDeliveryMthd)
}

func TestApplyStatusAppendsHistory(t *testing.T) {
	now := time.Now()
	order, err := NewOrder(checkoutCart(t), checkoutInfo(), "track-123", now)
	require.NoError(t, err)

	require.NoError(t, order.ApplyStatus(StatusProcessing, "Confirmed by phone", now.Add(time.Hour)))
	require.NoError(t, order.ApplyStatus(StatusDelivered, "", now.Add(2*time.Hour)))

	assert.Equal(t, StatusDelivered, order.Status)
	require.Len(t, order.StatusHistory, 3)
	assert.Equal(t, "Confirmed by phone", order.StatusHistory[1].Notes)
	assert.Equal(t, "Status changed to Delivered by Admin.", order.StatusHistory[2].Notes)
	assert.NoError(t, order.CheckHistory())
}

func TestApplyStatusAllowsAnyTransition(t *testing.T) {
	now := time.Now()
	order, err := NewOrder(checkoutCart(t), checkoutInfo(), "track-123", now)
	require.NoError(t, err)

	// Manual overrides can move backwards or jump forward.
	require.NoError(t, order.ApplyStatus(StatusDelivered, "", now.Add(time.Hour)))
	require.NoError(t, order.ApplyStatus(StatusPendingApproval, "Delivered by mistake", now.Add(2*time.Hour)))

	assert.Equal(t, StatusPendingApproval, order.Status)
	assert.NoError(t, order.CheckHistory())
}

func TestApplyStatusRejectsUnknownStatus(t *testing.T) {
	order, err := NewOrder(checkoutCart(t), checkoutInfo(), "track-123", time.Now())
	require.NoError(t, err)

	err = order.ApplyStatus("Lost In Transit", "", time.Now())
	assert.ErrorIs(t, err, ErrUnknownStatus)
	require.Len(t, order.StatusHistory, 1)
}

func TestCheckHistoryDetectsMismatch(t *testing.T) {
	now := time.Now()
	order, err := NewOrder(checkoutCart(t), checkoutInfo(), "track-123", now)
	require.NoError(t, err)

	order.Status = StatusShipped // drift the status away from the history
	assert.Error(t, order.CheckHistory())

	order.Status = StatusPendingApproval
	order.StatusHistory = append(order.StatusHistory, OrderStatusUpdate{
		Status:    StatusPendingApproval,
		Timestamp: now.Add(-time.Hour),
	})
	assert.Error(t, order.CheckHistory(), "timestamps must not go backwards")
}
