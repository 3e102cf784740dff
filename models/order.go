package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the current state of an order.
type OrderStatus string

const (
	StatusPendingApproval OrderStatus = "Pending Approval"
	StatusProcessing      OrderStatus = "Processing"
	StatusPreparing       OrderStatus = "Preparing for Shipment"
	StatusShipped         OrderStatus = "Shipped"
	StatusDelivered       OrderStatus = "Delivered"
	StatusCancelled       OrderStatus = "Cancelled"
	StatusReturned        OrderStatus = "Returned"
)

// OrderStatuses lists every valid status, in display order.
var OrderStatuses = []OrderStatus{
	StatusPendingApproval,
	StatusProcessing,
	StatusPreparing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ShippingMethod is one of the two fulfillment options.
type ShippingMethod string

const (
	Domicile ShippingMethod = "Domicile"
	Stopdesk ShippingMethod = "Stopdesk"
)

// OrderStatusUpdate is one entry of an order's append-only status history.
type OrderStatusUpdate struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is a cash-on-delivery order. The items array preserves the prices
// at purchase time; status and status history move together, the current
// status always equals the last history entry.
type Order struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id"`
	TrackingCode         string              `json:"trackingCode" bson:"tracking_code"`
	CreatedAt            time.Time           `json:"createdAt" bson:"created_at"`
	CustomerName         string              `json:"customerName" bson:"customer_name"`
	Items                []CartItem          `json:"items" bson:"items"`
	TotalPrice           float64             `json:"totalPrice" bson:"total_price"`
	Status               OrderStatus         `json:"status" bson:"status"`
	StatusHistory        []OrderStatusUpdate `json:"statusHistory" bson:"status_history"`
	BillingAddress       string              `json:"billingAddress" bson:"billing_address"`
	Wilaya               string              `json:"wilaya" bson:"wilaya"`
	Commune              string              `json:"commune" bson:"commune"`
	PhoneNumber          string              `json:"phoneNumber" bson:"phone_number"`
	PhoneNumberSecondary string              `json:"phoneNumberSecondary,omitempty" bson:"phone_number_secondary,omitempty"`
	ShippingMethod       ShippingMethod      `json:"shippingMethod" bson:"shipping_method"`
	ShippingCost         float64             `json:"shippingCost" bson:"shipping_cost"`
	TrafficSource        string              `json:"trafficSource,omitempty" bson:"traffic_source,omitempty"`
}

// OrderInfo carries the customer and shipping fields of an order request.
type OrderInfo struct {
	CustomerName         string
	BillingAddress       string
	Wilaya               string
	Commune              string
	PhoneNumber          string
	PhoneNumberSecondary string
	ShippingMethod       ShippingMethod
	ShippingCost         float64
	TrafficSource        string
}

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingField    = errors.New("customer name, address, phone, wilaya and commune are required")
	ErrNoDeliveryMthd  = errors.New("no delivery method selected")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrNegativeCost    = errors.New("shipping cost cannot be negative")
	ErrOrderNotPlaced  = errors.New("order could not be placed")
	ErrEmptyStatusNote = errors.New("status history entry missing status")
)

// NewOrder builds a fully populated order from a cart and shipping
// selection. It validates everything the checkout form enforces; no
// persistence happens here, a validation failure must never reach the
// database.
func NewOrder(cart *Cart, info OrderInfo, trackingCode string, now time.Time) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(info.CustomerName) == "" ||
		strings.TrimSpace(info.BillingAddress) == "" ||
		strings.TrimSpace(info.PhoneNumber) == "" ||
		strings.TrimSpace(info.Wilaya) == "" ||
		strings.TrimSpace(info.Commune) == "" {
		return nil, ErrMissingField
	}
	if info.ShippingMethod != Domicile && info.ShippingMethod != Stopdesk {
		return nil, ErrNoDeliveryMthd
	}
	if info.ShippingCost < 0 {
		return nil, ErrNegativeCost
	}

	items := make([]CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := &Order{
		ID:                   primitive.NewObjectID(),
		TrackingCode:         trackingCode,
		CreatedAt:            now,
		CustomerName:         strings.TrimSpace(info.CustomerName),
		Items:                items,
		TotalPrice:           cart.Subtotal() + info.ShippingCost,
		Status:               StatusPendingApproval,
		BillingAddress:       strings.TrimSpace(info.BillingAddress),
		Wilaya:               info.Wilaya,
		Commune:              info.Commune,
		PhoneNumber:          strings.TrimSpace(info.PhoneNumber),
		PhoneNumberSecondary: strings.TrimSpace(info.PhoneNumberSecondary),
		ShippingMethod:       info.ShippingMethod,
		ShippingCost:         info.ShippingCost,
		TrafficSource:        info.TrafficSource,
		StatusHistory: []OrderStatusUpdate{
			{Status: StatusPendingApproval, Timestamp: now, Notes: "Order created."},
		},
	}
	return order, nil
}

// ApplyStatus appends a history entry and moves the current status. Any
// status may follow any other; the admin panel relies on that for manual
// overrides.
func (o *Order) ApplyStatus(status OrderStatus, notes string, now time.Time) error {
	if !ValidStatus(status) {
		return ErrUnknownStatus
	}
	if notes == "" {
		notes = "Status changed to " + string(status) + " by Admin."
	}
	o.StatusHistory = append(o.StatusHistory, OrderStatusUpdate{
		Status:    status,
		Timestamp: now,
		Notes:     notes,
	})
	o.Status = status
	return nil
}

// CheckHistory verifies the order's bookkeeping invariants: a non-empty
// history with non-decreasing timestamps whose last entry matches the
// current status. Used when loading records written by older clients.
func (o *Order) CheckHistory() error {
	if len(o.StatusHistory) == 0 {
		return errors.New("order has no status history")
	}
	for i, entry := range o.StatusHistory {
		if !ValidStatus(entry.Status) {
			return ErrEmptyStatusNote
		}
		if i > 0 && entry.Timestamp.Before(o.StatusHistory[i-1].Timestamp) {
			return errors.New("status history timestamps out of order")
		}
	}
	if last := o.StatusHistory[len(o.StatusHistory)-1]; last.Status != o.Status {
		return errors.New("order status does not match last history entry")
	}
	return nil
}

// CreateOrderRequest is used for order placement requests
type CreateOrderRequest struct {
	CartID               string `json:"cartId" validate:"required"`
	CustomerName         string `json:"customerName" validate:"required,min=2,max=100"`
	BillingAddress       string `json:"billingAddress" validate:"required,min=5"`
	WilayaCode           string `json:"wilayaCode" validate:"required"`
	Commune              string `json:"commune" validate:"required"`
	PhoneNumber          string `json:"phoneNumber" validate:"required,min=9,max=15"`
	PhoneNumberSecondary string `json:"phoneNumberSecondary,omitempty"`
	ShippingMethod       string `json:"shippingMethod,omitempty"`
	TrafficSource        string `json:"trafficSource,omitempty"`
}

// UpdateOrderStatusRequest is used for admin status transitions
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}
