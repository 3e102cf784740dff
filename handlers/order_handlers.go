package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"louay-store/cache"
	"louay-store/models"
	"louay-store/shipping"
	"louay-store/utils"
)

// CreateOrder handles placing a cash-on-delivery order from a cart.
//
// The shipping method is resolved against the wilaya rate table before
// anything is written; the cart is cleared only after the order document
// is safely inserted, so a failed insert never loses the customer's cart.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	cart, err := h.loadCart(r, req.CartID)
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Cart not found")
		return
	}
	if cart.IsEmpty() {
		h.ErrorHdlr.HandleUnprocessable(w, "Cannot place an order with an empty cart")
		return
	}

	// Resolve the delivery quote. An empty method auto-selects when the
	// wilaya offers exactly one option.
	wilayaName, method, cost, err := shipping.Quote(req.WilayaCode, models.ShippingMethod(req.ShippingMethod))
	switch err {
	case nil:
	case shipping.ErrUnknownWilaya:
		h.ErrorHdlr.HandleBadRequest(w, "Unknown wilaya code")
		return
	case shipping.ErrNoDelivery:
		h.ErrorHdlr.HandleUnprocessable(w, "Delivery is not available in this wilaya")
		return
	case shipping.ErrMethodUnavailable:
		h.ErrorHdlr.HandleUnprocessable(w, "Selected delivery method is not available in this wilaya")
		return
	default:
		h.ErrorHdlr.HandleInternalError(w, "Error resolving delivery options")
		return
	}

	if !shipping.ValidCommune(req.WilayaCode, req.Commune) {
		h.ErrorHdlr.HandleBadRequest(w, "Commune does not belong to the selected wilaya")
		return
	}

	order, err := models.NewOrder(cart, models.OrderInfo{
		CustomerName:         req.CustomerName,
		BillingAddress:       req.BillingAddress,
		Wilaya:               wilayaName,
		Commune:              req.Commune,
		PhoneNumber:          req.PhoneNumber,
		PhoneNumberSecondary: req.PhoneNumberSecondary,
		ShippingMethod:       method,
		ShippingCost:         cost,
		TrafficSource:        req.TrafficSource,
	}, uuid.NewString(), time.Now())
	if err != nil {
		h.ErrorHdlr.HandleUnprocessable(w, err.Error())
		return
	}

	collection := h.DB.Database(h.Database).Collection("orders")
	if _, err := collection.InsertOne(r.Context(), order); err != nil {
		log.Printf("Failed to insert order: %v", err)
		h.ErrorHdlr.HandleInternalError(w, "Error placing order")
		return
	}

	// The order is durable, the cart can go now.
	cart.Clear()
	if err := h.saveCart(r, cart); err != nil {
		log.Printf("Failed to clear cart %s after order: %v", cart.ID, err)
	}

	if err := cache.DeleteByPattern(r.Context(), cache.OrderListPattern); err != nil {
		log.Printf("Failed to invalidate order list cache: %v", err)
	}

	h.ResponseHdlr.Created(w, "Order placed successfully", order)
}

// GetOrders handles listing orders for the admin panel, newest first,
// with optional status filtering
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("p"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}
	status := r.URL.Query().Get("status")

	cacheKey := fmt.Sprintf("orders:p=%d:limit=%d:status=%s", page, limit, status)

	var cached struct {
		Orders []models.Order `json:"orders"`
		Total  int            `json:"total"`
	}
	if err := cache.GetCache(ctx, cacheKey, &cached); err == nil {
		w.Header().Set("X-Cache", "HIT")
		h.ResponseHdlr.Paginated(w, "Orders fetched successfully", cached.Orders, page, limit, cached.Total)
		return
	}

	filter := bson.M{}
	if status != "" {
		if !models.ValidStatus(models.OrderStatus(status)) {
			h.ErrorHdlr.HandleBadRequest(w, "Unknown order status")
			return
		}
		filter["status"] = status
	}

	collection := h.DB.Database(h.Database).Collection("orders")

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error counting orders")
		return
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding orders")
		return
	}

	cached.Orders = orders
	cached.Total = int(total)
	if err := cache.SetCache(ctx, cacheKey, cached, 1*time.Minute); err != nil {
		log.Printf("Failed to cache order list: %v", err)
	}

	w.Header().Set("X-Cache", "MISS")
	h.ResponseHdlr.Paginated(w, "Orders fetched successfully", orders, page, limit, int(total))
}

// GetOrderDetails handles fetching a single order by ID for the admin panel
func (h *Handler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	order, err := h.findOrder(r, mux.Vars(r)["id"])
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Order not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid order ID")
		}
		return
	}

	h.ResponseHdlr.Success(w, "Order fetched successfully", order)
}

// TrackOrder handles the public tracking page lookup. The confirmation
// page hands out the tracking code, but older confirmation emails carried
// the raw order ID, so both still resolve.
func (h *Handler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := mux.Vars(r)["code"]

	filter := bson.M{"tracking_code": code}
	if objID, err := primitive.ObjectIDFromHex(code); err == nil {
		filter = bson.M{"$or": []bson.M{{"tracking_code": code}, {"_id": objID}}}
	}

	collection := h.DB.Database(h.Database).Collection("orders")

	var order models.Order
	err := collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Order not found")
		} else {
			h.ErrorHdlr.HandleInternalError(w, "Error fetching order")
		}
		return
	}

	if err := order.CheckHistory(); err != nil {
		log.Printf("Order %s failed history check: %v", order.ID.Hex(), err)
	}

	h.ResponseHdlr.Success(w, "Order fetched successfully", order)
}

// UpdateOrderStatus handles admin status transitions, appending to the
// order's status history
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	order, err := h.findOrder(r, mux.Vars(r)["id"])
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Order not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid order ID")
		}
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	if err := order.ApplyStatus(models.OrderStatus(req.Status), req.Notes, time.Now()); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, err.Error())
		return
	}

	collection := h.DB.Database(h.Database).Collection("orders")
	update := bson.M{"$set": bson.M{
		"status":         order.Status,
		"status_history": order.StatusHistory,
	}}
	if _, err := collection.UpdateOne(r.Context(), bson.M{"_id": order.ID}, update); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error updating order")
		return
	}

	if err := cache.DeleteByPattern(r.Context(), cache.OrderListPattern); err != nil {
		log.Printf("Failed to invalidate order list cache: %v", err)
	}

	h.ResponseHdlr.Success(w, "Order status updated successfully", order)
}

func (h *Handler) findOrder(r *http.Request, orderID string) (*models.Order, error) {
	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	collection := h.DB.Database(h.Database).Collection("orders")
	if err := collection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
