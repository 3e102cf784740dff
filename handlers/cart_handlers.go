package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"louay-store/cache"
	"louay-store/models"
	"louay-store/utils"
)

// AddCartItemRequest is used when adding a product to a cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// SetCartQuantityRequest is used when changing a cart line's quantity
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CreateCart handles creating a new empty cart
func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart := models.Cart{ID: uuid.NewString()}

	if err := h.saveCart(r, &cart); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating cart")
		return
	}

	h.ResponseHdlr.Created(w, "Cart created successfully", cart)
}

// GetCart handles retrieving a cart with its subtotal
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.loadCart(r, mux.Vars(r)["id"])
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Cart not found")
		return
	}

	h.respondCart(w, "Cart fetched successfully", cart)
}

// AddCartItem handles adding a product snapshot to a cart. The quantity
// is clamped to the product's current stock.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.loadCart(r, mux.Vars(r)["id"])
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Cart not found")
		return
	}

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	product, err := h.findProduct(r, req.ProductID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Product not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		}
		return
	}

	if product.Stock == 0 {
		h.ErrorHdlr.HandleUnprocessable(w, "Product is out of stock")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	cart.AddItem(product, quantity)

	if err := h.saveCart(r, cart); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error saving cart")
		return
	}

	h.respondCart(w, "Item added to cart", cart)
}

// SetCartQuantity handles changing a line's quantity. Zero removes the
// line; anything above the product's live stock is clamped down.
func (h *Handler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart, err := h.loadCart(r, vars["id"])
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Cart not found")
		return
	}

	var req SetCartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	productID := vars["productId"]
	stock := -1
	if product, err := h.findProduct(r, productID); err == nil {
		stock = product.Stock
	}

	cart.SetQuantity(productID, req.Quantity, stock)

	if err := h.saveCart(r, cart); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error saving cart")
		return
	}

	h.respondCart(w, "Cart updated successfully", cart)
}

// RemoveCartItem handles removing a line from a cart
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart, err := h.loadCart(r, vars["id"])
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Cart not found")
		return
	}

	cart.Remove(vars["productId"])

	if err := h.saveCart(r, cart); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error saving cart")
		return
	}

	h.respondCart(w, "Item removed from cart", cart)
}

// ClearCart handles emptying a cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.loadCart(r, mux.Vars(r)["id"])
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Cart not found")
		return
	}

	cart.Clear()

	if err := h.saveCart(r, cart); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error saving cart")
		return
	}

	h.respondCart(w, "Cart cleared", cart)
}

func (h *Handler) loadCart(r *http.Request, cartID string) (*models.Cart, error) {
	var cart models.Cart
	key := fmt.Sprintf(cache.CartKeyPattern, cartID)
	if err := cache.GetCache(r.Context(), key, &cart); err != nil {
		return nil, err
	}
	cart.ID = cartID
	return &cart, nil
}

func (h *Handler) saveCart(r *http.Request, cart *models.Cart) error {
	key := fmt.Sprintf(cache.CartKeyPattern, cart.ID)
	return cache.SetCache(r.Context(), key, cart, h.Config.CartTTL)
}

func (h *Handler) respondCart(w http.ResponseWriter, message string, cart *models.Cart) {
	h.ResponseHdlr.Success(w, message, struct {
		*models.Cart
		Subtotal float64 `json:"subtotal"`
	}{cart, cart.Subtotal()})
}
