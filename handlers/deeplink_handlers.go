package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"louay-store/deeplink"
	"louay-store/models"
)

// BuildShareLink handles generating a storefront deep link for a
// product, optionally tagged with a ref for traffic attribution
func (h *Handler) BuildShareLink(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if _, err := h.findProduct(r, productID); err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Product not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		}
		return
	}

	link, err := deeplink.Build(h.Config.StoreBaseURL, productID, r.URL.Query().Get("ref"))
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error building share link")
		return
	}

	h.ResponseHdlr.Success(w, "Share link generated successfully", map[string]string{
		"url": link,
	})
}

// ResolveShareLink handles the storefront landing on a share link: it
// parses the link, seeds a fresh cart with the product, and returns the
// ref tag so the checkout can attribute the order's traffic source.
func (h *Handler) ResolveShareLink(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		h.ErrorHdlr.HandleBadRequest(w, "Missing url parameter")
		return
	}

	link, err := deeplink.Parse(raw)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid share link")
		return
	}

	product, err := h.findProduct(r, link.ProductID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Product not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid share link")
		}
		return
	}

	cart := models.Cart{ID: uuid.NewString()}
	if product.Stock > 0 {
		cart.AddItem(product, 1)
	}
	if err := h.saveCart(r, &cart); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating cart")
		return
	}

	h.ResponseHdlr.Success(w, "Share link resolved successfully", map[string]interface{}{
		"productId": link.ProductID,
		"ref":       link.Ref,
		"cart":      cart,
	})
}
