package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"louay-store/models"
	"louay-store/shipping"
)

// WilayaResponse is one row of the public wilaya listing
type WilayaResponse struct {
	Code          string                  `json:"code"`
	Name          string                  `json:"name"`
	DeliveryPrice shipping.DeliveryPrice  `json:"deliveryPrice"`
	Methods       []models.ShippingMethod `json:"methods"`
	Unavailable   bool                    `json:"unavailable"`
}

// QuoteResponse is the checkout delivery quote
type QuoteResponse struct {
	WilayaName   string                  `json:"wilayaName"`
	Methods      []models.ShippingMethod `json:"methods"`
	Method       models.ShippingMethod   `json:"method,omitempty"`
	AutoSelected bool                    `json:"autoSelected"`
	Cost         float64                 `json:"cost"`
}

// ListWilayas handles listing every wilaya with its delivery options
func (h *Handler) ListWilayas(w http.ResponseWriter, r *http.Request) {
	wilayas := make([]WilayaResponse, 0, len(shipping.Wilayas))
	for _, code := range shipping.Codes() {
		wilaya := shipping.Wilayas[code]
		options := shipping.AvailableMethods(code)
		wilayas = append(wilayas, WilayaResponse{
			Code:          code,
			Name:          wilaya.Name,
			DeliveryPrice: wilaya.DeliveryPrice,
			Methods:       options.Methods,
			Unavailable:   options.Unavailable,
		})
	}

	h.ResponseHdlr.Success(w, "Wilayas fetched successfully", wilayas)
}

// ListCommunes handles listing the communes of one wilaya
func (h *Handler) ListCommunes(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	wilaya, ok := shipping.Wilayas[code]
	if !ok {
		h.ErrorHdlr.HandleNotFound(w, "Unknown wilaya code")
		return
	}

	h.ResponseHdlr.Success(w, "Communes fetched successfully", wilaya.Communes)
}

// QuoteShipping handles the checkout delivery quote. Without a method
// parameter it reports the available options, auto-selecting when the
// wilaya offers exactly one.
func (h *Handler) QuoteShipping(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	method := models.ShippingMethod(r.URL.Query().Get("method"))

	options := shipping.AvailableMethods(code)
	if _, ok := shipping.Wilayas[code]; !ok {
		h.ErrorHdlr.HandleNotFound(w, "Unknown wilaya code")
		return
	}
	if options.Unavailable {
		h.ErrorHdlr.HandleUnprocessable(w, "Delivery is not available in this wilaya")
		return
	}

	resp := QuoteResponse{Methods: options.Methods}

	if method == "" {
		auto, ok := options.AutoSelect()
		if !ok {
			// Two options and no choice made yet: return them both.
			resp.WilayaName = shipping.Wilayas[code].Name
			h.ResponseHdlr.Success(w, "Delivery options fetched successfully", resp)
			return
		}
		method = auto
		resp.AutoSelected = true
	}

	name, resolved, cost, err := shipping.Quote(code, method)
	if err != nil {
		h.ErrorHdlr.HandleUnprocessable(w, "Selected delivery method is not available in this wilaya")
		return
	}

	resp.WilayaName = name
	resp.Method = resolved
	resp.Cost = cost
	h.ResponseHdlr.Success(w, "Delivery quote fetched successfully", resp)
}
