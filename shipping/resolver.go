package shipping

import (
	"errors"
	"sort"

	"louay-store/models"
)

var (
	ErrUnknownWilaya     = errors.New("unknown wilaya code")
	ErrMethodUnavailable = errors.New("delivery method not available in this wilaya")
	ErrNoDelivery        = errors.New("delivery is not available in this wilaya")
)

// Options is the result of resolving a wilaya code against the rate
// table. Unavailable means no method serves the wilaya at all, which is
// distinct from a method being offered for free.
type Options struct {
	Methods     []models.ShippingMethod `json:"methods"`
	Unavailable bool                    `json:"unavailable"`
}

// AvailableMethods returns the delivery methods offered in a wilaya. A
// method counts as available only when its configured price is strictly
// greater than zero. An unknown code resolves to unavailable.
func AvailableMethods(code string) Options {
	w, ok := Wilayas[code]
	if !ok {
		return Options{Unavailable: true}
	}
	var methods []models.ShippingMethod
	if w.DeliveryPrice.Domicile > 0 {
		methods = append(methods, models.Domicile)
	}
	if w.DeliveryPrice.Stopdesk > 0 {
		methods = append(methods, models.Stopdesk)
	}
	return Options{Methods: methods, Unavailable: len(methods) == 0}
}

// AutoSelect applies the checkout policy: when exactly one method is
// available it is chosen for the customer, otherwise the caller must
// pick explicitly.
func (o Options) AutoSelect() (models.ShippingMethod, bool) {
	if len(o.Methods) == 1 {
		return o.Methods[0], true
	}
	return "", false
}

// Contains reports whether the method is among the available options.
func (o Options) Contains(method models.ShippingMethod) bool {
	for _, m := range o.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// PriceFor returns the delivery cost for a wilaya and method.
func PriceFor(code string, method models.ShippingMethod) (float64, error) {
	w, ok := Wilayas[code]
	if !ok {
		return 0, ErrUnknownWilaya
	}
	var price float64
	switch method {
	case models.Domicile:
		price = w.DeliveryPrice.Domicile
	case models.Stopdesk:
		price = w.DeliveryPrice.Stopdesk
	default:
		return 0, ErrMethodUnavailable
	}
	if price <= 0 {
		return 0, ErrMethodUnavailable
	}
	return price, nil
}

// Quote resolves a wilaya code and requested method into the display name
// and cost used on an order. An empty method auto-selects when the table
// leaves no choice.
func Quote(code string, method models.ShippingMethod) (name string, resolved models.ShippingMethod, cost float64, err error) {
	w, ok := Wilayas[code]
	if !ok {
		return "", "", 0, ErrUnknownWilaya
	}
	options := AvailableMethods(code)
	if options.Unavailable {
		return "", "", 0, ErrNoDelivery
	}
	if method == "" {
		auto, ok := options.AutoSelect()
		if !ok {
			return "", "", 0, ErrMethodUnavailable
		}
		method = auto
	}
	if !options.Contains(method) {
		return "", "", 0, ErrMethodUnavailable
	}
	cost, err = PriceFor(code, method)
	if err != nil {
		return "", "", 0, err
	}
	return w.Name, method, cost, nil
}

// ValidCommune reports whether the commune belongs to the wilaya.
func ValidCommune(code, commune string) bool {
	w, ok := Wilayas[code]
	if !ok {
		return false
	}
	for _, c := range w.Communes {
		if c == commune {
			return true
		}
	}
	return false
}

// Codes returns all wilaya codes in ascending order, for stable listings.
func Codes() []string {
	codes := make([]string, 0, len(Wilayas))
	for code := range Wilayas {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
