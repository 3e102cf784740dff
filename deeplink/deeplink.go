// Package deeplink builds and parses the storefront share links used in
// marketing campaigns. A link carries the product to open and a ref tag
// that ends up as the order's traffic source.
package deeplink

import (
	"errors"
	"net/url"
)

const (
	productParam = "product"
	refParam     = "ref"
)

// Link is a parsed storefront deep link.
type Link struct {
	ProductID string
	Ref       string
}

var ErrNoProduct = errors.New("deep link has no product")

// Build renders a share link on top of the storefront base URL. The ref
// tag is optional.
func Build(baseURL, productID, ref string) (string, error) {
	if productID == "" {
		return "", ErrNoProduct
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(productParam, productID)
	if ref != "" {
		q.Set(refParam, ref)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Parse extracts the product and ref tag from a raw link.
func Parse(rawURL string) (Link, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Link{}, err
	}
	q := u.Query()
	link := Link{
		ProductID: q.Get(productParam),
		Ref:       q.Get(refParam),
	}
	if link.ProductID == "" {
		return Link{}, ErrNoProduct
	}
	return link, nil
}
