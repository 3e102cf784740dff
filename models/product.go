package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog entry. The discount percentage is derived
// from price and original price on every read, never trusted from storage.
type Product struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id"`
	CreatedAt           time.Time          `json:"createdAt" bson:"created_at"`
	Name                Localized          `json:"name" bson:"name"`
	Description         Localized          `json:"description" bson:"description"`
	Price               float64            `json:"price" bson:"price"`
	OriginalPrice       float64            `json:"originalPrice,omitempty" bson:"original_price,omitempty"`
	DiscountPercentage  float64            `json:"discountPercentage,omitempty" bson:"-"`
	ImageURL            string             `json:"imageUrl" bson:"image_url"`
	AdditionalImageURLs []string           `json:"additionalImageUrls,omitempty" bson:"additional_image_urls,omitempty"`
	Category            Localized          `json:"category" bson:"category"`
	Stock               int                `json:"stock" bson:"stock"`
	Keywords            Keywords           `json:"keywords" bson:"keywords"`
	Likes               int                `json:"likes" bson:"likes"`
	AverageRating       float64            `json:"averageRating,omitempty" bson:"average_rating,omitempty"`
	ReviewCount         int                `json:"reviewCount,omitempty" bson:"review_count,omitempty"`
}

// ComputeDiscount recomputes the derived discount percentage. It is zero
// whenever there is no original price or the product is not discounted.
func (p *Product) ComputeDiscount() {
	p.DiscountPercentage = DiscountPercentage(p.OriginalPrice, p.Price)
}

// DiscountPercentage returns the discount implied by an original and a
// current price, or zero when no discount applies.
func DiscountPercentage(originalPrice, price float64) float64 {
	if originalPrice <= 0 || price >= originalPrice {
		return 0
	}
	return (originalPrice - price) / originalPrice * 100
}

// CanDecrementLike reports whether a like decrement should be attempted.
// A product already at zero likes is left untouched, no write is issued.
func (p *Product) CanDecrementLike() bool {
	return p.Likes > 0
}

// CreateProductRequest is used for product creation requests
type CreateProductRequest struct {
	Name                Localized `json:"name" validate:"required"`
	Description         Localized `json:"description" validate:"required"`
	Price               float64   `json:"price" validate:"required,gt=0"`
	OriginalPrice       float64   `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	ImageURL            string    `json:"imageUrl" validate:"required,url"`
	AdditionalImageURLs []string  `json:"additionalImageUrls,omitempty" validate:"omitempty,dive,url"`
	Category            Localized `json:"category" validate:"required"`
	Stock               int       `json:"stock" validate:"gte=0"`
	Keywords            Keywords  `json:"keywords"`
}

// UpdateProductRequest is used for product update requests. Pointer fields
// distinguish "not provided" from zero values at the persistence boundary.
type UpdateProductRequest struct {
	Name                *Localized `json:"name,omitempty"`
	Description         *Localized `json:"description,omitempty"`
	Price               *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice       *float64   `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	ImageURL            *string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	AdditionalImageURLs *[]string  `json:"additionalImageUrls,omitempty"`
	Category            *Localized `json:"category,omitempty"`
	Stock               *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Keywords            *Keywords  `json:"keywords,omitempty"`
}
