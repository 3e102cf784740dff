package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductReview belongs to a product. Creating or deleting one recomputes
// the owning product's average rating and review count.
type ProductReview struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	ProductID      primitive.ObjectID `json:"productId" bson:"product_id"`
	ReviewerName   string             `json:"reviewerName" bson:"reviewer_name"`
	ReviewerAvatar string             `json:"reviewerAvatar,omitempty" bson:"reviewer_avatar,omitempty"`
	Rating         int                `json:"rating" bson:"rating"`
	Comment        string             `json:"comment" bson:"comment"`
}

// CreateReviewRequest is used for review submission requests
type CreateReviewRequest struct {
	ReviewerName   string `json:"reviewerName" validate:"required,min=2,max=50"`
	ReviewerAvatar string `json:"reviewerAvatar,omitempty" validate:"omitempty,url"`
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment        string `json:"comment" validate:"required,min=3,max=1000"`
}
