package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"louay-store/cache"
	"louay-store/models"
	"louay-store/utils"
)

// GetProductReviews handles listing a product's reviews, newest first
func (h *Handler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		return
	}

	cacheKey := fmt.Sprintf(cache.ReviewListPattern, productID)
	var reviews []models.ProductReview
	if err := cache.GetCache(ctx, cacheKey, &reviews); err == nil {
		w.Header().Set("X-Cache", "HIT")
		h.ResponseHdlr.Success(w, "Reviews fetched successfully", reviews)
		return
	}

	collection := h.DB.Database(h.Database).Collection("reviews")
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"product_id": objID}, findOptions)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching reviews")
		return
	}
	defer cursor.Close(ctx)

	reviews = []models.ProductReview{}
	if err := cursor.All(ctx, &reviews); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding reviews")
		return
	}

	if err := cache.SetCache(ctx, cacheKey, reviews, 5*time.Minute); err != nil {
		log.Printf("Failed to cache reviews: %v", err)
	}

	w.Header().Set("X-Cache", "MISS")
	h.ResponseHdlr.Success(w, "Reviews fetched successfully", reviews)
}

// CreateReview handles submitting a review and refreshes the product's
// average rating and review count
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.findProduct(r, productID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Product not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		}
		return
	}

	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	review := models.ProductReview{
		ID:             primitive.NewObjectID(),
		CreatedAt:      time.Now(),
		ProductID:      product.ID,
		ReviewerName:   req.ReviewerName,
		ReviewerAvatar: req.ReviewerAvatar,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}

	collection := h.DB.Database(h.Database).Collection("reviews")
	if _, err := collection.InsertOne(r.Context(), review); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating review")
		return
	}

	if err := h.refreshProductRating(r, product.ID); err != nil {
		log.Printf("Failed to refresh rating for product %s: %v", productID, err)
	}

	h.invalidateReviewCache(r, productID)

	h.ResponseHdlr.Created(w, "Review created successfully", review)
}

// DeleteReview handles removing a review and refreshes the product's
// average rating and review count
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid review ID")
		return
	}

	collection := h.DB.Database(h.Database).Collection("reviews")

	var review models.ProductReview
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Review not found")
		} else {
			h.ErrorHdlr.HandleInternalError(w, "Error fetching review")
		}
		return
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error deleting review")
		return
	}

	if err := h.refreshProductRating(r, review.ProductID); err != nil {
		log.Printf("Failed to refresh rating for product %s: %v", review.ProductID.Hex(), err)
	}

	h.invalidateReviewCache(r, review.ProductID.Hex())

	h.ResponseHdlr.Success(w, "Review deleted successfully", nil)
}

// refreshProductRating recomputes a product's average rating and review
// count from its remaining reviews. With no reviews both reset to zero.
func (h *Handler) refreshProductRating(r *http.Request, productID primitive.ObjectID) error {
	ctx := r.Context()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": productID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := h.DB.Database(h.Database).Collection("reviews").Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var average float64
	var count int
	if cursor.Next(ctx) {
		var result struct {
			Average float64 `bson:"average"`
			Count   int     `bson:"count"`
		}
		if err := cursor.Decode(&result); err != nil {
			return err
		}
		average = result.Average
		count = result.Count
	}

	products := h.DB.Database(h.Database).Collection("products")
	_, err = products.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{
		"average_rating": average,
		"review_count":   count,
	}})
	if err != nil {
		return err
	}

	h.invalidateProductCache(r, productID.Hex())
	return nil
}

func (h *Handler) invalidateReviewCache(r *http.Request, productID string) {
	key := fmt.Sprintf(cache.ReviewListPattern, productID)
	if err := cache.DeleteCache(r.Context(), key); err != nil {
		log.Printf("Failed to invalidate review cache: %v", err)
	}
}
