package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
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

// GetProducts handles retrieving a list of products with basic filtering and sorting
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Get pagination parameters
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")
	page := 1
	limit := 12

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	// Get basic filter parameters
	category := r.URL.Query().Get("category")
	searchQuery := r.URL.Query().Get("search")
	sortBy := r.URL.Query().Get("sort") // Possible values: price_asc, price_desc, newest

	// Create cache key
	cacheKey := fmt.Sprintf("products:p%d:l%d:cat%s:q%s:sort%s",
		page, limit, category, searchQuery, sortBy)

	// Try to get from cache
	var cachedData struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
	}

	err := cache.GetCache(ctx, cacheKey, &cachedData)
	if err == nil {
		w.Header().Set("X-Cache", "HIT")
		h.ResponseHdlr.Paginated(w, "Products fetched from cache", cachedData.Products, page, limit, int(cachedData.Total))
		return
	}

	w.Header().Set("X-Cache", "MISS")

	// Build filter query. Each clause matches either language; combined
	// clauses are ANDed.
	var clauses []bson.M

	if category != "" {
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"category.en": category},
			{"category.ar": category},
		}})
	}

	// Search matches name and description in both languages
	if searchQuery != "" {
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"name.en": bson.M{"$regex": searchQuery, "$options": "i"}},
			{"name.ar": bson.M{"$regex": searchQuery, "$options": "i"}},
			{"description.en": bson.M{"$regex": searchQuery, "$options": "i"}},
			{"description.ar": bson.M{"$regex": searchQuery, "$options": "i"}},
			{"keywords.en": searchQuery},
			{"keywords.ar": searchQuery},
		}})
	}

	filterQuery := bson.M{}
	if len(clauses) > 0 {
		filterQuery["$and"] = clauses
	}

	// Get total count with filters
	productsCollection := h.DB.Database(h.Database).Collection("products")
	total, err := productsCollection.CountDocuments(ctx, filterQuery)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error counting products")
		return
	}

	// Calculate skip for pagination
	skip := (page - 1) * limit

	// Build sort options
	sortOptions := bson.D{}
	switch sortBy {
	case "price_asc":
		sortOptions = append(sortOptions, bson.E{Key: "price", Value: 1})
	case "price_desc":
		sortOptions = append(sortOptions, bson.E{Key: "price", Value: -1})
	default:
		// Default sorting: newest first
		sortOptions = append(sortOptions, bson.E{Key: "created_at", Value: -1})
	}

	// Find products with filters and sort
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(skip)).
		SetSort(sortOptions)

	cursor, err := productsCollection.Find(ctx, filterQuery, opts)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching products")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error processing products data")
		return
	}

	// Discount is always derived from the stored prices
	for i := range products {
		products[i].ComputeDiscount()
	}

	// Store in cache
	dataToCache := struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
	}{
		Products: products,
		Total:    total,
	}

	if err := cache.SetCache(ctx, cacheKey, dataToCache, 5*time.Minute); err != nil {
		log.Printf("Failed to cache products list: %v", err)
	}

	h.ResponseHdlr.Paginated(w, "Products fetched successfully", products, page, limit, int(total))
}

// GetProductDetails handles retrieving a single product by ID
func (h *Handler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	// Try to get from cache first
	var product models.Product
	ctx := r.Context()
	cacheKey := fmt.Sprintf(cache.ProductDetailPattern, productID)

	err := cache.GetCache(ctx, cacheKey, &product)
	if err == nil {
		w.Header().Set("X-Cache", "HIT")
		product.ComputeDiscount()
		h.ResponseHdlr.Success(w, "Product details fetched from cache", product)
		return
	}

	w.Header().Set("X-Cache", "MISS")

	// Get from database if not in cache
	product, err = h.findProduct(r, productID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Product not found")
		} else {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		}
		return
	}

	// Store in cache
	if err := cache.SetCache(ctx, cacheKey, product, 30*time.Minute); err != nil {
		log.Printf("Failed to cache product data: %v", err)
	}

	h.ResponseHdlr.Success(w, "Product details fetched successfully", product)
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	// Validate request
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	// Create new product
	newProduct := models.Product{
		ID:                  primitive.NewObjectID(),
		CreatedAt:           time.Now().UTC(),
		Name:                req.Name,
		Description:         req.Description,
		Price:               req.Price,
		OriginalPrice:       req.OriginalPrice,
		ImageURL:            req.ImageURL,
		AdditionalImageURLs: req.AdditionalImageURLs,
		Category:            req.Category,
		Stock:               req.Stock,
		Keywords:            req.Keywords,
	}

	// Insert into database
	_, err := h.DB.Database(h.Database).Collection("products").
		InsertOne(r.Context(), newProduct)

	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating product")
		return
	}

	h.invalidateProductCache(r, newProduct.ID.Hex())

	newProduct.ComputeDiscount()
	h.ResponseHdlr.Created(w, "Product created successfully", newProduct)
}

// UpdateProduct handles updating an existing product
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	productID := vars["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	// Validate request
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	// Build update document
	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		update["original_price"] = *req.OriginalPrice
	}
	if req.ImageURL != nil {
		update["image_url"] = *req.ImageURL
	}
	if req.AdditionalImageURLs != nil {
		update["additional_image_urls"] = *req.AdditionalImageURLs
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Stock != nil {
		update["stock"] = *req.Stock
	}
	if req.Keywords != nil {
		update["keywords"] = *req.Keywords
	}

	if len(update) == 0 {
		h.ErrorHdlr.HandleBadRequest(w, "No fields to update")
		return
	}

	// Update product in database
	result, err := h.DB.Database(h.Database).Collection("products").
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})

	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error updating product")
		return
	}

	if result.MatchedCount == 0 {
		h.ErrorHdlr.HandleNotFound(w, "Product not found")
		return
	}

	h.invalidateProductCache(r, productID)

	// Get updated product
	updatedProduct, err := h.findProduct(r, productID)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error getting updated product")
		return
	}

	h.ResponseHdlr.Success(w, "Product updated successfully", updatedProduct)
}

// DeleteProduct handles deleting a product
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	productID := vars["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		return
	}

	result, err := h.DB.Database(h.Database).Collection("products").
		DeleteOne(ctx, bson.M{"_id": objID})

	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error deleting product")
		return
	}

	if result.DeletedCount == 0 {
		h.ErrorHdlr.HandleNotFound(w, "Product not found")
		return
	}

	h.invalidateProductCache(r, productID)

	h.ResponseHdlr.Success(w, "Product successfully deleted", nil)
}

// LikeProduct handles incrementing a product's like tally
func (h *Handler) LikeProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	productID := vars["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		return
	}

	result, err := h.DB.Database(h.Database).Collection("products").
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"likes": 1}})

	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error updating likes")
		return
	}
	if result.MatchedCount == 0 {
		h.ErrorHdlr.HandleNotFound(w, "Product not found")
		return
	}

	h.invalidateProductCache(r, productID)
	h.ResponseHdlr.Success(w, "Product liked", nil)
}

// UnlikeProduct handles decrementing a product's like tally. The filter
// only matches while likes are positive, so the count never goes below
// zero even with concurrent unlikes.
func (h *Handler) UnlikeProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	productID := vars["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		return
	}

	result, err := h.DB.Database(h.Database).Collection("products").
		UpdateOne(ctx,
			bson.M{"_id": objID, "likes": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"likes": -1}})

	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error updating likes")
		return
	}
	if result.MatchedCount == 0 {
		// Already at zero likes or unknown product: nothing changed
		h.ResponseHdlr.Success(w, "Product like unchanged", nil)
		return
	}

	h.invalidateProductCache(r, productID)
	h.ResponseHdlr.Success(w, "Product unliked", nil)
}

// findProduct fetches a product by hex ID and recomputes its discount.
func (h *Handler) findProduct(r *http.Request, productID string) (models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	err = h.DB.Database(h.Database).Collection("products").
		FindOne(r.Context(), bson.M{"_id": objID}).
		Decode(&product)
	if err != nil {
		return models.Product{}, err
	}

	product.ComputeDiscount()
	return product, nil
}

// invalidateProductCache drops the detail entry and every list entry.
func (h *Handler) invalidateProductCache(r *http.Request, productID string) {
	ctx := r.Context()

	detailCacheKey := fmt.Sprintf(cache.ProductDetailPattern, productID)
	if err := cache.DeleteCache(ctx, detailCacheKey); err != nil {
		log.Printf("Failed to invalidate product detail cache: %v", err)
	}

	if err := cache.DeleteByPattern(ctx, cache.ProductListPattern); err != nil {
		log.Printf("Failed to invalidate product list cache: %v", err)
	}
}
