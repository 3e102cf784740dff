package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"louay-store/cache"
	"louay-store/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RedisUpdateJob periodically re-materializes the hot cache entries so
// storefront reads stay warm between invalidations.
type RedisUpdateJob struct {
	db       *mongo.Client
	database string
	interval time.Duration
}

func NewRedisUpdateJob(db *mongo.Client, database string, interval time.Duration) *RedisUpdateJob {
	return &RedisUpdateJob{
		db:       db,
		database: database,
		interval: interval,
	}
}

func (j *RedisUpdateJob) Start() {
	ticker := time.NewTicker(j.interval)
	go func() {
		for range ticker.C {
			j.updateProductsCache()
			j.updateQuestionsCache()
		}
	}()
}

func (j *RedisUpdateJob) updateProductsCache() {
	ctx := context.Background()
	productsCollection := j.db.Database(j.database).Collection("products")

	// Get all products, newest first like the default listing
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := productsCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Printf("Error fetching products for cache update: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Printf("Error decoding products for cache update: %v", err)
		return
	}

	// Discount is derived, recompute before caching
	for i := range products {
		products[i].ComputeDiscount()
	}

	// Warm the default storefront listing (first page, no filters) in
	// the exact shape the list handler reads.
	firstPage := products
	if len(firstPage) > 12 {
		firstPage = firstPage[:12]
	}
	dataToCache := struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
	}{
		Products: firstPage,
		Total:    int64(len(products)),
	}

	defaultListKey := fmt.Sprintf("products:p%d:l%d:cat%s:q%s:sort%s", 1, 12, "", "", "")
	if err := cache.SetCache(ctx, defaultListKey, dataToCache, 15*time.Minute); err != nil {
		log.Printf("Failed to update products cache: %v", err)
		return
	}

	// Update individual product caches
	for _, product := range products {
		cacheKey := fmt.Sprintf(cache.ProductDetailPattern, product.ID.Hex())
		if err := cache.SetCache(ctx, cacheKey, product, 15*time.Minute); err != nil {
			log.Printf("Failed to update product cache for ID %s: %v", product.ID.Hex(), err)
		}
	}
}

func (j *RedisUpdateJob) updateQuestionsCache() {
	ctx := context.Background()
	questionsCollection := j.db.Database(j.database).Collection("questions")

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := questionsCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Printf("Error fetching questions for cache update: %v", err)
		return
	}
	defer cursor.Close(ctx)

	questions := []models.ProductQuestion{}
	if err := cursor.All(ctx, &questions); err != nil {
		log.Printf("Error decoding questions for cache update: %v", err)
		return
	}

	// Answers are stored separately but always served inline.
	if err := j.attachAnswers(ctx, questions); err != nil {
		log.Printf("Error fetching answers for cache update: %v", err)
		return
	}

	if err := cache.SetCache(ctx, "questions:all", questions, 15*time.Minute); err != nil {
		log.Printf("Failed to update questions cache: %v", err)
	}
}

func (j *RedisUpdateJob) attachAnswers(ctx context.Context, questions []models.ProductQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	answersCollection := j.db.Database(j.database).Collection("answers")
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := answersCollection.Find(ctx, bson.M{"question_id": bson.M{"$in": ids}}, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var answers []models.ProductAnswer
	if err := cursor.All(ctx, &answers); err != nil {
		return err
	}

	byQuestion := make(map[primitive.ObjectID][]models.ProductAnswer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}
	for i := range questions {
		questions[i].Answers = byQuestion[questions[i].ID]
	}
	return nil
}
