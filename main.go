package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"louay-store/ai"
	"louay-store/cache"
	"louay-store/config"
	"louay-store/database"
	"louay-store/handlers"
	"louay-store/realtime"
	"louay-store/router"
	"louay-store/utils"
)

func main() {
	cfg := config.LoadConfig()

	// Connect to MongoDB
	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	log.Println("Connected to MongoDB")

	// Connect to Redis
	if err := cache.InitRedis(cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	// Seed the configured admin account when missing
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := handlers.EnsureAdminAccount(seedCtx, client, cfg.Database, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	cancelSeed()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Live updates for the admin panel
	watcher := realtime.NewWatcher(client, cfg.Database, "products", "reviews", "questions")
	watcher.Start(ctx)

	// Background cache refresher keeps the hot storefront keys warm
	cacheJob := utils.NewRedisUpdateJob(client, cfg.Database, cfg.CacheRefreshTick)
	cacheJob.Start()

	aiClient := ai.NewClient(cfg.GeminiAPIKey)
	if !aiClient.Enabled() {
		log.Println("GEMINI_API_KEY not set, AI assist endpoints are disabled")
	}

	h := handlers.NewHandler(client, cfg, aiClient)
	r := router.NewRouter(h, watcher, cfg)

	log.Printf("Server starting on %s", cfg.Port)
	if err := http.ListenAndServe(cfg.Port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
