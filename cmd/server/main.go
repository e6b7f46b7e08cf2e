package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dreamwall/internal/config"
	"dreamwall/internal/database"
	"dreamwall/internal/generation"
	"dreamwall/internal/handlers"
	"dreamwall/internal/imagestore"
	"dreamwall/internal/repository"
	"dreamwall/internal/routes"
	"dreamwall/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting dreamwall server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to MongoDB with a few retries; container orchestration often
	// starts the database a moment after the server.
	ctx := context.Background()
	mongoClient, err := connectWithRetry(ctx, cfg.Mongo.URL, 3)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			log.Printf("MongoDB disconnect error: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.Mongo.Database)

	store, err := imagestore.New(cfg)
	if err != nil {
		log.Fatal("Failed to create image store: ", err)
	}
	log.Printf("Image store backend: %s", cfg.ImageStore)

	generator, err := generation.NewGeminiGenerator(ctx, cfg.Gemini)
	if err != nil {
		log.Fatal("Failed to create generation client: ", err)
	}

	postRepo := repository.NewMongoPostRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	gallery := service.NewGalleryService(postRepo, store, cfg.UploadFolder)

	router := routes.Setup(
		handlers.NewPostHandler(gallery),
		handlers.NewDalleHandler(generator),
		handlers.NewAuthHandler(userRepo, cfg.Auth),
		cfg.Auth.JWTSecret,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	log.Println("Server stopped gracefully")
}

func connectWithRetry(ctx context.Context, uri string, attempts int) (*mongo.Client, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		client, err := database.Connect(ctx, uri)
		if err == nil {
			return client, nil
		}
		lastErr = err
		log.Printf("MongoDB connection attempt %d failed: %v", i, err)
		time.Sleep(2 * time.Second)
	}
	return nil, lastErr
}
