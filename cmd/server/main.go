package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Malcolmdebono/Bucket-list-application/internal/cache"
	"github.com/Malcolmdebono/Bucket-list-application/internal/config"
	"github.com/Malcolmdebono/Bucket-list-application/internal/database"
	"github.com/Malcolmdebono/Bucket-list-application/internal/handlers"
	"github.com/Malcolmdebono/Bucket-list-application/internal/jobs"
	"github.com/Malcolmdebono/Bucket-list-application/internal/repository"
	"github.com/Malcolmdebono/Bucket-list-application/internal/scheduler"
	"github.com/Malcolmdebono/Bucket-list-application/internal/services"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/logger"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file / environment
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Optional Redis cache for catalogue queries
	queryCache, err := cache.NewCache(cfg)
	if err != nil {
		log.Fatalf("Redis connection error: %v", err)
	}

	// --- Repositories ---
	experienceRepo := repository.NewExperienceRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	bucketListRepo := repository.NewBucketListRepository(db)

	// --- Services ---
	experienceService := services.NewExperienceService(experienceRepo, queryCache)
	galleryService := services.NewGalleryService(galleryRepo)
	bucketListService := services.NewBucketListService(bucketListRepo)
	authService := services.NewAuthService(cfg)

	// --- Handlers ---
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	bucketListHandler := handlers.NewBucketListHandler(bucketListService)
	authHandler := handlers.NewAuthHandler(authService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")
	router.HandleFunc("/api/auth/login", authHandler.LoginHandler).Methods("POST")

	// Everything else under /api requires a bearer token
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	api.HandleFunc("/experience", experienceHandler.ListExperiencesHandler).Methods("GET")
	api.HandleFunc("/experience/latest", experienceHandler.GetLatestExperiencesHandler).Methods("GET")
	api.HandleFunc("/experience/{id}", experienceHandler.GetExperienceHandler).Methods("GET")

	api.HandleFunc("/galleries", galleryHandler.GetGalleryImagesHandler).Methods("GET")

	api.HandleFunc("/items", bucketListHandler.ListItemsHandler).Methods("GET")
	api.HandleFunc("/items", bucketListHandler.CreateItemHandler).Methods("POST")
	api.HandleFunc("/items/{id}", bucketListHandler.UpdateItemHandler).Methods("PUT")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Daily deadline reminders
	reminder := jobs.NewDeadlineReminder(bucketListService, cfg.ReminderEmail)
	scheduler.StartReminderCron(reminder)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
