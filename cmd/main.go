package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"agrismart/backend/internal/ai"
	"agrismart/backend/internal/api/handler"
	"agrismart/backend/internal/auth"
	"agrismart/backend/internal/chathub"
	"agrismart/backend/internal/config"
	"agrismart/backend/internal/models"
	"agrismart/backend/internal/storage"
	"agrismart/backend/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ChatMessage{},
		&models.Product{},
		&models.Review{},
		&models.FarmingTip{},
		&models.Scheme{},
		&models.ForumPost{},
		&models.ForumComment{},
		&models.DiseaseDetection{},
		&models.IrrigationPlan{},
		&models.AIChatEntry{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting AgriSmart Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	store := storage.NewService(db, rdb)

	for _, dir := range []string{"crops", "products", "profiles"} {
		if err := os.MkdirAll(filepath.Join(cfg.UploadDir, dir), 0o755); err != nil {
			log.Fatalf("Failed to create upload directory %s: %v", dir, err)
		}
	}

	hub := chathub.NewHub(store, chathub.NewRoster())
	go hub.Run()
	go chathub.RunRedisBridge(store.SubscribeChat(), hub)

	tokens := auth.NewTokenManager(cfg.JWTSecret, config.TokenTTL)

	r := gin.Default()
	r.MaxMultipartMemory = config.MaxUploadSize

	h := handler.New(
		hub,
		store,
		tokens,
		rdb,
		weather.NewClient(cfg.OpenWeatherAPIKey),
		ai.NewAssistantClient(cfg.OpenAIAPIKey),
		ai.NewSpeechClient(cfg.ElevenLabsAPIKey),
		cfg,
	)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
