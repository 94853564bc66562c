package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrdesk/backend/internal/ai"
	"hrdesk/backend/internal/api/handler"
	"hrdesk/backend/internal/config"
	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

// setupStore picks the storage backend: PostgreSQL when DATABASE_URL is
// set, the in-memory store otherwise.
func setupStore(cfg config.Config) storage.Storage {
	if cfg.DatabaseURL == "" {
		log.Println("No DATABASE_URL set, using in-memory store")
		return storage.NewMemory()
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Meeting{},
		&models.Scenario{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect Redis: %v", err)
		}
	}

	log.Println("Database connection established, migrations complete.")
	return storage.NewStorageService(db, rdb)
}

// setupAnnotator returns the live annotation client, or the disabled stub
// when no endpoint is configured. Entities are then persisted un-annotated.
func setupAnnotator(cfg config.Config) ai.Annotator {
	if cfg.AIBaseURL == "" {
		log.Println("No AI_API_URL set, annotation disabled")
		return ai.Disabled{}
	}
	return ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
}

func main() {
	log.Println("Starting HRDesk Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	store := setupStore(cfg)
	annotator := setupAnnotator(cfg)

	r := gin.Default()
	h := handler.NewHandler(store, annotator, []byte(cfg.JWTSecret))
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second, // annotation runs inline in create handlers
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on :%s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
