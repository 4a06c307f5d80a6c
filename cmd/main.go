package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"helpdesk/backend/internal/account"
	"helpdesk/backend/internal/api/handler"
	"helpdesk/backend/internal/auth"
	"helpdesk/backend/internal/chathub"
	"helpdesk/backend/internal/complaint"
	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/friends"
	"helpdesk/backend/internal/notify"
	"helpdesk/backend/internal/router"
	"helpdesk/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	return db, rdb
}

// buildNotifier assembles the notification fan-out from whatever channels
// are configured. The log notifier is always present so every event leaves
// a trace even on a bare dev setup.
func buildNotifier(cfg *config.Config) notify.Notifier {
	channels := notify.Fanout{notify.LogNotifier{}}

	if cfg.SMTPHost != "" {
		channels = append(channels, notify.NewMailer(cfg))
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramAdminChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
		if err != nil {
			log.Printf("Telegram notifier disabled: %v", err)
		} else {
			channels = append(channels, tg)
		}
	}

	return channels
}

func main() {
	log.Println("Starting Helpdesk Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	store := storage.NewService(db, rdb)

	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := store.SeedComplaintTypes(complaint.DefaultTypes); err != nil {
		log.Fatalf("Failed to seed complaint types: %v", err)
	}
	log.Println("Database and Redis connections established, migrations complete.")

	notifier := buildNotifier(cfg)
	tokens := auth.NewTokenService(cfg.JWTSecret, config.TokenTTL)

	accounts := account.NewService(store, notifier, cfg)
	complaints := complaint.NewService(store, notifier)
	friendSvc := friends.NewService(store)

	hub := chathub.NewManager(store)
	go hub.Run()
	go hub.ListenEvents(store.SubscribeChatEvents())

	h := handler.NewHandler(store, accounts, complaints, friendSvc, tokens, hub, cfg)
	r := router.New(h, tokens, *cfg)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
