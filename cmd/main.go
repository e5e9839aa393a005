package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pairchat/backend/internal/api/handler"
	"pairchat/backend/internal/broker"
	"pairchat/backend/internal/chat"
	"pairchat/backend/internal/chathub"
	"pairchat/backend/internal/config"
	"pairchat/backend/internal/models"
	"pairchat/backend/internal/storage"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError turns driver-level unique violations into
	// gorm.ErrDuplicatedKey, which storage maps to ConflictError.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ChatRoom{},
		&models.ChatContent{},
		&models.Alarm{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func setupBroker(cfg config.Config, rdb *redis.Client) broker.Broker {
	switch cfg.BrokerBackend {
	case config.BrokerNATS:
		conn, err := nats.Connect(cfg.NATSUrl)
		if err != nil {
			log.Fatalf("Failed to connect NATS: %v", err)
		}
		log.Printf("Using NATS broker on subject %s", cfg.BrokerTopic)
		return broker.NewNATSBroker(conn, cfg.BrokerTopic)
	default:
		log.Printf("Using Redis broker on channel %s", cfg.BrokerTopic)
		return broker.NewRedisBroker(rdb, cfg.BrokerTopic)
	}
}

func main() {
	log.Println("Starting pairchat backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set!")
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)
	b := setupBroker(cfg, rdb)

	chatSvc := chat.NewService(s, b)
	hub := chathub.NewManagerService(s, b, chatSvc)

	go hub.Run(context.Background())

	r := gin.Default()
	h := handler.NewHandler(hub, chatSvc, []byte(cfg.JWTSecret))

	r.POST("/auth/login", h.Login)
	r.POST("/chat/room", h.CreateRoom)
	r.GET("/chat/rooms", h.ListRooms)
	r.GET("/chat/room/:id/messages", h.RoomHistory)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
