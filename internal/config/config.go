// Package config reads the service configuration from the environment.
// main loads .env via godotenv before calling Load, so local overrides
// live next to the binary.
package config

import "os"

// Broker backend selectors for BROKER_BACKEND.
const (
	BrokerRedis = "redis"
	BrokerNATS  = "nats"
)

// Config holds everything the binaries need to wire the service.
type Config struct {
	// DatabaseDSN is the PostgreSQL DSN.
	DatabaseDSN string
	// RedisAddr / RedisPassword configure the cache and the Redis broker.
	RedisAddr     string
	RedisPassword string
	// NATSUrl configures the NATS broker when selected.
	NATSUrl string
	// BrokerBackend picks the fan-out transport: BrokerRedis or BrokerNATS.
	BrokerBackend string
	// BrokerTopic is the shared fan-out channel name.
	BrokerTopic string
	// JWTSecret signs the access tokens.
	JWTSecret string
	// ListenAddr is the HTTP listen address.
	ListenAddr string
}

// Load reads the configuration, falling back to local-development
// defaults for everything but the JWT secret.
func Load() Config {
	return Config{
		DatabaseDSN:   getenv("DATABASE_URL", "host=localhost user=user password=password dbname=pairchat port=5432 sslmode=disable"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		NATSUrl:       getenv("NATS_URL", "nats://localhost:4222"),
		BrokerBackend: getenv("BROKER_BACKEND", BrokerRedis),
		BrokerTopic:   getenv("BROKER_TOPIC", "chat:events"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
