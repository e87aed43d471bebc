// Package config loads process configuration from the environment (with
// an optional .env file), following the teacher's cfg.MustLoad() call
// site in cmd/main.go.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig configures the authoritative Postgres store.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders a libpq connection string, mirroring the teacher's
// DatabaseConfig.DSN() call in repository/connection.go.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// KafkaConfig configures the queue producer/consumer/DLQ router.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	DLQTopic     string
	Group        string
	WorkerCount  int
}

// SearchConfig configures the Elasticsearch-backed search store.
type SearchConfig struct {
	Addresses       []string
	Index           string
	RefreshInterval time.Duration
}

// CacheConfig configures the Redis-backed look-aside cache.
type CacheConfig struct {
	Addr string
	DB   int
	TTL  time.Duration
}

// BroadcastConfig configures the realtime broadcaster (spec §4.7).
type BroadcastConfig struct {
	Enabled        bool
	IntervalMS     int
	MaxPayload     int
	QueueCap       int
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string
	JSON  bool
}

// Config is the process-wide configuration root.
type Config struct {
	Database  DatabaseConfig
	Kafka     KafkaConfig
	Search    SearchConfig
	Cache     CacheConfig
	Broadcast BroadcastConfig
	Log       LogConfig
	HTTPAddr  string
}

// MustLoad loads a .env file (if present, ignored if absent) and reads
// environment variables into Config, panicking on invalid/missing
// required values, following cfg.MustLoad()'s role in cmd/main.go.
func MustLoad() *Config {
	_ = godotenv.Load() // optional in containerized deployments

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "logs"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers:     splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
			Topic:       getEnv("KAFKA_TOPIC", "logs"),
			DLQTopic:    getEnv("KAFKA_DLQ_TOPIC", "logs.dlq"),
			Group:       getEnv("KAFKA_GROUP", "log-aggregator"),
			WorkerCount: getEnvInt("KAFKA_WORKERS", 3),
		},
		Search: SearchConfig{
			Addresses:       splitCSV(getEnv("ES_ADDRESSES", "http://localhost:9200")),
			Index:           getEnv("ES_INDEX", "logs"),
			RefreshInterval: getEnvDuration("ES_REFRESH_INTERVAL", 5*time.Second),
		},
		Cache: CacheConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
			DB:   getEnvInt("REDIS_DB", 0),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Broadcast: BroadcastConfig{
			Enabled:    getEnvBool("BROADCAST_ENABLED", true),
			IntervalMS: getEnvInt("BROADCAST_INTERVAL_MS", 250),
			MaxPayload: getEnvInt("BROADCAST_MAX_PAYLOAD", 250),
			QueueCap:   getEnvInt("BROADCAST_QUEUE_CAP", 2000),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  getEnvBool("LOG_JSON", true),
		},
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	if len(cfg.Kafka.Brokers) == 0 {
		panic("config: KAFKA_BROKERS must not be empty")
	}
	if cfg.Kafka.WorkerCount <= 0 {
		panic("config: KAFKA_WORKERS must be > 0")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
