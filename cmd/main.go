package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/logstream/pipeline/docs"
	"github.com/logstream/pipeline/internal/broadcast"
	"github.com/logstream/pipeline/internal/config"
	"github.com/logstream/pipeline/internal/logger"
	"github.com/logstream/pipeline/internal/metrics"
	"github.com/logstream/pipeline/internal/queue"
	"github.com/logstream/pipeline/internal/search"
	"github.com/logstream/pipeline/internal/server"
	"github.com/logstream/pipeline/internal/service/cache"
	"github.com/logstream/pipeline/internal/service/ingest"
	searchsvc "github.com/logstream/pipeline/internal/service/search"
	"github.com/logstream/pipeline/internal/store"
	"github.com/logstream/pipeline/internal/taskrunner"
)

// @title           Log Aggregation Pipeline API
// @version         1.0
// @description     Ingest, search, and realtime-stream structured log records.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	cfg := config.MustLoad()
	log, err := logger.NewLogger((*logger.Config)(&cfg.Log))
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		if err := log.Sync(); err != nil {
			fmt.Printf("failed to sync logger: %v\n", err)
		}
	}()

	log.Info("connecting to database")
	db, err := store.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			fmt.Printf("failed to close database connection: %v\n", err)
		}
	}(db)

	log.Info("running migrations")
	if err := store.RunMigrations(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	durableStore := store.NewPostgresStore(db, log)

	log.Info("connecting to elasticsearch")
	esClient, err := search.NewClient(&cfg.Search)
	if err != nil {
		log.Fatalf("failed to build elasticsearch client: %v", err)
	}
	indexWriter := search.NewIndexWriter(esClient, cfg.Search.Index, log)
	searchStore := search.NewStore(esClient, cfg.Search.Index)

	log.Info("connecting to redis")
	redisClient := cache.NewRedisClient(&cfg.Cache)
	defer func() {
		if err := redisClient.Close(); err != nil {
			fmt.Printf("failed to close redis connection: %v\n", err)
		}
	}()
	resultCache := cache.NewRedisCache(redisClient)

	// The default registry already carries the Go and process collectors and
	// is the one the /metrics endpoint serves.
	appMetrics := metrics.New(prometheus.DefaultRegisterer)
	health := metrics.NewHealthChecker(db, esClient, redisClient, cfg.Kafka.Brokers)

	runner := taskrunner.New(cfg.Kafka.WorkerCount*4, log)

	producer := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log, appMetrics)
	defer producer.Close()

	dlqRouter := queue.NewKafkaDLQRouter(cfg.Kafka.Brokers, cfg.Kafka.DLQTopic, log)
	defer dlqRouter.Close()

	bcast := broadcast.New(broadcast.Config(cfg.Broadcast), broadcast.NoopSink{}, appMetrics, log)
	bcastCtx, cancelBcast := context.WithCancel(context.Background())
	bcast.Start(bcastCtx)

	searchSvc := searchsvc.New(resultCache, searchStore, durableStore, cfg.Cache.TTL, appMetrics, log)
	ingestSvc := ingest.New(producer, appMetrics, 0)

	consumerCfg := queue.ConsumerConfig{
		Brokers:     cfg.Kafka.Brokers,
		Topic:       cfg.Kafka.Topic,
		Group:       cfg.Kafka.Group,
		WorkerCount: cfg.Kafka.WorkerCount,
	}
	consumer := queue.NewConsumer(consumerCfg, durableStore, indexWriter, bcast, dlqRouter, runner, appMetrics, log)
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	consumerErrCh := make(chan error, 1)
	go func() {
		consumerErrCh <- consumer.Run(consumerCtx)
	}()

	log.Info("starting http server")
	app := server.NewServer(ingestSvc, searchSvc, health, log)
	app.Get("/swagger/*", swagger.HandlerDefault)
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	// Shutdown order per spec §9: stop ingest first so no new records are
	// accepted, then drain the consumers (in-flight batches either commit
	// or reach the DLQ), then stop the broadcaster with one final flush,
	// finally close downstream clients (deferred above).
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}

	cancelConsumer()
	select {
	case err := <-consumerErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("consumer stopped: %v", err)
		}
	case <-time.After(10 * time.Second):
		log.Errorf("consumer drain timed out")
	}

	bcast.Stop()
	cancelBcast()

	log.Info("shutdown complete")
}
