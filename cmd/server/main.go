package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/honeynil/headless-broker/internal/api"
	"github.com/honeynil/headless-broker/internal/config"
	"github.com/honeynil/headless-broker/internal/handler"
	"github.com/honeynil/headless-broker/internal/infrastructure/auth"
	"github.com/honeynil/headless-broker/internal/infrastructure/buildhook"
	"github.com/honeynil/headless-broker/internal/infrastructure/kafka"
	"github.com/honeynil/headless-broker/internal/infrastructure/redis"
	"github.com/honeynil/headless-broker/internal/observability"
	core "github.com/honeynil/headless-broker/internal/repository/postgres"
	service "github.com/honeynil/headless-broker/internal/services"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	shutdownTracing := observability.Setup(cfg)
	defer shutdownTracing(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping Postgres: %v", err)
	}
	if cfg.AutoMigrate {
		if err := core.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   cfg.RedisPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	userRepo := core.NewPostgresUserRepository(db)
	postRepo := core.NewPostgresPostRepository(db)
	termRepo := core.NewPostgresTermRepository(db)
	menuRepo := core.NewPostgresMenuRepository(db)
	redirectRepo := core.NewPostgresRedirectRepository(db)

	previewSvc := service.NewPreviewService(postRepo, userRepo, auth.NewPreviewSigner([]byte(cfg.PreviewSecret())), service.PreviewConfig{
		TTL:         cfg.PreviewTTL,
		FrontendURL: cfg.PreviewFrontendURL(),
		SiteURL:     cfg.SiteURL,
	})
	taxonomySvc := service.NewTaxonomyService(termRepo, postRepo, userRepo, producer, cfg.ContentTopic, cfg)
	contentSvc := service.NewContentService(menuRepo, redirectRepo, postRepo, termRepo, redisClient)
	deploySvc := service.NewDeployService(redisClient, buildhook.NewClient(cfg.DeployTimeout, cfg.DeployRetries),
		cfg.WebhookURL(), cfg.SiteURL, cfg.DeployThrottle)
	eventSvc := service.NewEventService(deploySvc, taxonomySvc)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.ContentTopic, cfg.ConsumerGroup, eventSvc)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Consume(ctx)
	}()

	h := handler.NewHandler(previewSvc, taxonomySvc, contentSvc)
	router := api.SetupRouter(h, api.RouterConfig{
		JWTSecret:  cfg.JWTSecret,
		CORSOrigin: cfg.CORSOrigin(),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("starting server", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	cancel()
	wg.Wait()
	if err := consumer.Close(); err != nil {
		slog.Error("failed to close Kafka consumer", "error", err)
	}
	slog.Info("server stopped")
}
