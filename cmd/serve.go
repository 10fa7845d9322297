package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/geo_incident_consensus/docs"
	"github.com/shenikar/geo_incident_consensus/internal/cache"
	"github.com/shenikar/geo_incident_consensus/internal/config"
	v1 "github.com/shenikar/geo_incident_consensus/internal/handler/http/v1"
	"github.com/shenikar/geo_incident_consensus/internal/metrics"
	"github.com/shenikar/geo_incident_consensus/internal/repository"
	"github.com/shenikar/geo_incident_consensus/internal/scheduler"
	"github.com/shenikar/geo_incident_consensus/internal/service"
	"github.com/shenikar/geo_incident_consensus/internal/severity"
	"github.com/shenikar/geo_incident_consensus/internal/storage"
	"github.com/shenikar/geo_incident_consensus/internal/webhook"
	"github.com/shenikar/geo_incident_consensus/pkg/logger"
	"github.com/shenikar/geo_incident_consensus/pkg/postgres"
	redisclient "github.com/shenikar/geo_incident_consensus/pkg/redis"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Загрузка конфигурации
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(cfg, logger.New(cfg.LogLevel))
		},
	}
}

func serve(cfg *config.Config, log *logrus.Logger) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	log.Info("Running database migrations...")
	if _, err := postgres.MigrateUp(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Redis нужен для кэша карточек и очереди вебхуков
	var redisClient *goredis.Client
	if cfg.CacheType == "redis" || cfg.WebhookURL != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	detailCache, err := cache.New(cfg.CacheType, redisClient, cfg.CacheTTL)
	if err != nil {
		return err
	}

	// Издатель и воркер вебхуков
	var publisher webhook.Publisher = webhook.NopPublisher{}
	var worker *webhook.Worker
	if cfg.WebhookURL != "" {
		queue := webhook.NewRedisQueue(redisClient)
		publisher = webhook.NewQueuePublisher(queue)
		worker = webhook.NewWorker(queue, log, cfg, metrics.ObserveWebhook)
		worker.Start(ctx)
	} else {
		log.Warn("WEBHOOK_URL is not set, incident events will not be delivered")
	}

	media, err := storage.NewUploadStore(cfg.UploadDir, cfg.MaxUploadMB<<20)
	if err != nil {
		return err
	}

	// Инициализация репозитория и сервиса
	repo := repository.NewRepository(dbpool)
	incidentService := service.NewIncidentService(repo, repo, severity.NewDefault(), detailCache, publisher, log, cfg)

	// Датчик активных инцидентов
	jobs := scheduler.New(log, cfg.StoreTimeout)
	if err := jobs.AddActiveIncidentsRefresh(cfg.MetricsRefreshSpec, repo); err != nil {
		return err
	}
	jobs.RefreshActiveIncidents(ctx, repo)
	jobs.Start()
	defer jobs.Stop()

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, media, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), metrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serveErr:
		stop()
		if worker != nil {
			worker.Wait()
		}
		return fmt.Errorf("error starting HTTP server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if worker != nil {
		worker.Wait()
	}

	log.Info("Server gracefully stopped")
	return nil
}
