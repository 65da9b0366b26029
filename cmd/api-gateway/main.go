package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/nextup-mentor/nextup-api/api/swagger"
	"github.com/nextup-mentor/nextup-api/internal/handler"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/repository"
	"github.com/nextup-mentor/nextup-api/internal/service"
	"github.com/nextup-mentor/nextup-api/pkg/cache"
	"github.com/nextup-mentor/nextup-api/pkg/config"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	"github.com/nextup-mentor/nextup-api/pkg/database"
	"github.com/nextup-mentor/nextup-api/pkg/llm"
	"github.com/nextup-mentor/nextup-api/pkg/logger"
	corsmiddleware "github.com/nextup-mentor/nextup-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nextup-mentor/nextup-api/pkg/middleware/requestid"
	"github.com/nextup-mentor/nextup-api/pkg/storage"
)

// @title NextUp Mentor API
// @version 1.0.0
// @description Packages, enrollments, messages, destinations and the chat assistant.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey AdminToken
// @in header
// @name Authorization

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	metrics := service.NewMetricsService()
	validate := validator.New()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving without cache", zap.Error(err))
		} else {
			defer client.Close()
			cacheRepo = repository.NewCacheRepository(client)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cacheRepo != nil)

	httpClient := &http.Client{Timeout: cfg.Backend.Timeout}
	store, err := storage.New(cfg, httpClient)
	if err != nil {
		logr.Fatal("failed to init storage", zap.Error(err))
	}

	packageRepo := repository.NewPackageRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)

	converter := currency.NewConverter(cfg.Currency.EURRate)
	media := service.NewMediaService(store, service.MediaConfig{
		PackageBucket:    cfg.Storage.PackageBucket,
		ScreenshotBucket: cfg.Storage.ScreenshotBucket,
		MaxUploadBytes:   cfg.Storage.MaxUploadSizeBytes,
	}, metrics, logr)

	packageSvc := service.NewPackageService(packageRepo, cacheSvc, validate, logr)
	destinationSvc := service.NewDestinationService(destinationRepo, cacheSvc, validate, logr)
	messageSvc := service.NewMessageService(messageRepo, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, packageRepo, media, metrics, validate, logr)

	adminAuth := service.NewAdminAuthService(validate, logr, service.AdminAuthConfig{
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		TokenSecret:  cfg.Admin.TokenSecret,
		TokenTTL:     cfg.Admin.TokenTTL,
	})
	dashboardSvc := service.NewDashboardService(packageRepo, enrollmentRepo, messageRepo, destinationRepo, metrics, logr)
	exportSvc := service.NewExportService(enrollmentSvc)
	paymentSvc := service.NewPaymentMethodService(cfg.Payments)

	prompt, err := service.LoadSystemPrompt(cfg.Chat.SystemPromptFile)
	if err != nil {
		logr.Fatal("failed to load chat prompt", zap.Error(err))
	}
	completer := llm.NewBreaker(llm.NewClient(llm.Options{
		URL:         cfg.Chat.APIURL,
		APIKey:      cfg.Chat.APIKey,
		Model:       cfg.Chat.Model,
		Temperature: cfg.Chat.Temperature,
		MaxTokens:   cfg.Chat.MaxTokens,
		Timeout:     cfg.Chat.Timeout,
	}, nil), llm.BreakerSettings{
		Name:                "llm",
		ConsecutiveFailures: cfg.Chat.BreakerFailures,
		OpenFor:             cfg.Chat.BreakerOpenFor,
		OnStateChange: func(name, from, to string) {
			metrics.SetBreakerState(name, to)
			logr.Warn("circuit breaker state changed", zap.String("name", name), zap.String("from", from), zap.String("to", to))
		},
	})
	chatSvc := service.NewChatService(completer, prompt, metrics, logr)
	if cfg.Chat.APIKey == "" {
		logr.Warn("chat api key not configured, chat requests will fail")
	}

	handlers := handler.Handlers{
		Catalog:      handler.NewCatalogHandler(packageSvc, destinationSvc, paymentSvc, converter),
		Submissions:  handler.NewSubmissionHandler(enrollmentSvc, messageSvc, converter, cfg.Storage.MaxUploadSizeBytes),
		Auth:         handler.NewAuthHandler(adminAuth),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc, converter),
		Enrollments:  handler.NewEnrollmentHandler(enrollmentSvc, exportSvc, converter),
		Messages:     handler.NewMessageHandler(messageSvc),
		Packages:     handler.NewPackageHandler(packageSvc, media, converter),
		Destinations: handler.NewDestinationHandler(destinationSvc),
		Chat:         handler.NewChatHandler(chatSvc),
		Currency:     handler.NewCurrencyHandler(converter),
	}
	if local, ok := store.(*storage.LocalStorage); ok {
		handlers.Files = handler.NewFileHandler(local)
	}
	metricsHandler := handler.NewMetricsHandler(metrics, db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(corsmiddleware.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}))
	r.Use(middleware.Metrics(metrics, "/metrics", "/health"))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handlers, middleware.AdminJWT(adminAuth))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("storage", cfg.Storage.Driver),
			zap.Bool("cache", cacheSvc.Enabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
	logr.Info("server exited")
}
