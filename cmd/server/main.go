package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/erp/backoffice/docs"
	appreturns "github.com/erp/backoffice/internal/application/returns"
	"github.com/erp/backoffice/internal/infrastructure/cache"
	"github.com/erp/backoffice/internal/infrastructure/config"
	"github.com/erp/backoffice/internal/infrastructure/currency"
	"github.com/erp/backoffice/internal/infrastructure/datetime"
	"github.com/erp/backoffice/internal/infrastructure/localization"
	"github.com/erp/backoffice/internal/infrastructure/logger"
	"github.com/erp/backoffice/internal/infrastructure/persistence"
	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"github.com/erp/backoffice/internal/infrastructure/web"
	"github.com/erp/backoffice/internal/interfaces/http/handler"
	"github.com/erp/backoffice/internal/interfaces/http/middleware"
	"github.com/erp/backoffice/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Return Request Grid API
//	@version		1.0
//	@description	Admin back-office API for listing and editing return requests
//	@BasePath		/api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.DefaultConfig()
	if cfg.App.Env == "production" {
		logCfg = logger.ProductionConfig()
	}
	logCfg.Level = cfg.Log.Level
	logCfg.Output = cfg.Log.Output
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	baseLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = baseLog.Sync()
	}()

	ctx := context.Background()

	otelCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
		SpanProfiles:      cfg.Telemetry.SpanProfiles && cfg.Telemetry.ProfilingEnabled,
	}

	logLevel, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		baseLog.Fatal("Invalid log level", zap.Error(err))
	}
	logProvider, err := telemetry.NewLoggerProvider(ctx, otelCfg, telemetry.LogsConfig{
		Enabled: cfg.Telemetry.LogsEnabled,
		Level:   logLevel,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log := logProvider.Bridge(baseLog)

	log.Info("Starting return request grid",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingAddress,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}

	tracerProvider, err := telemetry.NewTracerProvider(ctx, otelCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, otelCfg, telemetry.MetricsConfig{
		Enabled:        cfg.Telemetry.MetricsEnabled,
		ExportInterval: cfg.Telemetry.MetricsInterval,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics export", zap.Error(err))
	}
	meter := meterProvider.Meter(cfg.Telemetry.ServiceName)

	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.SlowQueryThresh = cfg.Telemetry.DBSlowQueryThresh
	if cfg.Database.Driver == "sqlite" {
		dbTracing.DBSystem = "sqlite"
	}

	db, err := persistence.NewDatabase(&cfg.Database,
		persistence.WithLogger(log),
		persistence.WithTracing(dbTracing),
		persistence.WithPoolMetrics(meter),
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))
	if cfg.Database.Driver == "sqlite" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}

	returnRepo := persistence.NewGormReturnRequestRepository(db.DB)
	orderItemRepo := persistence.NewGormOrderItemRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	messages, err := cache.NewMessageStoreFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithCleanupInterval(cfg.Grid.MessageCleanup),
	).CreateStore(ctx)
	if err != nil {
		log.Fatal("Failed to create message store", zap.Error(err))
	}
	stores := cache.NewStoreDirectory(storeRepo, cfg.Grid.StoreCacheTTL, log)

	languages, err := cfg.Locale.LanguageTags()
	if err != nil {
		log.Fatal("Invalid language table", zap.Error(err))
	}
	localizer, err := localization.New(languages, cfg.Locale.DefaultLanguageID)
	if err != nil {
		log.Fatal("Failed to load localized resources", zap.Error(err))
	}
	currencies, err := currency.NewService(cfg.Locale.PrimaryCurrency, localizer)
	if err != nil {
		log.Fatal("Invalid primary currency", zap.Error(err))
	}
	dates, err := datetime.NewHelper(cfg.Locale.DisplayTimezone)
	if err != nil {
		log.Fatal("Invalid display timezone", zap.Error(err))
	}

	gridMetrics := telemetry.NewGridMetrics()
	projector := appreturns.NewProjector(appreturns.ProjectorDeps{
		Localizer: localizer,
		Dates:     dates,
		Currency:  currencies,
		URLs:      web.NewURLBuilder("/admin"),
		Messages:  messages,
		Settings:  settingRepo,
		Metrics:   gridMetrics,
		Logger:    log,
	})
	grid := appreturns.NewGridService(returnRepo, orderItemRepo, customerRepo, stores, projector, localizer,
		appreturns.WithProjectionWorkers(cfg.Grid.ProjectionWorkers),
		appreturns.WithDefaultLanguage(cfg.Locale.DefaultLanguageID),
		appreturns.WithMetrics(gridMetrics),
		appreturns.WithLogger(log),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tracing := middleware.DefaultTracingConfig()
	tracing.ServiceName = cfg.Telemetry.ServiceName
	tracing.Enabled = tracerProvider.IsEnabled()

	profiling := middleware.DefaultProfilingConfig()
	profiling.Enabled = profiler.IsEnabled()

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine, err := router.NewEngine(router.EngineConfig{
		Logger:           log,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
		CORS:             cors,
		Tracing:          tracing,
		Profiling:        profiling,
		Meter:            meter,
		MetricsHandler:   promhttp.Handler(),
		LanguageResolver: localizer,
		ReturnRequests:   handler.NewReturnRequestHandler(grid, cfg.Grid.DefaultPageSize, cfg.Grid.MaxPageSize),
		Health: handler.NewHealthHandler(cfg.App.Name, version, map[string]handler.HealthCheck{
			"database": func(context.Context) error { return db.Ping() },
		}),
		DocsHandler: ginSwagger.WrapHandler(swaggerFiles.Handler),
		Swagger: middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		},
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Dependencies go down in reverse order of construction
	if err := messages.Close(); err != nil {
		log.Error("Error closing message store", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracing", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	if err := logProvider.Shutdown(shutdownCtx); err != nil {
		baseLog.Error("Error shutting down log export", zap.Error(err))
	}
}
