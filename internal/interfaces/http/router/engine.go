package router

import (
	"net/http"

	"github.com/erp/backoffice/internal/infrastructure/logger"
	"github.com/erp/backoffice/internal/interfaces/http/handler"
	"github.com/erp/backoffice/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig carries everything the admin HTTP engine is assembled from
type EngineConfig struct {
	Logger         *zap.Logger
	TrustedProxies []string
	CORS           middleware.CORSConfig
	Tracing        middleware.TracingConfig
	Profiling      middleware.ProfilingConfig
	// Meter records OTLP HTTP metrics; nil disables them
	Meter            metric.Meter
	MetricsHandler   http.Handler
	LanguageResolver middleware.LanguageResolver
	ReturnRequests   *handler.ReturnRequestHandler
	Health           *handler.HealthHandler
	// DocsHandler serves /swagger/*any behind Swagger; nil skips the route
	DocsHandler gin.HandlerFunc
	Swagger     middleware.SwaggerConfig
}

// NewEngine builds the gin engine: global middleware, /health, /metrics,
// the API docs and the admin API under /api/v1/admin
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := middleware.SetupValidator(); err != nil {
		return nil, err
	}

	engine := gin.New()
	if len(cfg.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request id feeds the logger and span enrichment,
	// and the language must be known before the span is enriched.
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		middleware.Tracing(cfg.Tracing),
		logger.GinMiddleware(log),
		middleware.HTTPMetrics(cfg.Meter),
		middleware.Secure(),
		middleware.CORS(cfg.CORS),
	)

	if cfg.Health != nil {
		engine.GET("/health", cfg.Health.Health)
	}
	if cfg.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}
	if cfg.DocsHandler != nil {
		engine.GET("/swagger/*any", middleware.SwaggerProtection(cfg.Swagger), cfg.DocsHandler)
	}

	r := NewRouter(engine, WithAPIVersion("v1"), WithBasePath("/admin"))
	if cfg.LanguageResolver != nil {
		r.Use(middleware.Language(cfg.LanguageResolver))
	}
	r.Use(middleware.Session(), middleware.SpanEnricher(), middleware.Profiling(cfg.Profiling))

	if h := cfg.ReturnRequests; h != nil {
		returnRoutes := NewDomainGroup("returns", "/return-requests")
		returnRoutes.GET("", h.List)
		returnRoutes.GET("/filters", h.Filters)
		returnRoutes.GET("/:id", h.Get)
		r.Register(returnRoutes)
	}
	r.Setup()

	return engine, nil
}
