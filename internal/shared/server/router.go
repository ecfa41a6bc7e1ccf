package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stonkie-backend/internal/analysis"
	"stonkie-backend/internal/faq"
	"stonkie-backend/internal/shared/config"
	"stonkie-backend/internal/shared/metrics"
	"stonkie-backend/internal/shared/server/middleware"
	"stonkie-backend/internal/shared/server/respond"
	"stonkie-backend/internal/statements"
)

const (
	rateGroupDefault = "DEFAULT"
	rateGroupLLM     = "LLM"
)

// RouterDeps holds handlers required to build the router.
type RouterDeps struct {
	Config            config.Config
	StatementsHandler *statements.Handler
	AnalysisHandler   *analysis.Handler
	FAQHandler        *faq.Handler
	RateLimiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	limited := api.Group("")
	limited.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules:        rateRules(deps.Config),
		DefaultGroup: rateGroupDefault,
		GroupFor:     rateGroupFor,
		Limiter:      deps.RateLimiter,
	}))

	if deps.StatementsHandler != nil {
		deps.StatementsHandler.RegisterRoutes(limited)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(limited)
	}
	if deps.FAQHandler != nil {
		deps.FAQHandler.RegisterRoutes(limited)
	}

	return r
}

// Generation-backed routes share a tighter budget than plain reads.
func rateGroupFor(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case c.Request.Method == http.MethodPost && path == "/api/company/analyze":
		return rateGroupLLM
	case strings.HasPrefix(path, "/api/faq"):
		return rateGroupLLM
	default:
		return rateGroupDefault
	}
}

func rateRules(cfg config.Config) map[string]middleware.RateLimitRule {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 20
	}
	llmBurst := burst / 5
	if llmBurst < 1 {
		llmBurst = 1
	}
	return map[string]middleware.RateLimitRule{
		rateGroupDefault: {Rate: rps, Burst: burst},
		rateGroupLLM:     {Rate: rps / 10, Burst: llmBurst},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
