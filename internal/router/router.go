package router

import (
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lvyanru/startupradar/internal/config"
	"github.com/lvyanru/startupradar/internal/handler"
	"github.com/lvyanru/startupradar/internal/middleware"
)

// Handlers groups the HTTP handlers wired by Setup
type Handlers struct {
	Startup      *handler.StartupHandler
	FundingRound *handler.FundingRoundHandler
	Investor     *handler.InvestorHandler
	Insight      *handler.InsightHandler
	Dataset      *handler.DatasetHandler
	Health       *handler.HealthHandler
}

// Setup sets up all routes
func Setup(h *server.Hertz, cfg *config.Config, handlers Handlers, logger *slog.Logger) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger(logger))
	h.Use(middleware.CORS(cfg.Server.CORSOrigin))

	if cfg.Observability.EnableMetrics {
		h.Use(middleware.Metrics())
		h.GET(cfg.Observability.MetricsPath, adaptor.HertzHandler(promhttp.Handler()))
	}

	// Health check routes
	h.GET("/ping", handlers.Health.Ping)
	h.GET("/health/ready", handlers.Health.Readiness)
	h.GET("/health/live", handlers.Health.Liveness)

	apiV1 := h.Group("/api/v1")
	{
		startups := apiV1.Group("/startups")
		{
			startups.GET("", handlers.Startup.List)
			startups.GET("/industry/:industry", handlers.Startup.ListByIndustry)
			startups.GET("/:id", handlers.Startup.Get)
			startups.GET("/:id/rounds", handlers.FundingRound.ListByStartup)
		}
		apiV1.GET("/industries", handlers.Startup.Industries)

		rounds := apiV1.Group("/rounds")
		{
			rounds.GET("", handlers.FundingRound.List)
			rounds.GET("/latest", handlers.FundingRound.Latest)
			rounds.GET("/type/:type", handlers.FundingRound.ListByRoundType)
		}

		investors := apiV1.Group("/investors")
		{
			investors.GET("", handlers.Investor.List)
			investors.GET("/top", handlers.Investor.Top)
			investors.GET("/:id", handlers.Investor.Get)
		}

		insights := apiV1.Group("/insights")
		{
			insights.GET("/startups-with-funding", handlers.Insight.StartupsWithFunding)
			insights.GET("/portfolios", handlers.Insight.InvestorPortfolios)
			insights.GET("/funding-by-industry", handlers.Insight.FundingByIndustry)
			insights.GET("/trends", handlers.Insight.Trends)
			insights.GET("/summary", handlers.Insight.Summary)
		}

		dataset := apiV1.Group("/dataset")
		{
			dataset.GET("/report", handlers.Dataset.Report)
			dataset.POST("/reload", handlers.Dataset.Reload)
		}
	}
}
