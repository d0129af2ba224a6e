//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/cli/client"
	"github.com/lvyanru/startupradar/internal/cli/types"
	"github.com/lvyanru/startupradar/internal/config"
	"github.com/lvyanru/startupradar/internal/handler"
	"github.com/lvyanru/startupradar/internal/infrastructure/cache"
	"github.com/lvyanru/startupradar/internal/infrastructure/source"
	"github.com/lvyanru/startupradar/internal/ingest"
	"github.com/lvyanru/startupradar/internal/router"
	"github.com/lvyanru/startupradar/internal/usecase"
)

const header = "Date,Startup,Industry Vertical,SubVertical,City,Investors Name,InvestmentnType,CR,Year,Month\n"

// TestRadarHTTP boots the full server on a CSV file and drives it through the CLI client.
// Run with: go test -tags integration ./test/integration/
func TestRadarHTTP(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "funding.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(header+
		"09/01/2020,Ola,Mobility,Cabs,Bengaluru,SoftBank,Series F,250,2020,1\n"+
		"13/01/2020,Zetwerk,E-Commerce,B2B,Bengaluru,Sequoia Capital,Series C,90,2020,1\n"+
		"02/03/2020,Swiggy,Food,Delivery,Bengaluru,SoftBank,Series I,120,2020,3\n",
	), 0o644))

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:       "127.0.0.1",
			Port:       testPort(),
			Mode:       "test",
			CORSOrigin: "*",
		},
		Observability: config.ObservabilityConfig{EnableMetrics: true, MetricsPath: "/metrics"},
		Dataset: config.DatasetConfig{
			Path:             csvPath,
			AmountMultiplier: ingest.DefaultAmountMultiplier,
			LoadTimeout:      10 * time.Second,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	src, err := source.New(cfg.Dataset)
	require.NoError(t, err)
	pipeline, err := ingest.NewPipeline(cfg.Dataset.AmountMultiplier, logger)
	require.NoError(t, err)
	datasets := cache.NewDatasetCache(src, pipeline.Load, cfg.Dataset.LoadTimeout, logger)

	h := server.New(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, cfg, router.Handlers{
		Startup:      handler.NewStartupHandler(usecase.NewStartupUsecase(datasets, logger)),
		FundingRound: handler.NewFundingRoundHandler(usecase.NewFundingRoundUsecase(datasets, logger)),
		Investor:     handler.NewInvestorHandler(usecase.NewInvestorUsecase(datasets, logger)),
		Insight:      handler.NewInsightHandler(usecase.NewInsightUsecase(datasets, logger)),
		Dataset:      handler.NewDatasetHandler(usecase.NewDatasetUsecase(datasets, logger)),
		Health:       handler.NewHealthHandler(datasets),
	}, logger)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()
	time.Sleep(time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Shutdown(ctx)
	}()

	api, err := client.NewAPIClient(cfg.GetServerAddr())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("lazy load on first request", func(t *testing.T) {
		assert.False(t, datasets.Loaded())

		page, err := api.ListStartups(ctx, types.ListParams{Sort: "name"})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, "Ola", page.Data[0].Name)
		assert.True(t, datasets.Loaded())
	})

	t.Run("investors aggregate across rounds", func(t *testing.T) {
		page, err := api.ListInvestors(ctx, types.ListParams{Sort: "total_investments", Order: "desc"})
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		assert.Equal(t, "SoftBank", page.Data[0].Name)
		assert.Equal(t, float64(370*ingest.DefaultAmountMultiplier), page.Data[0].TotalInvestments)
		assert.Equal(t, []string{"Ola", "Swiggy"}, page.Data[0].NotableInvestments)
	})

	t.Run("filtered rounds", func(t *testing.T) {
		page, err := api.ListRounds(ctx, types.RoundParams{
			ListParams: types.ListParams{Sort: "amount", Order: "desc"},
			Industries: []string{"Mobility", "Food"},
		})
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		assert.Equal(t, "Series F", page.Data[0].RoundType)
	})

	t.Run("not found surfaces as API error", func(t *testing.T) {
		_, err := api.GetStartup(ctx, 99)
		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
	})

	t.Run("reload picks up the new file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(csvPath, []byte(header+
			"09/01/2020,Ola,Mobility,Cabs,Bengaluru,SoftBank,Series F,250,2020,1\n",
		), 0o644))

		report, err := api.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Startups)

		summary, err := api.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.StartupCount)
		assert.Equal(t, "Mobility", summary.TopIndustry)
	})
}

func testPort() int {
	if port, err := strconv.Atoi(os.Getenv("RADAR_TEST_PORT")); err == nil {
		return port
	}
	return 18090
}
