package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/config"
	"github.com/lvyanru/startupradar/internal/handler"
	"github.com/lvyanru/startupradar/internal/infrastructure/cache"
	"github.com/lvyanru/startupradar/internal/infrastructure/source"
	"github.com/lvyanru/startupradar/internal/ingest"
	"github.com/lvyanru/startupradar/internal/router"
	"github.com/lvyanru/startupradar/internal/usecase"
	"github.com/lvyanru/startupradar/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "startupradar",
	Short: "StartupRadar API server for startup funding data",
	Long: `StartupRadar serves startups, funding rounds, investors and funding trends
ingested from a single CSV file or URL. The data is loaded once, on first use,
and cached until a reload is requested.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	slog.Info("StartupRadar starting...",
		"version", version,
		"config", cfgFile,
	)

	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))
	if cfg.Server.Mode == "debug" {
		hlog.SetLevel(hlog.LevelDebug)
	} else {
		hlog.SetLevel(hlog.LevelInfo)
	}

	src, err := source.New(cfg.Dataset)
	if err != nil {
		slog.Error("failed to create dataset source", "error", err)
		os.Exit(1)
	}

	pipeline, err := ingest.NewPipeline(cfg.Dataset.AmountMultiplier, slog.Default())
	if err != nil {
		slog.Error("failed to create ingest pipeline", "error", err)
		os.Exit(1)
	}

	datasets := cache.NewDatasetCache(src, pipeline.Load, cfg.Dataset.LoadTimeout, slog.Default())
	slog.Info("dataset source configured", "source", src.Identity(), "preload", cfg.Dataset.Preload)

	if cfg.Dataset.Preload {
		ds, err := datasets.Dataset(context.Background())
		if err != nil {
			slog.Warn("dataset preload failed, it will be retried on first request", "error", err)
		} else {
			slog.Info("dataset preloaded",
				"startups", len(ds.Startups),
				"funding_rounds", len(ds.FundingRounds),
				"investors", len(ds.Investors),
			)
		}
	}

	handlers := router.Handlers{
		Startup:      handler.NewStartupHandler(usecase.NewStartupUsecase(datasets, slog.Default())),
		FundingRound: handler.NewFundingRoundHandler(usecase.NewFundingRoundUsecase(datasets, slog.Default())),
		Investor:     handler.NewInvestorHandler(usecase.NewInvestorUsecase(datasets, slog.Default())),
		Insight:      handler.NewInsightHandler(usecase.NewInsightUsecase(datasets, slog.Default())),
		Dataset:      handler.NewDatasetHandler(usecase.NewDatasetUsecase(datasets, slog.Default())),
		Health:       handler.NewHealthHandler(datasets),
	}

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, cfg, handlers, slog.Default())

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
