package domain

import (
	"context"
	"time"

	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// ============ Usecase interface ============

// StartupUsecase read access to startups
type StartupUsecase interface {
	// List startups, optionally searched by name and sorted by name, industry or location
	List(ctx context.Context, opts ListOptions) (Page[entity.Startup], error)

	// Get a startup by id
	Get(ctx context.Context, id int) (*entity.Startup, error)

	// ListByIndustry startups whose industry matches exactly
	ListByIndustry(ctx context.Context, industry string, opts ListOptions) (Page[entity.Startup], error)

	// Industries distinct industries in first-seen order
	Industries(ctx context.Context) ([]string, error)
}

// FundingRoundUsecase read access to funding rounds
type FundingRoundUsecase interface {
	// List rounds narrowed by filter, sorted by amount or date
	List(ctx context.Context, filter RoundFilter, opts ListOptions) (Page[entity.FundingRound], error)

	// ListByStartup rounds of one startup; NOT_FOUND if the startup does not exist
	ListByStartup(ctx context.Context, startupID int) ([]entity.FundingRound, error)

	// Latest the n most recent rounds
	Latest(ctx context.Context, n int) ([]entity.FundingRound, error)

	// ListByRoundType rounds of one round type
	ListByRoundType(ctx context.Context, roundType string, opts ListOptions) (Page[entity.FundingRound], error)
}

// InvestorUsecase read access to investors
type InvestorUsecase interface {
	// List investors sorted by name or total investments
	List(ctx context.Context, opts ListOptions) (Page[entity.Investor], error)

	// Get an investor by id
	Get(ctx context.Context, id int) (*entity.Investor, error)

	// ListByMinTotal investors whose total is at least min
	ListByMinTotal(ctx context.Context, min float64, opts ListOptions) (Page[entity.Investor], error)
}

// InsightUsecase aggregate views over the dataset
type InsightUsecase interface {
	StartupsWithFunding(ctx context.Context, opts ListOptions) (Page[entity.StartupWithFunding], error)
	InvestorPortfolios(ctx context.Context, opts ListOptions) (Page[entity.Investor], error)
	FundingByIndustry(ctx context.Context) ([]entity.IndustryFunding, error)
	// Trends monthly totals, all categories when category is empty
	Trends(ctx context.Context, category string) ([]entity.Trend, error)
	Summary(ctx context.Context) (*entity.Summary, error)
}

// DatasetUsecase inspection and reload of the ingested dataset
type DatasetUsecase interface {
	// Report the ingest report of the cached dataset
	Report(ctx context.Context) (*DatasetReport, error)

	// Reload drops the cached dataset and loads it again
	Reload(ctx context.Context) (*DatasetReport, error)
}

// DatasetReport describes the cached dataset
type DatasetReport struct {
	Source        string
	LoadedAt      time.Time
	Startups      int
	FundingRounds int
	Investors     int
	Report        entity.IngestReport
}
