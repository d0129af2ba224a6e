package usecase

import (
	"context"
	"log/slog"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
)

type datasetUsecase struct {
	repo   domain.DatasetRepository
	logger *slog.Logger
}

// NewDatasetUsecase creates a DatasetUsecase over the dataset repository
func NewDatasetUsecase(repo domain.DatasetRepository, logger *slog.Logger) domain.DatasetUsecase {
	return &datasetUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *datasetUsecase) Report(ctx context.Context) (*domain.DatasetReport, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	return report(ds), nil
}

func (u *datasetUsecase) Reload(ctx context.Context) (*domain.DatasetReport, error) {
	u.repo.Invalidate()

	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "dataset reloaded",
		"source", ds.Source,
		"startups", len(ds.Startups),
		"funding_rounds", len(ds.FundingRounds),
		"investors", len(ds.Investors),
		"source_error", ds.Report.SourceError,
	)
	return report(ds), nil
}

func report(ds *entity.Dataset) *domain.DatasetReport {
	return &domain.DatasetReport{
		Source:        ds.Source,
		LoadedAt:      ds.LoadedAt,
		Startups:      len(ds.Startups),
		FundingRounds: len(ds.FundingRounds),
		Investors:     len(ds.Investors),
		Report:        ds.Report,
	}
}
