package usecase

import (
	"context"
	"log/slog"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/query"
)

type investorUsecase struct {
	repo   domain.DatasetRepository
	logger *slog.Logger
}

// NewInvestorUsecase creates an InvestorUsecase over the dataset repository
func NewInvestorUsecase(repo domain.DatasetRepository, logger *slog.Logger) domain.InvestorUsecase {
	return &investorUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *investorUsecase) List(ctx context.Context, opts domain.ListOptions) (domain.Page[entity.Investor], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.Investor]{}, err
	}

	items := ds.Investors
	if opts.Search != "" {
		items = query.Filter(items, func(i entity.Investor) bool {
			return query.ContainsFold(i.Name, opts.Search)
		})
	}
	items, err = sortInvestors(items, opts)
	if err != nil {
		return domain.Page[entity.Investor]{}, err
	}
	return paginate(items, opts), nil
}

func (u *investorUsecase) Get(ctx context.Context, id int) (*entity.Investor, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	for _, inv := range ds.Investors {
		if inv.ID == id {
			return &inv, nil
		}
	}
	return nil, domain.NewNotFoundError("investor", id)
}

// ListByMinTotal keeps dataset order unless opts asks for a sort
func (u *investorUsecase) ListByMinTotal(ctx context.Context, minTotal float64, opts domain.ListOptions) (domain.Page[entity.Investor], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.Investor]{}, err
	}

	items := query.Filter(ds.Investors, func(i entity.Investor) bool {
		return i.TotalInvestments >= minTotal
	})
	items, err = sortInvestors(items, opts)
	if err != nil {
		return domain.Page[entity.Investor]{}, err
	}
	return paginate(items, opts), nil
}

func sortInvestors(items []entity.Investor, opts domain.ListOptions) ([]entity.Investor, error) {
	dir := direction(opts.Order)
	switch opts.Sort {
	case "":
		return items, nil
	case "name":
		return query.SortText(items, func(i entity.Investor) string { return i.Name }, investorID, dir), nil
	case "total_investments":
		return query.SortNumber(items, func(i entity.Investor) float64 { return i.TotalInvestments }, investorID, dir), nil
	default:
		return nil, unknownSortField(opts.Sort, "name", "total_investments")
	}
}
