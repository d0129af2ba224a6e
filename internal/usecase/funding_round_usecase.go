package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/query"
)

type fundingRoundUsecase struct {
	repo   domain.DatasetRepository
	logger *slog.Logger
}

// NewFundingRoundUsecase creates a FundingRoundUsecase over the dataset repository
func NewFundingRoundUsecase(repo domain.DatasetRepository, logger *slog.Logger) domain.FundingRoundUsecase {
	return &fundingRoundUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *fundingRoundUsecase) List(ctx context.Context, filter domain.RoundFilter, opts domain.ListOptions) (domain.Page[entity.FundingRound], error) {
	opts = opts.Normalize()
	if filter.MinAmount != nil && filter.MaxAmount != nil && *filter.MinAmount > *filter.MaxAmount {
		return domain.Page[entity.FundingRound]{}, domain.NewInvalidInputError("min_amount must not exceed max_amount")
	}

	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.FundingRound]{}, err
	}

	startups := startupsByID(ds.Startups)
	items := query.Filter(ds.FundingRounds, func(r entity.FundingRound) bool {
		if !query.Contains(filter.Industries, startups[r.StartupID].Industry) {
			return false
		}
		if !query.Contains(filter.RoundTypes, r.RoundType) {
			return false
		}
		if filter.MinAmount != nil && r.Amount < *filter.MinAmount {
			return false
		}
		if filter.MaxAmount != nil && r.Amount > *filter.MaxAmount {
			return false
		}
		return true
	})

	items, err = sortRounds(items, opts)
	if err != nil {
		return domain.Page[entity.FundingRound]{}, err
	}
	return paginate(items, opts), nil
}

func (u *fundingRoundUsecase) ListByStartup(ctx context.Context, startupID int) ([]entity.FundingRound, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	if _, ok := startupsByID(ds.Startups)[startupID]; !ok {
		return nil, domain.NewNotFoundError("startup", startupID)
	}
	return roundsOf(ds.FundingRounds, startupID), nil
}

// Latest orders rounds by date, newest first. Rounds with an unparseable
// date come last and equal dates keep dataset order.
func (u *fundingRoundUsecase) Latest(ctx context.Context, n int) ([]entity.FundingRound, error) {
	if n <= 0 {
		n = domain.DefaultLimit
	}
	n = min(n, domain.MaxLimit)

	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}

	type dated struct {
		round entity.FundingRound
		ts    int64
		ok    bool
	}
	all := make([]dated, 0, len(ds.FundingRounds))
	for _, r := range ds.FundingRounds {
		t, ok := parseDate(r.Date)
		all = append(all, dated{round: r, ts: t.Unix(), ok: ok})
	}
	slices.SortStableFunc(all, func(a, b dated) int {
		switch {
		case a.ok != b.ok:
			if a.ok {
				return -1
			}
			return 1
		case !a.ok:
			return 0
		}
		return cmp.Compare(b.ts, a.ts)
	})

	out := make([]entity.FundingRound, 0, min(n, len(all)))
	for _, d := range all[:min(n, len(all))] {
		out = append(out, d.round)
	}
	return out, nil
}

func (u *fundingRoundUsecase) ListByRoundType(ctx context.Context, roundType string, opts domain.ListOptions) (domain.Page[entity.FundingRound], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.FundingRound]{}, err
	}

	items := query.Filter(ds.FundingRounds, func(r entity.FundingRound) bool {
		return r.RoundType == roundType
	})
	items, err = sortRounds(items, opts)
	if err != nil {
		return domain.Page[entity.FundingRound]{}, err
	}
	return paginate(items, opts), nil
}

func roundsOf(rounds []entity.FundingRound, startupID int) []entity.FundingRound {
	return query.Filter(rounds, func(r entity.FundingRound) bool {
		return r.StartupID == startupID
	})
}

func sortRounds(items []entity.FundingRound, opts domain.ListOptions) ([]entity.FundingRound, error) {
	switch opts.Sort {
	case "":
		return items, nil
	case "amount":
		return query.SortNumber(items, roundAmount, roundID, direction(opts.Order)), nil
	case "date":
		return query.SortNumber(items, roundTime, roundID, direction(opts.Order)), nil
	default:
		return nil, unknownSortField(opts.Sort, "amount", "date")
	}
}
