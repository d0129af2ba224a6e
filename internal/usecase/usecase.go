package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/query"
)

// dataset fetches the cached dataset. Failing to obtain it, typically because
// the caller gave up waiting for a load, is reported as UNAVAILABLE.
func dataset(ctx context.Context, repo domain.DatasetRepository) (*entity.Dataset, error) {
	ds, err := repo.Dataset(ctx)
	if err != nil {
		return nil, domain.NewUnavailableError(err)
	}
	if ds == nil {
		return &entity.Dataset{}, nil
	}
	return ds, nil
}

func direction(order domain.SortOrder) query.Direction {
	if order == domain.SortDesc {
		return query.Descending
	}
	return query.Ascending
}

func paginate[T any](items []T, opts domain.ListOptions) domain.Page[T] {
	return domain.Page[T]{
		Data:  query.Paginate(items, opts.Page, opts.Limit),
		Total: len(items),
	}
}

func unknownSortField(field string, allowed ...string) error {
	return domain.NewInvalidInputError(fmt.Sprintf("unsupported sort field %q, allowed: %v", field, allowed))
}

func startupID(s entity.Startup) int {
	return s.ID
}

func roundID(r entity.FundingRound) int {
	return r.ID
}

func investorID(i entity.Investor) int {
	return i.ID
}

func roundAmount(r entity.FundingRound) float64 {
	return r.Amount
}

// roundTime orders rounds by parsed date; unparseable dates sort before
// every real date so they end up last in descending order.
func roundTime(r entity.FundingRound) float64 {
	t, ok := parseDate(r.Date)
	if !ok {
		return float64(time.Time{}.Unix())
	}
	return float64(t.Unix())
}

func startupsByID(startups []entity.Startup) map[int]entity.Startup {
	m := make(map[int]entity.Startup, len(startups))
	for _, s := range startups {
		m[s.ID] = s
	}
	return m
}
