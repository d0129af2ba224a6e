package usecase

import (
	"context"
	"log/slog"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/query"
)

type startupUsecase struct {
	repo   domain.DatasetRepository
	logger *slog.Logger
}

// NewStartupUsecase creates a StartupUsecase over the dataset repository
func NewStartupUsecase(repo domain.DatasetRepository, logger *slog.Logger) domain.StartupUsecase {
	return &startupUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *startupUsecase) List(ctx context.Context, opts domain.ListOptions) (domain.Page[entity.Startup], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.Startup]{}, err
	}

	items := ds.Startups
	if opts.Search != "" {
		items = query.Filter(items, func(s entity.Startup) bool {
			return query.ContainsFold(s.Name, opts.Search)
		})
	}

	items, err = sortStartups(items, opts)
	if err != nil {
		return domain.Page[entity.Startup]{}, err
	}
	return paginate(items, opts), nil
}

func (u *startupUsecase) Get(ctx context.Context, id int) (*entity.Startup, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	for _, s := range ds.Startups {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.NewNotFoundError("startup", id)
}

func (u *startupUsecase) ListByIndustry(ctx context.Context, industry string, opts domain.ListOptions) (domain.Page[entity.Startup], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.Startup]{}, err
	}

	items := query.Filter(ds.Startups, func(s entity.Startup) bool {
		return s.Industry == industry
	})
	items, err = sortStartups(items, opts)
	if err != nil {
		return domain.Page[entity.Startup]{}, err
	}
	return paginate(items, opts), nil
}

func (u *startupUsecase) Industries(ctx context.Context) ([]string, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}

	industries := []string{}
	seen := make(map[string]struct{})
	for _, s := range ds.Startups {
		if _, ok := seen[s.Industry]; ok {
			continue
		}
		seen[s.Industry] = struct{}{}
		industries = append(industries, s.Industry)
	}
	return industries, nil
}

func sortStartups(items []entity.Startup, opts domain.ListOptions) ([]entity.Startup, error) {
	var key func(entity.Startup) string
	switch opts.Sort {
	case "":
		return items, nil
	case "name":
		key = func(s entity.Startup) string { return s.Name }
	case "industry":
		key = func(s entity.Startup) string { return s.Industry }
	case "location":
		key = func(s entity.Startup) string { return s.Location }
	default:
		return nil, unknownSortField(opts.Sort, "name", "industry", "location")
	}
	return query.SortText(items, key, startupID, direction(opts.Order)), nil
}
