package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
)

type insightUsecase struct {
	repo   domain.DatasetRepository
	logger *slog.Logger
}

// NewInsightUsecase creates an InsightUsecase over the dataset repository
func NewInsightUsecase(repo domain.DatasetRepository, logger *slog.Logger) domain.InsightUsecase {
	return &insightUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *insightUsecase) StartupsWithFunding(ctx context.Context, opts domain.ListOptions) (domain.Page[entity.StartupWithFunding], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.StartupWithFunding]{}, err
	}

	startups, err := sortStartups(ds.Startups, opts)
	if err != nil {
		return domain.Page[entity.StartupWithFunding]{}, err
	}

	byStartup := make(map[int][]entity.FundingRound, len(startups))
	for _, r := range ds.FundingRounds {
		byStartup[r.StartupID] = append(byStartup[r.StartupID], r)
	}

	// join only the requested page
	page := paginate(startups, opts)
	out := domain.Page[entity.StartupWithFunding]{
		Data:  make([]entity.StartupWithFunding, 0, len(page.Data)),
		Total: page.Total,
	}
	for _, s := range page.Data {
		rounds := byStartup[s.ID]
		if rounds == nil {
			rounds = []entity.FundingRound{}
		}
		out.Data = append(out.Data, entity.StartupWithFunding{Startup: s, FundingRounds: rounds})
	}
	return out, nil
}

func (u *insightUsecase) InvestorPortfolios(ctx context.Context, opts domain.ListOptions) (domain.Page[entity.Investor], error) {
	opts = opts.Normalize()
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return domain.Page[entity.Investor]{}, err
	}
	items, err := sortInvestors(ds.Investors, opts)
	if err != nil {
		return domain.Page[entity.Investor]{}, err
	}
	return paginate(items, opts), nil
}

// FundingByIndustry lists industries in the order their first startup appears
func (u *insightUsecase) FundingByIndustry(ctx context.Context) ([]entity.IndustryFunding, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	return fundingByIndustry(ds), nil
}

func fundingByIndustry(ds *entity.Dataset) []entity.IndustryFunding {
	out := []entity.IndustryFunding{}
	pos := make(map[string]int)
	industryOf := make(map[int]string, len(ds.Startups))
	for _, s := range ds.Startups {
		industryOf[s.ID] = s.Industry
		if _, ok := pos[s.Industry]; !ok {
			pos[s.Industry] = len(out)
			out = append(out, entity.IndustryFunding{Industry: s.Industry})
		}
	}
	for _, r := range ds.FundingRounds {
		i := pos[industryOf[r.StartupID]]
		out[i].TotalFunding += r.Amount
		out[i].DealCount++
	}
	return out
}

// Trends groups rounds per industry and month. The month comes from the
// Year and Month columns of the source row, or from the round date when those
// are unusable. Rounds without any usable month are left out.
func (u *insightUsecase) Trends(ctx context.Context, category string) ([]entity.Trend, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}

	rowsByLine := make(map[int]entity.Row, len(ds.Rows))
	for _, row := range ds.Rows {
		rowsByLine[row.Line] = row
	}
	industryOf := make(map[int]string, len(ds.Startups))
	for _, s := range ds.Startups {
		industryOf[s.ID] = s.Industry
	}

	type key struct{ category, period string }
	index := make(map[key]int)
	trends := []entity.Trend{}
	dropped := 0

	for _, r := range ds.FundingRounds {
		industry := industryOf[r.StartupID]
		if category != "" && industry != category {
			continue
		}
		period, ok := roundPeriod(r, rowsByLine[r.Line])
		if !ok {
			dropped++
			continue
		}

		k := key{industry, period}
		i, seen := index[k]
		if !seen {
			i = len(trends)
			index[k] = i
			trends = append(trends, entity.Trend{Category: industry, Period: period})
		}
		trends[i].TotalFunding += r.Amount
		trends[i].DealCount++
	}

	if dropped > 0 {
		u.logger.DebugContext(ctx, "rounds without a usable month left out of trends", "count", dropped)
	}

	slices.SortStableFunc(trends, func(a, b entity.Trend) int {
		if c := cmp.Compare(a.Period, b.Period); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	for i := range trends {
		trends[i].ID = i + 1
	}
	return trends, nil
}

func roundPeriod(r entity.FundingRound, row entity.Row) (string, bool) {
	if year, month, ok := yearMonth(row.Year, row.Month); ok {
		return fmt.Sprintf("%04d-%02d", year, month), true
	}
	if t, ok := parseDate(r.Date); ok {
		return t.Format("2006-01"), true
	}
	return "", false
}

// yearMonth accepts a numeric year and a month given as a number or an
// English month name.
func yearMonth(rawYear, rawMonth string) (int, int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, false
	}

	rawMonth = strings.TrimSpace(rawMonth)
	if month, err := strconv.Atoi(rawMonth); err == nil {
		if month < 1 || month > 12 {
			return 0, 0, false
		}
		return year, month, true
	}
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, rawMonth); err == nil {
			return year, int(t.Month()), true
		}
	}
	return 0, 0, false
}

func (u *insightUsecase) Summary(ctx context.Context) (*entity.Summary, error) {
	ds, err := dataset(ctx, u.repo)
	if err != nil {
		return nil, err
	}

	summary := &entity.Summary{
		StartupCount:      len(ds.Startups),
		FundingRoundCount: len(ds.FundingRounds),
		InvestorCount:     len(ds.Investors),
	}
	for _, r := range ds.FundingRounds {
		summary.TotalFunding += r.Amount
	}
	if summary.FundingRoundCount > 0 {
		summary.AverageRound = summary.TotalFunding / float64(summary.FundingRoundCount)
	}

	// first industry wins a tie
	for _, f := range fundingByIndustry(ds) {
		if summary.TopIndustry == "" || f.TotalFunding > summary.TopIndustryAmount {
			summary.TopIndustry = f.Industry
			summary.TopIndustryAmount = f.TotalFunding
		}
	}
	return summary, nil
}
