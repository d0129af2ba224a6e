package dto

import (
	"time"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// ListQuery paging, sorting and search parameters shared by list routes
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Sort   string `query:"sort"`
	Order  string `query:"order"`
	Search string `query:"q"`
}

// Validate rejects values that Normalize would otherwise silently replace
func (q ListQuery) Validate() error {
	switch domain.SortOrder(q.Order) {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return domain.NewInvalidInputError("order must be 'asc' or 'desc'")
	}
	if q.Page < 0 || q.Limit < 0 {
		return domain.NewInvalidInputError("page and limit must not be negative")
	}
	return nil
}

// ToListOptions converts the query to normalized domain options
func (q ListQuery) ToListOptions() domain.ListOptions {
	return domain.ListOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Sort:   q.Sort,
		Order:  domain.SortOrder(q.Order),
		Search: q.Search,
	}.Normalize()
}

// RoundQuery filters of the funding round listing
type RoundQuery struct {
	Industries []string `query:"industry"`
	RoundTypes []string `query:"round_type"`
	MinAmount  *float64 `query:"min_amount"`
	MaxAmount  *float64 `query:"max_amount"`
}

// ToRoundFilter converts the query to a domain filter
func (q RoundQuery) ToRoundFilter() domain.RoundFilter {
	return domain.RoundFilter{
		Industries: q.Industries,
		RoundTypes: q.RoundTypes,
		MinAmount:  q.MinAmount,
		MaxAmount:  q.MaxAmount,
	}
}

// StartupResponse represents a startup
type StartupResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`
}

// FundingRoundResponse represents a funding round
type FundingRoundResponse struct {
	ID            int      `json:"id"`
	StartupID     int      `json:"startup_id"`
	RoundType     string   `json:"round_type"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	LeadInvestors []string `json:"lead_investors"`
}

// InvestorResponse represents an investor
type InvestorResponse struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Profile            string   `json:"profile"`
	TotalInvestments   float64  `json:"total_investments"`
	NotableInvestments []string `json:"notable_investments"`
}

// StartupWithFundingResponse a startup with all of its rounds
type StartupWithFundingResponse struct {
	StartupResponse
	FundingRounds []FundingRoundResponse `json:"funding_rounds"`
}

type IndustryFundingResponse struct {
	Industry     string  `json:"industry"`
	TotalFunding float64 `json:"totalFunding"`
	DealCount    int     `json:"dealCount"`
}

type TrendResponse struct {
	ID           int     `json:"id"`
	Category     string  `json:"category"`
	Period       string  `json:"period"`
	TotalFunding float64 `json:"total_funding"`
	DealCount    int     `json:"deal_count"`
}

type SummaryResponse struct {
	StartupCount      int     `json:"startup_count"`
	FundingRoundCount int     `json:"funding_round_count"`
	InvestorCount     int     `json:"investor_count"`
	TotalFunding      float64 `json:"total_funding"`
	AverageRound      float64 `json:"average_round"`
	TopIndustry       string  `json:"top_industry"`
	TopIndustryAmount float64 `json:"top_industry_amount"`
}

// SkipResponse a row dropped or defaulted during ingestion
type SkipResponse struct {
	Line   int    `json:"line"`
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// DatasetReportResponse describes the loaded dataset
type DatasetReportResponse struct {
	Source         string         `json:"source"`
	LoadedAt       string         `json:"loaded_at"`
	Startups       int            `json:"startups"`
	FundingRounds  int            `json:"funding_rounds"`
	Investors      int            `json:"investors"`
	TotalLines     int            `json:"total_lines"`
	BlankLines     int            `json:"blank_lines"`
	Rows           int            `json:"rows"`
	MissingColumns []string       `json:"missing_columns"`
	SkipCounts     map[string]int `json:"skip_counts"`
	Skips          []SkipResponse `json:"skips"`
	SourceError    string         `json:"source_error,omitempty"`
}

// ToStartupResponse converts entity to response
func ToStartupResponse(s entity.Startup) StartupResponse {
	return StartupResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Industry:    s.Industry,
		Location:    s.Location,
		Logo:        s.Logo,
	}
}

// ToFundingRoundResponse converts entity to response
func ToFundingRoundResponse(r entity.FundingRound) FundingRoundResponse {
	leads := r.LeadInvestors
	if leads == nil {
		leads = []string{}
	}
	return FundingRoundResponse{
		ID:            r.ID,
		StartupID:     r.StartupID,
		RoundType:     r.RoundType,
		Amount:        r.Amount,
		Date:          r.Date,
		LeadInvestors: leads,
	}
}

// ToInvestorResponse converts entity to response
func ToInvestorResponse(i entity.Investor) InvestorResponse {
	notable := i.NotableInvestments
	if notable == nil {
		notable = []string{}
	}
	return InvestorResponse{
		ID:                 i.ID,
		Name:               i.Name,
		Profile:            i.Profile,
		TotalInvestments:   i.TotalInvestments,
		NotableInvestments: notable,
	}
}

func ToStartupWithFundingResponse(s entity.StartupWithFunding) StartupWithFundingResponse {
	return StartupWithFundingResponse{
		StartupResponse: ToStartupResponse(s.Startup),
		FundingRounds:   ConvertList(s.FundingRounds, ToFundingRoundResponse),
	}
}

func ToIndustryFundingResponse(f entity.IndustryFunding) IndustryFundingResponse {
	return IndustryFundingResponse{Industry: f.Industry, TotalFunding: f.TotalFunding, DealCount: f.DealCount}
}

func ToTrendResponse(t entity.Trend) TrendResponse {
	return TrendResponse{
		ID:           t.ID,
		Category:     t.Category,
		Period:       t.Period,
		TotalFunding: t.TotalFunding,
		DealCount:    t.DealCount,
	}
}

func ToSummaryResponse(s *entity.Summary) SummaryResponse {
	return SummaryResponse{
		StartupCount:      s.StartupCount,
		FundingRoundCount: s.FundingRoundCount,
		InvestorCount:     s.InvestorCount,
		TotalFunding:      s.TotalFunding,
		AverageRound:      s.AverageRound,
		TopIndustry:       s.TopIndustry,
		TopIndustryAmount: s.TopIndustryAmount,
	}
}

// ToDatasetReportResponse converts the dataset report; LoadedAt is RFC3339
// and empty before the first load
func ToDatasetReportResponse(r *domain.DatasetReport) DatasetReportResponse {
	resp := DatasetReportResponse{
		Source:         r.Source,
		Startups:       r.Startups,
		FundingRounds:  r.FundingRounds,
		Investors:      r.Investors,
		TotalLines:     r.Report.TotalLines,
		BlankLines:     r.Report.BlankLines,
		Rows:           r.Report.Rows,
		MissingColumns: r.Report.MissingColumns,
		SkipCounts:     r.Report.SkipCounts(),
		Skips:          make([]SkipResponse, 0, len(r.Report.Skips)),
		SourceError:    r.Report.SourceError,
	}
	if !r.LoadedAt.IsZero() {
		resp.LoadedAt = r.LoadedAt.Format(time.RFC3339)
	}
	if resp.MissingColumns == nil {
		resp.MissingColumns = []string{}
	}
	for _, s := range r.Report.Skips {
		resp.Skips = append(resp.Skips, SkipResponse{Line: s.Line, Stage: string(s.Stage), Reason: string(s.Reason)})
	}
	return resp
}

// ConvertList maps every item with convert; the result is never nil
func ConvertList[T, R any](items []T, convert func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, convert(it))
	}
	return out
}
