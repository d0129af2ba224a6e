package types

import "github.com/lvyanru/startupradar/internal/handler/dto"

// APIResponse is the envelope of single-object answers
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// PageResponse is the envelope of list answers
type PageResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
}

// Items as the server renders them
type (
	Startup            = dto.StartupResponse
	FundingRound       = dto.FundingRoundResponse
	Investor           = dto.InvestorResponse
	StartupWithFunding = dto.StartupWithFundingResponse
	IndustryFunding    = dto.IndustryFundingResponse
	Trend              = dto.TrendResponse
	Summary            = dto.SummaryResponse
	DatasetReport      = dto.DatasetReportResponse
)

// ListParams paging and sorting flags shared by list commands
type ListParams struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Search string
}

// RoundParams filters of the rounds list command
type RoundParams struct {
	ListParams
	Industries []string
	RoundTypes []string
	MinAmount  string
	MaxAmount  string
}
