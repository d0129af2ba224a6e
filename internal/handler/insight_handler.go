package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
)

// InsightHandler serves the aggregate views of the dashboard
type InsightHandler struct {
	usecase domain.InsightUsecase
}

func NewInsightHandler(uc domain.InsightUsecase) *InsightHandler {
	return &InsightHandler{usecase: uc}
}

func (h *InsightHandler) StartupsWithFunding(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	page, err := h.usecase.StartupsWithFunding(ctx, opts)
	if err != nil {
		logFailure(ctx, "failed to join startups with funding", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToStartupWithFundingResponse), page.Total)
}

func (h *InsightHandler) InvestorPortfolios(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	page, err := h.usecase.InvestorPortfolios(ctx, opts)
	if err != nil {
		logFailure(ctx, "failed to list investor portfolios", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToInvestorResponse), page.Total)
}

func (h *InsightHandler) FundingByIndustry(ctx context.Context, c *app.RequestContext) {
	funding, err := h.usecase.FundingByIndustry(ctx)
	if err != nil {
		logFailure(ctx, "failed to aggregate funding by industry", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(funding, dto.ToIndustryFundingResponse), len(funding))
}

// Trends GET /api/v1/insights/trends?category=
func (h *InsightHandler) Trends(ctx context.Context, c *app.RequestContext) {
	trends, err := h.usecase.Trends(ctx, c.Query("category"))
	if err != nil {
		logFailure(ctx, "failed to compute trends", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(trends, dto.ToTrendResponse), len(trends))
}

func (h *InsightHandler) Summary(ctx context.Context, c *app.RequestContext) {
	summary, err := h.usecase.Summary(ctx)
	if err != nil {
		logFailure(ctx, "failed to compute summary", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToSummaryResponse(summary))
}
