package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
)

// InvestorHandler handles investor requests
type InvestorHandler struct {
	usecase domain.InvestorUsecase
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(uc domain.InvestorUsecase) *InvestorHandler {
	return &InvestorHandler{usecase: uc}
}

// List GET /api/v1/investors
func (h *InvestorHandler) List(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	page, err := h.usecase.List(ctx, opts)
	if err != nil {
		logFailure(ctx, "failed to list investors", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToInvestorResponse), page.Total)
}

// Get GET /api/v1/investors/:id
func (h *InvestorHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	investor, err := h.usecase.Get(ctx, id)
	if err != nil {
		logFailure(ctx, "failed to get investor", err, "id", id)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToInvestorResponse(*investor))
}

// Top GET /api/v1/investors/top?min=
func (h *InvestorHandler) Top(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	minTotal, err := queryFloat(c, "min")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	page, err := h.usecase.ListByMinTotal(ctx, minTotal, opts)
	if err != nil {
		logFailure(ctx, "failed to list top investors", err, "min", minTotal)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToInvestorResponse), page.Total)
}
