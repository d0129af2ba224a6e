package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
)

// FundingRoundHandler handles funding round requests
type FundingRoundHandler struct {
	usecase domain.FundingRoundUsecase
}

// NewFundingRoundHandler creates a new funding round handler
func NewFundingRoundHandler(uc domain.FundingRoundUsecase) *FundingRoundHandler {
	return &FundingRoundHandler{usecase: uc}
}

// List GET /api/v1/rounds
//
// Filters: industry and round_type may repeat; min_amount and max_amount are
// inclusive bounds on the converted amount.
func (h *FundingRoundHandler) List(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	var q dto.RoundQuery
	if err := c.BindQuery(&q); err != nil {
		ErrorResponse(c, domain.NewInvalidInputError(fmt.Sprintf("invalid query: %v", err)))
		return
	}

	page, err := h.usecase.List(ctx, q.ToRoundFilter(), opts)
	if err != nil {
		logFailure(ctx, "failed to list funding rounds", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToFundingRoundResponse), page.Total)
}

// ListByStartup GET /api/v1/startups/:id/rounds
func (h *FundingRoundHandler) ListByStartup(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	rounds, err := h.usecase.ListByStartup(ctx, id)
	if err != nil {
		logFailure(ctx, "failed to list rounds of startup", err, "startup_id", id)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(rounds, dto.ToFundingRoundResponse), len(rounds))
}

// Latest GET /api/v1/rounds/latest?n=
func (h *FundingRoundHandler) Latest(ctx context.Context, c *app.RequestContext) {
	n := 0
	if raw := c.Query("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			ErrorResponse(c, domain.NewInvalidInputError("n must be a non-negative integer"))
			return
		}
		n = v
	}

	rounds, err := h.usecase.Latest(ctx, n)
	if err != nil {
		logFailure(ctx, "failed to list latest rounds", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(rounds, dto.ToFundingRoundResponse), len(rounds))
}

// ListByRoundType GET /api/v1/rounds/type/:type
func (h *FundingRoundHandler) ListByRoundType(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	roundType := c.Param("type")
	page, err := h.usecase.ListByRoundType(ctx, roundType, opts)
	if err != nil {
		logFailure(ctx, "failed to list rounds by type", err, "round_type", roundType)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToFundingRoundResponse), page.Total)
}
