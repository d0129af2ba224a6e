package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
	"github.com/lvyanru/startupradar/pkg/logger"
)

// StartupHandler handles startup requests
type StartupHandler struct {
	usecase domain.StartupUsecase
}

// NewStartupHandler creates a new startup handler
func NewStartupHandler(uc domain.StartupUsecase) *StartupHandler {
	return &StartupHandler{usecase: uc}
}

// List GET /api/v1/startups?page=&limit=&sort=&order=&q=
func (h *StartupHandler) List(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	page, err := h.usecase.List(ctx, opts)
	if err != nil {
		logFailure(ctx, "failed to list startups", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToStartupResponse), page.Total)
}

// Get GET /api/v1/startups/:id
func (h *StartupHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	startup, err := h.usecase.Get(ctx, id)
	if err != nil {
		logFailure(ctx, "failed to get startup", err, "id", id)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToStartupResponse(*startup))
}

// ListByIndustry GET /api/v1/startups/industry/:industry
func (h *StartupHandler) ListByIndustry(ctx context.Context, c *app.RequestContext) {
	opts, err := bindList(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	industry := c.Param("industry")
	page, err := h.usecase.ListByIndustry(ctx, industry, opts)
	if err != nil {
		logFailure(ctx, "failed to list startups by industry", err, "industry", industry)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, dto.ConvertList(page.Data, dto.ToStartupResponse), page.Total)
}

// Industries GET /api/v1/industries
func (h *StartupHandler) Industries(ctx context.Context, c *app.RequestContext) {
	industries, err := h.usecase.Industries(ctx)
	if err != nil {
		logFailure(ctx, "failed to list industries", err)
		ErrorResponse(c, err)
		return
	}
	PageResponse(c, industries, len(industries))
}

// logFailure logs lookup misses and bad input at debug and everything else at error
func logFailure(ctx context.Context, msg string, err error, args ...any) {
	level := slog.LevelError
	if domain.IsNotFound(err) || domain.IsInvalidInput(err) {
		level = slog.LevelDebug
	}
	logger.FromContext(ctx).Log(ctx, level, msg, append(args, "error", err)...)
}
