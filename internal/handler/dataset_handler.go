package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
	"github.com/lvyanru/startupradar/pkg/logger"
)

// DatasetHandler exposes the ingest report and the reload trigger
type DatasetHandler struct {
	usecase domain.DatasetUsecase
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(uc domain.DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{usecase: uc}
}

// Report GET /api/v1/dataset/report
func (h *DatasetHandler) Report(ctx context.Context, c *app.RequestContext) {
	report, err := h.usecase.Report(ctx)
	if err != nil {
		logFailure(ctx, "failed to get dataset report", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToDatasetReportResponse(report))
}

// Reload POST /api/v1/dataset/reload
func (h *DatasetHandler) Reload(ctx context.Context, c *app.RequestContext) {
	logger.FromContext(ctx).Info("dataset reload requested")

	report, err := h.usecase.Reload(ctx)
	if err != nil {
		logFailure(ctx, "failed to reload dataset", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToDatasetReportResponse(report))
}
