package handler

import (
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/startupradar/internal/domain"
)

// Response is the envelope of every API answer
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PagedResponse is the envelope of list answers; data is always present
type PagedResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
}

// SuccessResponse returns a successful response
func SuccessResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
	})
}

// PageResponse returns one page of a list with the unpaged total
func PageResponse(c *app.RequestContext, data interface{}, total int) {
	c.JSON(consts.StatusOK, PagedResponse{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
		Total:   total,
	})
}

// ErrorResponse returns an error response based on error type
func ErrorResponse(c *app.RequestContext, err error) {
	// only domain errors carry a message safe for clients
	userMessage := func(err error) string {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, Response{
			Code:    "NOT_FOUND",
			Message: userMessage(err),
		})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, Response{
			Code:    "INVALID_INPUT",
			Message: userMessage(err),
		})
	case domain.IsUnavailable(err):
		c.JSON(consts.StatusServiceUnavailable, Response{
			Code:    "UNAVAILABLE",
			Message: userMessage(err),
		})
	default:
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}
