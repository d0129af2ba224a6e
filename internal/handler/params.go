package handler

import (
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
)

func bindList(c *app.RequestContext) (domain.ListOptions, error) {
	var q dto.ListQuery
	if err := c.BindQuery(&q); err != nil {
		return domain.ListOptions{}, domain.NewInvalidInputError(fmt.Sprintf("invalid query: %v", err))
	}
	if err := q.Validate(); err != nil {
		return domain.ListOptions{}, err
	}
	return q.ToListOptions(), nil
}

func pathID(c *app.RequestContext, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, domain.NewInvalidInputError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

func queryFloat(c *app.RequestContext, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewInvalidInputError(fmt.Sprintf("%s must be a number", name))
	}
	return v, nil
}
