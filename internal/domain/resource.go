package domain

import (
	"context"

	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// DatasetRepository gives access to the ingested dataset
type DatasetRepository interface {
	// Dataset returns the cached dataset, loading it on first use
	Dataset(ctx context.Context) (*entity.Dataset, error)
	// Invalidate drops the cached dataset; the next Dataset call reloads
	Invalidate()
	// Loaded reports whether a dataset is cached
	Loaded() bool
}

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListOptions defines paging, sorting and search for list operations
type ListOptions struct {
	Page   int
	Limit  int
	Sort   string // field name, empty keeps dataset order
	Order  SortOrder
	Search string // case-insensitive substring on the name field
}

// Normalize fills defaults and caps the page size
func (o ListOptions) Normalize() ListOptions {
	if o.Page <= 0 {
		o.Page = DefaultPage
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Order != SortDesc {
		o.Order = SortAsc
	}
	return o
}

// RoundFilter narrows the funding round listing
type RoundFilter struct {
	Industries []string
	RoundTypes []string
	MinAmount  *float64
	MaxAmount  *float64
}

// Page is one page of a list together with the unpaged total
type Page[T any] struct {
	Data  []T
	Total int
}
