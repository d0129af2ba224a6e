package mocks

import (
	"context"

	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// MockDatasetRepository is a mock implementation of domain.DatasetRepository
type MockDatasetRepository struct {
	DatasetFunc    func(ctx context.Context) (*entity.Dataset, error)
	InvalidateFunc func()
	LoadedFunc     func() bool

	// Data is returned by Dataset when DatasetFunc is nil
	Data        *entity.Dataset
	Invalidated int
}

// Dataset mocks the Dataset method
func (m *MockDatasetRepository) Dataset(ctx context.Context) (*entity.Dataset, error) {
	if m.DatasetFunc != nil {
		return m.DatasetFunc(ctx)
	}
	if m.Data != nil {
		return m.Data, nil
	}
	return &entity.Dataset{}, nil
}

// Invalidate mocks the Invalidate method
func (m *MockDatasetRepository) Invalidate() {
	m.Invalidated++
	if m.InvalidateFunc != nil {
		m.InvalidateFunc()
	}
}

// Loaded mocks the Loaded method
func (m *MockDatasetRepository) Loaded() bool {
	if m.LoadedFunc != nil {
		return m.LoadedFunc()
	}
	return m.Data != nil
}
