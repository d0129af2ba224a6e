package mocks

import (
	"context"

	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// MockStartupUsecase is a mock implementation of domain.StartupUsecase
type MockStartupUsecase struct {
	ListFunc           func(ctx context.Context, opts domain.ListOptions) (domain.Page[entity.Startup], error)
	GetFunc            func(ctx context.Context, id int) (*entity.Startup, error)
	ListByIndustryFunc func(ctx context.Context, industry string, opts domain.ListOptions) (domain.Page[entity.Startup], error)
	IndustriesFunc     func(ctx context.Context) ([]string, error)
}

// List mocks the List method
func (m *MockStartupUsecase) List(ctx context.Context, opts domain.ListOptions) (domain.Page[entity.Startup], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return domain.Page[entity.Startup]{Data: []entity.Startup{}}, nil
}

// Get mocks the Get method
func (m *MockStartupUsecase) Get(ctx context.Context, id int) (*entity.Startup, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &entity.Startup{ID: id}, nil
}

// ListByIndustry mocks the ListByIndustry method
func (m *MockStartupUsecase) ListByIndustry(ctx context.Context, industry string, opts domain.ListOptions) (domain.Page[entity.Startup], error) {
	if m.ListByIndustryFunc != nil {
		return m.ListByIndustryFunc(ctx, industry, opts)
	}
	return domain.Page[entity.Startup]{Data: []entity.Startup{}}, nil
}

// Industries mocks the Industries method
func (m *MockStartupUsecase) Industries(ctx context.Context) ([]string, error) {
	if m.IndustriesFunc != nil {
		return m.IndustriesFunc(ctx)
	}
	return []string{}, nil
}

// MockDatasetUsecase is a mock implementation of domain.DatasetUsecase
type MockDatasetUsecase struct {
	ReportFunc func(ctx context.Context) (*domain.DatasetReport, error)
	ReloadFunc func(ctx context.Context) (*domain.DatasetReport, error)
}

// Report mocks the Report method
func (m *MockDatasetUsecase) Report(ctx context.Context) (*domain.DatasetReport, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx)
	}
	return &domain.DatasetReport{}, nil
}

// Reload mocks the Reload method
func (m *MockDatasetUsecase) Reload(ctx context.Context) (*domain.DatasetReport, error) {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return &domain.DatasetReport{}, nil
}
