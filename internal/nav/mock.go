package nav

import (
	"context"

	"WealthPlanner/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points []model.NavPoint
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, _ string) ([]model.NavPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Points, nil
}
