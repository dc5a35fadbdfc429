package nav

import (
	"context"

	"WealthPlanner/internal/model"
)

// Fetcher returns a fund's full NAV history, oldest first. Implementations
// are treated as unreliable: they may return no data, time out, or error.
type Fetcher interface {
	FetchHistory(ctx context.Context, code string) ([]model.NavPoint, error)
	Name() string
}
