package history

import "context"

type Repository interface {
	CreateRun(ctx context.Context, run *Run) error
	CreateNavigation(ctx context.Context, nav *Navigation) error
	FindNavigations(ctx context.Context, filters NavigationFilters) ([]Navigation, error)
	CountNavigations(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}
