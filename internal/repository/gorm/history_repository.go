package gorm

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"webpilot/domain/history"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) history.Repository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) CreateRun(ctx context.Context, run *history.Run) error {
	run.ID = uuid.New().String()
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *HistoryRepository) CreateNavigation(ctx context.Context, nav *history.Navigation) error {
	nav.ID = "nav_" + ulid.Make().String()
	return r.db.WithContext(ctx).Create(nav).Error
}

func (r *HistoryRepository) FindNavigations(ctx context.Context, filters history.NavigationFilters) ([]history.Navigation, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if filters.RunID != nil {
		query = query.Where("run_id = ?", *filters.RunID)
	}
	if filters.Remote != nil {
		query = query.Where("remote = ?", *filters.Remote)
	}

	var navs []history.Navigation
	err := query.Find(&navs).Error
	return navs, err
}

func (r *HistoryRepository) CountNavigations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&history.Navigation{}).Count(&count).Error
	return count, err
}

func (r *HistoryRepository) Clear(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&history.Navigation{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&history.Run{}).Error
}
