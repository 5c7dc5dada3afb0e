package repository

import (
	"context"

	"github.com/pulsepath/pulsepath/internal/domain"
	"gorm.io/gorm"
)

type StressLogRepository interface {
	Create(ctx context.Context, log *domain.StressLog) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.StressLog, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type stressLogRepository struct {
	db *gorm.DB
}

func NewStressLogRepository(db *gorm.DB) StressLogRepository {
	return &stressLogRepository{db: db}
}

func (r *stressLogRepository) Create(ctx context.Context, log *domain.StressLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *stressLogRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.StressLog, error) {
	var logs []domain.StressLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteAll removes every stress log across all users and returns the count.
func (r *stressLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.StressLog{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
