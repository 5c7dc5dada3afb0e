package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(ctx context.Context, med *domain.Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Medicine, error)
	Update(ctx context.Context, med *domain.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, med *domain.Medicine) error {
	return r.db.WithContext(ctx).Create(med).Error
}

func (r *medicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	var med domain.Medicine
	err := r.db.WithContext(ctx).First(&med, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &med, nil
}

func (r *medicineRepository) ListByUser(ctx context.Context, userID string) ([]domain.Medicine, error) {
	var meds []domain.Medicine
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time ASC").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *medicineRepository) Update(ctx context.Context, med *domain.Medicine) error {
	return r.db.WithContext(ctx).Save(med).Error
}

func (r *medicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Medicine{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
