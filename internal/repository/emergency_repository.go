package repository

import (
	"context"

	"github.com/pulsepath/pulsepath/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmergencyContactRepository interface {
	Get(ctx context.Context, userID string) (*domain.EmergencyContact, error)
	Upsert(ctx context.Context, contact *domain.EmergencyContact) error
}

type emergencyContactRepository struct {
	db *gorm.DB
}

func NewEmergencyContactRepository(db *gorm.DB) EmergencyContactRepository {
	return &emergencyContactRepository{db: db}
}

func (r *emergencyContactRepository) Get(ctx context.Context, userID string) (*domain.EmergencyContact, error) {
	var contact domain.EmergencyContact
	err := r.db.WithContext(ctx).First(&contact, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *emergencyContactRepository) Upsert(ctx context.Context, contact *domain.EmergencyContact) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"contact", "updated_at"}),
		}).
		Create(contact).Error
}
