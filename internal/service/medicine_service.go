package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/repository"
)

type MedicineService interface {
	Add(ctx context.Context, req *domain.CreateMedicineRequest) (*domain.Medicine, error)
	List(ctx context.Context, userID string) ([]domain.Medicine, error)
	ToggleTaken(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type medicineService struct {
	repo repository.MedicineRepository
}

func NewMedicineService(repo repository.MedicineRepository) MedicineService {
	return &medicineService{repo: repo}
}

func (s *medicineService) Add(ctx context.Context, req *domain.CreateMedicineRequest) (*domain.Medicine, error) {
	med := &domain.Medicine{
		ID:     uuid.New(),
		UserID: req.UserID,
		Name:   req.Name,
		Time:   req.Time,
		Dosage: req.Dosage,
	}
	if err := s.repo.Create(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func (s *medicineService) List(ctx context.Context, userID string) ([]domain.Medicine, error) {
	meds, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if meds == nil {
		meds = []domain.Medicine{}
	}
	return meds, nil
}

func (s *medicineService) ToggleTaken(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	med, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	med.TakenToday = !med.TakenToday
	if err := s.repo.Update(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func (s *medicineService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
