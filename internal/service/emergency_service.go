package service

import (
	"context"

	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/repository"
)

type EmergencyService interface {
	Resources() []domain.EmergencyResource
	GetContact(ctx context.Context, userID string) (*domain.EmergencyContact, error)
	SetContact(ctx context.Context, userID, contact string) (*domain.EmergencyContact, error)
}

type emergencyService struct {
	contacts repository.EmergencyContactRepository
}

func NewEmergencyService(contacts repository.EmergencyContactRepository) EmergencyService {
	return &emergencyService{contacts: contacts}
}

func (s *emergencyService) Resources() []domain.EmergencyResource {
	return domain.EmergencyResources()
}

func (s *emergencyService) GetContact(ctx context.Context, userID string) (*domain.EmergencyContact, error) {
	return s.contacts.Get(ctx, userID)
}

func (s *emergencyService) SetContact(ctx context.Context, userID, contact string) (*domain.EmergencyContact, error) {
	c := &domain.EmergencyContact{UserID: userID, Contact: contact}
	if err := s.contacts.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
