package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
)

// MockStressLogService is a mock implementation of service.StressLogService
type MockStressLogService struct {
	submitResp *domain.SubmitStressLogResponse
	logs       []domain.StressLog
	summary    *domain.AnalyticsSummary
	resetCount int64
	err        error

	lastUserID string
	lastLimit  int
}

func (m *MockStressLogService) Submit(ctx context.Context, req *domain.CreateStressLogRequest) (*domain.SubmitStressLogResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.submitResp, nil
}

func (m *MockStressLogService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.StressLog, error) {
	m.lastUserID = userID
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if m.logs == nil {
		return []domain.StressLog{}, nil
	}
	return m.logs, nil
}

func (m *MockStressLogService) Analytics(ctx context.Context, userID string) (*domain.AnalyticsSummary, error) {
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

func (m *MockStressLogService) ResetAll(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.resetCount, nil
}

// MockInsightsService is a mock implementation of service.InsightsService
type MockInsightsService struct {
	insights *domain.WellnessInsights
	err      error
}

func (m *MockInsightsService) Generate(ctx context.Context, userID string) (*domain.WellnessInsights, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.insights, nil
}

// MockMedicineService is a mock implementation of service.MedicineService
type MockMedicineService struct {
	med  *domain.Medicine
	meds []domain.Medicine
	err  error

	lastID uuid.UUID
}

func (m *MockMedicineService) Add(ctx context.Context, req *domain.CreateMedicineRequest) (*domain.Medicine, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.med, nil
}

func (m *MockMedicineService) List(ctx context.Context, userID string) ([]domain.Medicine, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.meds == nil {
		return []domain.Medicine{}, nil
	}
	return m.meds, nil
}

func (m *MockMedicineService) ToggleTaken(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.med, nil
}

func (m *MockMedicineService) Remove(ctx context.Context, id uuid.UUID) error {
	m.lastID = id
	return m.err
}

// MockEmergencyService is a mock implementation of service.EmergencyService
type MockEmergencyService struct {
	contact *domain.EmergencyContact
	err     error
}

func (m *MockEmergencyService) Resources() []domain.EmergencyResource {
	return domain.EmergencyResources()
}

func (m *MockEmergencyService) GetContact(ctx context.Context, userID string) (*domain.EmergencyContact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.contact, nil
}

func (m *MockEmergencyService) SetContact(ctx context.Context, userID, contact string) (*domain.EmergencyContact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.EmergencyContact{UserID: userID, Contact: contact}, nil
}
