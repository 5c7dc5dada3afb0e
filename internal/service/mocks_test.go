package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
)

// MockStressLogRepository is a mock implementation of StressLogRepository.
// ListCalls counts store queries so tests can assert cache behavior.
type MockStressLogRepository struct {
	logs      []domain.StressLog
	ListCalls int
	err       error
}

func NewMockStressLogRepository() *MockStressLogRepository {
	return &MockStressLogRepository{}
}

func (m *MockStressLogRepository) Create(ctx context.Context, log *domain.StressLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockStressLogRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.StressLog, error) {
	m.ListCalls++
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.StressLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockStressLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := int64(len(m.logs))
	m.logs = nil
	return count, nil
}

func (m *MockStressLogRepository) SetError(err error) {
	m.err = err
}

// MockMedicineRepository is a mock implementation of MedicineRepository
type MockMedicineRepository struct {
	meds map[uuid.UUID]*domain.Medicine
	err  error
}

func NewMockMedicineRepository() *MockMedicineRepository {
	return &MockMedicineRepository{meds: make(map[uuid.UUID]*domain.Medicine)}
}

func (m *MockMedicineRepository) Create(ctx context.Context, med *domain.Medicine) error {
	if m.err != nil {
		return m.err
	}
	m.meds[med.ID] = med
	return nil
}

func (m *MockMedicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	if m.err != nil {
		return nil, m.err
	}
	med, ok := m.meds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *med
	return &copied, nil
}

func (m *MockMedicineRepository) ListByUser(ctx context.Context, userID string) ([]domain.Medicine, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Medicine
	for _, med := range m.meds {
		if med.UserID == userID {
			result = append(result, *med)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Time < result[j].Time })
	return result, nil
}

func (m *MockMedicineRepository) Update(ctx context.Context, med *domain.Medicine) error {
	if m.err != nil {
		return m.err
	}
	m.meds[med.ID] = med
	return nil
}

func (m *MockMedicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.meds[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.meds, id)
	return nil
}

// MockEmergencyContactRepository is a mock implementation of EmergencyContactRepository
type MockEmergencyContactRepository struct {
	contacts map[string]*domain.EmergencyContact
	err      error
}

func NewMockEmergencyContactRepository() *MockEmergencyContactRepository {
	return &MockEmergencyContactRepository{contacts: make(map[string]*domain.EmergencyContact)}
}

func (m *MockEmergencyContactRepository) Get(ctx context.Context, userID string) (*domain.EmergencyContact, error) {
	if m.err != nil {
		return nil, m.err
	}
	contact, ok := m.contacts[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return contact, nil
}

func (m *MockEmergencyContactRepository) Upsert(ctx context.Context, contact *domain.EmergencyContact) error {
	if m.err != nil {
		return m.err
	}
	m.contacts[contact.UserID] = contact
	return nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	lastContext *domain.InsightsContext
	output      *domain.WellnessInsights
	err         error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.WellnessInsights, error) {
	m.lastContext = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.WellnessInsights{Summary: "ok"}, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
