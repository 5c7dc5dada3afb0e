package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/domain"
)

func newMedicineRouter(svc *MockMedicineService) http.Handler {
	h := NewMedicineHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/medicines", func(r chi.Router) {
		r.Post("/", h.Add)
		r.Get("/{userId}", h.List)
		r.Patch("/{id}/taken", h.ToggleTaken)
		r.Delete("/{id}", h.Remove)
	})
	return r
}

func TestMedicineHandler_Add(t *testing.T) {
	svc := &MockMedicineService{
		med: &domain.Medicine{ID: uuid.New(), UserID: "user-1", Name: "Vitamin D", Time: "08:30"},
	}
	router := newMedicineRouter(svc)

	body := `{"user_id":"user-1","name":"Vitamin D","time":"08:30","dosage":"1000 IU"}`
	req := httptest.NewRequest(http.MethodPost, "/api/medicines", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var med domain.Medicine
	if err := json.NewDecoder(w.Body).Decode(&med); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if med.Name != "Vitamin D" {
		t.Errorf("unexpected medicine: %+v", med)
	}
}

func TestMedicineHandler_Add_InvalidTime(t *testing.T) {
	router := newMedicineRouter(&MockMedicineService{})

	body := `{"user_id":"user-1","name":"Vitamin D","time":"25:99"}`
	req := httptest.NewRequest(http.MethodPost, "/api/medicines", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body: %s", w.Code, w.Body.String())
	}
	assertErrorBody(t, w)
}

func TestMedicineHandler_List(t *testing.T) {
	svc := &MockMedicineService{
		meds: []domain.Medicine{
			{ID: uuid.New(), UserID: "user-1", Name: "Iron", Time: "08:00"},
			{ID: uuid.New(), UserID: "user-1", Name: "Magnesium", Time: "21:30"},
		},
	}
	router := newMedicineRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/medicines/user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var meds []domain.Medicine
	if err := json.NewDecoder(w.Body).Decode(&meds); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(meds) != 2 {
		t.Fatalf("got %d medicines, want 2", len(meds))
	}
}

func TestMedicineHandler_ToggleTaken(t *testing.T) {
	id := uuid.New()
	svc := &MockMedicineService{
		med: &domain.Medicine{ID: id, UserID: "user-1", Name: "Iron", Time: "08:00", TakenToday: true},
	}
	router := newMedicineRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/medicines/"+id.String()+"/taken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.lastID != id {
		t.Errorf("service called with id %v, want %v", svc.lastID, id)
	}

	var med domain.Medicine
	if err := json.NewDecoder(w.Body).Decode(&med); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !med.TakenToday {
		t.Errorf("expected taken_today true: %+v", med)
	}
}

func TestMedicineHandler_ToggleTaken_BadID(t *testing.T) {
	router := newMedicineRouter(&MockMedicineService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/medicines/not-a-uuid/taken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	assertErrorBody(t, w)
}

func TestMedicineHandler_ToggleTaken_NotFound(t *testing.T) {
	router := newMedicineRouter(&MockMedicineService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodPatch, "/api/medicines/"+uuid.NewString()+"/taken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	assertErrorBody(t, w)
}

func TestMedicineHandler_Remove(t *testing.T) {
	svc := &MockMedicineService{}
	router := newMedicineRouter(svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/medicines/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if svc.lastID != id {
		t.Errorf("service called with id %v, want %v", svc.lastID, id)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", w.Body.String())
	}
}

func TestMedicineHandler_Remove_NotFound(t *testing.T) {
	router := newMedicineRouter(&MockMedicineService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/medicines/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	assertErrorBody(t, w)
}
