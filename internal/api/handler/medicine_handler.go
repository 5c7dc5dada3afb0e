package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/api/validation"
	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/service"
	"github.com/pulsepath/pulsepath/pkg/apierror"
)

type MedicineHandler struct {
	service service.MedicineService
}

func NewMedicineHandler(service service.MedicineService) *MedicineHandler {
	return &MedicineHandler{service: service}
}

// Add handles POST /api/medicines
// @Summary Add medicine reminder
// @Tags medicines
// @Accept json
// @Produce json
// @Param request body domain.CreateMedicineRequest true "Medicine reminder data"
// @Success 201 {object} domain.Medicine "Reminder created"
// @Failure 400 {object} apierror.Error "Invalid request body"
// @Failure 422 {object} apierror.Error "Validation failed"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /medicines [post]
func (h *MedicineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		apierror.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	med, err := h.service.Add(r.Context(), &req)
	if err != nil {
		apierror.InternalError("Failed to add medicine").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, med)
}

// List handles GET /api/medicines/{userId}
// @Summary List medicine reminders
// @Tags medicines
// @Produce json
// @Param userId path string true "User identifier" example(user-123)
// @Success 200 {array} domain.Medicine "Reminders sorted by time of day"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /medicines/{userId} [get]
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	meds, err := h.service.List(r.Context(), userID)
	if err != nil {
		apierror.InternalError("Failed to list medicines").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, meds)
}

// ToggleTaken handles PATCH /api/medicines/{id}/taken
// @Summary Toggle taken-today flag
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine UUID" format(uuid)
// @Success 200 {object} domain.Medicine "Updated reminder"
// @Failure 400 {object} apierror.Error "Invalid medicine ID"
// @Failure 404 {object} apierror.Error "Medicine not found"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /medicines/{id}/taken [patch]
func (h *MedicineHandler) ToggleTaken(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierror.BadRequest("Invalid medicine ID format").Write(w)
		return
	}

	med, err := h.service.ToggleTaken(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			apierror.NotFound("Medicine not found").Write(w)
			return
		}
		apierror.InternalError("Failed to update medicine").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

// Remove handles DELETE /api/medicines/{id}
// @Summary Remove medicine reminder
// @Tags medicines
// @Param id path string true "Medicine UUID" format(uuid)
// @Success 204 "Reminder removed"
// @Failure 400 {object} apierror.Error "Invalid medicine ID"
// @Failure 404 {object} apierror.Error "Medicine not found"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /medicines/{id} [delete]
func (h *MedicineHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierror.BadRequest("Invalid medicine ID format").Write(w)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			apierror.NotFound("Medicine not found").Write(w)
			return
		}
		apierror.InternalError("Failed to remove medicine").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
