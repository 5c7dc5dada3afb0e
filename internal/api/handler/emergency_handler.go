package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pulsepath/pulsepath/internal/api/validation"
	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/service"
	"github.com/pulsepath/pulsepath/pkg/apierror"
)

type EmergencyHandler struct {
	service service.EmergencyService
}

func NewEmergencyHandler(service service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{service: service}
}

// Resources handles GET /api/emergency-resources
// @Summary Emergency resource directory
// @Tags emergency
// @Produce json
// @Success 200 {array} domain.EmergencyResource "Static emergency directory"
// @Router /emergency-resources [get]
func (h *EmergencyHandler) Resources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Resources())
}

// GetContact handles GET /api/emergency-contact/{userId}
// @Summary Get emergency contact
// @Tags emergency
// @Produce json
// @Param userId path string true "User identifier" example(user-123)
// @Success 200 {object} domain.EmergencyContact "Stored contact"
// @Failure 404 {object} apierror.Error "No contact stored"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /emergency-contact/{userId} [get]
func (h *EmergencyHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	contact, err := h.service.GetContact(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			apierror.NotFound("No emergency contact stored").Write(w)
			return
		}
		apierror.InternalError("Failed to load emergency contact").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// SetContact handles PUT /api/emergency-contact/{userId}
// @Summary Set emergency contact
// @Tags emergency
// @Accept json
// @Produce json
// @Param userId path string true "User identifier" example(user-123)
// @Param request body domain.UpdateEmergencyContactRequest true "Contact data"
// @Success 200 {object} domain.EmergencyContact "Stored contact"
// @Failure 400 {object} apierror.Error "Invalid request body"
// @Failure 422 {object} apierror.Error "Validation failed"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /emergency-contact/{userId} [put]
func (h *EmergencyHandler) SetContact(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req domain.UpdateEmergencyContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		apierror.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	contact, err := h.service.SetContact(r.Context(), userID, req.Contact)
	if err != nil {
		apierror.InternalError("Failed to save emergency contact").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}
