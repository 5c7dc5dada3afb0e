package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pulsepath/pulsepath/internal/api/validation"
	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/service"
	"github.com/pulsepath/pulsepath/pkg/apierror"
)

type StressLogHandler struct {
	service service.StressLogService
}

func NewStressLogHandler(service service.StressLogService) *StressLogHandler {
	return &StressLogHandler{service: service}
}

// Submit handles POST /api/stress-log
// @Summary Submit stress log
// @Description Record a stress journal entry. The server assigns id, timestamp and date, and returns rule-based wellness suggestions computed from the submitted values.
// @Tags stress
// @Accept json
// @Produce json
// @Param request body domain.CreateStressLogRequest true "Stress entry data"
// @Success 200 {object} domain.SubmitStressLogResponse "Entry saved with suggestions"
// @Failure 400 {object} apierror.Error "Invalid request body"
// @Failure 422 {object} apierror.Error "Validation failed"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /stress-log [post]
func (h *StressLogHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStressLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		apierror.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		apierror.InternalError("Failed to save stress log").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /api/stress-logs/{userId}
// @Summary List recent stress logs
// @Description Fetch the user's most recent entries, newest first. Served from the response cache within its 5-minute TTL.
// @Tags stress
// @Produce json
// @Param userId path string true "User identifier" example(user-123)
// @Param limit query integer false "Maximum entries to return (clamped to 1-100)" default(30)
// @Success 200 {array} domain.StressLog "Entries, descending timestamp"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /stress-logs/{userId} [get]
func (h *StressLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	// Out-of-range and unparseable limits are clamped to the default, never
	// rejected and never passed through to the store.
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	logs, err := h.service.ListRecent(r.Context(), userID, limit)
	if err != nil {
		apierror.InternalError("Failed to list stress logs").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// Reset handles DELETE /api/reset-database
// @Summary Reset database
// @Description Unconditionally delete every stress log across all users and clear the response cache. Returns the number of rows removed.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.ResetResponse "Reset result"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /reset-database [delete]
func (h *StressLogHandler) Reset(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.ResetAll(r.Context())
	if err != nil {
		apierror.InternalError("Failed to reset database").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, domain.ResetResponse{
		Message:        "Database reset successfully",
		DeletedRecords: count,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
