package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pulsepath/pulsepath/internal/llm"
	"github.com/pulsepath/pulsepath/internal/service"
	"github.com/pulsepath/pulsepath/pkg/apierror"
)

type AnalyticsHandler struct {
	stressLogService service.StressLogService
	insightsService  service.InsightsService
}

func NewAnalyticsHandler(stressLogService service.StressLogService, insightsService service.InsightsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		stressLogService: stressLogService,
		insightsService:  insightsService,
	}
}

// Analytics handles GET /api/stress-analytics/{userId}
// @Summary Stress analytics
// @Description Rolling analytics over the user's 14 most recent entries: one-decimal mood/sleep averages, most common trigger, and a chronological trend series. Cached for 5 minutes.
// @Tags stress
// @Produce json
// @Param userId path string true "User identifier" example(user-123)
// @Success 200 {object} domain.AnalyticsSummary "Summary statistics"
// @Failure 500 {object} apierror.Error "Store failure"
// @Router /stress-analytics/{userId} [get]
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	summary, err := h.stressLogService.Analytics(r.Context(), userID)
	if err != nil {
		apierror.InternalError("Failed to compute analytics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Insights handles GET /api/stress-insights/{userId}
// @Summary Wellness insights
// @Description LLM-generated narrative over the user's recent analytics. Unavailable when no OpenAI API key is configured.
// @Tags stress
// @Produce json
// @Param userId path string true "User identifier" example(user-123)
// @Success 200 {object} domain.WellnessInsights "Generated insights"
// @Failure 503 {object} apierror.Error "Insights not configured"
// @Failure 500 {object} apierror.Error "Generation failed"
// @Router /stress-insights/{userId} [get]
func (h *AnalyticsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	insights, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			apierror.Unavailable("Insights are not configured on this server").Write(w)
			return
		}
		apierror.InternalError("Failed to generate insights").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, insights)
}
