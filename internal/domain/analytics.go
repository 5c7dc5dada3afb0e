package domain

// TrendPoint is one chronological sample in the trend series.
type TrendPoint struct {
	// 1-based day index, oldest entry first
	Day       int     `json:"day" example:"1"`
	Mood      int     `json:"mood" example:"6"`
	Sleep     float64 `json:"sleep" example:"7.5"`
	Timestamp int64   `json:"timestamp" example:"1717200000"`
}

// AnalyticsSummary is derived from the most recent entries for a user.
// Never persisted; recomputed (or served from cache) per request.
// @Description Rolling analytics over the last 14 stress log entries.
type AnalyticsSummary struct {
	// Mean mood over the sample, one decimal; 0 when no entries
	AverageMood float64 `json:"averageMood" example:"5.4"`
	// Mean sleep hours over the sample, one decimal; missing sleep counts as 0
	AverageSleep float64 `json:"averageSleep" example:"6.8"`
	// Most frequent trigger tag, first-encountered wins ties; "None" when untagged
	MostCommonTrigger string `json:"mostCommonTrigger" example:"Work"`
	// Chronologically ordered projection of the sample for charting
	TrendData []TrendPoint `json:"trendData"`
}

// InsightsContext is the document handed to the LLM for narrative insights.
type InsightsContext struct {
	UserID            string           `json:"user_id"`
	EntryCount        int              `json:"entry_count"`
	Analytics         AnalyticsSummary `json:"analytics"`
	LatestEntry       *StressLog       `json:"latest_entry,omitempty"`
	LatestStressLevel string           `json:"latest_stress_level,omitempty"`
	LatestSuggestions []string         `json:"latest_suggestions,omitempty"`
}

// WellnessInsights is the structured output expected from the LLM.
// @Description LLM-generated narrative over recent stress analytics.
type WellnessInsights struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}
