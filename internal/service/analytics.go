package service

import (
	"math"

	"github.com/pulsepath/pulsepath/internal/domain"
)

// AnalyticsSampleSize is the number of most recent entries analytics run over.
const AnalyticsSampleSize = 14

// Summarize reduces a newest-first sample of entries to summary statistics.
// Averages are rounded to one decimal and are 0 for an empty sample; missing
// sleep hours count as 0.
func Summarize(entries []domain.StressLog) domain.AnalyticsSummary {
	summary := domain.AnalyticsSummary{
		MostCommonTrigger: mostCommonTrigger(entries),
		TrendData:         trendSeries(entries),
	}

	if len(entries) == 0 {
		return summary
	}

	var moodSum, sleepSum float64
	for _, e := range entries {
		moodSum += float64(e.Mood)
		if e.SleepHours != nil {
			sleepSum += *e.SleepHours
		}
	}
	n := float64(len(entries))
	summary.AverageMood = round1(moodSum / n)
	summary.AverageSleep = round1(sleepSum / n)

	return summary
}

// mostCommonTrigger counts non-empty tags in input order and keeps the tag
// with a strictly greater count, so the first-encountered tag wins ties.
func mostCommonTrigger(entries []domain.StressLog) string {
	counts := make(map[string]int)
	var seen []string
	for _, e := range entries {
		if e.Tag == nil || *e.Tag == "" {
			continue
		}
		if counts[*e.Tag] == 0 {
			seen = append(seen, *e.Tag)
		}
		counts[*e.Tag]++
	}

	best := "None"
	bestCount := 0
	for _, tag := range seen {
		if counts[tag] > bestCount {
			best = tag
			bestCount = counts[tag]
		}
	}
	return best
}

// trendSeries reverses the newest-first sample into chronological order and
// assigns 1-based day indices.
func trendSeries(entries []domain.StressLog) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		sleep := 0.0
		if e.SleepHours != nil {
			sleep = *e.SleepHours
		}
		points = append(points, domain.TrendPoint{
			Day:       len(entries) - i,
			Mood:      e.Mood,
			Sleep:     sleep,
			Timestamp: e.Timestamp,
		})
	}
	return points
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
