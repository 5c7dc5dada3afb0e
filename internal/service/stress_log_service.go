package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pulsepath/pulsepath/internal/cache"
	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultListLimit is the limit applied when the query omits one.
	DefaultListLimit = 30
	// MaxListLimit bounds the limit passed to the store.
	MaxListLimit = 100
)

type StressLogService interface {
	Submit(ctx context.Context, req *domain.CreateStressLogRequest) (*domain.SubmitStressLogResponse, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.StressLog, error)
	Analytics(ctx context.Context, userID string) (*domain.AnalyticsSummary, error)
	ResetAll(ctx context.Context) (int64, error)
}

type stressLogService struct {
	repo  repository.StressLogRepository
	cache *cache.Cache
	now   func() time.Time
}

func NewStressLogService(repo repository.StressLogRepository, responseCache *cache.Cache) StressLogService {
	return &stressLogService{
		repo:  repo,
		cache: responseCache,
		now:   time.Now,
	}
}

// Submit persists a new entry and returns suggestions computed from the
// submitted values. Both timestamp and date derive from one captured
// instant, so they can't disagree across a midnight boundary.
func (s *stressLogService) Submit(ctx context.Context, req *domain.CreateStressLogRequest) (*domain.SubmitStressLogResponse, error) {
	now := s.now().UTC()

	entry := &domain.StressLog{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Timestamp:  now.Unix(),
		Date:       now.Format("2006-01-02"),
		Mood:       req.Mood,
		Tag:        req.Tag,
		Note:       req.Note,
		SleepHours: req.SleepHours,
		WorkHours:  req.WorkHours,
		HeartRate:  req.HeartRate,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	// Drop this user's cached list/analytics responses so the new entry is
	// visible immediately instead of after TTL expiry.
	s.cache.DeletePrefix(listKeyPrefix(req.UserID))
	s.cache.Delete(analyticsKey(req.UserID))

	suggestions := GenerateSuggestions(req.Mood, floatOrZero(req.SleepHours), floatOrZero(req.WorkHours))

	return &domain.SubmitStressLogResponse{
		ID:          entry.ID,
		Suggestions: suggestions,
		Message:     "Stress log saved successfully",
	}, nil
}

// ListRecent returns at most limit entries for the user, newest first.
// Served from the response cache within the TTL window.
func (s *stressLogService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.StressLog, error) {
	limit = normalizeLimit(limit)

	key := listKey(userID, limit)
	if cached, ok := s.cache.Get(key); ok {
		if logs, ok := cached.([]domain.StressLog); ok {
			return logs, nil
		}
	}

	logs, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.StressLog{}
	}

	s.cache.Set(key, logs)
	return logs, nil
}

// Analytics summarizes the user's most recent entries, serving repeated
// requests from the cache.
func (s *stressLogService) Analytics(ctx context.Context, userID string) (*domain.AnalyticsSummary, error) {
	key := analyticsKey(userID)
	if cached, ok := s.cache.Get(key); ok {
		if summary, ok := cached.(*domain.AnalyticsSummary); ok {
			return summary, nil
		}
	}

	tracer := otel.Tracer("pulsepath-api/analytics")
	ctx, span := tracer.Start(ctx, "StressLogService.Analytics",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("analytics.sample_size", AnalyticsSampleSize),
		),
	)
	defer span.End()

	sample, err := s.repo.ListRecent(ctx, userID, AnalyticsSampleSize)
	if err != nil {
		return nil, err
	}

	summary := Summarize(sample)

	if outJSON, err := json.Marshal(summary); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
	}

	s.cache.Set(key, &summary)
	return &summary, nil
}

// ResetAll deletes every entry across all users and clears the cache.
func (s *stressLogService) ResetAll(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.cache.Clear()
	log.Printf("Database reset: %d records deleted", count)
	return count, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func listKeyPrefix(userID string) string {
	return "stress-logs-" + userID + "-"
}

func listKey(userID string, limit int) string {
	return fmt.Sprintf("%s%d", listKeyPrefix(userID), limit)
}

func analyticsKey(userID string) string {
	return "analytics-" + userID
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
