package service

import (
	"context"
	"encoding/json"

	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/llm"
	"github.com/pulsepath/pulsepath/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService generates an LLM narrative over a user's recent entries.
type InsightsService interface {
	Generate(ctx context.Context, userID string) (*domain.WellnessInsights, error)
}

type insightsService struct {
	repo      repository.StressLogRepository
	llmClient llm.InsightsLLM
}

func NewInsightsService(repo repository.StressLogRepository, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		repo:      repo,
		llmClient: llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID string) (*domain.WellnessInsights, error) {
	tracer := otel.Tracer("pulsepath-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	sample, err := s.repo.ListRecent(ctx, userID, AnalyticsSampleSize)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		UserID:     userID,
		EntryCount: len(sample),
		Analytics:  Summarize(sample),
	}
	if len(sample) > 0 {
		latest := sample[0]
		insightsCtx.LatestEntry = &latest
		insightsCtx.LatestStressLevel = StressLabel(latest.Mood)
		insightsCtx.LatestSuggestions = GenerateSuggestions(
			latest.Mood,
			floatOrZero(latest.SleepHours),
			floatOrZero(latest.WorkHours),
		)
	}

	if inJSON, err := json.Marshal(insightsCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inJSON)))
	}

	insights, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	if outJSON, err := json.Marshal(insights); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
	}

	return insights, nil
}
