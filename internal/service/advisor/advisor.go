package advisor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
	"github.com/legend-harry/pranir-aquatech/pkg/clients/generation"
	"github.com/legend-harry/pranir-aquatech/pkg/clients/retrieval"
)

const (
	aiInsightTimeout    = 20 * time.Second
	aiInsightMaxTokens  = 300
	aiInsightConfidence = 0.7
	retrievalTopK       = 3
)

// Advisor describes the operations the HTTP layer can perform.
type Advisor interface {
	GenerateRecommendations(ctx context.Context, profile models.UserProfile, conditions models.FarmConditions, includeAIInsights bool) ([]models.Recommendation, error)
	ExportRecommendations(recommendations []models.Recommendation, format string) (any, error)
}

// Service evaluates the five deterministic rule families over a farm
// snapshot and optionally augments the output with one AI-sourced insight.
// The deterministic path is a pure function of its inputs; the AI step is the
// only operation that touches the network and its failure never fails a run.
type Service struct {
	generation generation.Client
	retrieval  retrieval.Client
	logger     *zap.Logger
}

// NewService wires an advisor instance. Both collaborator clients may be nil,
// which disables AI insights regardless of the caller's flag.
func NewService(generationClient generation.Client, retrievalClient retrieval.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generation: generationClient,
		retrieval:  retrievalClient,
		logger:     logger,
	}
}

// GenerateRecommendations runs every rule family over the snapshot, merges
// the results with an optional AI insight and returns them sorted by priority
// and confidence.
func (s *Service) GenerateRecommendations(
	ctx context.Context,
	profile models.UserProfile,
	conditions models.FarmConditions,
	includeAIInsights bool,
) ([]models.Recommendation, error) {
	s.logger.Info("generating recommendations",
		zap.String("farm", profile.FarmName),
		zap.Bool("ai_insights", includeAIInsights))

	recommendations := []models.Recommendation{}
	recommendations = append(recommendations, analyzeWaterQuality(conditions)...)
	recommendations = append(recommendations, analyzeFeeding(conditions)...)
	recommendations = append(recommendations, analyzeHealth(conditions)...)
	recommendations = append(recommendations, analyzeFinancials(conditions, profile)...)
	recommendations = append(recommendations, analyzeGrowth(conditions)...)

	if includeAIInsights {
		recommendations = append(recommendations, s.generateAIInsights(ctx, profile, conditions, len(recommendations))...)
	}

	prioritized := Prioritize(recommendations)

	s.logger.Info("recommendations generated",
		zap.String("farm", profile.FarmName),
		zap.Int("count", len(prioritized)))

	return prioritized, nil
}

// generateAIInsights asks the retrieval service for grounding context, sends
// a composed prompt to the generation service and wraps the raw reply as a
// single low-priority recommendation. Any collaborator failure is logged and
// contributes nothing.
func (s *Service) generateAIInsights(
	ctx context.Context,
	profile models.UserProfile,
	conditions models.FarmConditions,
	existingCount int,
) []models.Recommendation {
	if s.generation == nil {
		s.logger.Debug("generation client not configured, skipping ai insights")
		return nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, aiInsightTimeout)
	defer cancel()

	ragContext := ""
	if s.retrieval != nil {
		query := fmt.Sprintf("Best practices for %s shrimp farming with pH %s, DO %s",
			profile.FarmingSystem,
			formatReading(conditions.PH),
			formatReading(conditions.DissolvedOxygen))

		retrieved, err := s.retrieval.RetrieveContext(ctxWithTimeout, query, retrievalTopK)
		if err != nil {
			s.logger.Warn("knowledge retrieval failed, continuing without context", zap.Error(err))
		} else {
			ragContext = retrieved
		}
	}

	prompt := fmt.Sprintf(`Based on the following shrimp farm data, provide 2-3 additional strategic recommendations:

Farm Profile: %s (%s)
Experience Level: %s
Current FCR: %s
Survival Rate: %s%%
Growth Rate: %s g/week

Already recommended: %d actions

Provide innovative, practical recommendations that weren't already suggested.`,
		profile.FarmName,
		profile.FarmingSystem,
		profile.ExperienceLevel,
		formatReading(conditions.FCR),
		formatReading(conditions.SurvivalRate),
		formatReading(conditions.GrowthRate),
		existingCount)

	response, err := s.generation.GenerateText(ctxWithTimeout, prompt, ragContext, aiInsightMaxTokens)
	if err != nil {
		s.logger.Warn("ai insight generation failed", zap.Error(err))
		return nil
	}

	return []models.Recommendation{{
		Priority:       models.PriorityLow,
		Category:       "ai_insight",
		Action:         "AI strategic recommendation",
		Reason:         response,
		ExpectedImpact: "Based on AI analysis of farm data",
		Confidence:     aiInsightConfidence,
	}}
}

func formatReading(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *value)
}

// Prioritize stable-sorts recommendations by priority rank, then by
// descending confidence. Equal pairs keep their insertion order.
func Prioritize(recommendations []models.Recommendation) []models.Recommendation {
	sorted := make([]models.Recommendation, len(recommendations))
	copy(sorted, recommendations)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Priority.Rank(), sorted[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Confidence > sorted[j].Confidence
	})

	return sorted
}
