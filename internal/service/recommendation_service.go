package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studiekompas/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recommender produces study recommendations for a completed profile.
type Recommender interface {
	GetStudyRecommendations(ctx context.Context, profile models.UserProfile) ([]models.StudyRecommendation, error)
}

type RecommendationService struct {
	provider AIProvider
	count    int
	logger   *zap.Logger
}

func NewRecommendationService(provider AIProvider, count int, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		provider: provider,
		count:    count,
		logger:   logger,
	}
}

// GetStudyRecommendations asks the provider for a schema-constrained list of programs.
func (s *RecommendationService) GetStudyRecommendations(ctx context.Context, profile models.UserProfile) ([]models.StudyRecommendation, error) {
	raw, err := s.provider.GenerateJSON(ctx, StructuredRequest{
		Prompt: BuildRecommendationPrompt(profile, s.count),
		Schema: recommendationSchema(),
	})
	if err != nil {
		s.logger.Error("Error fetching recommendations",
			zap.String("provider", s.provider.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	recs, err := parseRecommendations(raw)
	if err != nil {
		s.logger.Error("Failed to parse recommendations",
			zap.String("provider", s.provider.Name()),
			zap.Int("response_length", len(raw)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	s.logger.Info("Recommendations generated",
		zap.String("provider", s.provider.Name()),
		zap.Int("count", len(recs)),
	)
	return recs, nil
}

// parseRecommendations decodes the provider's JSON array. An empty reply is an empty list.
func parseRecommendations(raw string) ([]models.StudyRecommendation, error) {
	raw = sanitizeUTF8(stripFences(raw))
	if raw == "" {
		return []models.StudyRecommendation{}, nil
	}

	var recs []models.StudyRecommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	seen := make(map[string]bool, len(recs))
	for i := range recs {
		r := &recs[i]
		// ids appear in URL paths and must be unique
		r.ID = pathSafeID(r.ID)
		if r.ID == "" || seen[r.ID] {
			r.ID = uuid.NewString()
		}
		seen[r.ID] = true
	}
	if recs == nil {
		recs = []models.StudyRecommendation{}
	}
	return recs, nil
}

// pathSafeID keeps letters, digits, '.', '_' and '-' and collapses every other run into a single '-'.
func pathSafeID(id string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(id) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			sb.WriteRune(r)
			dash = false
		case !dash:
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(sb.String(), "-.")
}
