package service

import (
	"fmt"

	"studiekompas/internal/dto"
	"studiekompas/internal/models"

	"go.uber.org/zap"
)

// ResultsService presents the recommendations of a session in the results view.
type ResultsService struct {
	logger *zap.Logger
}

func NewResultsService(logger *zap.Logger) *ResultsService {
	return &ResultsService{logger: logger}
}

func (s *ResultsService) List(session *models.Session) (*dto.ResultsResponse, error) {
	session.Lock()
	defer session.Unlock()

	if err := requireResults(session); err != nil {
		return nil, err
	}
	return toResultsResponse(session), nil
}

// Select marks a recommendation as the one shown in the detail pane.
func (s *ResultsService) Select(session *models.Session, id string) (*dto.ResultsResponse, error) {
	session.Lock()
	defer session.Unlock()

	if err := requireResults(session); err != nil {
		return nil, err
	}
	rec, ok := session.FindRecommendation(id)
	if !ok {
		return nil, ErrRecommendationNotFound
	}
	// id may alias a request buffer; keep the session's own copy
	session.SelectedRecommendation = rec.ID
	return toResultsResponse(session), nil
}

func (s *ResultsService) Detail(session *models.Session, id string) (*dto.RecommendationDetailResponse, error) {
	session.Lock()
	defer session.Unlock()

	if err := requireResults(session); err != nil {
		return nil, err
	}
	rec, ok := session.FindRecommendation(id)
	if !ok {
		return nil, ErrRecommendationNotFound
	}
	detail := toRecommendationDetail(rec, session.SelectedRecommendation)
	return &detail, nil
}

func (s *ResultsService) SuggestedQuestion(session *models.Session, id string) (*dto.SuggestedQuestionResponse, error) {
	session.Lock()
	defer session.Unlock()

	if err := requireResults(session); err != nil {
		return nil, err
	}
	rec, ok := session.FindRecommendation(id)
	if !ok {
		return nil, ErrRecommendationNotFound
	}
	return &dto.SuggestedQuestionResponse{
		RecommendationID: rec.ID,
		Question:         SuggestedQuestion(rec),
	}, nil
}

func requireResults(session *models.Session) error {
	if session.View != models.ViewResults || session.Profile == nil {
		return fmt.Errorf("%w: no results to show", ErrInvalidTransition)
	}
	return nil
}

func toResultsResponse(session *models.Session) *dto.ResultsResponse {
	resp := &dto.ResultsResponse{
		Heading:         fmt.Sprintf("Aanbevolen voor %s", session.Profile.Name),
		ProfileSummary:  profileSummary(*session.Profile),
		Recommendations: make([]dto.RecommendationResponse, 0, len(session.Recommendations)),
		SelectedID:      session.SelectedRecommendation,
	}
	for _, r := range session.Recommendations {
		resp.Recommendations = append(resp.Recommendations, toRecommendationResponse(r, session.SelectedRecommendation))
	}
	return resp
}
