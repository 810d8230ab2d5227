package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studiekompas/internal/dto"
	"studiekompas/internal/models"
	"studiekompas/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlowService drives a session through welcome, questionnaire, loading and results.
type FlowService struct {
	sessions      *repository.SessionRepository
	questionnaire *Questionnaire
	recommender   Recommender
	aiTimeout     time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewFlowService(
	sessions *repository.SessionRepository,
	questionnaire *Questionnaire,
	recommender Recommender,
	aiTimeout time.Duration,
	logger *zap.Logger,
) *FlowService {
	return &FlowService{
		sessions:      sessions,
		questionnaire: questionnaire,
		recommender:   recommender,
		aiTimeout:     aiTimeout,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateSession starts a new visitor on the welcome screen.
func (s *FlowService) CreateSession() dto.SessionResponse {
	session := models.NewSession(s.now())
	s.sessions.Create(session)
	s.logger.Info("Session created",
		zap.String("session_id", session.ID.String()),
		zap.Int("active_sessions", s.sessions.Count()),
	)

	session.Lock()
	defer session.Unlock()
	return toSessionResponse(session)
}

// Lookup returns the stored session for id.
func (s *FlowService) Lookup(id uuid.UUID) (*models.Session, error) {
	session, ok := s.sessions.GetByID(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *FlowService) Get(session *models.Session) dto.SessionResponse {
	session.Lock()
	defer session.Unlock()
	return toSessionResponse(session)
}

// Start opens the questionnaire with a fresh draft.
func (s *FlowService) Start(session *models.Session) (dto.SessionResponse, error) {
	session.Lock()
	defer session.Unlock()

	if session.View != models.ViewWelcome {
		return dto.SessionResponse{}, fmt.Errorf("%w: start from %s", ErrInvalidTransition, session.View)
	}
	session.View = models.ViewQuestionnaire
	session.Step = 1
	session.Draft = models.DefaultProfile()
	session.Error = ""
	s.touch(session)
	return toSessionResponse(session), nil
}

// Reset returns to the welcome screen and forgets everything from the current pass.
func (s *FlowService) Reset(session *models.Session) dto.SessionResponse {
	session.Lock()
	defer session.Unlock()

	session.Generation++
	session.View = models.ViewWelcome
	session.Step = 1
	session.Draft = models.DefaultProfile()
	session.Profile = nil
	session.Recommendations = nil
	session.SelectedRecommendation = ""
	session.Chat = nil
	session.ChatInFlight = false
	session.Error = ""
	s.touch(session)

	s.logger.Info("Session reset",
		zap.String("session_id", session.ID.String()),
		zap.Uint64("generation", session.Generation),
	)
	return toSessionResponse(session)
}

// End forgets the session. Pending AI results for it are discarded.
func (s *FlowService) End(session *models.Session) {
	session.Lock()
	session.Generation++
	session.ChatInFlight = false
	session.Unlock()

	s.sessions.Delete(session.ID)
	s.logger.Info("Session ended",
		zap.String("session_id", session.ID.String()),
		zap.Int("active_sessions", s.sessions.Count()),
	)
}

// UpdateStep stores the answers of one questionnaire page.
func (s *FlowService) UpdateStep(session *models.Session, step int, in StepInput) (dto.SessionResponse, error) {
	session.Lock()
	defer session.Unlock()

	if session.View != models.ViewQuestionnaire {
		return dto.SessionResponse{}, fmt.Errorf("%w: questionnaire is not open", ErrInvalidTransition)
	}
	if err := s.questionnaire.Apply(&session.Draft, step, in); err != nil {
		return dto.SessionResponse{}, err
	}
	s.touch(session)
	return toSessionResponse(session), nil
}

func (s *FlowService) Next(session *models.Session) (dto.SessionResponse, error) {
	session.Lock()
	defer session.Unlock()

	if session.View != models.ViewQuestionnaire {
		return dto.SessionResponse{}, fmt.Errorf("%w: questionnaire is not open", ErrInvalidTransition)
	}
	if err := s.questionnaire.CanAdvance(session.Draft, session.Step); err != nil {
		return dto.SessionResponse{}, err
	}
	session.Step++
	s.touch(session)
	return toSessionResponse(session), nil
}

func (s *FlowService) Back(session *models.Session) (dto.SessionResponse, error) {
	session.Lock()
	defer session.Unlock()

	if session.View != models.ViewQuestionnaire {
		return dto.SessionResponse{}, fmt.Errorf("%w: questionnaire is not open", ErrInvalidTransition)
	}
	if session.Step <= 1 {
		return dto.SessionResponse{}, fmt.Errorf("%w: already on the first step", ErrInvalidTransition)
	}
	session.Step--
	s.touch(session)
	return toSessionResponse(session), nil
}

// Submit completes the questionnaire and fetches recommendations. The session
// shows the loading view while the provider call runs. On failure the session
// returns to the last questionnaire step with the error banner and the draft
// intact, and the returned error wraps ErrProviderUnavailable.
func (s *FlowService) Submit(ctx context.Context, session *models.Session) (dto.SessionResponse, error) {
	session.Lock()
	if session.View != models.ViewQuestionnaire || session.Step != models.QuestionnaireSteps {
		session.Unlock()
		return dto.SessionResponse{}, fmt.Errorf("%w: submit is only possible on the last step", ErrInvalidTransition)
	}
	profile, err := s.questionnaire.Complete(session.Draft)
	if err != nil {
		session.Unlock()
		return dto.SessionResponse{}, err
	}
	session.Profile = &profile
	session.View = models.ViewLoading
	session.Error = ""
	generation := session.Generation
	s.touch(session)
	session.Unlock()

	log := s.logger.With(zap.String("session_id", session.ID.String()))
	log.Info("Requesting recommendations",
		zap.String("level", string(profile.Level)),
		zap.String("track", string(profile.Track)),
	)

	callCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	recs, recErr := s.recommender.GetStudyRecommendations(callCtx, profile)
	cancel()

	session.Lock()
	defer session.Unlock()

	if session.Generation != generation {
		log.Info("Discarding recommendations for a reset session")
		return toSessionResponse(session), fmt.Errorf("%w: session was reset", ErrInvalidTransition)
	}

	if recErr != nil {
		log.Error("Recommendation request failed", zap.Error(recErr))
		session.View = models.ViewQuestionnaire
		session.Profile = nil
		session.Error = RecommendationErrorMessage
		s.touch(session)
		if !errors.Is(recErr, ErrProviderUnavailable) {
			recErr = fmt.Errorf("%w: %v", ErrProviderUnavailable, recErr)
		}
		return toSessionResponse(session), recErr
	}

	session.Recommendations = recs
	session.SelectedRecommendation = ""
	session.Chat = nil
	session.View = models.ViewResults
	s.touch(session)

	log.Info("Recommendations ready", zap.Int("count", len(recs)))
	return toSessionResponse(session), nil
}

// touch records a state change; the caller holds the session lock.
func (s *FlowService) touch(session *models.Session) {
	session.UpdatedAt = s.now()
}
