package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"studiekompas/internal/models"
	"studiekompas/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleRecommendations = `[
  {
    "id": "tud-lr",
    "name": "Luchtvaart- en Ruimtevaarttechniek",
    "level": "WO",
    "description": "Ontwerp vliegtuigen en satellieten.",
    "matchScore": 92,
    "matchReason": "Je houdt van wiskunde en natuurkunde.",
    "careerOpportunities": ["Ingenieur", "Onderzoeker"],
    "keySubjects": ["Wiskunde", "Aerodynamica"]
  },
  {
    "id": "hva-aviation",
    "name": "Aviation",
    "level": "HBO",
    "description": "Praktische opleiding in de luchtvaart.",
    "matchScore": 78,
    "matchReason": "Je werkt graag praktisch.",
    "careerOpportunities": ["Operations manager"],
    "keySubjects": ["Natuurkunde"]
  }
]`

type fakeProvider struct {
	mu sync.Mutex

	jsonReply string
	jsonErr   error
	chatReply string
	chatErr   error

	// hooks run while the provider call is in flight
	onJSON func()
	onChat func()

	structured []StructuredRequest
	chats      []ChatRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GenerateJSON(ctx context.Context, req StructuredRequest) (string, error) {
	f.mu.Lock()
	f.structured = append(f.structured, req)
	hook := f.onJSON
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return f.jsonReply, f.jsonErr
}

func (f *fakeProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	f.mu.Lock()
	f.chats = append(f.chats, req)
	hook := f.onChat
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return f.chatReply, f.chatErr
}

func ptr[T any](v T) *T { return &v }

func newTestFlow(provider AIProvider) *FlowService {
	logger := zap.NewNop()
	repo := repository.NewSessionRepository(time.Hour, time.Hour, logger)
	rec := NewRecommendationService(provider, 4, logger)
	return NewFlowService(repo, NewQuestionnaire(), rec, time.Second, logger)
}

func createSession(t *testing.T, flow *FlowService) *models.Session {
	t.Helper()
	resp := flow.CreateSession()
	session, err := flow.Lookup(uuid.MustParse(resp.ID))
	require.NoError(t, err)
	return session
}

// readySession creates a session and walks it to the last questionnaire step with a complete draft.
func readySession(t *testing.T, flow *FlowService) *models.Session {
	t.Helper()
	session := createSession(t, flow)
	_, err := flow.Start(session)
	require.NoError(t, err)
	fillQuestionnaire(t, flow, session)
	return session
}

// fillQuestionnaire answers all four steps of an opened questionnaire, ending on the last step.
func fillQuestionnaire(t *testing.T, flow *FlowService, session *models.Session) {
	t.Helper()
	_, err := flow.UpdateStep(session, 1, StepInput{Name: ptr("Sanne"), Level: ptr("VWO")})
	require.NoError(t, err)
	_, err = flow.Next(session)
	require.NoError(t, err)

	_, err = flow.UpdateStep(session, 2, StepInput{Track: ptr("NT")})
	require.NoError(t, err)
	_, err = flow.Next(session)
	require.NoError(t, err)

	_, err = flow.UpdateStep(session, 3, StepInput{
		FavoriteSubjects: ptr("Wiskunde B, Natuurkunde"),
		Hobbies:          ptr("Modelvliegtuigen bouwen"),
	})
	require.NoError(t, err)
	_, err = flow.Next(session)
	require.NoError(t, err)

	_, err = flow.UpdateStep(session, 4, StepInput{WorkStyle: ptr("mix"), DreamJob: ptr("Ingenieur")})
	require.NoError(t, err)
}

func resultsSession() *models.Session {
	s := models.NewSession(time.Now())
	profile := models.UserProfile{
		Name:             "Sanne",
		Level:            models.LevelVWO,
		Track:            models.TrackNT,
		FavoriteSubjects: "Wiskunde B",
	}
	s.Profile = &profile
	s.View = models.ViewResults
	s.Recommendations = []models.StudyRecommendation{
		{
			ID:                  "tud-lr",
			Name:                "Luchtvaart- en Ruimtevaarttechniek",
			Level:               "WO",
			MatchScore:          92,
			CareerOpportunities: []string{"Ingenieur"},
			KeySubjects:         []string{"Wiskunde", "Aerodynamica"},
		},
		{
			ID:         "hva-aviation",
			Name:       "Aviation",
			Level:      "HBO",
			MatchScore: 78,
		},
	}
	return s
}
