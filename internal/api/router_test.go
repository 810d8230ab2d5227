package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"studiekompas/internal/api/handlers"
	"studiekompas/internal/dto"
	"studiekompas/internal/repository"
	"studiekompas/internal/service"
	"studiekompas/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const recommendationsJSON = `[
  {"id":"tud-lr","name":"Luchtvaart- en Ruimtevaarttechniek","level":"WO","description":"Vliegtuigen ontwerpen.","matchScore":92,"matchReason":"Sterk in exacte vakken.","careerOpportunities":["Ingenieur"],"keySubjects":["Wiskunde"]},
  {"id":"hva-aviation","name":"Aviation","level":"HBO","description":"Luchtvaart in de praktijk.","matchScore":74,"matchReason":"Praktische instelling.","careerOpportunities":["Planner"],"keySubjects":["Logistiek"]}
]`

type stubProvider struct {
	mu        sync.Mutex
	jsonReply string
	jsonErr   error
	chatReply string
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) GenerateJSON(ctx context.Context, req service.StructuredRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jsonReply, p.jsonErr
}

func (p *stubProvider) Chat(ctx context.Context, req service.ChatRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chatReply, nil
}

func newTestApp(provider service.AIProvider) *fiber.App {
	logger := zap.NewNop()
	sessions := repository.NewSessionRepository(time.Hour, time.Hour, logger)
	recService := service.NewRecommendationService(provider, 4, logger)
	flow := service.NewFlowService(sessions, service.NewQuestionnaire(), recService, time.Second, logger)

	return SetupRouter(&config.ServerConfig{}, Handlers{
		Help:          handlers.NewHelpHandler(),
		Session:       handlers.NewSessionHandler(flow, logger),
		Questionnaire: handlers.NewQuestionnaireHandler(flow, logger),
		Results:       handlers.NewResultsHandler(service.NewResultsService(logger), logger),
		Chat:          handlers.NewChatHandler(service.NewChatService(provider, time.Second, logger), logger),
	}, sessions, logger)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// completeQuestionnaire creates a session and fills in all four steps.
func completeQuestionnaire(t *testing.T, app *fiber.App) string {
	t.Helper()

	var session dto.SessionResponse
	require.Equal(t, http.StatusCreated, doJSON(t, app, "POST", "/api/v1/sessions", nil, &session))
	base := "/api/v1/sessions/" + session.ID

	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/start", nil, &session))

	steps := []map[string]string{
		{"name": "Sanne", "level": "VWO"},
		{"track": "NT"},
		{"favorite_subjects": "Wiskunde B", "hobbies": "Zeilen"},
		{"work_style": "theoretical", "dream_job": "Ingenieur"},
	}
	for i, fields := range steps {
		step := i + 1
		require.Equal(t, http.StatusOK, doJSON(t, app, "PUT", base+"/questionnaire/steps/"+strconv.Itoa(step), fields, &session))
		if step < len(steps) {
			require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/questionnaire/next", nil, &session))
		}
	}
	require.NotNil(t, session.Questionnaire)
	require.True(t, session.Questionnaire.CanSubmit)
	return session.ID
}

func TestHelpAndOptions(t *testing.T) {
	app := newTestApp(&stubProvider{})

	var help dto.HelpResponse
	assert.Equal(t, http.StatusOK, doJSON(t, app, "GET", "/api/v1/help", nil, &help))
	assert.Equal(t, "Hoe werkt StudieKompas?", help.Title)
	assert.Len(t, help.Steps, 3)

	var opts dto.OptionsResponse
	assert.Equal(t, http.StatusOK, doJSON(t, app, "GET", "/api/v1/options", nil, &opts))
	assert.Len(t, opts.Tracks, 5)
}

func TestFullFlow(t *testing.T) {
	app := newTestApp(&stubProvider{jsonReply: recommendationsJSON, chatReply: "Het valt mee!"})
	id := completeQuestionnaire(t, app)
	base := "/api/v1/sessions/" + id

	var session dto.SessionResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/questionnaire/submit", nil, &session))
	assert.Equal(t, "results", session.View)
	assert.Equal(t, "Profiel: Natuur & Techniek (VWO)", session.ProfileSummary)

	var results dto.ResultsResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations", nil, &results))
	assert.Equal(t, "Aanbevolen voor Sanne", results.Heading)
	require.Len(t, results.Recommendations, 2)
	assert.Equal(t, "strong", results.Recommendations[0].MatchTier)

	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/recommendations/hva-aviation/select", nil, &results))
	assert.Equal(t, "hva-aviation", results.SelectedID)

	var detail dto.RecommendationDetailResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations/hva-aviation", nil, &detail))
	assert.Equal(t, "HBO Opleiding", detail.LevelLabel)
	assert.True(t, detail.Selected)

	var question dto.SuggestedQuestionResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations/hva-aviation/question", nil, &question))
	assert.Equal(t, "Vertel me meer over de opleiding Aviation. Is het moeilijk?", question.Question)

	var history dto.ChatHistoryResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/chat", nil, &history))
	assert.NotEmpty(t, history.Placeholder)

	var reply dto.ChatReplyResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/chat", dto.ChatRequest{Message: question.Question}, &reply))
	assert.Equal(t, "Het valt mee!", reply.Reply.Text)
	assert.Len(t, reply.History.Messages, 2)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, "POST", base+"/chat", dto.ChatRequest{Message: " "}, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, "GET", base+"/recommendations/missing", nil, nil))

	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/reset", nil, &session))
	assert.Equal(t, "welcome", session.View)
	assert.Equal(t, http.StatusConflict, doJSON(t, app, "GET", base+"/recommendations", nil, nil))
}

func TestSubmitProviderFailure(t *testing.T) {
	app := newTestApp(&stubProvider{jsonErr: errors.New("service unavailable")})
	id := completeQuestionnaire(t, app)

	var failure dto.SubmitErrorResponse
	require.Equal(t, http.StatusBadGateway, doJSON(t, app, "POST", "/api/v1/sessions/"+id+"/questionnaire/submit", nil, &failure))
	assert.Equal(t, service.RecommendationErrorMessage, failure.Error)
	assert.Equal(t, "questionnaire", failure.Session.View)
	require.NotNil(t, failure.Session.Questionnaire)
	assert.Equal(t, "Sanne", failure.Session.Questionnaire.Draft.Name)
}

func TestSessionErrors(t *testing.T) {
	app := newTestApp(&stubProvider{})

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, "GET", "/api/v1/sessions/not-a-uuid", nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, "GET", "/api/v1/sessions/"+uuid.NewString(), nil, nil))

	var session dto.SessionResponse
	require.Equal(t, http.StatusCreated, doJSON(t, app, "POST", "/api/v1/sessions", nil, &session))
	base := "/api/v1/sessions/" + session.ID

	assert.Equal(t, http.StatusConflict, doJSON(t, app, "POST", base+"/questionnaire/next", nil, nil))
	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/start", nil, nil))
	assert.Equal(t, http.StatusConflict, doJSON(t, app, "POST", base+"/start", nil, nil))

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, "POST", base+"/questionnaire/next", nil, nil), "name is required")
	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, "PUT", base+"/questionnaire/steps/1", map[string]string{"level": "HBO"}, nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, "PUT", base+"/questionnaire/steps/x", map[string]string{}, nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, "PUT", base+"/questionnaire/steps/7", map[string]string{}, nil))
	assert.Equal(t, http.StatusConflict, doJSON(t, app, "POST", base+"/questionnaire/submit", nil, nil))
	assert.Equal(t, http.StatusConflict, doJSON(t, app, "POST", base+"/chat", dto.ChatRequest{Message: "Hoi"}, nil))
}

func TestSelectionSurvivesLaterRequests(t *testing.T) {
	app := newTestApp(&stubProvider{jsonReply: recommendationsJSON})
	id := completeQuestionnaire(t, app)
	base := "/api/v1/sessions/" + id
	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/questionnaire/submit", nil, nil))

	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/recommendations/hva-aviation/select", nil, nil))

	// reuse the pooled request buffers with longer paths
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations/tud-lr/question", nil, nil))
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations/tud-lr", nil, nil))

	var results dto.ResultsResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations", nil, &results))
	assert.Equal(t, "hva-aviation", results.SelectedID)
	require.Len(t, results.Recommendations, 2)
	assert.False(t, results.Recommendations[0].Selected)
	assert.True(t, results.Recommendations[1].Selected)
}

func TestProviderIDsAreRoutable(t *testing.T) {
	app := newTestApp(&stubProvider{jsonReply: `[{"id":"hbo/ict pro?","name":"HBO-ICT","level":"HBO","matchScore":80}]`})
	id := completeQuestionnaire(t, app)
	base := "/api/v1/sessions/" + id
	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/questionnaire/submit", nil, nil))

	var results dto.ResultsResponse
	require.Equal(t, http.StatusOK, doJSON(t, app, "GET", base+"/recommendations", nil, &results))
	require.Len(t, results.Recommendations, 1)
	recID := results.Recommendations[0].ID
	assert.Equal(t, "hbo-ict-pro", recID)

	require.Equal(t, http.StatusOK, doJSON(t, app, "POST", base+"/recommendations/"+recID+"/select", nil, &results))
	assert.Equal(t, recID, results.SelectedID)
}

func TestEndSession(t *testing.T) {
	app := newTestApp(&stubProvider{})

	var session dto.SessionResponse
	require.Equal(t, http.StatusCreated, doJSON(t, app, "POST", "/api/v1/sessions", nil, &session))
	base := "/api/v1/sessions/" + session.ID

	assert.Equal(t, http.StatusNoContent, doJSON(t, app, "DELETE", base, nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, "GET", base, nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, "DELETE", base, nil, nil))
}
