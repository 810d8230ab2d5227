package service

import (
	"fmt"
	"strings"
	"time"

	"studiekompas/internal/dto"
	"studiekompas/internal/models"
)

// The helpers below read session fields; callers hold the session lock.

func toSessionResponse(s *models.Session) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:        s.ID.String(),
		View:      string(s.View),
		Error:     s.Error,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}

	if s.View == models.ViewQuestionnaire {
		resp.Questionnaire = &dto.QuestionnaireResponse{
			Step:       s.Step,
			TotalSteps: models.QuestionnaireSteps,
			Progress:   Progress(s.Step),
			CanGoBack:  s.Step > 1,
			CanGoNext:  s.Step < models.QuestionnaireSteps && (s.Step != 1 || strings.TrimSpace(s.Draft.Name) != ""),
			CanSubmit:  s.Step == models.QuestionnaireSteps,
			Draft:      toProfileResponse(s.Draft),
		}
	}

	if s.Profile != nil {
		p := toProfileResponse(*s.Profile)
		resp.Profile = &p
		if s.View == models.ViewResults {
			resp.ProfileSummary = profileSummary(*s.Profile)
			resp.RecommendationIDs = make([]string, 0, len(s.Recommendations))
			for _, r := range s.Recommendations {
				resp.RecommendationIDs = append(resp.RecommendationIDs, r.ID)
			}
		}
	}
	return resp
}

func toProfileResponse(p models.UserProfile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		Name:             p.Name,
		Level:            string(p.Level),
		Track:            string(p.Track),
		TrackLabel:       p.Track.Label(),
		FavoriteSubjects: p.FavoriteSubjects,
		Hobbies:          p.Hobbies,
		WorkStyle:        string(p.WorkStyle),
		DreamJob:         p.DreamJob,
	}
	if p.WorkStyle != "" {
		resp.WorkStyleLabel = p.WorkStyle.Label()
	}
	return resp
}

func profileSummary(p models.UserProfile) string {
	return fmt.Sprintf("Profiel: %s (%s)", p.Track.Label(), p.Level)
}

func toRecommendationResponse(r models.StudyRecommendation, selectedID string) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		ID:          r.ID,
		Name:        r.Name,
		Level:       r.Level,
		Description: r.Description,
		MatchScore:  r.MatchScore,
		MatchTier:   string(r.Tier()),
		MatchReason: r.MatchReason,
		Selected:    r.ID == selectedID,
	}
}

func toRecommendationDetail(r models.StudyRecommendation, selectedID string) dto.RecommendationDetailResponse {
	keySubjects := r.KeySubjects
	if keySubjects == nil {
		keySubjects = []string{}
	}
	careers := r.CareerOpportunities
	if careers == nil {
		careers = []string{}
	}
	return dto.RecommendationDetailResponse{
		RecommendationResponse: toRecommendationResponse(r, selectedID),
		LevelLabel:             fmt.Sprintf("%s Opleiding", r.Level),
		KeySubjects:            keySubjects,
		CareerOpportunities:    careers,
	}
}

func toChatMessageResponse(m models.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Role:      string(m.Role),
		Text:      m.Text,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

const chatPlaceholder = "Heb je vragen over een studie? Vraag maar raak!"

func toChatHistoryResponse(s *models.Session) dto.ChatHistoryResponse {
	resp := dto.ChatHistoryResponse{
		Messages: make([]dto.ChatMessageResponse, 0, len(s.Chat)),
		InFlight: s.ChatInFlight,
	}
	for _, m := range s.Chat {
		resp.Messages = append(resp.Messages, toChatMessageResponse(m))
	}
	if len(s.Chat) == 0 {
		resp.Placeholder = chatPlaceholder
	}
	return resp
}
