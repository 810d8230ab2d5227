package dto

// StepRequest is the body of PUT /sessions/{id}/questionnaire/steps/{step}.
// Only the fields of that step are applied; omitted fields keep their value.
type StepRequest struct {
	Name             *string `json:"name,omitempty"`
	Level            *string `json:"level,omitempty" example:"HAVO"`
	Track            *string `json:"track,omitempty" example:"NG"`
	FavoriteSubjects *string `json:"favorite_subjects,omitempty"`
	Hobbies          *string `json:"hobbies,omitempty"`
	WorkStyle        *string `json:"work_style,omitempty" example:"mix"`
	DreamJob         *string `json:"dream_job,omitempty"`
}

type ProfileResponse struct {
	Name             string `json:"name"`
	Level            string `json:"level"`
	Track            string `json:"track"`
	TrackLabel       string `json:"track_label"`
	FavoriteSubjects string `json:"favorite_subjects"`
	Hobbies          string `json:"hobbies"`
	WorkStyle        string `json:"work_style"`
	WorkStyleLabel   string `json:"work_style_label"`
	DreamJob         string `json:"dream_job"`
}

type QuestionnaireResponse struct {
	Step       int             `json:"step"`
	TotalSteps int             `json:"total_steps"`
	Progress   int             `json:"progress"`
	CanGoBack  bool            `json:"can_go_back"`
	CanGoNext  bool            `json:"can_go_next"`
	CanSubmit  bool            `json:"can_submit"`
	Draft      ProfileResponse `json:"draft"`
}

type SessionResponse struct {
	ID                string                 `json:"id"`
	View              string                 `json:"view"`
	Error             string                 `json:"error,omitempty"`
	ProfileSummary    string                 `json:"profile_summary,omitempty"`
	Questionnaire     *QuestionnaireResponse `json:"questionnaire,omitempty"`
	Profile           *ProfileResponse       `json:"profile,omitempty"`
	RecommendationIDs []string               `json:"recommendation_ids,omitempty"`
	CreatedAt         string                 `json:"created_at"`
	UpdatedAt         string                 `json:"updated_at"`
}

// SubmitErrorResponse is returned when the recommendation request fails; the
// session is back in the questionnaire view with the error banner set.
type SubmitErrorResponse struct {
	Error   string          `json:"error"`
	Session SessionResponse `json:"session"`
}
