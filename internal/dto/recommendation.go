package dto

type RecommendationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
	MatchScore  int    `json:"match_score"`
	MatchTier   string `json:"match_tier"`
	MatchReason string `json:"match_reason"`
	Selected    bool   `json:"selected"`
}

type ResultsResponse struct {
	Heading         string                   `json:"heading"`
	ProfileSummary  string                   `json:"profile_summary"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	SelectedID      string                   `json:"selected_id,omitempty"`
}

type RecommendationDetailResponse struct {
	RecommendationResponse
	LevelLabel          string   `json:"level_label"`
	KeySubjects         []string `json:"key_subjects"`
	CareerOpportunities []string `json:"career_opportunities"`
}

type SuggestedQuestionResponse struct {
	RecommendationID string `json:"recommendation_id"`
	Question         string `json:"question"`
}
