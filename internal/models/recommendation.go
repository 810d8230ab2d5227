package models

// StrongMatchThreshold is the score above which a match is shown as strong.
const StrongMatchThreshold = 85

type MatchTier string

const (
	MatchTierStrong   MatchTier = "strong"
	MatchTierModerate MatchTier = "moderate"
)

// StudyRecommendation mirrors the JSON records produced by the AI provider.
type StudyRecommendation struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Level               string   `json:"level"`
	Description         string   `json:"description"`
	MatchScore          int      `json:"matchScore"`
	MatchReason         string   `json:"matchReason"`
	CareerOpportunities []string `json:"careerOpportunities"`
	KeySubjects         []string `json:"keySubjects"`
}

func (r StudyRecommendation) Tier() MatchTier {
	if r.MatchScore > StrongMatchThreshold {
		return MatchTierStrong
	}
	return MatchTierModerate
}
