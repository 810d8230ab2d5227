package service

import (
	"fmt"
	"strings"

	"studiekompas/internal/models"
)

const advisorSystemInstruction = "Je bent een behulpzame studieadviseur. Houd je antwoorden kort, bemoedigend en informatief. Richt je op het Nederlandse onderwijssysteem (HBO/WO)."

const advisorSeedReply = "Begrepen. Ik zal helpen met vragen over deze studies."

// ChatFallbackReply is shown when the advisor call fails.
const ChatFallbackReply = "Sorry, ik kon dat even niet verwerken. Probeer het opnieuw."

// RecommendationErrorMessage is the banner shown after a failed recommendation request.
const RecommendationErrorMessage = "Er ging iets mis bij het ophalen van de studies. Controleer je internetverbinding of probeer het later opnieuw."

const recommendationPromptTemplate = `Je bent een expert studieadviseur in Nederland.
De gebruiker is een eindexamenleerling met het volgende profiel:
- Naam: %s
- Opleidingsniveau: %s
- Profiel: %s
- Favoriete vakken: %s
- Hobby's/Interesses: %s
- Werkstijl voorkeur: %s
- Droombaan/Toekomstvisie: %s

Op basis hiervan, suggereer %d concrete vervolgopleidingen (HBO of WO, afhankelijk van het niveau van de gebruiker).
Houd rekening met de toelaatbaarheid op basis van het profiel (N&T, N&G, etc.).
Geef een match score (0-100) en leg uit waarom dit past.`

// BuildRecommendationPrompt renders the profile into the recommendation request prompt.
func BuildRecommendationPrompt(profile models.UserProfile, count int) string {
	workStyle := ""
	if profile.WorkStyle != "" {
		workStyle = profile.WorkStyle.Label()
	}
	return fmt.Sprintf(recommendationPromptTemplate,
		profile.Name,
		profile.Level,
		profile.Track.Label(),
		profile.FavoriteSubjects,
		profile.Hobbies,
		workStyle,
		profile.DreamJob,
		count,
	)
}

// buildAdvisorContext is the seed user turn that tells the advisor what was recommended.
func buildAdvisorContext(profile models.UserProfile, recs []models.StudyRecommendation) string {
	names := make([]string, 0, len(recs))
	for _, r := range recs {
		names = append(names, r.Name)
	}
	return fmt.Sprintf("De gebruiker heeft de volgende studies aangeraden gekregen:\n%s.\nDe gebruiker heet %s.",
		strings.Join(names, ", "), profile.Name)
}

// BuildAdvisorHistory prepends the seed exchange to the visible chat history.
func BuildAdvisorHistory(profile models.UserProfile, recs []models.StudyRecommendation, chat []models.ChatMessage) []models.ChatMessage {
	history := make([]models.ChatMessage, 0, len(chat)+2)
	history = append(history,
		models.ChatMessage{Role: models.ChatRoleUser, Text: buildAdvisorContext(profile, recs)},
		models.ChatMessage{Role: models.ChatRoleModel, Text: advisorSeedReply},
	)
	return append(history, chat...)
}

// SuggestedQuestion is the pre-filled chat question for a selected study.
func SuggestedQuestion(rec models.StudyRecommendation) string {
	return fmt.Sprintf("Vertel me meer over de opleiding %s. Is het moeilijk?", rec.Name)
}
