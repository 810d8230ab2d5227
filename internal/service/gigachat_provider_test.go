package service

import (
	"strings"
	"testing"

	"studiekompas/internal/models"

	"github.com/Role1776/gigago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleText struct {
	role string
	text string
}

func flatten(messages []gigago.Message) []roleText {
	out := make([]roleText, 0, len(messages))
	for _, m := range messages {
		out = append(out, roleText{role: string(m.Role), text: m.Content})
	}
	return out
}

func TestGigaChatStructuredMessages(t *testing.T) {
	msgs := flatten(structuredMessages(StructuredRequest{
		Prompt: "Geef studies.",
		Schema: recommendationSchema(),
	}))

	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].role)
	assert.Equal(t, jsonOnlyInstruction, msgs[0].text)
	assert.Equal(t, "user", msgs[1].role)
	assert.True(t, strings.HasPrefix(msgs[1].text, "Geef studies.\n\nGeef het antwoord in exact dit JSON formaat:"))
	assert.Contains(t, msgs[1].text, `"matchScore": integer`)
}

func TestGigaChatStructuredMessagesWithInstruction(t *testing.T) {
	msgs := flatten(structuredMessages(StructuredRequest{
		SystemInstruction: "Je bent een studieadviseur.",
		Prompt:            "Geef studies.",
	}))

	require.Len(t, msgs, 2)
	assert.Equal(t, "Je bent een studieadviseur.\n"+jsonOnlyInstruction, msgs[0].text)
	assert.Equal(t, "Geef studies.\n\n", msgs[1].text)
}

func TestGigaChatChatMessages(t *testing.T) {
	session := resultsSession()
	prior := []models.ChatMessage{
		{Role: models.ChatRoleUser, Text: "Hoeveel uur per week?"},
		{Role: models.ChatRoleModel, Text: "Ongeveer veertig."},
	}

	msgs := flatten(chatMessages(ChatRequest{
		SystemInstruction: advisorSystemInstruction,
		History:           BuildAdvisorHistory(*session.Profile, session.Recommendations, prior),
		Message:           "Is het moeilijk?",
	}))

	require.Len(t, msgs, 6)
	assert.Equal(t, roleText{role: "system", text: advisorSystemInstruction}, msgs[0])
	assert.Equal(t, "user", msgs[1].role)
	assert.Contains(t, msgs[1].text, "Luchtvaart- en Ruimtevaarttechniek, Aviation")
	assert.Equal(t, roleText{role: "assistant", text: advisorSeedReply}, msgs[2])
	assert.Equal(t, roleText{role: "user", text: "Hoeveel uur per week?"}, msgs[3])
	assert.Equal(t, roleText{role: "assistant", text: "Ongeveer veertig."}, msgs[4])
	assert.Equal(t, roleText{role: "user", text: "Is het moeilijk?"}, msgs[5])
}

func TestGigaChatChatMessagesWithoutInstruction(t *testing.T) {
	msgs := flatten(chatMessages(ChatRequest{Message: "Hallo"}))
	assert.Equal(t, []roleText{{role: "user", text: "Hallo"}}, msgs)
}
