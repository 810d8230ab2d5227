package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiekompas/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChatSendThreadsHistory(t *testing.T) {
	provider := &fakeProvider{chatReply: "Het is uitdagend, maar goed te doen."}
	svc := NewChatService(provider, time.Second, zap.NewNop())
	session := resultsSession()

	resp, err := svc.Send(context.Background(), session, "  Is het moeilijk?  ")
	require.NoError(t, err)
	assert.Equal(t, "model", resp.Reply.Role)
	assert.Equal(t, "Het is uitdagend, maar goed te doen.", resp.Reply.Text)
	require.Len(t, resp.History.Messages, 2)
	assert.Equal(t, "user", resp.History.Messages[0].Role)
	assert.Equal(t, "Is het moeilijk?", resp.History.Messages[0].Text)
	assert.False(t, resp.History.InFlight)
	assert.Empty(t, resp.History.Placeholder)

	require.Len(t, provider.chats, 1)
	first := provider.chats[0]
	assert.Equal(t, advisorSystemInstruction, first.SystemInstruction)
	assert.Equal(t, "Is het moeilijk?", first.Message)
	require.Len(t, first.History, 2)
	assert.Contains(t, first.History[0].Text, "Luchtvaart- en Ruimtevaarttechniek, Aviation")
	assert.Contains(t, first.History[0].Text, "De gebruiker heet Sanne.")
	assert.Equal(t, models.ChatRoleModel, first.History[1].Role)

	provider.chatReply = "Ongeveer 40 uur per week."
	_, err = svc.Send(context.Background(), session, "Hoeveel uur per week?")
	require.NoError(t, err)

	require.Len(t, provider.chats, 2)
	second := provider.chats[1]
	require.Len(t, second.History, 4)
	assert.Equal(t, "Is het moeilijk?", second.History[2].Text)
	assert.Equal(t, models.ChatRoleUser, second.History[2].Role)
	assert.Equal(t, "Het is uitdagend, maar goed te doen.", second.History[3].Text)
	assert.Equal(t, models.ChatRoleModel, second.History[3].Role)

	assert.Len(t, session.Chat, 4)
}

func TestChatSendFallbackOnProviderError(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{"error", &fakeProvider{chatErr: errors.New("timeout")}},
		{"empty reply", &fakeProvider{chatReply: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewChatService(tt.provider, time.Second, zap.NewNop())
			session := resultsSession()

			resp, err := svc.Send(context.Background(), session, "Hallo")
			require.NoError(t, err)
			assert.Equal(t, ChatFallbackReply, resp.Reply.Text)
			assert.Len(t, session.Chat, 2)
			assert.False(t, session.ChatInFlight)
		})
	}
}

func TestChatSendRejectsEmptyMessage(t *testing.T) {
	provider := &fakeProvider{chatReply: "ok"}
	svc := NewChatService(provider, time.Second, zap.NewNop())
	session := resultsSession()

	_, err := svc.Send(context.Background(), session, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, session.Chat)
	assert.Empty(t, provider.chats)
}

func TestChatSendOnlyInResults(t *testing.T) {
	svc := NewChatService(&fakeProvider{chatReply: "ok"}, time.Second, zap.NewNop())
	session := models.NewSession(time.Now())

	_, err := svc.Send(context.Background(), session, "Hallo")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.History(session)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestChatSendWhileBusy(t *testing.T) {
	provider := &fakeProvider{chatReply: "ok"}
	svc := NewChatService(provider, time.Second, zap.NewNop())
	session := resultsSession()

	var nested error
	provider.onChat = func() {
		_, nested = svc.Send(context.Background(), session, "Nog een vraag")
	}

	_, err := svc.Send(context.Background(), session, "Eerste vraag")
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrChatBusy)
	assert.Len(t, session.Chat, 2)
}

func TestChatSendDiscardsReplyAfterReset(t *testing.T) {
	provider := &fakeProvider{chatReply: "ok"}
	svc := NewChatService(provider, time.Second, zap.NewNop())
	session := resultsSession()

	provider.onChat = func() {
		session.Lock()
		session.Generation++
		session.View = models.ViewWelcome
		session.Chat = nil
		session.ChatInFlight = false
		session.Unlock()
	}

	_, err := svc.Send(context.Background(), session, "Hallo")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, session.Chat)
}

func TestChatHistoryPlaceholder(t *testing.T) {
	svc := NewChatService(&fakeProvider{}, time.Second, zap.NewNop())

	resp, err := svc.History(resultsSession())
	require.NoError(t, err)
	assert.Empty(t, resp.Messages)
	assert.NotNil(t, resp.Messages)
	assert.Equal(t, "Heb je vragen over een studie? Vraag maar raak!", resp.Placeholder)
}
