package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studiekompas/internal/dto"
	"studiekompas/internal/models"

	"go.uber.org/zap"
)

// ChatService runs the advisor conversation on the results screen.
type ChatService struct {
	provider  AIProvider
	aiTimeout time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewChatService(provider AIProvider, aiTimeout time.Duration, logger *zap.Logger) *ChatService {
	return &ChatService{
		provider:  provider,
		aiTimeout: aiTimeout,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ChatService) History(session *models.Session) (*dto.ChatHistoryResponse, error) {
	session.Lock()
	defer session.Unlock()

	if err := requireResults(session); err != nil {
		return nil, err
	}
	history := toChatHistoryResponse(session)
	return &history, nil
}

// Send forwards message to the advisor with the seed context and prior turns.
// A provider failure is answered with ChatFallbackReply instead of an error.
func (s *ChatService) Send(ctx context.Context, session *models.Session, message string) (*dto.ChatReplyResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	session.Lock()
	if err := requireResults(session); err != nil {
		session.Unlock()
		return nil, err
	}
	if session.ChatInFlight {
		session.Unlock()
		return nil, ErrChatBusy
	}

	history := BuildAdvisorHistory(*session.Profile, session.Recommendations, session.Chat)
	session.Chat = append(session.Chat, models.ChatMessage{
		Role:      models.ChatRoleUser,
		Text:      message,
		CreatedAt: s.now(),
	})
	session.ChatInFlight = true
	generation := session.Generation
	session.Unlock()

	log := s.logger.With(
		zap.String("session_id", session.ID.String()),
		zap.String("provider", s.provider.Name()),
	)

	callCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	reply, err := s.provider.Chat(callCtx, ChatRequest{
		SystemInstruction: advisorSystemInstruction,
		History:           history,
		Message:           message,
	})
	cancel()
	if err != nil {
		log.Error("Chat error", zap.Error(err))
		reply = ChatFallbackReply
	} else if strings.TrimSpace(reply) == "" {
		log.Warn("Advisor returned an empty reply")
		reply = ChatFallbackReply
	}

	session.Lock()
	defer session.Unlock()

	if session.Generation != generation {
		log.Info("Discarding advisor reply for a reset session")
		return nil, fmt.Errorf("%w: session was reset", ErrInvalidTransition)
	}

	answer := models.ChatMessage{
		Role:      models.ChatRoleModel,
		Text:      reply,
		CreatedAt: s.now(),
	}
	session.Chat = append(session.Chat, answer)
	session.ChatInFlight = false
	session.UpdatedAt = answer.CreatedAt

	return &dto.ChatReplyResponse{
		Reply:   toChatMessageResponse(answer),
		History: toChatHistoryResponse(session),
	}, nil
}
