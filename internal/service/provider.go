package service

import (
	"context"

	"studiekompas/internal/models"
)

// StructuredRequest asks the provider for JSON matching Schema.
type StructuredRequest struct {
	SystemInstruction string
	Prompt            string
	Schema            *Schema
}

// ChatRequest continues a conversation. History excludes Message.
type ChatRequest struct {
	SystemInstruction string
	History           []models.ChatMessage
	Message           string
}

// AIProvider is the outbound generative-AI integration.
type AIProvider interface {
	Name() string
	// GenerateJSON returns the raw JSON text produced for req.
	GenerateJSON(ctx context.Context, req StructuredRequest) (string, error)
	Chat(ctx context.Context, req ChatRequest) (string, error)
}
