package service

import (
	"context"
	"fmt"

	"studiekompas/internal/models"
	"studiekompas/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiProvider talks to the Gemini API. Structured requests use native
// response schemas; chat uses the SDK's chat session with replayed history.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
	tracer      trace.Tracer
}

func NewGeminiProvider(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiProvider, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Using Gemini model", zap.String("model", cfg.Model))

	return &GeminiProvider{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      logger,
		tracer:      otel.Tracer("studiekompas/gemini"),
	}, nil
}

func (p *GeminiProvider) Name() string { return config.ProviderGemini }

func (p *GeminiProvider) GenerateJSON(ctx context.Context, req StructuredRequest) (string, error) {
	ctx, span := p.tracer.Start(ctx, "GeminiProvider.GenerateJSON")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.model", p.model),
		attribute.Int("prompt.length", len(req.Prompt)),
	)

	temperature := p.temperature
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(req.Schema),
		Temperature:      &temperature,
	}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content failed")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	span.SetAttributes(attribute.Int("response.length", len(text)))
	return text, nil
}

func (p *GeminiProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	ctx, span := p.tracer.Start(ctx, "GeminiProvider.Chat")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.model", p.model),
		attribute.Int("history.length", len(req.History)),
	)

	history := make([]*genai.Content, 0, len(req.History))
	for _, m := range req.History {
		role := genai.Role(genai.RoleUser)
		if m.Role == models.ChatRoleModel {
			role = genai.Role(genai.RoleModel)
		}
		history = append(history, genai.NewContentFromText(m.Text, role))
	}

	temperature := p.temperature
	chat, err := p.client.Chats.Create(ctx, p.model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}},
		Temperature:       &temperature,
	}, history)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create chat failed")
		return "", fmt.Errorf("gemini create chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: req.Message})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send message failed")
		return "", fmt.Errorf("gemini send message: %w", err)
	}
	return resp.Text(), nil
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiType(s.Type),
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.Order,
		Items:            toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func genaiType(t SchemaType) genai.Type {
	switch t {
	case SchemaTypeArray:
		return genai.TypeArray
	case SchemaTypeObject:
		return genai.TypeObject
	case SchemaTypeInteger:
		return genai.TypeInteger
	default:
		return genai.TypeString
	}
}
