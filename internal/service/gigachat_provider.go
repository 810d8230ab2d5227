package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"studiekompas/internal/models"
	"studiekompas/pkg/config"

	"github.com/Role1776/gigago"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var errEmptyChoices = errors.New("no response from LLM")

// GigaChatProvider is the alternative backend. GigaChat has no response-schema
// support, so the schema is rendered into the prompt and the JSON is cut out of
// the reply.
type GigaChatProvider struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
	tracer trace.Tracer
}

func NewGigaChatProvider(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatProvider, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.Temperature = 0.3

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))

	return &GigaChatProvider{
		client: client,
		model:  model,
		logger: logger,
		tracer: otel.Tracer("studiekompas/gigachat"),
	}, nil
}

func (p *GigaChatProvider) Name() string { return config.ProviderGigaChat }

func (p *GigaChatProvider) GenerateJSON(ctx context.Context, req StructuredRequest) (string, error) {
	ctx, span := p.tracer.Start(ctx, "GigaChatProvider.GenerateJSON")
	defer span.End()
	span.SetAttributes(attribute.Int("prompt.length", len(req.Prompt)))

	messages := structuredMessages(req)

	content, err := p.generate(ctx, messages)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return "", err
	}

	schemaType := SchemaTypeObject
	if req.Schema != nil {
		schemaType = req.Schema.Type
	}
	return extractJSON(content, schemaType), nil
}

func (p *GigaChatProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	ctx, span := p.tracer.Start(ctx, "GigaChatProvider.Chat")
	defer span.End()
	span.SetAttributes(attribute.Int("history.length", len(req.History)))

	messages := chatMessages(req)

	content, err := p.generate(ctx, messages)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return "", err
	}
	return content, nil
}

// structuredMessages puts the JSON-only rule in the system turn and the rendered schema after the prompt.
func structuredMessages(req StructuredRequest) []gigago.Message {
	system := strings.TrimSpace(req.SystemInstruction + "\n" + jsonOnlyInstruction)
	return []gigago.Message{
		{Role: "system", Content: system},
		{Role: gigago.RoleUser, Content: req.Prompt + "\n\n" + describeSchema(req.Schema)},
	}
}

// chatMessages replays the history with model turns as "assistant" and ends with the new user message.
func chatMessages(req ChatRequest) []gigago.Message {
	messages := make([]gigago.Message, 0, len(req.History)+2)
	if req.SystemInstruction != "" {
		messages = append(messages, gigago.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.History {
		if m.Role == models.ChatRoleModel {
			messages = append(messages, gigago.Message{Role: "assistant", Content: m.Text})
			continue
		}
		messages = append(messages, gigago.Message{Role: gigago.RoleUser, Content: m.Text})
	}
	return append(messages, gigago.Message{Role: gigago.RoleUser, Content: req.Message})
}

func (p *GigaChatProvider) generate(ctx context.Context, messages []gigago.Message) (string, error) {
	resp, err := p.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (p *GigaChatProvider) Close() error {
	if p.client != nil {
		p.client.Close()
	}
	return nil
}

const jsonOnlyInstruction = "Antwoord uitsluitend met geldige JSON, zonder markdown en zonder tekst ervoor of erna."

// describeSchema renders a schema as a prompt section that spells out the expected JSON shape.
func describeSchema(s *Schema) string {
	if s == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Geef het antwoord in exact dit JSON formaat:\n")
	writeSchema(&sb, s, 0)
	return sb.String()
}

func writeSchema(sb *strings.Builder, s *Schema, depth int) {
	indent := strings.Repeat("  ", depth)
	switch s.Type {
	case SchemaTypeArray:
		sb.WriteString("[\n")
		sb.WriteString(indent + "  ")
		if s.Items != nil {
			writeSchema(sb, s.Items, depth+1)
		}
		sb.WriteString("\n" + indent + "]")
	case SchemaTypeObject:
		sb.WriteString("{\n")
		names := s.Order
		if len(names) == 0 {
			for name := range s.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
		}
		for i, name := range names {
			prop, ok := s.Properties[name]
			if !ok {
				continue
			}
			fmt.Fprintf(sb, "%s  %q: ", indent, name)
			writeSchema(sb, prop, depth+1)
			if i < len(names)-1 {
				sb.WriteString(",")
			}
			if prop.Description != "" {
				fmt.Fprintf(sb, " // %s", prop.Description)
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indent + "}")
	case SchemaTypeInteger:
		sb.WriteString("integer")
	default:
		sb.WriteString("string")
	}
}
