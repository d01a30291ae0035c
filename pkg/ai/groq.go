package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	completionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "herupa",
		Subsystem: "ai",
		Name:      "completion_duration_seconds",
		Help:      "Duration of chat completion requests",
	}, []string{"model"})

	completionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "herupa",
		Subsystem: "ai",
		Name:      "completion_failures_total",
		Help:      "Number of failed chat completion requests",
	}, []string{"model", "kind"})
)

const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultModel       = "llama-3.3-70b-versatile"
	defaultMaxTokens   = 600
	defaultTemperature = 0.7
	verifyMaxTokens    = 5
)

// GroqConfig defines configuration options for the Groq-backed client.
// Groq exposes an OpenAI-compatible chat-completions endpoint, so the
// client rides on the OpenAI SDK with a base URL override.
type GroqConfig struct {
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// GroqClient implements Client against Groq's chat completion API.
type GroqClient struct {
	cfg    GroqConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewGroqClient builds a new gateway client using the provided configuration.
func NewGroqClient(cfg GroqConfig) *GroqClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}

	return &GroqClient{
		cfg:    cfg,
		tracer: otel.Tracer("github.com/herupa/herupa-go-api/pkg/ai/groq"),
		logger: cfg.Logger.With().Str("component", "ai_gateway").Logger(),
	}
}

// Complete sends one chat completion request and returns the assistant text.
func (g *GroqClient) Complete(parent context.Context, apiKey, system string, history []Message) (string, error) {
	ctx, span := g.tracer.Start(parent, "groq.complete", trace.WithAttributes(
		attribute.String("model", g.cfg.Model),
		attribute.Int("history_len", len(history)),
	))
	defer span.End()

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	request := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Messages:    messages,
	}

	start := time.Now()
	resp, err := g.client(apiKey).CreateChatCompletion(ctx, request)
	completionDuration.WithLabelValues(g.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		classified := classify(err)
		completionFailures.WithLabelValues(g.cfg.Model, failureKind(classified)).Inc()
		span.RecordError(classified)
		span.SetStatus(codes.Error, classified.Error())
		return "", classified
	}

	if len(resp.Choices) == 0 {
		err := &ProviderError{Message: "no choices returned"}
		completionFailures.WithLabelValues(g.cfg.Model, failureKind(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Verify issues a minimal one-token completion purely to validate the key.
func (g *GroqClient) Verify(parent context.Context, apiKey string) error {
	ctx, span := g.tracer.Start(parent, "groq.verify")
	defer span.End()

	request := openai.ChatCompletionRequest{
		Model:     g.cfg.Model,
		MaxTokens: verifyMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
	}

	if _, err := g.client(apiKey).CreateChatCompletion(ctx, request); err != nil {
		classified := classify(err)
		span.RecordError(classified)
		span.SetStatus(codes.Error, classified.Error())
		g.logger.Debug().Err(classified).Msg("key verification failed")
		return classified
	}

	return nil
}

func (g *GroqClient) client(apiKey string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = g.cfg.BaseURL
	return openai.NewClientWithConfig(config)
}

// classify maps SDK errors onto the gateway's failure taxonomy.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErrorCode(apiErr) == "invalid_api_key" {
			return ErrCredentialInvalid
		}
		return &ProviderError{Code: apiErrorCode(apiErr), Message: apiErr.Message}
	}
	return fmt.Errorf("gateway transport: %w", err)
}

func apiErrorCode(err *openai.APIError) string {
	if code, ok := err.Code.(string); ok {
		return code
	}
	return ""
}

func failureKind(err error) string {
	var providerErr *ProviderError
	switch {
	case errors.Is(err, ErrCredentialInvalid):
		return "credential_invalid"
	case errors.As(err, &providerErr):
		return "provider"
	default:
		return "transport"
	}
}
