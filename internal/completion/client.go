package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitgpt/backend/internal/telemetry/metrics"
	"github.com/fitgpt/backend/internal/telemetry/tracing"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=client_mocks_test.go -package=completion_test

const systemInstruction = "You are FitGPT, a personal trainer AI bot who brings the pain."

var ErrNoCompletionChoices = errors.New("completion response has no choices")

// ChatCompleter is the part of the OpenAI client the workout generator needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	api       ChatCompleter
	model     string
	maxTokens int
	metrics   *metrics.Manager
}

type NewClientParams struct {
	API            ChatCompleter
	Model          string
	MaxTokens      int
	MetricsManager *metrics.Manager
}

func NewClient(params NewClientParams) *Client {
	return &Client{
		api:       params.API,
		model:     params.Model,
		maxTokens: params.MaxTokens,
		metrics:   params.MetricsManager,
	}
}

// GenerateWorkout sends the prompt to the completion API and parses the JSON
// envelope out of the reply. The userID is passed through to the upstream
// API for its abuse monitoring, nothing else.
func (c *Client) GenerateWorkout(ctx context.Context, prompt, userID string) (_ *GeneratedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "completion.generateWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("model", c.model))

	c.metrics.CounterCompletionCalls.Inc()

	startedAt := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: c.maxTokens,
		User:      userID,
	})
	c.metrics.HistCompletionDuration.Observe(time.Since(startedAt).Seconds())
	if err != nil {
		c.metrics.CounterCompletionFailures.Inc()
		return nil, fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.metrics.CounterCompletionFailures.Inc()
		return nil, ErrNoCompletionChoices
	}

	rawMessage := resp.Choices[0].Message.Content
	log.Tracef("completion for user %s: %d chars", userID, len(rawMessage))

	envelope, err := ExtractEnvelope(rawMessage)
	if err != nil {
		c.metrics.CounterCompletionParseFails.Inc()
		return nil, fmt.Errorf("extract envelope: %w", err)
	}

	return envelope, nil
}
