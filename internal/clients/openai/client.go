package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-server/internal/observability"

	goopenai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerName = "openai"

var ErrEmptyCompletion = errors.New("openai returned no content")

// Client produces JSON completions through the chat completions API.
type Client struct {
	client goopenai.Client
	model  string
	logger *observability.Logger
}

// NewClient builds a client that makes exactly one attempt per call.
func NewClient(apiKey, model string, logger *observability.Logger, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &Client{
		client: goopenai.NewClient(opts...),
		model:  model,
		logger: logger,
	}
}

// CompleteJSON sends a system and user prompt and returns the raw text of the first choice.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	started := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, goopenai.ChatCompletionNewParams{
		Model: goopenai.ChatModel(c.model),
		Messages: []goopenai.ChatCompletionMessageParamUnion{
			goopenai.SystemMessage(systemPrompt),
			goopenai.UserMessage(userPrompt),
		},
		Temperature: goopenai.Float(0.7),
		ResponseFormat: goopenai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &goopenai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		observability.ObserveExternalCall(providerName, "chat_completion", observability.OutcomeFailure, started)
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		observability.ObserveExternalCall(providerName, "chat_completion", observability.OutcomeFailure, started)
		return "", ErrEmptyCompletion
	}

	observability.ObserveExternalCall(providerName, "chat_completion", observability.OutcomeSuccess, started)
	c.logger.Metrics(ctx,
		observability.MetricField{Key: "ai_provider", Value: providerName},
		observability.MetricField{Key: "ai_total_tokens", Value: completion.Usage.TotalTokens},
	)
	return completion.Choices[0].Message.Content, nil
}
