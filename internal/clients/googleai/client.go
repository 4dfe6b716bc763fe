package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketing-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const providerName = "gemini"

var ErrEmptyCompletion = errors.New("gemini returned no content")

// Client produces JSON completions with a Gemini model.
type Client struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

func NewClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*Client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: c, model: model, logger: logger}, nil
}

// CompleteJSON asks the model for a JSON response to userPrompt.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	started := time.Now()

	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		observability.ObserveExternalCall(providerName, "generate_content", observability.OutcomeFailure, started)
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		observability.ObserveExternalCall(providerName, "generate_content", observability.OutcomeFailure, started)
		return "", ErrEmptyCompletion
	}

	observability.ObserveExternalCall(providerName, "generate_content", observability.OutcomeSuccess, started)
	if resp.UsageMetadata != nil {
		c.logger.Metrics(ctx,
			observability.MetricField{Key: "ai_provider", Value: providerName},
			observability.MetricField{Key: "ai_total_tokens", Value: resp.UsageMetadata.TotalTokenCount},
		)
	}
	return text, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
