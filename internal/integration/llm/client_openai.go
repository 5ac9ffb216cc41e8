package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/careerforge/careerforge-api/internal/config"
	"github.com/careerforge/careerforge-api/internal/generation"
)

// openAIClient adapts the OpenAI chat-completions API to the generation
// Client interface. One Complete call is one provider request.
type openAIClient struct {
	client openai.Client
	model  string
}

func newOpenAIClient(cfg config.LLMConfig) *openAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIClient{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *openAIClient) Complete(ctx context.Context, req generation.Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Prompt.System),
			openai.UserMessage(req.Prompt.User),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxTokens)
	}
	params.Temperature = openai.Float(req.Temperature)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
