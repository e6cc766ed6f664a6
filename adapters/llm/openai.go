package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIConfig holds configuration for the OpenAI adapter
type OpenAIConfig struct {
	APIKey  string // Required
	Model   string // Optional, defaults to gpt-4o-mini
	BaseURL string // Optional, for OpenAI-compatible endpoints
}

// OpenAIGenerator implements TextGenerator with the chat completions API
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.TextGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a new OpenAI generator
func NewOpenAIGenerator(config OpenAIConfig, logger *zap.Logger) (*OpenAIGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = defaultOpenAIModel
		logger.Info("Using default OpenAI model", zap.String("model", model))
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends the prompt as a single user message
func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", domain.NewProviderError(err)
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		return resp.Choices[0].Message.Content, nil
	}

	o.logger.Warn("OpenAI response carried no text", zap.String("model", o.model))
	rendered, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", resp), nil
	}
	return string(rendered), nil
}
