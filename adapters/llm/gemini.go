package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini adapter
type GeminiConfig struct {
	APIKey string // Required
	Model  string // Optional, defaults to gemini-2.5-flash
}

// contentGenerator is the part of *genai.Models the adapter uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements TextGenerator using Google's Gemini API
type GeminiGenerator struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

// Ensure GeminiGenerator implements the TextGenerator interface
var _ repositories.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a Gemini client for the Gemini API backend
func NewGeminiGenerator(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGeminiGenerator(client.Models, config.Model, logger), nil
}

func newGeminiGenerator(models contentGenerator, model string, logger *zap.Logger) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
		logger.Info("Using default Gemini model", zap.String("model", model))
	}
	return &GeminiGenerator{models: models, model: model, logger: logger}
}

// Model returns the model identifier requests are sent to
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends the prompt as a single user turn
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", domain.NewProviderError(err)
	}

	text := geminiReplyText(resp)
	g.logger.Debug("Gemini content generated",
		zap.String("model", g.model),
		zap.Int("replyLength", len(text)))

	return text, nil
}

// geminiReplyText returns the response's text parts, or the JSON rendering
// of the whole response when it carries no text.
func geminiReplyText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if text := resp.Text(); text != "" {
		return text
	}

	rendered, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", *resp)
	}
	return string(rendered)
}
