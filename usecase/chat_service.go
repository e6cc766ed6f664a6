package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

// DefaultLanguage is used when a request carries no language tag
const DefaultLanguage = "en"

const instructionTemplate = "You are Krishi-Saathi, an expert agronomist and friendly assistant for smallholder farmers in India. " +
	"Answer simply and practically. When asked about crops, soils, fertilizers, pests or planting times, give step-by-step advice, " +
	"mention local/seasonal considerations, and use plain language. If you are unsure, say so and recommend contacting local agricultural extension services. " +
	"Respond in the same language as the user (language code: %s)."

// ErrEmptyMessage is returned for a chat request without a message
var ErrEmptyMessage = domain.NewValidationError("empty message")

// BuildPrompt prepends the assistant instruction for lang to the user's message
func BuildPrompt(message, lang string) string {
	return fmt.Sprintf(instructionTemplate, lang) + "\n\nUser: " + message
}

// ChatService answers single chat messages
type ChatService struct {
	generator repositories.TextGenerator
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(generator repositories.TextGenerator, logger *zap.Logger) *ChatService {
	return &ChatService{generator: generator, logger: logger}
}

// Reply composes the prompt for message and returns the provider's text
func (s *ChatService) Reply(ctx context.Context, message, lang string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	if strings.TrimSpace(lang) == "" {
		lang = DefaultLanguage
	}

	reply, err := s.generator.Generate(ctx, BuildPrompt(message, lang))
	if err != nil {
		s.logger.Error("Text generation failed",
			zap.String("lang", lang),
			zap.Int("messageLength", len(message)),
			zap.Error(err))
		return "", domain.AsProviderError(err)
	}

	s.logger.Debug("Chat reply generated",
		zap.String("lang", lang),
		zap.Int("replyLength", len(reply)))

	return reply, nil
}
