package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

// DefaultLocale is used for any language tag missing from the table
const DefaultLocale = "en-IN"

var localeByLanguage = map[string]string{
	"en": "en-IN",
	"hi": "hi-IN",
	"gu": "gu-IN",
}

// ErrEmptyText is returned for a speech request without text
var ErrEmptyText = domain.NewValidationError("empty text")

// ResolveLocale maps a short language tag to the provider locale code
func ResolveLocale(lang string) string {
	if locale, ok := localeByLanguage[lang]; ok {
		return locale
	}
	return DefaultLocale
}

// SpeechService turns text into spoken audio
type SpeechService struct {
	synthesizer repositories.SpeechSynthesizer
	logger      *zap.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(synthesizer repositories.SpeechSynthesizer, logger *zap.Logger) *SpeechService {
	return &SpeechService{synthesizer: synthesizer, logger: logger}
}

// Speak synthesizes text with a neutral voice for lang and returns MP3 bytes
func (s *SpeechService) Speak(ctx context.Context, text, lang string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	req := repositories.SynthesisRequest{
		Text:          text,
		LanguageCode:  ResolveLocale(lang),
		VoiceGender:   repositories.VoiceGenderNeutral,
		AudioEncoding: repositories.AudioEncodingMP3,
	}

	audio, err := s.synthesizer.Synthesize(ctx, req)
	if err != nil {
		s.logger.Error("Speech synthesis failed",
			zap.String("languageCode", req.LanguageCode),
			zap.Error(err))
		return nil, domain.AsProviderError(err)
	}

	s.logger.Debug("Speech synthesized",
		zap.String("languageCode", req.LanguageCode),
		zap.Int("audioSize", len(audio)))

	return audio, nil
}
