package tts

import (
	"context"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

// UnavailableSynthesizer stands in for a speech client that could not be built
type UnavailableSynthesizer struct {
	Reason string
}

var _ repositories.SpeechSynthesizer = UnavailableSynthesizer{}

func (u UnavailableSynthesizer) Synthesize(ctx context.Context, req repositories.SynthesisRequest) ([]byte, error) {
	return nil, domain.NewUnavailableError("speech synthesis unavailable: %s", u.Reason)
}
