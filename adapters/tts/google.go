package tts

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

// speechClient is the part of *texttospeech.Client the adapter uses
type speechClient interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleSynthesizer implements SpeechSynthesizer for Google Cloud Text-to-Speech.
// Credentials come from the ambient Google Cloud environment.
type GoogleSynthesizer struct {
	client speechClient
	logger *zap.Logger
}

// Ensure GoogleSynthesizer implements the SpeechSynthesizer interface
var _ repositories.SpeechSynthesizer = (*GoogleSynthesizer)(nil)

// NewGoogleSynthesizer creates the Cloud Text-to-Speech client once for the process
func NewGoogleSynthesizer(ctx context.Context, logger *zap.Logger) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleSynthesizer{client: client, logger: logger}, nil
}

// Synthesize implements repositories.SpeechSynthesizer
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, req repositories.SynthesisRequest) ([]byte, error) {
	encoding, err := audioEncoding(req.AudioEncoding)
	if err != nil {
		return nil, domain.NewProviderError(err)
	}

	g.logger.Debug("Requesting speech synthesis",
		zap.String("languageCode", req.LanguageCode),
		zap.String("voiceGender", string(req.VoiceGender)),
		zap.Int("textLength", len(req.Text)))

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.LanguageCode,
			SsmlGender:   ssmlGender(req.VoiceGender),
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	})
	if err != nil {
		return nil, domain.NewProviderError(err)
	}

	return resp.GetAudioContent(), nil
}

// Close releases the underlying gRPC connection
func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}

func ssmlGender(gender repositories.VoiceGender) texttospeechpb.SsmlVoiceGender {
	switch gender {
	case repositories.VoiceGenderFemale:
		return texttospeechpb.SsmlVoiceGender_FEMALE
	case repositories.VoiceGenderMale:
		return texttospeechpb.SsmlVoiceGender_MALE
	default:
		return texttospeechpb.SsmlVoiceGender_NEUTRAL
	}
}

func audioEncoding(encoding repositories.AudioEncoding) (texttospeechpb.AudioEncoding, error) {
	switch encoding {
	case repositories.AudioEncodingMP3, "":
		return texttospeechpb.AudioEncoding_MP3, nil
	default:
		return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported audio encoding: %s", encoding)
	}
}
