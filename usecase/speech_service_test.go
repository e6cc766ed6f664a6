package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

type recordingSynthesizer struct {
	requests []repositories.SynthesisRequest
	audio    []byte
	err      error
}

func (s *recordingSynthesizer) Synthesize(ctx context.Context, req repositories.SynthesisRequest) ([]byte, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.audio, nil
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "en-IN"},
		{"hi", "hi-IN"},
		{"gu", "gu-IN"},
		{"fr", "en-IN"},
		{"", "en-IN"},
		{"HI", "en-IN"},
	}

	for _, tt := range tests {
		if got := ResolveLocale(tt.lang); got != tt.want {
			t.Errorf("ResolveLocale(%q): expected %s, got %s", tt.lang, tt.want, got)
		}
	}
}

func TestSpeechService_Speak(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01}
	synthesizer := &recordingSynthesizer{audio: audio}
	service := NewSpeechService(synthesizer, zaptest.NewLogger(t))

	got, err := service.Speak(context.Background(), "Hello", "hi")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("Expected audio to be returned unmodified, got %v", got)
	}

	if len(synthesizer.requests) != 1 {
		t.Fatalf("Expected exactly 1 synthesis call, got %d", len(synthesizer.requests))
	}
	req := synthesizer.requests[0]
	if req.Text != "Hello" {
		t.Errorf("Expected text Hello, got %s", req.Text)
	}
	if req.LanguageCode != "hi-IN" {
		t.Errorf("Expected language code hi-IN, got %s", req.LanguageCode)
	}
	if req.VoiceGender != repositories.VoiceGenderNeutral {
		t.Errorf("Expected neutral voice, got %s", req.VoiceGender)
	}
	if req.AudioEncoding != repositories.AudioEncodingMP3 {
		t.Errorf("Expected mp3 encoding, got %s", req.AudioEncoding)
	}
}

func TestSpeechService_Speak_UnknownLanguage(t *testing.T) {
	synthesizer := &recordingSynthesizer{audio: []byte("mp3")}
	service := NewSpeechService(synthesizer, zaptest.NewLogger(t))

	if _, err := service.Speak(context.Background(), "Bonjour", "fr"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if synthesizer.requests[0].LanguageCode != DefaultLocale {
		t.Errorf("Expected %s, got %s", DefaultLocale, synthesizer.requests[0].LanguageCode)
	}
}

func TestSpeechService_Speak_EmptyText(t *testing.T) {
	synthesizer := &recordingSynthesizer{}
	service := NewSpeechService(synthesizer, zaptest.NewLogger(t))

	_, err := service.Speak(context.Background(), "", "en")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("Expected ErrEmptyText, got %v", err)
	}
	if len(synthesizer.requests) != 0 {
		t.Error("Expected provider not to be called")
	}
}

func TestSpeechService_Speak_ProviderError(t *testing.T) {
	synthesizer := &recordingSynthesizer{err: errors.New("permission denied")}
	service := NewSpeechService(synthesizer, zaptest.NewLogger(t))

	_, err := service.Speak(context.Background(), "Hello", "en")
	if domain.KindOf(err) != domain.KindProvider {
		t.Errorf("Expected provider kind, got %q", domain.KindOf(err))
	}
}
