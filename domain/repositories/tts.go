package repositories

import "context"

// VoiceGender selects the voice used for synthesis
type VoiceGender string

// AudioEncoding selects the audio container returned by the provider
type AudioEncoding string

const (
	VoiceGenderNeutral VoiceGender = "neutral"
	VoiceGenderFemale  VoiceGender = "female"
	VoiceGenderMale    VoiceGender = "male"

	AudioEncodingMP3 AudioEncoding = "mp3"
)

// SynthesisRequest describes one text-to-speech call
type SynthesisRequest struct {
	Text          string        `json:"text"`
	LanguageCode  string        `json:"language_code"`
	VoiceGender   VoiceGender   `json:"voice_gender"`
	AudioEncoding AudioEncoding `json:"audio_encoding"`
}

// SpeechSynthesizer abstracts text-to-speech services
type SpeechSynthesizer interface {
	// Synthesize returns the encoded audio for the request
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
}
