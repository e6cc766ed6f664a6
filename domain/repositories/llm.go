package repositories

import "context"

// TextGenerator abstracts any text-generation provider
type TextGenerator interface {
	// Generate sends a fully composed prompt and returns the model's text output
	Generate(ctx context.Context, prompt string) (string, error)
}
