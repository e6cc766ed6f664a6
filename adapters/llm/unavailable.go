package llm

import (
	"context"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/domain/repositories"
)

// UnavailableGenerator stands in for a provider that could not be built
// at startup. Every call fails with the recorded reason.
type UnavailableGenerator struct {
	Reason string
}

var _ repositories.TextGenerator = UnavailableGenerator{}

func (u UnavailableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", domain.NewUnavailableError("text generation unavailable: %s", u.Reason)
}
