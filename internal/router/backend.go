package router

import (
	"context"
	"fmt"

	"github.com/nulzo/assist-router/pkg/api"
)

// Backend is the provider-call abstraction behind the router. A real
// implementation would call out to the model's provider; the router only
// requires that the call is context-bound.
type Backend interface {
	Complete(ctx context.Context, model api.ModelConfig, prompt string) (string, error)
}

// SimulatedBackend stands in for a provider client. Its output embeds the
// prompt text and the chosen model's name verbatim, which integration
// consumers rely on.
type SimulatedBackend struct{}

func NewSimulatedBackend() *SimulatedBackend {
	return &SimulatedBackend{}
}

func (b *SimulatedBackend) Complete(ctx context.Context, model api.ModelConfig, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Response for '%s' using %s: [Simulated AI Response]", prompt, model.Name), nil
}
