package llm

import (
	"context"
	"errors"
)

// Generator abstracts text-generation providers.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is a single generation call: a system instruction plus ordered
// user content parts.
type Request struct {
	System string
	Parts  []string
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderGenerator is used when no provider credentials are available.
type PlaceholderGenerator struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderGenerator) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
