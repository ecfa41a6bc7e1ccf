package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"stonkie-backend/internal/llm"
	"stonkie-backend/internal/shared/telemetry"
)

const defaultModel = "gemini-1.5-pro"

// Generator implements llm.Generator on the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
}

// New constructs a Gemini-backed generator. The client is shared across requests.
func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

// Generate sends all parts as one user turn and returns the response text.
func (g *Generator) Generate(ctx context.Context, req llm.Request) (string, error) {
	contents := buildContents(req)
	config := &genai.GenerateContentConfig{}
	if strings.TrimSpace(req.System) != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := resp.Text()
	fields := map[string]any{
		"model": g.model,
		"parts": len(req.Parts),
		"chars": len(text),
	}
	if resp.UsageMetadata != nil {
		fields["prompt_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["output_tokens"] = resp.UsageMetadata.CandidatesTokenCount
	}
	telemetry.Info("llm.response", fields)
	return text, nil
}

func buildContents(req llm.Request) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		parts = append(parts, &genai.Part{Text: p})
	}
	return []*genai.Content{{Role: "user", Parts: parts}}
}

var _ llm.Generator = (*Generator)(nil)
