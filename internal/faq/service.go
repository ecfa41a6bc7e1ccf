package faq

import (
	"context"
	"regexp"
	"strings"
	"time"

	"stonkie-backend/internal/llm"
	"stonkie-backend/internal/shared/telemetry"
)

// DefaultQuestions are served whenever generation fails or yields nothing.
var DefaultQuestions = []string{
	"What is the company's revenue?",
	"What is the company's net income?",
	"What is the company's cash flow?",
}

const systemInstruction = "You are a professional financial analyst who specializes in anticipating questions from customers."

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// Service produces suggested questions through the generator.
type Service struct {
	Generator llm.Generator
	Timeout   time.Duration
}

// NewService constructs a Service.
func NewService(gen llm.Generator, timeout time.Duration) *Service {
	return &Service{Generator: gen, Timeout: timeout}
}

// General returns company-agnostic questions about financial concepts.
func (s *Service) General(ctx context.Context) []string {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.Generator.Generate(ctx, llm.Request{
		System: systemInstruction,
		Parts: []string{
			"Generate 3 questions that customers would ask about a particular financial concept such as revenue, net income, cash flow, etc.",
			"The question should be generic and not specific to any particular company.",
			"The questions should be concise and to the point.",
			"The questions should be in the form of a list of questions. Only return the list of questions, no other text.",
		},
	})
	if err != nil {
		return fallback("faq.general_failed", "", err)
	}
	return questionsOrDefault(text)
}

// ForTicker resolves the company name, then asks for statement-related questions.
func (s *Service) ForTicker(ctx context.Context, ticker string) []string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	name, err := s.Generator.Generate(ctx, llm.Request{
		System: systemInstruction,
		Parts:  []string{"What is the company's name in full instead of ticker symbol for " + ticker + "?"},
	})
	if err != nil {
		return fallback("faq.company_name_failed", ticker, err)
	}

	text, err := s.Generator.Generate(ctx, llm.Request{
		System: systemInstruction,
		Parts: []string{
			"Here is the company's name: " + strings.TrimSpace(name),
			"Generate 3 questions that customers would ask about this ticker symbol.",
			"We only have balance sheet, income statement, and cash flow statements for this company.",
			"The questions should be related to one of the company's financial statements.",
			"The questions should be concise and to the point.",
			"The questions should be in the form of a list of questions.",
		},
	})
	if err != nil {
		return fallback("faq.ticker_failed", ticker, err)
	}
	return questionsOrDefault(text)
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

// ParseQuestions splits generated text into one question per non-blank line,
// dropping list markers.
func ParseQuestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		q := strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if q != "" {
			out = append(out, q)
		}
	}
	return out
}

func questionsOrDefault(text string) []string {
	qs := ParseQuestions(text)
	if len(qs) == 0 {
		return defaults()
	}
	return qs
}

func fallback(event, ticker string, err error) []string {
	fields := map[string]any{"error": err}
	if ticker != "" {
		fields["ticker"] = ticker
	}
	telemetry.Warn(event, fields)
	return defaults()
}

func defaults() []string {
	out := make([]string, len(DefaultQuestions))
	copy(out, DefaultQuestions)
	return out
}
