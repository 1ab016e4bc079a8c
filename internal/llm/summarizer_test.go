package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

type stubProvider struct {
	summary string
	err     error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Summarize(ctx context.Context, report model.CredibilityReport) (string, error) {
	return s.summary, s.err
}

func sampleReport() model.CredibilityReport {
	return model.CredibilityReport{
		URL:              "https://example.com/article",
		Title:            "Council approves budget",
		Domain:           "example.com",
		CredibilityScore: 82,
		Warning: model.WarningResult{
			Level: model.WarningSafe,
			Label: "Likely Credible",
		},
		Analysis: model.Analysis{
			SourceCredibility: model.SourceCredibilityResult{
				Score:          50,
				Classification: model.SourceUnknown,
				Note:           "Source credibility cannot be verified",
			},
			TextQuality: model.TextQualityResult{
				Score:  100,
				Issues: []string{"No major issues detected"},
			},
		},
		KeyFindings: []string{"No major red flags detected"},
	}
}

func TestNewSummarizer_Disabled(t *testing.T) {
	s, err := NewSummarizer(model.LLMConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Error("Expected nil summarizer when no provider is configured")
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	_, err := NewSummarizer(model.LLMConfig{Provider: "anthropic"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSummarize_TrimsOutput(t *testing.T) {
	s := &Summarizer{provider: &stubProvider{summary: "  A short summary.\n"}}

	got, err := s.Summarize(context.Background(), sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	if got != "A short summary." {
		t.Errorf("Expected trimmed summary, got %q", got)
	}
}

func TestSummarize_WrapsProviderError(t *testing.T) {
	cause := errors.New("rate limited")
	s := &Summarizer{provider: &stubProvider{err: cause}}

	_, err := s.Summarize(context.Background(), sampleReport())
	if err == nil {
		t.Fatal("Expected error from provider")
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "stub: ") {
		t.Errorf("Expected provider name prefix, got %v", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleReport())

	for _, want := range []string{
		`"Council approves budget" (example.com)`,
		"Overall score: 82/100",
		"Source reputation: Unknown Source (50/100)",
		"Clickbait score: 0/100",
		"Text quality: 100/100 (No major issues detected)",
		"Key findings: No major red flags detected",
		"two to four sentences",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}
