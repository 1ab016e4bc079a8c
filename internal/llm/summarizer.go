package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Summarizer turns a finished report into a short reader-facing
// explanation. It operates strictly on the report's own findings.
type Summarizer struct {
	provider Provider
}

// NewSummarizer creates a summarizer, or nil if no provider is configured
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Summarizer{provider: provider}, nil
}

// Summarize generates the explanation text for the report
func (s *Summarizer) Summarize(ctx context.Context, report model.CredibilityReport) (string, error) {
	summary, err := s.provider.Summarize(ctx, report)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.provider.Name(), err)
	}
	return strings.TrimSpace(summary), nil
}

// BuildPrompt renders the report facts the model is allowed to restate
func BuildPrompt(report model.CredibilityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Credibility assessment of %q (%s):\n", report.Title, report.Domain)
	fmt.Fprintf(&b, "- Overall score: %d/100 (%s: %s)\n", report.CredibilityScore, report.Warning.Level, report.Warning.Label)
	fmt.Fprintf(&b, "- Source reputation: %s (%d/100) - %s\n",
		report.Analysis.SourceCredibility.Classification,
		report.Analysis.SourceCredibility.Score,
		report.Analysis.SourceCredibility.Note)
	fmt.Fprintf(&b, "- Clickbait score: %d/100\n", report.Analysis.Clickbait.Score)
	for _, indicator := range report.Analysis.Clickbait.Indicators {
		fmt.Fprintf(&b, "  - %s\n", indicator)
	}
	fmt.Fprintf(&b, "- Text quality: %d/100 (%s)\n",
		report.Analysis.TextQuality.Score,
		strings.Join(report.Analysis.TextQuality.Issues, "; "))
	fmt.Fprintf(&b, "- Sentiment: polarity %.2f, subjectivity %.2f\n",
		report.Analysis.Sentiment.Polarity,
		report.Analysis.Sentiment.Subjectivity)
	fmt.Fprintf(&b, "- Key findings: %s\n", strings.Join(report.KeyFindings, "; "))
	b.WriteString("\nWrite two to four sentences summarizing this assessment for a general reader.")

	return b.String()
}
