package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/credlens/credlens/internal/clickbait"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/score"
	"github.com/credlens/credlens/internal/sentiment"
	"github.com/credlens/credlens/internal/source"
	"github.com/credlens/credlens/internal/textquality"
)

const topKeywordCount = 5

// Analyzer orchestrates the complete analysis of one URL:
// fetch, the four independent sub-analyses, weighted scoring, warning
// classification, and the key findings summary.
type Analyzer struct {
	fetcher     *Fetcher
	sentiment   *sentiment.Analyzer
	clickbait   *clickbait.Detector
	sources     *source.Classifier
	textQuality *textquality.Analyzer
	scorer      *score.Scorer
	log         *logrus.Logger
}

// NewAnalyzer creates an analyzer from the given configuration
func NewAnalyzer(cfg *model.Config, log *logrus.Logger) *Analyzer {
	if log == nil {
		log = logrus.New()
	}

	return &Analyzer{
		fetcher:     NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes),
		sentiment:   sentiment.NewAnalyzer(),
		clickbait:   clickbait.NewDetector(),
		sources:     source.NewClassifier(&cfg.Sources),
		textQuality: textquality.NewAnalyzer(),
		scorer:      score.NewScorer(),
		log:         log,
	}
}

// Analyze runs the full pipeline for one URL. A fetch failure is
// propagated immediately as a failed Outcome with no further work.
func (a *Analyzer) Analyze(ctx context.Context, url string) model.Outcome {
	content := a.fetcher.Fetch(ctx, url)
	if !content.Success {
		a.log.WithField("url", url).Warn(content.Error)
		return model.Failure(content.Error)
	}

	report := a.buildReport(content)

	a.log.WithFields(logrus.Fields{
		"url":   url,
		"score": report.CredibilityScore,
		"level": report.Warning.Level,
	}).Info("analysis complete")

	return model.SuccessOutcome(report)
}

// buildReport runs the sub-analyses over fetched content and assembles
// the report. It is a pure function of the content: the four analyses
// are order-independent and share no mutable state.
func (a *Analyzer) buildReport(content model.FetchedContent) *model.CredibilityReport {
	analysis := model.Analysis{
		Sentiment:         a.sentiment.Analyze(content.Body),
		Clickbait:         a.clickbait.Detect(content.Title, content.Body),
		SourceCredibility: a.sources.Classify(content.Domain),
		TextQuality:       a.textQuality.Analyze(content.Body),
	}

	credibilityScore := a.scorer.Calculate(
		analysis.Sentiment,
		analysis.Clickbait,
		analysis.SourceCredibility,
		analysis.TextQuality,
	)

	return &model.CredibilityReport{
		URL:              content.URL,
		Title:            content.Title,
		Domain:           content.Domain,
		CredibilityScore: credibilityScore,
		Warning:          score.ClassifyWarning(credibilityScore),
		Analysis:         analysis,
		KeyFindings:      keyFindings(analysis),
		TopKeywords:      textquality.TopKeywords(content.Body, topKeywordCount),
	}
}

// keyFindings derives the report summary in fixed order:
// clickbait, source reputation, subjectivity, text quality, fallback.
func keyFindings(analysis model.Analysis) []string {
	findings := []string{}

	if len(analysis.Clickbait.Indicators) > 0 {
		head := analysis.Clickbait.Indicators
		if len(head) > 2 {
			head = head[:2]
		}
		findings = append(findings, fmt.Sprintf("Clickbait indicators detected: %s", strings.Join(head, ", ")))
	}

	switch analysis.SourceCredibility.Classification {
	case model.SourceHighlyCredible:
		findings = append(findings, "Source is a well-established news organization")
	case model.SourceQuestionable:
		findings = append(findings, "Source has history of publishing misleading content")
	}

	if analysis.Sentiment.Subjectivity > 0.6 {
		findings = append(findings, "Content is highly subjective/opinion-based")
	}

	if len(analysis.TextQuality.Issues) > 0 && analysis.TextQuality.Issues[0] != textquality.NoIssuesSentinel() {
		findings = append(findings, fmt.Sprintf("Text quality issues: %s", analysis.TextQuality.Issues[0]))
	}

	if len(findings) == 0 {
		findings = append(findings, "No major red flags detected")
	}

	return findings
}
