package score

import (
	"github.com/credlens/credlens/internal/model"
)

// Weighting policy. These constants define the scoring behavior and
// must not be made configurable: every published score depends on them.
const (
	sourceWeight    = 0.35
	clickbaitWeight = 0.25
	qualityWeight   = 0.20
	sentimentWeight = 0.20

	polarityCoefficient     = 30
	subjectivityCoefficient = 20
)

// Scorer combines the four sub-analyses into one 0-100 credibility score
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate produces the weighted credibility score. Sentiment extremity
// (very positive or very negative polarity) and subjectivity both reduce
// the sentiment component, which is floored at 0 before weighting. The
// final result is clamped to [0, 100] and truncated to an integer.
func (s *Scorer) Calculate(
	sentiment model.SentimentResult,
	clickbait model.ClickbaitResult,
	sourceCred model.SourceCredibilityResult,
	textQuality model.TextQualityResult,
) int {
	polarity := sentiment.Polarity
	if polarity < 0 {
		polarity = -polarity
	}

	sentimentScore := 100 - polarity*polarityCoefficient - sentiment.Subjectivity*subjectivityCoefficient
	if sentimentScore < 0 {
		sentimentScore = 0
	}

	credibility := float64(sourceCred.Score)*sourceWeight +
		float64(100-clickbait.Score)*clickbaitWeight +
		float64(textQuality.Score)*qualityWeight +
		sentimentScore*sentimentWeight

	if credibility > 100 {
		credibility = 100
	}
	if credibility < 0 {
		credibility = 0
	}

	return int(credibility)
}
