package sentiment

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/credlens/credlens/internal/model"
)

// Analyzer wraps the VADER lexicon scorer behind the pipeline's
// polarity/subjectivity contract. It is a pure function of the text:
// identical input always yields an identical result.
type Analyzer struct{}

// NewAnalyzer creates a sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes polarity and subjectivity for the text.
// Polarity is the VADER compound score in [-1, 1]. Subjectivity is the
// share of polar (positive or negative) tokens in [0, 1]; a fully
// neutral text scores 0.
func (a *Analyzer) Analyze(text string) model.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return model.SentimentResult{}
	}

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)

	subjectivity := score.Positive + score.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}

	return model.SentimentResult{
		Polarity:     score.Compound,
		Subjectivity: subjectivity,
	}
}
