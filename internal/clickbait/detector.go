package clickbait

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/credlens/credlens/internal/model"
)

// Signal weights. Fixed policy constants; changing them changes every score.
const (
	weightPunctuation    = 15
	weightCapitalization = 20
	weightPhrase         = 25
	weightQuestion       = 5
	weightListicle       = 10
	maxScore             = 100
)

// numberToken matches a standalone number in a headline (listicle marker)
var numberToken = regexp.MustCompile(`\b\d+\b`)

// Detector scans headlines for sensationalist techniques
type Detector struct {
	phrases []string
}

// NewDetector creates a detector with the built-in phrase list
func NewDetector() *Detector {
	return &Detector{
		phrases: []string{
			"you won't believe", "shocking", "this one trick",
			"doctors hate", "what happened next", "the truth about",
			"they don't want you to know", "mind-blowing",
		},
	}
}

// Detect evaluates the title against each signal independently and sums
// the triggered weights, capped at 100. Indicators are recorded in
// evaluation order. The body is currently unused but kept in the
// contract so signals that need it can be added without churn.
func (d *Detector) Detect(title, body string) model.ClickbaitResult {
	score := 0
	indicators := []string{}

	if strings.Count(title, "!") > 1 {
		score += weightPunctuation
		indicators = append(indicators, "Excessive exclamation marks")
	}

	if countCapsWords(title) > 2 {
		score += weightCapitalization
		indicators = append(indicators, "Excessive capitalization")
	}

	titleLower := strings.ToLower(title)
	for _, phrase := range d.phrases {
		if strings.Contains(titleLower, phrase) {
			score += weightPhrase
			indicators = append(indicators, fmt.Sprintf("Clickbait phrase: '%s'", phrase))
			break // only the first match is recorded
		}
	}

	if strings.Contains(title, "?") {
		score += weightQuestion
		indicators = append(indicators, "Question-based headline")
	}

	if numberToken.MatchString(title) {
		score += weightListicle
		indicators = append(indicators, "Number-based headline (listicle)")
	}

	if score > maxScore {
		score = maxScore
	}

	return model.ClickbaitResult{
		Score:      score,
		Indicators: indicators,
	}
}

// countCapsWords counts whole-uppercase words longer than one character.
// A word qualifies when it has at least one cased rune and every cased
// rune is uppercase.
func countCapsWords(title string) int {
	count := 0
	for _, word := range strings.Fields(title) {
		if len([]rune(word)) > 1 && isUpperWord(word) {
			count++
		}
	}
	return count
}

func isUpperWord(word string) bool {
	hasCased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
