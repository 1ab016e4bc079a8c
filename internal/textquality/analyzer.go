package textquality

import (
	"sort"
	"strings"
	"unicode"

	"github.com/credlens/credlens/internal/model"
)

// Quality scoring constants
const (
	minContentLength = 100 // runes; anything shorter short-circuits
	shortContentScore = 30

	capsRatioThreshold  = 0.1
	capsPenalty         = 20
	sentenceSampleRunes = 1000
	minAvgSentenceWords = 5
	shortSentencePenalty = 15
	uniqueWordSample    = 200
	uniqueRatioThreshold = 0.3
	repetitionPenalty   = 20
)

const noIssues = "No major issues detected"

// Analyzer scores body text for structural and linguistic red flags
type Analyzer struct{}

// NewAnalyzer creates a new text quality analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze checks the text against each red flag independently, starting
// from 100 and decrementing per detected issue, floored at 0.
func (a *Analyzer) Analyze(text string) model.TextQualityResult {
	runes := []rune(text)
	if len(runes) < minContentLength {
		return model.TextQualityResult{
			Score:  shortContentScore,
			Issues: []string{"Insufficient content"},
		}
	}

	issues := []string{}
	score := 100

	if capsRatio(runes) > capsRatioThreshold {
		score -= capsPenalty
		issues = append(issues, "Excessive capitalization")
	}

	sample := runes
	if len(sample) > sentenceSampleRunes {
		sample = sample[:sentenceSampleRunes]
	}
	sentences := SplitSentences(string(sample))
	if len(sentences) > 0 {
		totalWords := 0
		for _, s := range sentences {
			totalWords += len(strings.Fields(s))
		}
		avg := float64(totalWords) / float64(len(sentences))
		if avg < minAvgSentenceWords {
			score -= shortSentencePenalty
			issues = append(issues, "Unusually short sentences")
		}
	}

	words := strings.Fields(text)
	if len(words) > uniqueWordSample {
		words = words[:uniqueWordSample]
	}
	if len(words) > 0 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[strings.ToLower(w)] = true
		}
		if float64(len(unique))/float64(len(words)) < uniqueRatioThreshold {
			score -= repetitionPenalty
			issues = append(issues, "Highly repetitive content")
		}
	}

	if score < 0 {
		score = 0
	}
	if len(issues) == 0 {
		issues = []string{noIssues}
	}

	return model.TextQualityResult{
		Score:  score,
		Issues: issues,
	}
}

// NoIssuesSentinel is the issues entry emitted when nothing triggered.
// The orchestrator uses it to decide whether quality belongs in the
// key findings.
func NoIssuesSentinel() string {
	return noIssues
}

// capsRatio returns the share of uppercase runes over all runes
func capsRatio(runes []rune) float64 {
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len(runes))
}

// SplitSentences splits text on sentence terminators (. ! ?) followed
// by whitespace or end of text. No length filtering is applied.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' {
				sentence := strings.TrimSpace(current.String())
				if sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// TopKeywords returns the n most frequent non-stopword terms of the
// text, frequency descending. Ties break alphabetically so the output
// is deterministic.
func TopKeywords(text string, n int) []string {
	counts := make(map[string]int)
	for _, w := range strings.Fields(text) {
		w = strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}))
		if len(w) < 3 || stopwords[w] {
			continue
		}
		counts[w]++
	}

	terms := make([]string, 0, len(counts))
	for w := range counts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
