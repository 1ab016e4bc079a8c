package textquality

import (
	"strings"
	"testing"
)

// wellFormed is a clean passage comfortably over the length threshold
const wellFormed = "The committee met on Tuesday to discuss the proposed changes to the zoning regulations. " +
	"Several residents spoke in favor of the amendment, citing improved access to public transport. " +
	"A final vote is expected at the next session, following a review by the planning department."

func TestAnalyze_EmptyText(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("")

	if result.Score != 30 {
		t.Errorf("Expected score 30 for empty text, got %d", result.Score)
	}
	if len(result.Issues) != 1 || result.Issues[0] != "Insufficient content" {
		t.Errorf("Unexpected issues: %v", result.Issues)
	}
}

func TestAnalyze_ShortText(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("This text is shorter than one hundred characters.")

	if result.Score != 30 {
		t.Errorf("Expected score 30 for short text, got %d", result.Score)
	}
	if len(result.Issues) != 1 || result.Issues[0] != "Insufficient content" {
		t.Errorf("Unexpected issues: %v", result.Issues)
	}
}

func TestAnalyze_CleanText(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze(wellFormed)

	if result.Score != 100 {
		t.Errorf("Expected score 100 for clean text, got %d (issues: %v)", result.Score, result.Issues)
	}
	if len(result.Issues) != 1 || result.Issues[0] != NoIssuesSentinel() {
		t.Errorf("Expected no-issues sentinel, got %v", result.Issues)
	}
}

func TestAnalyze_ExcessiveCapitalization(t *testing.T) {
	analyzer := NewAnalyzer()

	text := strings.Repeat("THE GOVERNMENT IS HIDING THE REAL NUMBERS FROM EVERY CITIZEN IN THIS COUNTRY. ", 3)
	result := analyzer.Analyze(text)

	if result.Score != 80 {
		t.Errorf("Expected score 80, got %d (issues: %v)", result.Score, result.Issues)
	}
	if len(result.Issues) != 1 || result.Issues[0] != "Excessive capitalization" {
		t.Errorf("Unexpected issues: %v", result.Issues)
	}
}

func TestAnalyze_ShortSentencesAndRepetition(t *testing.T) {
	analyzer := NewAnalyzer()

	// Two-word sentences, two unique words: triggers both penalties
	text := strings.Repeat("buy now. ", 30)
	result := analyzer.Analyze(text)

	if result.Score != 65 {
		t.Errorf("Expected score 65, got %d (issues: %v)", result.Score, result.Issues)
	}
	expected := []string{"Unusually short sentences", "Highly repetitive content"}
	if len(result.Issues) != len(expected) {
		t.Fatalf("Expected issues %v, got %v", expected, result.Issues)
	}
	for i, want := range expected {
		if result.Issues[i] != want {
			t.Errorf("Issue %d: expected %q, got %q", i, want, result.Issues[i])
		}
	}
}

func TestAnalyze_ScoreNeverNegative(t *testing.T) {
	analyzer := NewAnalyzer()

	// Shouting plus repetition plus short sentences stacks all penalties
	text := strings.Repeat("BUY NOW. ", 30)
	result := analyzer.Analyze(text)

	if result.Score < 0 || result.Score > 100 {
		t.Errorf("Score out of range: %d", result.Score)
	}
	if result.Score != 45 {
		t.Errorf("Expected score 45 with all three penalties, got %d (issues: %v)", result.Score, result.Issues)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence here. Second one! Third one? Trailing fragment")

	if len(sentences) != 4 {
		t.Fatalf("Expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "First sentence here." {
		t.Errorf("Unexpected first sentence: %q", sentences[0])
	}
	if sentences[3] != "Trailing fragment" {
		t.Errorf("Unexpected trailing sentence: %q", sentences[3])
	}
}

func TestSplitSentences_NoSplitInsideToken(t *testing.T) {
	// A period not followed by whitespace does not end a sentence
	sentences := SplitSentences("Visit example.com for details. Thanks.")

	if len(sentences) != 2 {
		t.Errorf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestTopKeywords(t *testing.T) {
	text := "The economy grew this quarter. Analysts said the economy would slow, but the economy surprised analysts."

	keywords := TopKeywords(text, 3)

	if len(keywords) == 0 || keywords[0] != "economy" {
		t.Fatalf("Expected 'economy' as top keyword, got %v", keywords)
	}
	if len(keywords) > 3 {
		t.Errorf("Expected at most 3 keywords, got %v", keywords)
	}
	for _, kw := range keywords {
		if stopwords[kw] {
			t.Errorf("Stopword %q leaked into keywords", kw)
		}
	}
}

func TestTopKeywords_Deterministic(t *testing.T) {
	text := wellFormed

	first := TopKeywords(text, 5)
	second := TopKeywords(text, 5)

	if len(first) != len(second) {
		t.Fatalf("Keyword count differs between runs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Keyword order differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
