package sentiment

import "testing"

func TestAnalyze_EmptyText(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("")
	if result.Polarity != 0 || result.Subjectivity != 0 {
		t.Errorf("Expected zero result for empty text, got %+v", result)
	}

	result = analyzer.Analyze("   \n\t  ")
	if result.Polarity != 0 || result.Subjectivity != 0 {
		t.Errorf("Expected zero result for blank text, got %+v", result)
	}
}

func TestAnalyze_PositiveText(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("This is a wonderful, excellent and truly great achievement.")

	if result.Polarity <= 0 {
		t.Errorf("Expected positive polarity, got %f", result.Polarity)
	}
	if result.Subjectivity <= 0 {
		t.Errorf("Expected nonzero subjectivity for polar text, got %f", result.Subjectivity)
	}
}

func TestAnalyze_NegativeText(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("This is a horrible, terrible and truly awful disaster.")

	if result.Polarity >= 0 {
		t.Errorf("Expected negative polarity, got %f", result.Polarity)
	}
}

func TestAnalyze_ResultsInRange(t *testing.T) {
	analyzer := NewAnalyzer()

	texts := []string{
		"The council approved the budget on Thursday.",
		"AMAZING!!! You will LOVE this INCREDIBLE deal!!!",
		"Tragic, devastating losses. Horrible. Awful. The worst.",
	}

	for _, text := range texts {
		result := analyzer.Analyze(text)
		if result.Polarity < -1 || result.Polarity > 1 {
			t.Errorf("Polarity out of range for %q: %f", text, result.Polarity)
		}
		if result.Subjectivity < 0 || result.Subjectivity > 1 {
			t.Errorf("Subjectivity out of range for %q: %f", text, result.Subjectivity)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	text := "Analysts praised the strong quarterly results but warned of risks ahead."

	first := analyzer.Analyze(text)
	for i := 0; i < 5; i++ {
		if got := analyzer.Analyze(text); got != first {
			t.Fatalf("Non-deterministic result: %+v vs %+v", first, got)
		}
	}
}
