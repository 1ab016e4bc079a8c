package model

// FetchedContent is the result of fetching and extracting a web page.
// Produced once per request by the Fetcher and never mutated afterwards.
type FetchedContent struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Body    string `json:"body,omitempty"`
	Domain  string `json:"domain,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SentimentResult holds the polarity/subjectivity pair for the body text.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`     // -1 (very negative) to 1 (very positive)
	Subjectivity float64 `json:"subjectivity"` // 0 (factual) to 1 (opinion-based)
}

// ClickbaitResult holds the headline signal score and the triggered indicators.
type ClickbaitResult struct {
	Score      int      `json:"score"` // 0-100, sum of signal weights capped at 100
	Indicators []string `json:"indicators"`
}

// SourceClassification labels a domain's reputation.
type SourceClassification string

const (
	SourceHighlyCredible SourceClassification = "Highly Credible"
	SourceQuestionable   SourceClassification = "Questionable"
	SourceUnknown        SourceClassification = "Unknown Source"
)

// SourceCredibilityResult is the reputation lookup outcome for a domain.
type SourceCredibilityResult struct {
	Score          int                  `json:"score"`
	Classification SourceClassification `json:"classification"`
	Note           string               `json:"note"`
}

// TextQualityResult holds the body-text quality score and detected issues.
type TextQualityResult struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// WarningLevel is the discrete risk tier derived from the credibility score.
type WarningLevel string

const (
	WarningSafe       WarningLevel = "safe"
	WarningSuspicious WarningLevel = "suspicious"
	WarningDangerous  WarningLevel = "dangerous"
)

// WarningResult carries the tier plus its fixed display strings.
type WarningResult struct {
	Level   WarningLevel `json:"level"`
	Label   string       `json:"label"`
	Message string       `json:"message"`
	Color   string       `json:"color"`
}

// Analysis groups the four independent sub-analysis results.
type Analysis struct {
	Sentiment         SentimentResult         `json:"sentiment"`
	Clickbait         ClickbaitResult         `json:"clickbait"`
	SourceCredibility SourceCredibilityResult `json:"source_credibility"`
	TextQuality       TextQualityResult       `json:"text_quality"`
}

// CredibilityReport is the terminal artifact of one analysis request.
// Built fresh per request, never persisted, never mutated after construction.
type CredibilityReport struct {
	URL              string        `json:"url"`
	Title            string        `json:"title"`
	Domain           string        `json:"domain"`
	CredibilityScore int           `json:"credibility_score"`
	Warning          WarningResult `json:"warning"`
	Analysis         Analysis      `json:"analysis"`
	KeyFindings      []string      `json:"key_findings"`
	TopKeywords      []string      `json:"top_keywords,omitempty"`
}

// Outcome is the per-URL wire shape: either a full report with
// success=true, or an error record with success=false. Batch responses
// carry one Outcome per input URL.
type Outcome struct {
	Success            bool   `json:"success"`
	Error              string `json:"error,omitempty"`
	*CredibilityReport
}

// Failure builds a failed Outcome with the given error message.
func Failure(msg string) Outcome {
	return Outcome{Success: false, Error: msg}
}

// SuccessOutcome wraps a finished report.
func SuccessOutcome(report *CredibilityReport) Outcome {
	return Outcome{Success: true, CredibilityReport: report}
}
