package score

import (
	"github.com/credlens/credlens/internal/model"
)

// Tier thresholds: score >= 70 is safe, 40-69 suspicious, below 40 dangerous.
const (
	safeThreshold       = 70
	suspiciousThreshold = 40
)

// ClassifyWarning maps a credibility score to its discrete risk tier.
// Labels, messages, and display colors are opaque string constants.
func ClassifyWarning(credibilityScore int) model.WarningResult {
	switch {
	case credibilityScore >= safeThreshold:
		return model.WarningResult{
			Level:   model.WarningSafe,
			Label:   "Likely Credible",
			Message: "This content appears to be from a credible source with reliable information.",
			Color:   "#10b981",
		}
	case credibilityScore >= suspiciousThreshold:
		return model.WarningResult{
			Level:   model.WarningSuspicious,
			Label:   "Verify Carefully",
			Message: "This content shows some indicators of potential misinformation. Verify with multiple sources.",
			Color:   "#f59e0b",
		}
	default:
		return model.WarningResult{
			Level:   model.WarningDangerous,
			Label:   "High Risk",
			Message: "This content shows multiple indicators of misinformation or fake news. Exercise extreme caution.",
			Color:   "#ef4444",
		}
	}
}
