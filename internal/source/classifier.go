package source

import (
	"github.com/credlens/credlens/internal/model"
)

// Reputation scores per classification. Fixed policy constants.
const (
	scoreCredible     = 90
	scoreQuestionable = 20
	scoreUnknown      = 50
)

// Classifier maps a domain name to a reputation score via static
// allow/deny sets. The sets are built once at construction and are
// read-only afterwards, so a single Classifier is safe to share
// across concurrent requests.
type Classifier struct {
	credibleMap     map[string]bool
	questionableMap map[string]bool
}

// NewClassifier builds a classifier from the configured domain sets
func NewClassifier(cfg *model.SourcesConfig) *Classifier {
	if cfg == nil {
		cfg = &model.DefaultConfig().Sources
	}

	classifier := &Classifier{
		credibleMap:     make(map[string]bool, len(cfg.CredibleDomains)),
		questionableMap: make(map[string]bool, len(cfg.QuestionableDomains)),
	}

	for _, domain := range cfg.CredibleDomains {
		classifier.credibleMap[domain] = true
	}
	for _, domain := range cfg.QuestionableDomains {
		classifier.questionableMap[domain] = true
	}

	return classifier
}

// Classify looks the domain up by exact match. Subdomains do not
// inherit the reputation of their parent domain.
func (c *Classifier) Classify(domain string) model.SourceCredibilityResult {
	if c.credibleMap[domain] {
		return model.SourceCredibilityResult{
			Score:          scoreCredible,
			Classification: model.SourceHighlyCredible,
			Note:           "Well-established news organization",
		}
	}

	if c.questionableMap[domain] {
		return model.SourceCredibilityResult{
			Score:          scoreQuestionable,
			Classification: model.SourceQuestionable,
			Note:           "Known for publishing misleading content",
		}
	}

	return model.SourceCredibilityResult{
		Score:          scoreUnknown,
		Classification: model.SourceUnknown,
		Note:           "Source credibility cannot be verified",
	}
}
