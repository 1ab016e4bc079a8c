package model

import "time"

// Config holds the complete credlens configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Server       ServerConfig       `yaml:"server"`
	Sources      SourcesConfig      `yaml:"sources"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Robots       RobotsConfig       `yaml:"robots"`
	LLM          LLMConfig          `yaml:"llm"`
	Output       OutputConfig       `yaml:"output"`
}

// HTTPConfig controls outbound page fetching
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ServerConfig controls the HTTP API surface
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxBatchSize   int      `yaml:"max_batch_size"`
}

// SourcesConfig holds the static domain reputation sets. They are
// read-only after construction and shared across requests.
type SourcesConfig struct {
	CredibleDomains     []string `yaml:"credible_domains"`
	QuestionableDomains []string `yaml:"questionable_domains"`
}

// ConcurrencyConfig controls CLI batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitingConfig controls per-domain outbound politeness
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// RobotsConfig controls robots.txt checking for CLI batch runs
type RobotsConfig struct {
	Enabled  bool          `yaml:"enabled"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// LLMConfig configures the optional report summarizer. The summary is
// generated after scoring and never affects it.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   int    `yaml:"timeout"` // seconds
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			MaxBodyBytes: 2_000_000,
		},
		Server: ServerConfig{
			Addr: ":8080",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:3000",
			},
			MaxBatchSize: 10,
		},
		Sources: SourcesConfig{
			CredibleDomains: []string{
				"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk",
				"npr.org", "pbs.org", "theguardian.com", "nytimes.com",
				"washingtonpost.com", "wsj.com", "economist.com",
			},
			QuestionableDomains: []string{
				"infowars.com", "naturalnews.com", "beforeitsnews.com",
			},
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		Robots: RobotsConfig{
			Enabled:  false,
			CacheTTL: 30 * time.Minute,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 500,
			Timeout:   30,
		},
		Output: OutputConfig{},
	}
}
