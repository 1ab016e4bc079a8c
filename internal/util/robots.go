package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/credlens/credlens/internal/cache"
)

// RobotsChecker checks robots.txt compliance before batch fetches.
// Raw robots.txt bodies are cached per host so a batch run fetches
// each host's policy at most once per TTL window.
type RobotsChecker struct {
	cache      cache.Cache
	cacheTTL   time.Duration
	httpClient *http.Client
	userAgent  string
}

// NewRobotsChecker creates a robots.txt checker backed by the given cache
func NewRobotsChecker(store cache.Cache, cacheTTL time.Duration, userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		cache:      store,
		cacheTTL:   cacheTTL,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// CanFetch checks whether the URL may be fetched according to the
// host's robots.txt. Unreachable or unparseable robots.txt allows the
// fetch by default.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	body, err := r.getRobotsBody(ctx, parsed.Host, robotsURL)
	if err != nil {
		return true, nil
	}

	data, err := robotstxt.FromStatusAndBytes(http.StatusOK, body)
	if err != nil {
		return true, nil
	}

	return data.TestAgent(parsed.Path, r.userAgent), nil
}

// IsAllowed is a convenience wrapper returning only the allowed status
func (r *RobotsChecker) IsAllowed(ctx context.Context, rawURL string) bool {
	allowed, _ := r.CanFetch(ctx, rawURL)
	return allowed
}

func (r *RobotsChecker) getRobotsBody(ctx context.Context, host string, robotsURL string) ([]byte, error) {
	key := cache.Key("robots:" + host)
	if body, found := r.cache.Get(key); found {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Missing robots.txt means everything is allowed; cache the empty policy
	if resp.StatusCode == http.StatusNotFound {
		_ = r.cache.Set(key, nil, r.cacheTTL)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	_ = r.cache.Set(key, body, r.cacheTTL)
	return body, nil
}
