package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/credlens/credlens/internal/model"
)

// Fetcher retrieves a URL and extracts title, body text, and domain.
// Fetch and parse failures are converted into a FetchedContent with
// Success=false at this boundary; they never propagate as errors.
// No caching, no retry.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

// Fetch issues a single GET and extracts the page content. The domain
// is the URL host with one leading "www." stripped.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) model.FetchedContent {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fetchFailure(err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fetchFailure(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fetchFailure(fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status))
	}

	body := io.LimitReader(resp.Body, f.maxBytes)
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return parseFailure(err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "No title found"
	}

	// Strip boilerplate elements before extracting article text
	doc.Find("script, style, nav, footer, header").Remove()

	var paragraphs []string
	doc.Find("p, article").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return model.FetchedContent{
		Success: true,
		Title:   title,
		Body:    strings.Join(paragraphs, " "),
		Domain:  DomainOf(rawURL),
		URL:     rawURL,
	}
}

// DomainOf extracts the host from a URL with a leading "www." trimmed
func DomainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

func fetchFailure(err error) model.FetchedContent {
	return model.FetchedContent{
		Success: false,
		Error:   fmt.Sprintf("Failed to fetch content: %v", err),
	}
}

func parseFailure(err error) model.FetchedContent {
	return model.FetchedContent{
		Success: false,
		Error:   fmt.Sprintf("Failed to parse content: %v", err),
	}
}
