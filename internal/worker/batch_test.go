package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

// stubAnalyzer succeeds for every URL except those in failOn
type stubAnalyzer struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]bool
}

func (s *stubAnalyzer) Analyze(ctx context.Context, url string) model.Outcome {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()

	if s.failOn[url] {
		return model.Failure("Failed to fetch content: stub error")
	}
	return model.SuccessOutcome(&model.CredibilityReport{URL: url, CredibilityScore: 82})
}

type denyAllRobots struct{}

func (denyAllRobots) IsAllowed(ctx context.Context, rawURL string) bool { return false }

func TestProcess_PreservesInputOrder(t *testing.T) {
	stub := &stubAnalyzer{}
	processor := NewBatchProcessor(stub, 4, 100, 10)

	urls := []string{
		"https://a.example/1",
		"https://b.example/2",
		"https://c.example/3",
		"https://d.example/4",
		"https://e.example/5",
	}
	results := processor.Process(context.Background(), urls)

	if len(results) != len(urls) {
		t.Fatalf("Expected %d results, got %d", len(urls), len(results))
	}
	for i, url := range urls {
		if results[i].URL != url {
			t.Errorf("Result %d: expected URL %q, got %q", i, url, results[i].URL)
		}
		if !results[i].Outcome.Success {
			t.Errorf("Result %d: expected success, got %s", i, results[i].Outcome.Error)
		}
	}
}

func TestProcess_FailureDoesNotAbortBatch(t *testing.T) {
	stub := &stubAnalyzer{failOn: map[string]bool{"https://bad.example/x": true}}
	processor := NewBatchProcessor(stub, 2, 100, 10)

	urls := []string{"https://ok.example/1", "https://bad.example/x", "https://ok.example/2"}
	results := processor.Process(context.Background(), urls)

	if results[0].Outcome.Success != true || results[2].Outcome.Success != true {
		t.Error("Expected surrounding URLs to succeed")
	}
	if results[1].Outcome.Success {
		t.Error("Expected middle URL to fail")
	}
	if !strings.HasPrefix(results[1].Outcome.Error, "Failed to fetch content: ") {
		t.Errorf("Unexpected error: %q", results[1].Outcome.Error)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&stubAnalyzer{}, 2, 100, 10)

	results := processor.Process(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubAnalyzer{}
	processor := NewBatchProcessor(stub, 1, 100, 10)

	urls := []string{"https://a.example/1", "https://b.example/2"}
	results := processor.Process(ctx, urls)

	if len(results) != len(urls) {
		t.Fatalf("Expected %d results, got %d", len(urls), len(results))
	}
	for i, result := range results {
		if result.URL != urls[i] {
			t.Errorf("Result %d: expected URL %q, got %q", i, urls[i], result.URL)
		}
		if result.Outcome.Success {
			t.Errorf("Result %d: expected failure after cancellation", i)
		}
		if result.Outcome.Error == "" {
			t.Errorf("Result %d: expected a non-empty error", i)
		}
	}
}

func TestProcess_RobotsDenied(t *testing.T) {
	stub := &stubAnalyzer{}
	processor := NewBatchProcessor(stub, 2, 100, 10)
	processor.SetRobotsPolicy(denyAllRobots{})

	results := processor.Process(context.Background(), []string{"https://a.example/1"})

	if results[0].Outcome.Success {
		t.Fatal("Expected robots denial")
	}
	if results[0].Outcome.Error != "Blocked by robots.txt" {
		t.Errorf("Unexpected error: %q", results[0].Outcome.Error)
	}
	if len(stub.calls) != 0 {
		t.Errorf("Analyzer must not be called for a blocked URL, got calls %v", stub.calls)
	}
}

func TestReadURLsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := `# batch list
https://a.example/1

https://b.example/2
https://a.example/1
  https://c.example/3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	urls, err := ReadURLsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"https://a.example/1", "https://b.example/2", "https://c.example/3"}
	if len(urls) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, urls)
	}
	for i, want := range expected {
		if urls[i] != want {
			t.Errorf("URL %d: expected %q, got %q", i, want, urls[i])
		}
	}
}

func TestReadURLsFromFile_Missing(t *testing.T) {
	_, err := ReadURLsFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
