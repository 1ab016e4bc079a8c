package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/credlens/credlens/internal/model"
)

// Analyzer is the slice of the pipeline that batch processing needs
type Analyzer interface {
	Analyze(ctx context.Context, url string) model.Outcome
}

// RobotsPolicy decides whether a URL may be fetched at all
type RobotsPolicy interface {
	IsAllowed(ctx context.Context, rawURL string) bool
}

// URLOutcome pairs an input URL with its analysis outcome
type URLOutcome struct {
	URL     string
	Outcome model.Outcome
}

// BatchProcessor analyzes multiple URLs with a bounded worker count and
// per-domain rate limiting. Results preserve input order; an individual
// failure never aborts the rest of the batch.
type BatchProcessor struct {
	analyzer Analyzer
	workers  int
	limiter  *Limiter
	robots   RobotsPolicy // nil disables robots.txt checking
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, workers int, requestsPerSecond float64, burst int) *BatchProcessor {
	if workers <= 0 {
		workers = 1
	}
	return &BatchProcessor{
		analyzer: analyzer,
		workers:  workers,
		limiter:  NewLimiter(requestsPerSecond, burst),
	}
}

// SetRobotsPolicy enables robots.txt checking before each fetch
func (b *BatchProcessor) SetRobotsPolicy(policy RobotsPolicy) {
	b.robots = policy
}

// Process analyzes the URLs and returns one outcome per input, in input order
func (b *BatchProcessor) Process(ctx context.Context, urls []string) []URLOutcome {
	results := make([]URLOutcome, len(urls))
	if len(urls) == 0 {
		return results
	}

	jobs := make(chan int)
	dispatched := make([]bool, len(urls))
	var wg sync.WaitGroup

	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = URLOutcome{URL: urls[i], Outcome: b.process(ctx, urls[i])}
			}
		}()
	}

	for i := range urls {
		select {
		case <-ctx.Done():
		case jobs <- i:
			dispatched[i] = true
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	// Slots never dispatched (context cancelled) get an explicit failure
	for i := range results {
		if !dispatched[i] {
			results[i] = URLOutcome{URL: urls[i], Outcome: model.Failure("Batch cancelled before analysis")}
		}
	}

	return results
}

func (b *BatchProcessor) process(ctx context.Context, url string) model.Outcome {
	if b.robots != nil && !b.robots.IsAllowed(ctx, url) {
		return model.Failure("Blocked by robots.txt")
	}
	if err := b.limiter.Wait(ctx, url); err != nil {
		return model.Failure(fmt.Sprintf("Rate limit wait aborted: %v", err))
	}
	return b.analyzer.Analyze(ctx, url)
}

// ProcessFile reads URLs from a file (one per line) and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]URLOutcome, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.Process(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, one per line, skipping
// blanks and #-comments, deduplicating while preserving order.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
