package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/pipeline"
	"github.com/credlens/credlens/internal/util"
	"github.com/credlens/credlens/internal/worker"
)

var (
	concurrency   int
	outputDir     string
	batchTimeout  time.Duration
	rps           float64
	burst         int
	respectRobots bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple URLs from a file in parallel",
	Long: `Batch reads URLs from a file (one per line, # for comments) and
analyzes them with a bounded worker pool. Outbound requests are rate
limited per domain; robots.txt checking is optional. Each URL gets an
individual JSON report; one failure never aborts the rest.

Example:
  credlens batch urls.txt
  credlens batch urls.txt --concurrency 8 --output-dir ./reports
  credlens batch urls.txt --respect-robots --rps 1`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./credlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&rps, "rps", 2.0, "max requests per second per domain")
	batchCmd.Flags().IntVar(&burst, "burst", 5, "rate limit burst size per domain")
	batchCmd.Flags().BoolVar(&respectRobots, "respect-robots", false, "skip URLs disallowed by robots.txt")

	batchCmd.Flags().DurationVar(&scanTimeout, "fetch-timeout", 10*time.Second, "timeout for individual fetches")
	batchCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent (default: browser-like)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = scanTimeout
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimiting.RequestsPerSecond = rps
	cfg.RateLimiting.BurstSize = burst
	cfg.Robots.Enabled = respectRobots

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	analyzer := pipeline.NewAnalyzer(cfg, log)
	processor := worker.NewBatchProcessor(analyzer, cfg.Concurrency.Workers, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	if cfg.Robots.Enabled {
		store := cache.NewMemoryCache(cfg.Robots.CacheTTL, 10*time.Minute)
		processor.SetRobotsPolicy(util.NewRobotsChecker(store, cfg.Robots.CacheTTL, cfg.HTTP.UserAgent, cfg.HTTP.Timeout))
	}

	fmt.Fprintf(os.Stderr, "Reading URLs from %s\n", file)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Processing %d URLs with %d workers\n\n", len(results), concurrency)

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if !result.Outcome.Success {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", result.URL, result.Outcome.Error)
			continue
		}

		successCount++
		path := filepath.Join(outputDir, reportFilename(result.URL))
		if err := writeReport(path, result.Outcome); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write report: %v\n", result.URL, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "OK   %s (score: %d/100, %s)\n",
			result.URL, result.Outcome.CredibilityScore, result.Outcome.Warning.Level)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d total, %d succeeded, %d failed, reports in %s\n",
		len(results), successCount, failureCount, outputDir)

	return nil
}

func writeReport(path string, outcome model.Outcome) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// reportFilename derives a filesystem-safe name from a URL
func reportFilename(rawURL string) string {
	name := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		name = parsed.Host + parsed.Path
	}

	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "-")
	name = strings.Trim(replacer.Replace(name), "_")

	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "report"
	}
	return name + ".json"
}
