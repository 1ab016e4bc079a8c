package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/llm"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/pipeline"
)

var (
	scanTimeout time.Duration
	userAgent   string
	maxBytes    int64
	llmEnabled  bool
	llmModel    string
	llmBaseURL  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Analyze a single URL and print the credibility report",
	Long: `Scan fetches a web page and runs the full analysis pipeline:
- Extract title, body text, and domain
- Score sentiment bias, clickbait signals, source reputation, and text quality
- Combine them into a 0-100 credibility score and a risk tier

The report is printed as JSON to stdout.

Example:
  credlens scan https://www.bbc.com/news/some-article
  credlens scan https://example.com/post --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 10*time.Second, "HTTP fetch timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent (default: browser-like)")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")

	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "append a plain-language summary generated via the OpenAI API")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	scanCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint (e.g. local Ollama)")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx := context.Background()

	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = scanTimeout
	cfg.HTTP.MaxBodyBytes = maxBytes
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	analyzer := pipeline.NewAnalyzer(cfg, log)
	outcome := analyzer.Analyze(ctx, url)
	if !outcome.Success {
		return fmt.Errorf("scan failed: %s", outcome.Error)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outcome); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if llmEnabled {
		if err := printSummary(ctx, cfg, *outcome.CredibilityReport); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary failed: %v\n", err)
		}
	}

	return nil
}

// printSummary generates the optional LLM explanation. It runs after
// the report is printed and never changes the report itself.
func printSummary(ctx context.Context, cfg *model.Config, report model.CredibilityReport) error {
	cfg.LLM.Provider = "openai"
	cfg.LLM.Model = llmModel
	cfg.LLM.BaseURL = llmBaseURL
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.LLM.APIKey == "" && cfg.LLM.BaseURL == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	summarizer, err := llm.NewSummarizer(cfg.LLM)
	if err != nil {
		return err
	}

	summary, err := summarizer.Summarize(ctx, report)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n--- Summary ---\n%s\n", summary)
	return nil
}
