package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
	"github.com/speechcoach/intro-scorer/internal/infrastructure/cache"
	"github.com/speechcoach/intro-scorer/internal/infrastructure/nlp"
	"github.com/speechcoach/intro-scorer/internal/usecase/scoring"
	pkgai "github.com/speechcoach/intro-scorer/pkg/ai"
	"github.com/speechcoach/intro-scorer/pkg/config"
)

var (
	transcriptFile string
	durationSec    float64
	outputJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scorecli [transcript]",
		Short: "Score a spoken self-introduction transcript",
		Long: `scorecli evaluates a self-introduction transcript against an
8-category rubric (salutation, content, flow, speech rate, grammar,
vocabulary, clarity, engagement) and prints the score report.

The transcript is taken from the positional argument, from --file,
or from stdin when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScore,
	}

	rootCmd.Flags().StringVarP(&transcriptFile, "file", "f", "", "read the transcript from a file")
	rootCmd.Flags().Float64VarP(&durationSec, "duration", "d", 0, "recording duration in seconds (0 skips the speech rate check)")
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "print the report as JSON")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScore(cmd *cobra.Command, args []string) error {
	transcript, err := readTranscript(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("transcript is empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	pipeline := nlp.NewPipeline()
	embedder := pkgai.NewEmbeddingClient(&cfg.Embedding)
	encoder := cache.NewCachedEncoder(embedder, cache.NewMemoryStore(), cfg.Cache.TTL)
	grammar := pkgai.NewLanguageToolClient(&cfg.Grammar)
	sentiment := pkgai.NewSentimentAnalyzer()

	svc := scoring.NewService(pipeline, encoder, grammar, sentiment, logger)

	report, err := svc.ScoreIntroduction(cmd.Context(), transcript, durationSec)
	if err != nil {
		return fmt.Errorf("score transcript: %w", err)
	}

	if outputJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

func readTranscript(args []string) (string, error) {
	if transcriptFile != "" {
		data, err := os.ReadFile(transcriptFile)
		if err != nil {
			return "", fmt.Errorf("read transcript file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printReport(w io.Writer, report *entities.ScoreReport) {
	fmt.Fprintf(w, "Total Score: %d/100\n\n", report.TotalScore)
	for _, e := range report.Breakdown.Entries() {
		fmt.Fprintf(w, "%-20s %2d/%d\n", e.Category, e.Entry.Score, e.Entry.Max)
		for _, line := range strings.Split(e.Entry.Feedback, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
