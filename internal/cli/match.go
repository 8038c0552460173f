package cli

import (
	"context"
	"fmt"

	"careernav/internal/ai"
	"careernav/internal/common"
	"careernav/internal/match"
	"careernav/internal/store"
	"careernav/internal/textproc"
	"careernav/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file]",
	Short: "Rank job postings against a resume",
	Long: `Rank the built-in sample job postings against a resume file using
TF-IDF cosine similarity. The resume file should be in plain text format.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	ranker := match.NewRanker(textproc.NewResources())
	jobs := store.SampleJobs()

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting job matching",
			"resume_chars", len(input),
			"job_count", len(jobs),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, resumeText string) ([]types.RankedMatch, *ai.TokenUsage, error) {
		matches, err := ranker.Rank(resumeText, jobs)
		return matches, nil, err
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match jobs: %w", err)
	}
	logger.Info("Job matching completed successfully")
	return nil
}
