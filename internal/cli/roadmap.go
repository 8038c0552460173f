package cli

import (
	"context"
	"fmt"

	"careernav/internal/ai"
	"careernav/internal/common"
	"careernav/internal/roadmap"
	"careernav/internal/types"

	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [resume-file]",
	Short: "Generate a career roadmap toward a target role",
	Long: `Generate a career roadmap from a resume file toward a target role.
The roadmap uses AI when a model is configured; without one it falls back
to curated role profiles, so the command always produces a roadmap.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if roadmapConfig.OutputFormat == "" {
			roadmapConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(roadmapConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRoadmap,
}

var (
	roadmapConfig common.CommandConfig
	targetRole    string
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	roadmapCmd.Flags().StringVar(&roadmapConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	roadmapCmd.Flags().StringVarP(&targetRole, "role", "r", "", "Target role for the roadmap (required)")
	_ = roadmapCmd.MarkFlagRequired("role")

	// Add completion for format flag
	_ = roadmapCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for the roadmap operation
	roadmapAIConfig := cfg.GetRoadmapConfig()
	aiService, err := ai.NewService(&roadmapAIConfig, "roadmap", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	roadmapService, err := roadmap.NewService(aiService, &roadmapAIConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to create roadmap service: %w", err)
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting roadmap generation",
			"resume_chars", len(input),
			"target_role", targetRole,
			"output_format", cfg.OutputFormat)
	}

	roadmapOperation := func(ctx context.Context, resumeText string) (*types.Roadmap, *ai.TokenUsage, error) {
		result := roadmapService.Generate(ctx, resumeText, targetRole)
		if result.Origin == roadmap.OriginFallback {
			logger.Info("Roadmap generated from fallback profiles",
				"reason", result.FallbackReason)
		}
		return result.Roadmap, result.TokenUsage, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		roadmapConfig,
		args,
		createInput,
		roadmapOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate roadmap: %w", err)
	}
	logger.Info("Roadmap generation completed successfully")
	return nil
}
