package ai

import (
	"context"
	"fmt"

	"careernav/internal/config"
	"careernav/internal/errors"
)

// Service wraps the LLM provider used for roadmap generation. A Service
// with a nil Client is valid: it means no API key was configured and the
// caller should serve fallback roadmaps. Missing credentials degrade the
// service, they do not prevent it from starting.
type Service struct {
	Client Client // nil when no API key is configured
	config *config.OperationAIConfig
	logger *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		logger.Warn("AI API key not configured, service will run without an LLM client",
			"operation_type", operationType)
		return &Service{config: cfg, logger: logger}, nil
	}

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	var client Client
	var err error
	switch cfg.Provider {
	case "gemini":
		client, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// Available reports whether an LLM client is configured
func (s *Service) Available() bool {
	return s.Client != nil
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	if s.Client == nil {
		return &ModelInfo{
			Name:      s.config.Model,
			Available: false,
			Error:     "no API key configured",
		}
	}
	return s.Client.GetModelInfo(ctx)
}
