package roadmap

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"careernav/internal/ai"
	"careernav/internal/config"
	"careernav/internal/errors"
	"careernav/internal/textproc"
	"careernav/internal/types"
)

// Origin identifies which path produced a roadmap
type Origin string

const (
	OriginLLM      Origin = "llm"
	OriginFallback Origin = "fallback"
)

// Fallback reasons recorded on Result when the LLM path was not used
const (
	FallbackNoClient  = "no_client"
	FallbackTransport = "transport"
	FallbackParse     = "parse"
)

// Result carries a generated roadmap together with its provenance. When
// Origin is OriginFallback, FallbackReason says why the LLM roadmap was
// not served; TokenUsage is non-nil only for successful LLM generations.
type Result struct {
	Roadmap        *types.Roadmap `json:"roadmap"`
	Origin         Origin         `json:"origin"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
	TokenUsage     *ai.TokenUsage `json:"-"`
}

// Service orchestrates roadmap generation. The contract: Generate never
// returns an error. Every failure mode on the LLM path (no configured
// client, transport or model failure, unparseable output) degrades to the
// deterministic fallback generator, which cannot fail.
type Service struct {
	client   ai.Client // nil when no API key is configured
	prompts  *PromptBuilder
	fallback *Generator
	timeout  time.Duration
	logger   *errors.Logger
}

// NewService builds a roadmap service. aiService.Client may be nil; the
// service still works, it just always falls back.
func NewService(aiService *ai.Service, cfg *config.OperationAIConfig, logger *errors.Logger) (*Service, error) {
	fallback := NewGenerator()
	if err := fallback.ValidateProfiles(); err != nil {
		return nil, err
	}

	var client ai.Client
	if aiService != nil {
		client = aiService.Client
	}

	timeout := 30 * time.Second
	if cfg != nil && cfg.Timeout != nil {
		timeout = *cfg.Timeout
	}

	var promptCfg config.PromptConfig
	if cfg != nil {
		promptCfg = cfg.CustomPrompts
	}

	return &Service{
		client:   client,
		prompts:  NewPromptBuilder(promptCfg),
		fallback: fallback,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Generate produces a career roadmap for the given resume text and target
// role. One LLM attempt per request: if it fails for any reason the
// deterministic fallback roadmap is returned instead. Callers always get
// a schema-complete roadmap.
func (s *Service) Generate(ctx context.Context, resumeText, targetRole string) *Result {
	tracer := otel.Tracer("careernav.roadmap")
	ctx, span := tracer.Start(ctx, "roadmap.generate",
		trace.WithAttributes(
			attribute.String("roadmap.target_role", targetRole),
			attribute.Int("roadmap.resume_length", len(resumeText)),
		))
	defer span.End()

	skills := textproc.ExtractSkills(resumeText)
	span.SetAttributes(attribute.Int("roadmap.skills_detected", len(skills)))

	if s.client == nil {
		s.logger.Debug("No LLM client configured, serving fallback roadmap",
			"target_role", targetRole)
		return s.fallbackResult(span, targetRole, skills, FallbackNoClient, nil)
	}

	systemPrompt, userPrompt := s.prompts.Build(skills, targetRole, resumeText)

	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, tokenUsage, err := s.client.Complete(llmCtx, systemPrompt, userPrompt)
	if err != nil {
		s.logger.Warn("LLM roadmap generation failed, serving fallback roadmap",
			"target_role", targetRole,
			"error", err.Error())
		return s.fallbackResult(span, targetRole, skills, FallbackTransport, err)
	}

	roadmap, err := Parse(raw)
	if err != nil {
		s.logger.Warn("LLM roadmap response unusable, serving fallback roadmap",
			"target_role", targetRole,
			"response_length", len(raw),
			"error", err.Error())
		s.logger.Debug("Unparseable roadmap response", "response", raw)
		return s.fallbackResult(span, targetRole, skills, FallbackParse, err)
	}

	span.SetAttributes(attribute.String("roadmap.origin", string(OriginLLM)))
	span.SetStatus(codes.Ok, "")
	return &Result{
		Roadmap:    roadmap,
		Origin:     OriginLLM,
		TokenUsage: tokenUsage,
	}
}

func (s *Service) fallbackResult(span trace.Span, targetRole string, skills []string, reason string, cause error) *Result {
	span.SetAttributes(
		attribute.String("roadmap.origin", string(OriginFallback)),
		attribute.String("roadmap.fallback_reason", reason),
	)
	if cause != nil {
		span.RecordError(cause)
	}
	// The fallback path is a successful outcome, not an error
	span.SetStatus(codes.Ok, "")

	return &Result{
		Roadmap:        s.fallback.Generate(targetRole, skills),
		Origin:         OriginFallback,
		FallbackReason: reason,
	}
}
