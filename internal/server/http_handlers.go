package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"careernav/internal/ai"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a health check endpoint including AI model status.
// The service stays "healthy" without an LLM client: roadmap generation
// degrades to the fallback path, it does not stop working.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "careernav",
		"version": s.Version,
	}

	aiStatus, llmConfigured := s.checkAIModelHealth()
	response["ai_model"] = aiStatus
	response["roadmap_mode"] = "llm_with_fallback"
	if !llmConfigured {
		response["roadmap_mode"] = "fallback_only"
	}

	response["circuit_breakers"] = s.checkCircuitBreakerHealth()

	// Degraded only when an LLM client exists but its model is unreachable
	if llmConfigured {
		if modelInfo, ok := aiStatus.(*ai.ModelInfo); ok && !modelInfo.Available {
			response["status"] = "degraded"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkAIModelHealth checks the roadmap LLM model and reports whether an
// LLM client is configured at all
func (s *Server) checkAIModelHealth() (any, bool) {
	timeout := s.getHealthCheckTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	roadmapConfig := s.AppConfig.GetRoadmapConfig()
	aiService, err := ai.NewService(&roadmapConfig, "roadmap", s.Logger)
	if err != nil {
		return map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create roadmap AI service: %v", err),
		}, false
	}

	return aiService.GetModelInfo(ctx), aiService.Available()
}

// checkCircuitBreakerHealth reports circuit breaker configuration for the
// roadmap operation
func (s *Server) checkCircuitBreakerHealth() map[string]any {
	roadmapConfig := s.AppConfig.GetRoadmapConfig()
	return map[string]any{
		"roadmap": map[string]any{
			"enabled":           roadmapConfig.CircuitBreaker.Enabled,
			"max_requests":      roadmapConfig.CircuitBreaker.MaxRequests,
			"failure_threshold": roadmapConfig.CircuitBreaker.FailureThreshold,
		},
	}
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"service": "careernav",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	if jobCount, err := s.Jobs.Count(r.Context()); err == nil {
		response["jobs"] = map[string]any{
			"count": jobCount,
		}
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
