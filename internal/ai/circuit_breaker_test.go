package ai

import (
	"testing"
	"time"

	"careernav/internal/config"
)

func TestRoadmapCircuitBreakerConfiguration(t *testing.T) {
	roadmapConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	cb := NewAICircuitBreaker("Roadmap", roadmapConfig, nil)
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil when enabled")
	}

	stats := cb.GetStats()

	t.Run("Name", func(t *testing.T) {
		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Circuit breaker name not found")
		}
		if name != "AI-Roadmap" {
			t.Errorf("Expected circuit breaker name 'AI-Roadmap', got '%s'", name)
		}
	})

	t.Run("InitialState", func(t *testing.T) {
		state, ok := stats["state"].(string)
		if !ok {
			t.Fatal("Circuit breaker state not found")
		}
		if state != "closed" {
			t.Errorf("Expected initial state 'closed', got '%s'", state)
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		enabled, ok := stats["enabled"].(bool)
		if !ok {
			t.Fatal("Circuit breaker enabled status not found")
		}
		if !enabled {
			t.Error("Circuit breaker should be enabled")
		}
	})

	t.Run("HealthyInitially", func(t *testing.T) {
		if !cb.IsHealthy() {
			t.Error("Circuit breaker should be healthy initially")
		}
	})
}

func TestModelBreakerIndependentFromOperationBreaker(t *testing.T) {
	cfg := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	opCB := NewAICircuitBreaker("Roadmap", cfg, nil)
	modelCB := NewModelCircuitBreaker("Roadmap", cfg, nil)

	opStats := opCB.GetStats()
	modelStats := modelCB.GetModelStats()

	opName, _ := opStats["name"].(string)
	modelName, _ := modelStats["name"].(string)
	if opName == modelName {
		t.Errorf("operation and model breakers share a name: %s", opName)
	}

	if !modelCB.IsModelHealthy() {
		t.Error("Model circuit breaker should be healthy initially")
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false, // Disabled
		},
	}

	cb := NewAICircuitBreaker("Disabled", disabledConfig, nil)
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker passes calls straight through
	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("Disabled circuit breaker stats should report enabled=false")
	}
}
