package server

import (
	"time"

	"careernav/internal/ai"
	"careernav/internal/config"
	careernavErrors "careernav/internal/errors"
	"careernav/internal/match"
	"careernav/internal/roadmap"
	"careernav/internal/store"
	"careernav/internal/textproc"
)

// UploadRequest represents the request body for the resume upload endpoint
type UploadRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// UploadResponse is returned after a successful resume upload
type UploadResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// RoadmapRequest represents the request body for the career roadmap endpoint
type RoadmapRequest struct {
	ResumeID   string `json:"resume_id"`
	TargetRole string `json:"target_role"`
}

// DownloadResponse is returned by the resume download endpoint
type DownloadResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration and dependencies for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Domain services
	Resumes  store.ResumeStore
	Jobs     store.JobStore
	Ranker   *match.Ranker
	Roadmaps *roadmap.Service

	// Prompt file live reload
	promptWatcher *config.PromptWatcher

	// Logger
	Logger *careernavErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct.
// The roadmap service is constructed here so a misconfigured role profile
// table fails at startup rather than on the first request.
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *careernavErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	roadmapConfig := appCfg.GetRoadmapConfig()
	aiService, err := ai.NewService(&roadmapConfig, "roadmap", logger)
	if err != nil {
		return nil, err
	}

	roadmapService, err := roadmap.NewService(aiService, &roadmapConfig, logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Resumes:        store.NewMemoryResumeStore(),
		Jobs:           store.NewMemoryJobStore(),
		Ranker:         match.NewRanker(textproc.NewResources()),
		Roadmaps:       roadmapService,
		Logger:         logger,
	}, nil
}
