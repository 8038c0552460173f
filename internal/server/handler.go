package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"careernav/internal/errors"
	"careernav/internal/observability"
	"careernav/internal/roadmap"
	"careernav/internal/store"
	"careernav/internal/textproc"
	"careernav/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createUploadHandler handles resume uploads
func (s *Server) createUploadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careernav.api")
		ctx, span := tracer.Start(ctx, "api.resume.upload")
		defer span.End()

		var req UploadRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Content) == "" {
			err := fmt.Errorf("missing resume content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume content", "content field is required", http.StatusBadRequest)
			return
		}
		if req.Filename == "" {
			req.Filename = "resume.txt"
		}

		span.SetAttributes(
			attribute.Int("request.content_length", len(req.Content)),
			attribute.String("request.filename", req.Filename),
		)

		skills := textproc.ExtractSkills(req.Content)

		id, err := s.Resumes.Save(ctx, &types.Resume{
			Filename: req.Filename,
			Content:  req.Content,
			Skills:   skills,
		})
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to store resume", err.Error(), http.StatusInternalServerError)
			return
		}

		om.GetMetrics().RecordResumeUpload(ctx, fileType(req.Filename), om)

		s.Logger.Info("Resume uploaded",
			"resume_id", id,
			"filename", req.Filename,
			"skills_detected", len(skills))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("resume.id", id),
			attribute.Int("resume.skills_detected", len(skills)),
		)

		writeJSONResponse(w, UploadResponse{
			Message:  "Resume uploaded successfully",
			ID:       id,
			Filename: req.Filename,
		})
	}
}

// createMatchHandler ranks all stored jobs against a stored resume
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careernav.api")
		ctx, span := tracer.Start(ctx, "api.jobs.match")
		defer span.End()

		resumeID := r.PathValue("resumeID")
		span.SetAttributes(attribute.String("resume.id", resumeID))

		resume, err := s.Resumes.Get(ctx, resumeID)
		if err != nil {
			span.RecordError(err)
			s.writeStoreError(w, err, "Resume not found")
			return
		}

		// An empty job store is seeded with the built-in sample postings so
		// matching always has a corpus to rank against.
		seeded, err := store.SeedSampleJobsIfEmpty(ctx, s.Jobs)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to load jobs", err.Error(), http.StatusInternalServerError)
			return
		}
		if seeded {
			s.Logger.Info("Job store was empty, seeded sample postings")
		}

		jobs, err := s.Jobs.List(ctx)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to load jobs", err.Error(), http.StatusInternalServerError)
			return
		}

		start := time.Now()
		matches, err := s.Ranker.Rank(resume.Content, jobs)
		om.GetMetrics().RecordMatchRequest(ctx, err == nil, time.Since(start), om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ranking"))
			writeErrorResponse(w, "Failed to rank jobs", err.Error(), http.StatusInternalServerError)
			return
		}

		// First match marks the resume processed with its extracted skills
		if !resume.Processed {
			skills := textproc.ExtractSkills(resume.Content)
			if err := s.Resumes.SetSkills(ctx, resumeID, skills); err != nil {
				s.Logger.LogError(err, "Failed to mark resume processed",
					"resume_id", resumeID)
			}
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("match.job_count", len(jobs)),
			attribute.Int("match.result_count", len(matches)),
		)

		writeJSONResponse(w, matches)
	}
}

// createRoadmapHandler generates a career roadmap for a stored resume.
// The response is always 200 with a schema-complete roadmap unless the
// resume id is unknown or the input is invalid: LLM failures degrade to the
// fallback generator inside the roadmap service.
func (s *Server) createRoadmapHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careernav.api")
		ctx, span := tracer.Start(ctx, "api.career.roadmap")
		defer span.End()

		var req RoadmapRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeID) == "" {
			writeErrorResponse(w, "Missing resume id", "resume_id field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.TargetRole) == "" {
			writeErrorResponse(w, "Missing target role", "target_role field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("resume.id", req.ResumeID),
			attribute.String("roadmap.target_role", req.TargetRole),
		)

		resume, err := s.Resumes.Get(ctx, req.ResumeID)
		if err != nil {
			span.RecordError(err)
			s.writeStoreError(w, err, "Resume not found")
			return
		}

		metrics := om.GetMetrics()
		var result *roadmap.Result
		_ = metrics.TrackAIOperationWithTokens(ctx, "roadmap", func(ctx context.Context) *observability.AIOperationResult {
			result = s.Roadmaps.Generate(ctx, resume.Content, req.TargetRole)
			return &observability.AIOperationResult{
				TokenUsage: (*observability.TokenUsage)(result.TokenUsage),
			}
		}, om)

		metrics.RecordRoadmapOutcome(ctx, string(result.Origin), result.FallbackReason, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("roadmap.origin", string(result.Origin)),
		)
		if result.FallbackReason != "" {
			span.SetAttributes(attribute.String("roadmap.fallback_reason", result.FallbackReason))
		}

		writeJSONResponse(w, result.Roadmap)
	}
}

// createDownloadHandler returns a stored resume's original content
func (s *Server) createDownloadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careernav.api")
		ctx, span := tracer.Start(ctx, "api.resume.download")
		defer span.End()

		resumeID := r.PathValue("resumeID")
		span.SetAttributes(attribute.String("resume.id", resumeID))

		resume, err := s.Resumes.Get(ctx, resumeID)
		if err != nil {
			span.RecordError(err)
			s.writeStoreError(w, err, "Resume not found")
			return
		}

		span.SetAttributes(attribute.Bool("success", true))
		writeJSONResponse(w, DownloadResponse{
			Filename: resume.Filename,
			Content:  resume.Content,
		})
	}
}

// writeStoreError maps store errors to HTTP responses: a missing resume is
// a 404, anything else a 500
func (s *Server) writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Code == errors.ErrCodeResumeNotFound {
		writeErrorResponse(w, notFoundMsg, appErr.Message, http.StatusNotFound)
		return
	}
	writeErrorResponse(w, "Storage error", err.Error(), http.StatusInternalServerError)
}

// fileType extracts the lowercase file extension for metrics labeling
func fileType(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "unknown"
	}
	return strings.ToLower(filename[idx+1:])
}

// writeJSONResponse encodes v as the JSON response body
func writeJSONResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				om.GetMetrics().RecordRateLimitHit(r.Context(), om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
