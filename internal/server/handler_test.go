package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"careernav/internal/config"
	"careernav/internal/errors"
	"careernav/internal/observability"
	"careernav/internal/types"
)

// newTestServer builds a server with no LLM client, no auth and disabled
// observability, routed through the real mux
func newTestServer(t *testing.T, serverCfg ServerConfig) (*Server, http.Handler) {
	t.Helper()

	appCfg := &config.Config{}
	logger := errors.NewLogger(slog.LevelError)

	srv, err := NewServer(appCfg, serverCfg, logger)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{}, appCfg)
	if err != nil {
		t.Fatalf("NewObservabilityManager failed: %v", err)
	}

	return srv, srv.setupRoutes(om)
}

func uploadResume(t *testing.T, handler http.Handler, content string) string {
	t.Helper()

	body, _ := json.Marshal(UploadRequest{Filename: "resume.txt", Content: content})
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upload returned status %d: %s", rec.Code, rec.Body.String())
	}

	var resp UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode upload response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("upload response has empty id")
	}
	return resp.ID
}

func TestUploadHandler(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{})

	t.Run("valid upload", func(t *testing.T) {
		id := uploadResume(t, handler, "Experienced Python developer with SQL and Git.")
		if id == "" {
			t.Error("expected non-empty resume id")
		}
	})

	t.Run("missing content", func(t *testing.T) {
		body, _ := json.Marshal(UploadRequest{Filename: "resume.txt"})
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestDownloadHandler(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{})

	content := "Senior engineer. Skills: Go, Docker, Kubernetes."
	id := uploadResume(t, handler, content)

	t.Run("stored resume", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/resume/download/"+id, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp DownloadResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode download response: %v", err)
		}
		if resp.Content != content {
			t.Errorf("downloaded content differs from uploaded content: %q", resp.Content)
		}
		if resp.Filename != "resume.txt" {
			t.Errorf("expected filename resume.txt, got %q", resp.Filename)
		}
	})

	t.Run("unknown resume id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/resume/download/no-such-id", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestMatchHandler(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{})

	id := uploadResume(t, handler, "Python developer. JavaScript, SQL, Git, Docker, AWS experience.")

	t.Run("ranks seeded sample jobs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/jobs/match/"+id, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var matches []types.RankedMatch
		if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
			t.Fatalf("failed to decode match response: %v", err)
		}
		if len(matches) != 4 {
			t.Fatalf("expected 4 ranked matches, got %d", len(matches))
		}
		for i := 1; i < len(matches); i++ {
			if matches[i].Score > matches[i-1].Score {
				t.Errorf("matches not sorted by score: %f > %f at index %d",
					matches[i].Score, matches[i-1].Score, i)
			}
		}
		for _, m := range matches {
			if m.JobID == "" || m.Title == "" || m.Company == "" {
				t.Errorf("match has empty identity fields: %+v", m)
			}
		}
	})

	t.Run("unknown resume id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/jobs/match/no-such-id", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestRoadmapHandler(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{})

	id := uploadResume(t, handler, "Backend developer with Python and SQL.")

	postRoadmap := func(t *testing.T, body any) *httptest.ResponseRecorder {
		t.Helper()
		payload, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/career/roadmap", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("fallback roadmap without LLM client", func(t *testing.T) {
		rec := postRoadmap(t, RoadmapRequest{ResumeID: id, TargetRole: "ML Engineer"})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var roadmap types.Roadmap
		if err := json.Unmarshal(rec.Body.Bytes(), &roadmap); err != nil {
			t.Fatalf("failed to decode roadmap response: %v", err)
		}
		if roadmap.SkillsGap == nil {
			t.Error("expected non-nil skills_gap")
		}
		if len(roadmap.LearningPath) == 0 {
			t.Error("expected non-empty learning_path")
		}
		if roadmap.Certifications == nil {
			t.Error("expected certifications to be present")
		}
		if roadmap.Projects == nil {
			t.Error("expected projects to be present")
		}
	})

	t.Run("missing resume id", func(t *testing.T) {
		rec := postRoadmap(t, RoadmapRequest{TargetRole: "ML Engineer"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("missing target role", func(t *testing.T) {
		rec := postRoadmap(t, RoadmapRequest{ResumeID: id})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("unknown resume id", func(t *testing.T) {
		rec := postRoadmap(t, RoadmapRequest{ResumeID: "no-such-id", TargetRole: "ML Engineer"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{APIKeys: []string{"test-key-12345"}})

	body, _ := json.Marshal(UploadRequest{Filename: "resume.txt", Content: "Python developer"})

	newUpload := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("missing api key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newUpload())
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("invalid api key", func(t *testing.T) {
		req := newUpload()
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("valid api key header", func(t *testing.T) {
		req := newUpload()
		req.Header.Set("X-API-Key", "test-key-12345")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := newUpload()
		req.Header.Set("Authorization", "Bearer test-key-12345")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("health endpoint skips auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})
}

func TestRequestSizeLimit(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{MaxRequestSize: 256})

	big := make([]byte, 1024)
	for i := range big {
		big[i] = 'a'
	}
	body, _ := json.Marshal(UploadRequest{Filename: "resume.txt", Content: string(big)})

	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for oversized body, got %d", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{Version: "test"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("expected healthy status without LLM client, got %v", resp["status"])
	}
	if resp["roadmap_mode"] != "fallback_only" {
		t.Errorf("expected fallback_only roadmap mode, got %v", resp["roadmap_mode"])
	}
	if resp["service"] != "careernav" {
		t.Errorf("expected service careernav, got %v", resp["service"])
	}
}

func TestStatsHandler(t *testing.T) {
	_, handler := newTestServer(t, ServerConfig{Version: "test"})

	// Trigger sample job seeding through a match request
	id := uploadResume(t, handler, "Python and SQL developer")
	matchReq := httptest.NewRequest(http.MethodGet, "/api/jobs/match/"+id, nil)
	handler.ServeHTTP(httptest.NewRecorder(), matchReq)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode stats response: %v", err)
	}

	jobs, ok := resp["jobs"].(map[string]any)
	if !ok {
		t.Fatalf("expected jobs section in stats, got %v", resp["jobs"])
	}
	if fmt.Sprintf("%v", jobs["count"]) != "4" {
		t.Errorf("expected 4 seeded jobs, got %v", jobs["count"])
	}
}
