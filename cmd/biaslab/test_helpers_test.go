package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	server     *httptest.Server
	configPath string
	baseDir    string
}

// fakeAnalysisService is an in-memory stand-in for the backend: enough of the
// REST surface for command tests, seeded per test.
type fakeAnalysisService struct {
	articles   []map[string]any
	analysis   map[string]any
	highlights []map[string]any
	narratives []map[string]any

	deleted      []string
	clusterCalls int
}

func (f *fakeAnalysisService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /articles", func(w http.ResponseWriter, r *http.Request) {
		writeServiceJSON(w, f.articles)
	})
	mux.HandleFunc("GET /articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, article := range f.articles {
			if article["id"] == id {
				writeServiceJSON(w, article)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		writeServiceJSON(w, map[string]string{"detail": "article not found"})
	})
	mux.HandleFunc("DELETE /articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.deleted = append(f.deleted, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /analyze", func(w http.ResponseWriter, r *http.Request) {
		if f.analysis == nil {
			w.WriteHeader(http.StatusBadGateway)
			writeServiceJSON(w, map[string]string{"detail": "scraper unavailable"})
			return
		}
		writeServiceJSON(w, f.analysis)
	})
	mux.HandleFunc("GET /highlights", func(w http.ResponseWriter, r *http.Request) {
		writeServiceJSON(w, f.highlights)
	})
	mux.HandleFunc("GET /narratives", func(w http.ResponseWriter, r *http.Request) {
		writeServiceJSON(w, f.narratives)
	})
	mux.HandleFunc("POST /narratives/cluster", func(w http.ResponseWriter, r *http.Request) {
		f.clusterCalls++
		w.WriteHeader(http.StatusAccepted)
	})
	return mux
}

func writeServiceJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if v == nil {
		v = []any{}
	}
	_ = json.NewEncoder(w).Encode(v)
}

func setupCLITestEnv(t *testing.T, service *fakeAnalysisService) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("BIASLAB_API_BASE", "")

	server := httptest.NewServer(service.handler())
	t.Cleanup(server.Close)

	configPath := filepath.Join(homeDir, ".config", "biaslab", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, server.URL, base)

	return &cliTestEnv{
		server:     server,
		configPath: configPath,
		baseDir:    base,
	}
}

func writeTestConfig(t *testing.T, path, baseURL, baseDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[api]\nbase_url = %q\n\n[paths]\ndata_dir = %q\nlog_dir = %q\n\n[history]\nenabled = false\n",
		baseURL,
		filepath.Join(baseDir, "data"),
		filepath.Join(baseDir, "logs"),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
