// Package server serves the built site during development plus a small
// read-only JSON API projecting the same card and detail views the pages
// are rendered from.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/view"
)

// Server holds an immutable catalogue snapshot; watch-mode rebuilds swap
// it wholesale, so handlers never observe a half-updated collection.
type Server struct {
	dir string
	log *zap.Logger

	mu  sync.RWMutex
	cat catalog.Catalog
}

func New(log *zap.Logger, outputDir string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{dir: outputDir, log: log}
}

// SetCatalog swaps the snapshot the API serves.
func (s *Server) SetCatalog(cat catalog.Catalog) {
	s.mu.Lock()
	s.cat = cat
	s.mu.Unlock()
}

func (s *Server) snapshot() catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/projects", s.handleList)
	mux.HandleFunc("/v1/projects/", s.handleDetail)
	mux.Handle("/", s.staticHandler())
	return mux
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cat := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    cat.Len(),
		"projects": view.ToCards(cat.Projects),
	})
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/projects/")
	detail, err := view.ToDetail(s.snapshot().Find(id))
	if err != nil {
		s.log.Error("detail projection failed", zap.String("id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	status := http.StatusOK
	if !detail.Found {
		// A lookup miss is a defined state, not an error; the body is
		// the not-found view.
		status = http.StatusNotFound
	}
	writeJSON(w, status, detail)
}

// staticHandler serves the built output with caching disabled so editors
// always see the latest rebuild.
func (s *Server) staticHandler() http.Handler {
	fileServer := http.FileServer(http.Dir(s.dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(s.dir, r.URL.Path, "index.html")); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fileServer.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}
