package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gamebencher/rigcheck/internal/store"
	"github.com/gamebencher/rigcheck/pkg/advise"
	"github.com/gamebencher/rigcheck/pkg/hardware"
	"github.com/gamebencher/rigcheck/pkg/predict"
)

// Server provides the read-only HTTP API over the hardware catalogs, the
// game catalog and the prediction engine.
type Server struct {
	store  store.Store
	hw     *hardware.Store
	engine *predict.Engine
	port   int

	defaultResolution string
	defaultQuality    string
}

// New creates a new HTTP server.
func New(s store.Store, engine *predict.Engine, port int, defaultResolution, defaultQuality string) *Server {
	if port == 0 {
		port = 8080
	}
	if defaultResolution == "" {
		defaultResolution = "1080p"
	}
	if defaultQuality == "" {
		defaultQuality = "high"
	}
	return &Server{
		store:             s,
		hw:                engine.Hardware(),
		engine:            engine,
		port:              port,
		defaultResolution: defaultResolution,
		defaultQuality:    defaultQuality,
	}
}

// Handler returns the API routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/cpus", s.handleCPUs)
	mux.HandleFunc("/api/v1/gpus", s.handleGPUs)
	mux.HandleFunc("/api/v1/match", s.handleMatch)
	mux.HandleFunc("/api/v1/games", s.handleGames)
	mux.HandleFunc("/api/v1/game", s.handleGame)
	mux.HandleFunc("/api/v1/predict", s.handlePredict)
	return mux
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.port)
	fmt.Printf("rigcheck server listening on %s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCPUs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	cpus := s.hw.CPUs()
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  cpus,
		"count": len(cpus),
	})
}

func (s *Server) handleGPUs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	gpus := s.hw.GPUs()
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  gpus,
		"count": len(gpus),
	})
}

// handleMatch resolves free-form requirement text against the reference
// catalogs. No match is a 200 with a null entry; callers treat it as a
// normal outcome.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	text := r.URL.Query().Get("text")
	var data any
	switch kind := r.URL.Query().Get("type"); kind {
	case "cpu":
		if cpu := s.hw.MatchCPU(text); cpu != nil {
			data = cpu
		}
	case "gpu":
		if gpu := s.hw.MatchGPU(text); gpu != nil {
			data = gpu
		}
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be cpu or gpu"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    data,
		"matched": data != nil,
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	opts := store.ListOpts{Limit: 100}
	q := r.URL.Query()
	opts.Genre = q.Get("genre")
	if q.Get("free") == "true" {
		opts.FreeOnly = true
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}

	games, err := s.store.ListGames(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  games,
		"count": len(games),
	})
}

// handleGame returns one game plus its estimated demand score, which the
// frontend surfaces as a diagnostic.
func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "slug is required"})
		return
	}

	game, err := s.store.GetGameBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":   game,
		"demand": s.engine.EstimateDemand(game.Requirements),
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	q := r.URL.Query()
	cpu := s.hw.CPUByID(q.Get("cpu"))
	if cpu == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown cpu id"})
		return
	}
	gpu := s.hw.GPUByID(q.Get("gpu"))
	if gpu == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown gpu id"})
		return
	}
	ram, err := strconv.Atoi(q.Get("ram"))
	if err != nil || ram <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ram must be a positive integer (GB)"})
		return
	}

	game, err := s.store.GetGameBySlug(r.Context(), q.Get("game"))
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resolution := q.Get("resolution")
	if resolution == "" {
		resolution = s.defaultResolution
	}
	quality := q.Get("quality")
	if quality == "" {
		quality = s.defaultQuality
	}

	prediction := s.engine.PredictFPS(cpu, gpu, ram, game.Requirements, resolution, quality)

	writeJSON(w, http.StatusOK, map[string]any{
		"data":     prediction,
		"upgrades": advise.Recommend(cpu, gpu, ram, prediction.Bottleneck),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
