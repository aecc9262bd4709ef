package hardware

import (
	"encoding/json"
	"fmt"
	"os"
)

// Performance tier labels used by the reference catalogs.
const (
	TierFlagship = "flagship"
	TierHigh     = "high"
	TierMid      = "mid"
	TierLow      = "low"
)

// CPU is one processor in the benchmark reference catalog. Score is a
// relative gaming-performance index on a 0-100 scale; CPU and GPU scores are
// not comparable to each other.
type CPU struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Score      float64 `json:"score"`
	Tier       string  `json:"tier"`
	Year       int     `json:"year"`
	Gen        string  `json:"gen"`
	Cores      int     `json:"cores"`
	Threads    int     `json:"threads"`
	BaseClock  float64 `json:"baseClock"`
	BoostClock float64 `json:"boostClock"`
	TDP        int     `json:"tdp"`
}

// GPU is one graphics card in the benchmark reference catalog.
type GPU struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Brand  string  `json:"brand"`
	Score  float64 `json:"score"`
	Tier   string  `json:"tier"`
	Year   int     `json:"year"`
	Series string  `json:"series"`
	VRAM   int     `json:"vram"`
}

// Store holds the reference catalogs. It is built once at startup, never
// mutated afterwards, and safe for concurrent use. Match candidates are
// precomputed at construction so the per-call matcher does no normalization
// work on catalog entries.
type Store struct {
	cpus []CPU
	gpus []GPU

	cpuByID map[string]int
	gpuByID map[string]int

	cpuCands []candidate
	gpuCands []candidate
}

// NewStore builds a reference store from already-loaded catalogs.
func NewStore(cpus []CPU, gpus []GPU) *Store {
	s := &Store{
		cpus:    cpus,
		gpus:    gpus,
		cpuByID: make(map[string]int, len(cpus)),
		gpuByID: make(map[string]int, len(gpus)),
	}
	s.cpuCands = make([]candidate, len(cpus))
	for i, c := range cpus {
		s.cpuByID[c.ID] = i
		s.cpuCands[i] = newCandidate(c.ID, c.Name, c.Score)
	}
	s.gpuCands = make([]candidate, len(gpus))
	for i, g := range gpus {
		s.gpuByID[g.ID] = i
		s.gpuCands[i] = newCandidate(g.ID, g.Name, g.Score)
	}
	return s
}

// Load reads the CPU and GPU catalogs from JSON files and builds a store.
func Load(cpuPath, gpuPath string) (*Store, error) {
	var cpus []CPU
	if err := readJSON(cpuPath, &cpus); err != nil {
		return nil, fmt.Errorf("load cpu catalog: %w", err)
	}
	var gpus []GPU
	if err := readJSON(gpuPath, &gpus); err != nil {
		return nil, fmt.Errorf("load gpu catalog: %w", err)
	}
	return NewStore(cpus, gpus), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// CPUs returns the CPU catalog. Callers must not modify it.
func (s *Store) CPUs() []CPU { return s.cpus }

// GPUs returns the GPU catalog. Callers must not modify it.
func (s *Store) GPUs() []GPU { return s.gpus }

// CPUByID looks up a CPU by its stable slug, for dropdown-style selection.
func (s *Store) CPUByID(id string) *CPU {
	if i, ok := s.cpuByID[id]; ok {
		return &s.cpus[i]
	}
	return nil
}

// GPUByID looks up a GPU by its stable slug.
func (s *Store) GPUByID(id string) *GPU {
	if i, ok := s.gpuByID[id]; ok {
		return &s.gpus[i]
	}
	return nil
}
