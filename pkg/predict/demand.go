package predict

import (
	"strings"
	"sync"

	"github.com/gamebencher/rigcheck/pkg/hardware"
)

// Source records which requirement tier a demand score was derived from.
type Source string

const (
	SourceRecommended Source = "recommended"
	SourceMinimum     Source = "minimum"
	SourceEstimated   Source = "estimated"
)

// Heuristic calibration constants, chosen by eye against typical catalogs.
// TODO: recalibrate against real player FPS reports once the desktop client
// starts uploading them.
const (
	// recCPUFromMin scales a minimum-tier CPU score up to a recommended-tier
	// estimate when only the minimum CPU text matched.
	recCPUFromMin = 1.4
	// minTierUplift scales minimum-tier scores up to recommended-tier
	// estimates; recommended requirements tend to run ~50% heavier.
	minTierUplift = 1.5
	// defaultCPUDemand and defaultGPUDemand assume a moderately demanding
	// game when no requirement text matched the catalog at all.
	defaultCPUDemand = 30
	defaultGPUDemand = 30
	// minCPUFallback stands in for an unmatched minimum CPU when the minimum
	// GPU did match.
	minCPUFallback = 20
)

// Requirement is one tier of a game's published system requirements. The
// text fields are free-form vendor strings; empty means not published.
type Requirement struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAMGB   int    `json:"ram_gb"`
	Storage string `json:"storage"`
	DirectX string `json:"directx"`
}

// GameRequirements holds both published requirement tiers.
type GameRequirements struct {
	Minimum     Requirement `json:"minimum"`
	Recommended Requirement `json:"recommended"`
}

// DemandScore is a game's computational demand on the same 0-100 scale as
// the hardware catalogs.
type DemandScore struct {
	CPUDemand float64 `json:"cpu_demand"`
	GPUDemand float64 `json:"gpu_demand"`
	Source    Source  `json:"source"`
}

// Engine derives game demand scores and FPS predictions from a hardware
// reference store. Safe for concurrent use; demand scores are memoized for
// the life of the engine. The cache is unbounded, which is fine because the
// game catalog is finite and static per deployment.
type Engine struct {
	hw *hardware.Store

	mu     sync.Mutex
	demand map[string]DemandScore
}

// NewEngine creates a prediction engine backed by the given reference store.
func NewEngine(hw *hardware.Store) *Engine {
	return &Engine{hw: hw, demand: make(map[string]DemandScore)}
}

// Hardware returns the engine's reference store.
func (e *Engine) Hardware() *hardware.Store { return e.hw }

// EstimateDemand converts a game's published requirement text into a demand
// score. Recommended requirements are trusted as-is; minimum requirements
// are scaled up by minTierUplift; when nothing matches the catalog the
// score falls back to a moderate default and is flagged estimated. Repeat
// calls with identical requirement text resolve from cache.
func (e *Engine) EstimateDemand(req GameRequirements) DemandScore {
	key := strings.Join([]string{
		req.Recommended.CPU, req.Recommended.GPU,
		req.Minimum.CPU, req.Minimum.GPU,
	}, "_")

	e.mu.Lock()
	ds, ok := e.demand[key]
	e.mu.Unlock()
	if ok {
		return ds
	}

	ds = e.computeDemand(req)

	// A concurrent racer may have computed the same value; last write wins
	// and both writes are identical.
	e.mu.Lock()
	e.demand[key] = ds
	e.mu.Unlock()
	return ds
}

func (e *Engine) computeDemand(req GameRequirements) DemandScore {
	recCPU := e.hw.MatchCPU(req.Recommended.CPU)
	recGPU := e.hw.MatchGPU(req.Recommended.GPU)
	minCPU := e.hw.MatchCPU(req.Minimum.CPU)
	minGPU := e.hw.MatchGPU(req.Minimum.GPU)

	switch {
	case recGPU != nil:
		cpuDemand := 0.0
		if recCPU != nil {
			cpuDemand = recCPU.Score
		} else {
			base := float64(defaultCPUDemand)
			if minCPU != nil {
				base = minCPU.Score
			}
			cpuDemand = base * recCPUFromMin
		}
		return DemandScore{
			CPUDemand: cpuDemand,
			GPUDemand: recGPU.Score,
			Source:    SourceRecommended,
		}

	case minGPU != nil:
		base := float64(minCPUFallback)
		if minCPU != nil {
			base = minCPU.Score
		}
		return DemandScore{
			CPUDemand: base * minTierUplift,
			GPUDemand: minGPU.Score * minTierUplift,
			Source:    SourceMinimum,
		}

	default:
		return DemandScore{
			CPUDemand: defaultCPUDemand,
			GPUDemand: defaultGPUDemand,
			Source:    SourceEstimated,
		}
	}
}
