package predict

import (
	"math"

	"github.com/gamebencher/rigcheck/pkg/hardware"
)

// Bottleneck labels for the weaker subsystem.
const (
	BottleneckCPU      = "cpu"
	BottleneckGPU      = "gpu"
	BottleneckBalanced = "balanced"
)

// Confidence labels, derived from the demand score's source tier.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const (
	// baseFPS anchors the model: recommended hardware at 1080p high usually
	// lands near 60 fps.
	baseFPS = 60
	minFPS  = 10
	maxFPS  = 300
	// ramPenalty is a flat multiplier applied when the user has less RAM
	// than the game's stated minimum. Shortfalls show up as swapping and
	// stutter, not as a smooth slowdown.
	ramPenalty      = 0.6
	defaultMinRAMGB = 4
	// meetsMargin leaves slack when checking published requirements;
	// hardware within 15% of the listed part is close enough in practice.
	meetsMargin = 0.85
	// bottleneckDeadZone keeps near-equal CPU/GPU ratios labeled balanced
	// instead of flip-flopping between the two.
	bottleneckDeadZone = 0.8
	// bandSpread is the ±20% uncertainty band around the point estimate.
	bandSpread = 0.2
	// unreachableScore stands in for an unmatched recommended requirement:
	// "can't tell" reads as "does not meet recommended".
	unreachableScore = 999
)

// Prediction is the full frame-rate estimate for one user rig and one game.
type Prediction struct {
	FPS        int    `json:"fps"`
	FPSLow     int    `json:"fps_low"`
	FPSHigh    int    `json:"fps_high"`
	Bottleneck string `json:"bottleneck"`
	CanRunMin  bool   `json:"can_run_min"`
	CanRunRec  bool   `json:"can_run_rec"`
	Confidence string `json:"confidence"`
	Source     Source `json:"source"`
}

// PredictFPS estimates the frame rate the given hardware will achieve in a
// game at the given resolution and quality preset. The caller resolves the
// user's CPU and GPU to catalog entries beforehand (typically a dropdown
// selection by id). Unknown resolution or quality keys are treated as neutral
// multipliers. The result is deterministic and bounded to [minFPS, maxFPS];
// unparsable game requirements degrade confidence rather than failing.
func (e *Engine) PredictFPS(userCPU *hardware.CPU, userGPU *hardware.GPU, userRAMGB int, req GameRequirements, resolution, quality string) Prediction {
	demand := e.EstimateDemand(req)

	// GPU load scales with pixel count and preset; CPU load is mostly
	// insensitive to display settings.
	effectiveGPUDemand := math.Max(demand.GPUDemand*resolutionFactor(resolution)*qualityFactor(quality), 1)
	gpuRatio := userGPU.Score / effectiveGPUDemand
	cpuRatio := userCPU.Score / math.Max(demand.CPUDemand, 1)

	// The weaker subsystem caps the frame rate. A hard minimum, not a
	// weighted blend.
	ratio := math.Min(gpuRatio, cpuRatio)
	fps := clampFPS(int(math.Round(baseFPS * ratio)))

	minRAM := req.Minimum.RAMGB
	if minRAM <= 0 {
		minRAM = defaultMinRAMGB
	}
	if userRAMGB < minRAM {
		fps = clampFPS(int(math.Round(float64(fps) * ramPenalty)))
	}

	bottleneck := BottleneckBalanced
	switch {
	case cpuRatio < gpuRatio*bottleneckDeadZone:
		bottleneck = BottleneckCPU
	case gpuRatio < cpuRatio*bottleneckDeadZone:
		bottleneck = BottleneckGPU
	}

	// Requirement satisfaction is re-checked against the published text
	// directly, independent of the demand heuristics above.
	canRunMin := userCPU.Score >= cpuScore(e.hw.MatchCPU(req.Minimum.CPU), 0)*meetsMargin &&
		userGPU.Score >= gpuScore(e.hw.MatchGPU(req.Minimum.GPU), 0)*meetsMargin
	canRunRec := userCPU.Score >= cpuScore(e.hw.MatchCPU(req.Recommended.CPU), unreachableScore)*meetsMargin &&
		userGPU.Score >= gpuScore(e.hw.MatchGPU(req.Recommended.GPU), unreachableScore)*meetsMargin

	confidence := ConfidenceLow
	switch demand.Source {
	case SourceRecommended:
		confidence = ConfidenceHigh
	case SourceMinimum:
		confidence = ConfidenceMedium
	}

	return Prediction{
		FPS:        fps,
		FPSLow:     max(minFPS, int(math.Round(float64(fps)*(1-bandSpread)))),
		FPSHigh:    min(maxFPS, int(math.Round(float64(fps)*(1+bandSpread)))),
		Bottleneck: bottleneck,
		CanRunMin:  canRunMin,
		CanRunRec:  canRunRec,
		Confidence: confidence,
		Source:     demand.Source,
	}
}

func clampFPS(v int) int {
	if v < minFPS {
		return minFPS
	}
	if v > maxFPS {
		return maxFPS
	}
	return v
}

func cpuScore(c *hardware.CPU, absent float64) float64 {
	if c == nil {
		return absent
	}
	return c.Score
}

func gpuScore(g *hardware.GPU, absent float64) float64 {
	if g == nil {
		return absent
	}
	return g.Score
}
