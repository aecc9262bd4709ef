package predict

import (
	"testing"

	"github.com/gamebencher/rigcheck/pkg/hardware"
	"github.com/stretchr/testify/assert"
)

func testEngine() *Engine {
	hw := hardware.NewStore(
		[]hardware.CPU{
			{ID: "i5-8400", Name: "Intel Core i5-8400", Score: 28},
			{ID: "i7-9700k", Name: "Intel Core i7-9700K", Score: 40},
		},
		[]hardware.GPU{
			{ID: "gtx-1060", Name: "NVIDIA GeForce GTX 1060", Score: 18},
			{ID: "rtx-3060", Name: "NVIDIA GeForce RTX 3060", Score: 45},
		},
	)
	return NewEngine(hw)
}

func TestEstimateDemandRecommended(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{
		Recommended: Requirement{CPU: "Intel Core i7-9700K", GPU: "GeForce RTX 3060"},
		Minimum:     Requirement{CPU: "Intel Core i5-8400", GPU: "GTX 1060"},
	})

	assert.Equal(t, SourceRecommended, ds.Source)
	assert.Equal(t, 45.0, ds.GPUDemand)
	assert.Equal(t, 40.0, ds.CPUDemand)
}

func TestEstimateDemandRecommendedCPUFallsBackToMinimum(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{
		Recommended: Requirement{GPU: "GeForce RTX 3060"},
		Minimum:     Requirement{CPU: "Intel Core i5-8400"},
	})

	assert.Equal(t, SourceRecommended, ds.Source)
	assert.Equal(t, 45.0, ds.GPUDemand)
	assert.InDelta(t, 28*1.4, ds.CPUDemand, 1e-9)
}

func TestEstimateDemandRecommendedNoCPUAtAll(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{
		Recommended: Requirement{GPU: "GeForce RTX 3060"},
	})

	assert.Equal(t, SourceRecommended, ds.Source)
	assert.InDelta(t, 30*1.4, ds.CPUDemand, 1e-9)
}

func TestEstimateDemandMinimumUplift(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{
		Minimum: Requirement{CPU: "Intel Core i5-8400", GPU: "GTX 1060"},
	})

	assert.Equal(t, SourceMinimum, ds.Source)
	assert.InDelta(t, 18*1.5, ds.GPUDemand, 1e-9)
	assert.InDelta(t, 28*1.5, ds.CPUDemand, 1e-9)
}

func TestEstimateDemandMinimumNoCPU(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{
		Minimum: Requirement{GPU: "GTX 1060"},
	})

	assert.Equal(t, SourceMinimum, ds.Source)
	assert.InDelta(t, 20*1.5, ds.CPUDemand, 1e-9)
}

// All four text fields empty still yields finite moderate demand.
func TestEstimateDemandFallback(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{})

	assert.Equal(t, SourceEstimated, ds.Source)
	assert.Equal(t, 30.0, ds.CPUDemand)
	assert.Equal(t, 30.0, ds.GPUDemand)
}

func TestEstimateDemandUnparsableText(t *testing.T) {
	e := testEngine()

	ds := e.EstimateDemand(GameRequirements{
		Minimum:     Requirement{CPU: "any dual core", GPU: "integrated graphics"},
		Recommended: Requirement{CPU: "something fast", GPU: "a good one"},
	})

	assert.Equal(t, SourceEstimated, ds.Source)
}

func TestEstimateDemandIdempotent(t *testing.T) {
	e := testEngine()
	req := GameRequirements{
		Recommended: Requirement{CPU: "i7 9700k", GPU: "rtx 3060"},
		Minimum:     Requirement{CPU: "i5 8400", GPU: "gtx 1060"},
	}

	first := e.EstimateDemand(req)
	second := e.EstimateDemand(req)
	assert.Equal(t, first, second)
}
