package advise

import (
	"testing"

	"github.com/gamebencher/rigcheck/pkg/hardware"
	"github.com/gamebencher/rigcheck/pkg/predict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendGPUBottleneck(t *testing.T) {
	cpu := &hardware.CPU{Name: "Intel Core i5-12400F", Score: 48}
	gpu := &hardware.GPU{Name: "NVIDIA GeForce GTX 1060 6GB", Score: 18}

	recs := Recommend(cpu, gpu, 16, predict.BottleneckGPU)

	require.Len(t, recs, 1)
	assert.Equal(t, "gpu", recs[0].Type)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Contains(t, recs[0].CurrentLevel, "GTX 1060")
	require.NotEmpty(t, recs[0].Products)
	// Score under 20 starts the shortlist at the mainstream card.
	assert.Equal(t, "RTX 4060", recs[0].Products[0].Name)
}

func TestRecommendBalancedRig(t *testing.T) {
	cpu := &hardware.CPU{Name: "AMD Ryzen 5 5600X", Score: 46}
	gpu := &hardware.GPU{Name: "NVIDIA GeForce RTX 3060 Ti", Score: 46}

	recs := Recommend(cpu, gpu, 16, predict.BottleneckBalanced)

	require.Len(t, recs, 2)
	assert.Equal(t, "gpu", recs[0].Type)
	assert.Equal(t, PriorityMedium, recs[0].Priority)
	assert.Equal(t, "cpu", recs[1].Type)
	assert.Equal(t, PriorityMedium, recs[1].Priority)
}

func TestRecommendRAM(t *testing.T) {
	cpu := &hardware.CPU{Name: "Intel Core i9-14900K", Score: 84}
	gpu := &hardware.GPU{Name: "NVIDIA GeForce RTX 4090", Score: 100}

	tests := []struct {
		name         string
		ramGB        int
		wantRAMRec   bool
		wantPriority string
	}{
		{"8GB is critical", 8, true, PriorityHigh},
		{"12GB is low", 12, true, PriorityMedium},
		{"16GB is enough", 16, false, ""},
		{"32GB is enough", 32, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(cpu, gpu, tt.ramGB, predict.BottleneckCPU)

			var ramRec *Recommendation
			for i := range recs {
				if recs[i].Type == "ram" {
					ramRec = &recs[i]
				}
			}
			if !tt.wantRAMRec {
				assert.Nil(t, ramRec)
				return
			}
			require.NotNil(t, ramRec)
			assert.Equal(t, tt.wantPriority, ramRec.Priority)
		})
	}
}

func TestRecommendTierLadder(t *testing.T) {
	// Higher current scores shortlist higher-tier parts.
	lowEnd := Recommend(&hardware.CPU{Score: 80}, &hardware.GPU{Name: "old", Score: 18}, 16, predict.BottleneckGPU)
	highEnd := Recommend(&hardware.CPU{Score: 80}, &hardware.GPU{Name: "big", Score: 70}, 16, predict.BottleneckGPU)

	require.Len(t, lowEnd, 1)
	require.Len(t, highEnd, 1)
	assert.NotEqual(t, lowEnd[0].Products[0].Name, highEnd[0].Products[0].Name)
	assert.Equal(t, "RTX 4090", highEnd[0].Products[len(highEnd[0].Products)-1].Name)
}
