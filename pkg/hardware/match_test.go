package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	cpus := []CPU{
		{ID: "i5-8400", Name: "Intel Core i5-8400", Brand: "intel", Score: 28},
		{ID: "r5-5600x", Name: "AMD Ryzen 5 5600X", Brand: "amd", Score: 46},
		{ID: "r7-5800x", Name: "AMD Ryzen 7 5800X", Brand: "amd", Score: 54},
	}
	gpus := []GPU{
		{ID: "gtx-1060", Name: "NVIDIA GeForce GTX 1060 6GB", Brand: "nvidia", Score: 18},
		{ID: "rtx-3060", Name: "NVIDIA GeForce RTX 3060", Brand: "nvidia", Score: 45},
		{ID: "rtx-3060-ti", Name: "NVIDIA GeForce RTX 3060 Ti", Brand: "nvidia", Score: 52},
	}
	return NewStore(cpus, gpus)
}

func TestMatchCPU(t *testing.T) {
	s := testStore()

	tests := []struct {
		name   string
		text   string
		wantID string // "" means no match
	}{
		{"empty text", "", ""},
		{"blank text", "   ", ""},
		{"exact vendor string", "Intel Core i5-8400", "i5-8400"},
		{"id with qualifier", "i5 8400 or better", "i5-8400"},
		{"trademark decoration", "Intel® Core™ i5-8400", "i5-8400"},
		// The slug "r5-5600x" strips to "r55600x", which is not a substring
		// of "amdryzen55600x"; the token-overlap signal has to catch this
		// one. The weaker 2-of-3 overlap with Ryzen 7 5800X must lose.
		{"token overlap beats id miss", "AMD Ryzen 5 5600X", "r5-5600x"},
		{"unknown hardware", "Apple M1 Pro", ""},
		{"unrelated text", "any modern quad core processor", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.MatchCPU(tt.text)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestMatchGPU(t *testing.T) {
	s := testStore()

	tests := []struct {
		name   string
		text   string
		wantID string
	}{
		{"empty text", "", ""},
		{"vendor string", "GeForce RTX 3060", "rtx-3060"},
		{"longer id wins over prefix", "GeForce RTX 3060 Ti", "rtx-3060-ti"},
		{"qualifier suffix", "NVIDIA GTX 1060 or equivalent", "gtx-1060"},
		{"no match", "Voodoo 3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.MatchGPU(tt.text)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestMatchGPUScoreScenario(t *testing.T) {
	s := testStore()

	gpu := s.MatchGPU("GeForce RTX 3060")
	require.NotNil(t, gpu)
	assert.Equal(t, 45.0, gpu.Score)
}

// Equal match strength resolves to the higher benchmark score, not to
// catalog order.
func TestMatchTieBreakPrefersHigherScore(t *testing.T) {
	cpus := []CPU{
		{ID: "alpha-one", Name: "Quantum 9000", Score: 30},
		{ID: "beta-two", Name: "Quantum 9000", Score: 50},
	}
	s := NewStore(cpus, nil)

	got := s.MatchCPU("Quantum 9000")
	require.NotNil(t, got)
	assert.Equal(t, "beta-two", got.ID)

	// Same catalog in reverse order gives the same winner.
	s = NewStore([]CPU{cpus[1], cpus[0]}, nil)
	got = s.MatchCPU("Quantum 9000")
	require.NotNil(t, got)
	assert.Equal(t, "beta-two", got.ID)
}

func TestLookupByID(t *testing.T) {
	s := testStore()

	cpu := s.CPUByID("r5-5600x")
	require.NotNil(t, cpu)
	assert.Equal(t, "AMD Ryzen 5 5600X", cpu.Name)
	assert.Nil(t, s.CPUByID("no-such-cpu"))

	gpu := s.GPUByID("rtx-3060")
	require.NotNil(t, gpu)
	assert.Equal(t, 45.0, gpu.Score)
	assert.Nil(t, s.GPUByID("no-such-gpu"))
}
