// Package advise suggests hardware upgrades from a rig's bottleneck and the
// benchmark scores of its parts. Suggestions are indicative shopping
// shortlist entries, not live offers; price ranges are rough street prices.
package advise

import (
	"fmt"

	"github.com/gamebencher/rigcheck/pkg/hardware"
	"github.com/gamebencher/rigcheck/pkg/predict"
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Product tiers, roughly budget/value/premium price brackets.
const (
	TierBudget  = "budget"
	TierValue   = "value"
	TierPremium = "premium"
)

// ramComfortGB is the point below which a RAM upgrade gets suggested;
// ramCriticalGB makes it high priority.
const (
	ramComfortGB  = 16
	ramCriticalGB = 8
)

// Product is one concrete upgrade suggestion.
type Product struct {
	Name     string `json:"name"`
	Reason   string `json:"reason"`
	PriceUSD string `json:"price_usd"`
	Tier     string `json:"tier"`
}

// Recommendation groups suggested products for one subsystem.
type Recommendation struct {
	Type         string    `json:"type"` // "cpu", "gpu" or "ram"
	Priority     string    `json:"priority"`
	Reason       string    `json:"reason"`
	CurrentLevel string    `json:"current_level"`
	Products     []Product `json:"products"`
}

// Recommend returns prioritized upgrade recommendations for the given rig.
// The bottleneck label comes from a prediction (predict.BottleneckCPU etc.);
// the bottlenecked subsystem is suggested first at high priority, the other
// at medium when the rig is balanced. An empty slice means the rig needs
// nothing.
func Recommend(cpu *hardware.CPU, gpu *hardware.GPU, ramGB int, bottleneck string) []Recommendation {
	var recs []Recommendation

	if bottleneck == predict.BottleneckGPU || bottleneck == predict.BottleneckBalanced {
		priority, reason := PriorityMedium, "A GPU upgrade will improve your experience"
		if bottleneck == predict.BottleneckGPU {
			priority, reason = PriorityHigh, "GPU is the main bottleneck, upgrading gives the biggest boost"
		}
		recs = append(recs, Recommendation{
			Type:         "gpu",
			Priority:     priority,
			Reason:       reason,
			CurrentLevel: fmt.Sprintf("%s (%.0f/100)", gpu.Name, gpu.Score),
			Products:     gpuUpgrades(gpu.Score),
		})
	}

	if bottleneck == predict.BottleneckCPU || bottleneck == predict.BottleneckBalanced {
		priority, reason := PriorityMedium, "A CPU upgrade will reduce frame drops"
		if bottleneck == predict.BottleneckCPU {
			priority, reason = PriorityHigh, "CPU is the main bottleneck"
		}
		recs = append(recs, Recommendation{
			Type:         "cpu",
			Priority:     priority,
			Reason:       reason,
			CurrentLevel: fmt.Sprintf("%s (%.0f/100)", cpu.Name, cpu.Score),
			Products:     cpuUpgrades(cpu.Score),
		})
	}

	if ramGB < ramComfortGB {
		priority := PriorityMedium
		if ramGB <= ramCriticalGB {
			priority = PriorityHigh
		}
		recs = append(recs, Recommendation{
			Type:         "ram",
			Priority:     priority,
			Reason:       fmt.Sprintf("%dGB RAM is insufficient, %dGB+ recommended", ramGB, ramComfortGB),
			CurrentLevel: fmt.Sprintf("%dGB", ramGB),
			Products: []Product{
				{Name: "DDR4 16GB (8G×2)", Reason: "Dual channel for better performance", PriceUSD: "$39-59", Tier: TierBudget},
				{Name: "DDR5 32GB (16G×2)", Reason: "Best for new platforms", PriceUSD: "$69-99", Tier: TierValue},
			},
		})
	}

	return recs
}

// gpuUpgrades shortlists cards one or two tiers above the current score.
func gpuUpgrades(score float64) []Product {
	switch {
	case score < 20:
		return []Product{
			{Name: "RTX 4060", Reason: "Mainstream pick, handles 1080p smoothly", PriceUSD: "$289-329", Tier: TierBudget},
			{Name: "RTX 4060 Ti", Reason: "Great for 1440p gaming", PriceUSD: "$389-429", Tier: TierValue},
			{Name: "RX 7700 XT", Reason: "Best AMD value for 1440p", PriceUSD: "$419-459", Tier: TierValue},
		}
	case score < 40:
		return []Product{
			{Name: "RTX 4060 Ti", Reason: "Solid 1440p performance", PriceUSD: "$389-429", Tier: TierBudget},
			{Name: "RTX 4070 SUPER", Reason: "Premium 1440p experience", PriceUSD: "$579-629", Tier: TierValue},
			{Name: "RX 7800 XT", Reason: "AMD flagship value", PriceUSD: "$479-529", Tier: TierValue},
		}
	case score < 60:
		return []Product{
			{Name: "RTX 4070 SUPER", Reason: "Excellent ray tracing, great at 1440p", PriceUSD: "$579-629", Tier: TierBudget},
			{Name: "RTX 4070 Ti SUPER", Reason: "Near-4K capable", PriceUSD: "$779-849", Tier: TierValue},
			{Name: "RTX 4080 SUPER", Reason: "4K gaming ready", PriceUSD: "$979-1049", Tier: TierPremium},
		}
	default:
		return []Product{
			{Name: "RTX 4080 SUPER", Reason: "Smooth 4K gaming", PriceUSD: "$979-1049", Tier: TierValue},
			{Name: "RTX 4090", Reason: "The absolute best", PriceUSD: "$1549-1799", Tier: TierPremium},
		}
	}
}

func cpuUpgrades(score float64) []Product {
	switch {
	case score < 30:
		return []Product{
			{Name: "i5-12400F", Reason: "Best budget choice", PriceUSD: "$109-139", Tier: TierBudget},
			{Name: "R5 5600", Reason: "Best AM4 value", PriceUSD: "$99-129", Tier: TierBudget},
			{Name: "i5-13600KF", Reason: "Powerful 14 cores", PriceUSD: "$249-289", Tier: TierValue},
		}
	case score < 55:
		return []Product{
			{Name: "i5-14600KF", Reason: "Best mainstream gaming", PriceUSD: "$279-319", Tier: TierBudget},
			{Name: "R7 7800X3D", Reason: "Gaming performance king", PriceUSD: "$359-419", Tier: TierValue},
			{Name: "i7-14700KF", Reason: "All-round flagship", PriceUSD: "$369-419", Tier: TierPremium},
		}
	default:
		return []Product{
			{Name: "R7 7800X3D", Reason: "Peak gaming FPS", PriceUSD: "$359-419", Tier: TierValue},
			{Name: "i9-14900K", Reason: "Intel flagship", PriceUSD: "$539-599", Tier: TierPremium},
		}
	}
}
