package predict

// Factor pairs a display label with a GPU-load multiplier.
type Factor struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// ResolutionFactors maps render resolution to GPU load, relative to 1080p.
var ResolutionFactors = map[string]Factor{
	"720p":  {Label: "1280×720 (HD)", Factor: 0.56},
	"1080p": {Label: "1920×1080 (Full HD)", Factor: 1.0},
	"1440p": {Label: "2560×1440 (2K)", Factor: 1.78},
	"4k":    {Label: "3840×2160 (4K)", Factor: 4.0},
}

// QualityFactors maps the in-game quality preset to GPU load, relative to the
// high preset.
var QualityFactors = map[string]Factor{
	"low":    {Label: "Low", Factor: 0.5},
	"medium": {Label: "Medium", Factor: 0.75},
	"high":   {Label: "High", Factor: 1.0},
	"ultra":  {Label: "Ultra", Factor: 1.35},
}

// resolutionFactor returns the multiplier for key; unknown keys are treated
// as neutral 1.0 rather than rejected.
func resolutionFactor(key string) float64 {
	if f, ok := ResolutionFactors[key]; ok {
		return f.Factor
	}
	return 1.0
}

func qualityFactor(key string) float64 {
	if f, ok := QualityFactors[key]; ok {
		return f.Factor
	}
	return 1.0
}
