package sinc

import "fmt"

// Quality selects a preset attenuation/quantify pair. The presets trade
// kernel size and table memory for conversion accuracy; the names indicate
// the effective sample resolution the preset preserves.
type Quality int

const (
	// QualityQuick is a small, fast kernel adequate for 8-bit material.
	QualityQuick Quality = iota
	// QualityLow preserves roughly 12-bit resolution.
	QualityLow
	// QualityMedium preserves 16-bit resolution and suits most audio work.
	QualityMedium
	// QualityHigh preserves 20-bit resolution.
	QualityHigh
	// QualityVeryHigh preserves 24-bit resolution.
	QualityVeryHigh
	// QualityBest drives the quantization error below the 24-bit noise
	// floor at the cost of a large table.
	QualityBest
)

// presetParams maps each Quality to its attenuation in dB and phase
// subdivision count. Each 12 dB step needs 4x the subdivisions to keep the
// table quantization error below the deeper noise floor.
var presetParams = map[Quality]struct {
	attenuation float64
	quantify    int
}{
	QualityQuick:    {48, 8},
	QualityLow:      {72, 32},
	QualityMedium:   {96, 128},
	QualityHigh:     {120, 512},
	QualityVeryHigh: {144, 2048},
	QualityBest:     {168, 8192},
}

// String returns the preset name.
func (q Quality) String() string {
	switch q {
	case QualityQuick:
		return "quick"
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityVeryHigh:
		return "very-high"
	case QualityBest:
		return "best"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// Params returns the preset's attenuation in dB and quantify count. Unknown
// values fall back to QualityMedium.
func (q Quality) Params() (attenuation float64, quantify int) {
	p, ok := presetParams[q]
	if !ok {
		p = presetParams[QualityMedium]
	}
	return p.attenuation, p.quantify
}

// NewWithPreset creates a Manager for the given ratio using a quality
// preset and transition band width.
func NewWithPreset(ratio float64, quality Quality, passWidth float64) (*Manager, error) {
	attenuation, quantify := quality.Params()
	return New(ratio, attenuation, quantify, passWidth)
}
