// Package health holds the pure, side-effect free rules that turn raw sensor
// values into the labels, statuses and aggregates shown on the dashboard.
package health

import "math"

type TemperatureLabel string

const (
	LabelHipotermia  TemperatureLabel = "Hipotermia"
	LabelNormal      TemperatureLabel = "Normal"
	LabelDemamRingan TemperatureLabel = "Demam Ringan"
	LabelDemamTinggi TemperatureLabel = "Demam Tinggi"
	LabelKritis      TemperatureLabel = "Kritis"
	LabelUnknown     TemperatureLabel = "Unknown"
)

// Classification is a label plus the badge color the dashboard renders for it.
type Classification struct {
	Label TemperatureLabel `json:"label"`
	Color string           `json:"color"`
}

// Upper bounds of each bin, inclusive. Anything above the last bound is Kritis.
const (
	HypothermiaBelow   = 37.5
	NormalUpTo         = 39.5
	MildFeverUpTo      = 40.5
	HighFeverUpTo      = 41.5
	colorHipotermia    = "#3B82F6"
	colorNormal        = "#22C55E"
	colorDemamRingan   = "#EAB308"
	colorDemamTinggi   = "#F97316"
	colorKritis        = "#EF4444"
	colorUnknown       = "#9CA3AF"
	labelCountCapacity = 5
)

// TemperatureLabels lists the five labels in ascending temperature order.
var TemperatureLabels = []TemperatureLabel{
	LabelHipotermia,
	LabelNormal,
	LabelDemamRingan,
	LabelDemamTinggi,
	LabelKritis,
}

func ClassifyTemperature(t float64) Classification {
	switch {
	case math.IsNaN(t):
		return Classification{Label: LabelUnknown, Color: colorUnknown}
	case t < HypothermiaBelow:
		return Classification{Label: LabelHipotermia, Color: colorHipotermia}
	case t <= NormalUpTo:
		return Classification{Label: LabelNormal, Color: colorNormal}
	case t <= MildFeverUpTo:
		return Classification{Label: LabelDemamRingan, Color: colorDemamRingan}
	case t <= HighFeverUpTo:
		return Classification{Label: LabelDemamTinggi, Color: colorDemamTinggi}
	default:
		return Classification{Label: LabelKritis, Color: colorKritis}
	}
}

// IsAbnormal reports whether a label should raise attention on the dashboard.
func (l TemperatureLabel) IsAbnormal() bool {
	return l != LabelNormal && l != LabelUnknown
}

// IsCritical is true for the two labels that call for a vet visit.
func (l TemperatureLabel) IsCritical() bool {
	return l == LabelDemamTinggi || l == LabelKritis
}

type LabelCount struct {
	Label TemperatureLabel `json:"label"`
	Color string           `json:"color"`
	Count int              `json:"count"`
}

// Distribution counts how many temperatures fall into each label. All five
// labels are always present, in ascending order, so charts keep a stable legend.
func Distribution(temperatures []float64) []LabelCount {
	counts := make(map[TemperatureLabel]int, labelCountCapacity)
	for _, t := range temperatures {
		if math.IsNaN(t) {
			continue
		}
		counts[ClassifyTemperature(t).Label]++
	}

	out := make([]LabelCount, 0, len(TemperatureLabels))
	for _, label := range TemperatureLabels {
		out = append(out, LabelCount{
			Label: label,
			Color: colorOf(label),
			Count: counts[label],
		})
	}
	return out
}

func colorOf(label TemperatureLabel) string {
	switch label {
	case LabelHipotermia:
		return colorHipotermia
	case LabelNormal:
		return colorNormal
	case LabelDemamRingan:
		return colorDemamRingan
	case LabelDemamTinggi:
		return colorDemamTinggi
	case LabelKritis:
		return colorKritis
	}
	return colorUnknown
}
