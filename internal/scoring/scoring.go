package scoring

import "math"

// Band is an ordinal severity level derived from a 0-100 score.
type Band string

const (
	BandLow           Band = "low"
	BandMedium        Band = "medium"
	BandHigh          Band = "high"
	BandExtremelyHigh Band = "extremely_high"
)

// Recognized analysis dimensions. Scores arrive keyed by these names; unknown
// keys are carried through for display but never weighted.
const (
	DimensionEmotionalTone      = "emotional_tone"
	DimensionFramingChoices     = "framing_choices"
	DimensionFactualGrounding   = "factual_grounding"
	DimensionIdeologicalStance  = "ideological_stance"
	DimensionSourceTransparency = "source_transparency"
)

// Dimensions lists the recognized dimensions in their canonical display order.
var Dimensions = []string{
	DimensionEmotionalTone,
	DimensionFramingChoices,
	DimensionFactualGrounding,
	DimensionIdeologicalStance,
	DimensionSourceTransparency,
}

// ScoreSet maps dimension name to a score in [0,100]. Dimensions may be
// missing; consumers treat an absent dimension as zero for display only.
type ScoreSet map[string]float64

// OverallIndex is the weighted summary of a ScoreSet.
type OverallIndex struct {
	Value float64 `json:"value"`
	Band  Band    `json:"band"`
}

// Classify maps a score to its severity band. The mapping is total: every
// value, including NaN and out-of-range input, lands in exactly one band.
// Unusable input classifies as low rather than failing.
func Classify(score float64) Band {
	switch {
	case math.IsNaN(score):
		return BandLow
	case score < 30:
		return BandLow
	case score < 50:
		return BandMedium
	case score < 70:
		return BandHigh
	default:
		return BandExtremelyHigh
	}
}

// Weight describes one dimension's contribution to the overall index.
// Inverted dimensions measure bias-reducing qualities, so their contribution
// is taken as 100 minus the raw score.
type Weight struct {
	Dimension string
	Percent   float64
	Inverted  bool
}

// Weights is the fixed contribution table for the overall bias index.
// Percentages sum to 100.
var Weights = []Weight{
	{Dimension: DimensionFramingChoices, Percent: 25},
	{Dimension: DimensionFactualGrounding, Percent: 25, Inverted: true},
	{Dimension: DimensionSourceTransparency, Percent: 20, Inverted: true},
	{Dimension: DimensionEmotionalTone, Percent: 15},
	{Dimension: DimensionIdeologicalStance, Percent: 15},
}

// Aggregate folds per-dimension scores into an overall index. The analysis
// service normally supplies the index itself; Aggregate covers paths that only
// have per-dimension scores and display-side consistency checks. A missing
// dimension contributes zero to its weighted term; its weight is not
// redistributed to the remaining dimensions.
func Aggregate(scores ScoreSet) OverallIndex {
	var total float64
	for _, w := range Weights {
		value, ok := scores[w.Dimension]
		if !ok || math.IsNaN(value) {
			continue
		}
		if w.Inverted {
			value = 100 - value
		}
		total += value * w.Percent / 100
	}
	value := math.Round(total)
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return OverallIndex{Value: value, Band: Classify(value)}
}

// Verdict returns the user-facing label for an overall index value. Labels are
// derived from the band classification so the two scales cannot drift apart.
func Verdict(value float64) string {
	return BandVerdict(Classify(value))
}

// BandVerdict maps a band to its verdict label.
func BandVerdict(band Band) string {
	switch band {
	case BandMedium:
		return "Some bias"
	case BandHigh:
		return "Biased"
	case BandExtremelyHigh:
		return "Highly biased"
	default:
		return "Not biased"
	}
}
