package scoring

import (
	"fmt"
	"math"
)

// WeightSet defines the relative importance of each category score.
// All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	Market      float64
	Costs       float64
	Competition float64
	Revenue     float64
	Team        float64
}

// DefaultWeights is the feasibility weighting. Changing these is a versioned
// design decision, not a runtime parameter.
func DefaultWeights() WeightSet {
	return WeightSet{
		Market:      0.25,
		Costs:       0.15,
		Competition: 0.20,
		Revenue:     0.25,
		Team:        0.15,
	}
}

// InvestorWeights is the second, independent blend used for the investor
// readiness sub-score. It reuses the same category scores with its own
// distribution.
func InvestorWeights() WeightSet {
	return WeightSet{
		Market:      0.30,
		Costs:       0.10,
		Competition: 0.10,
		Revenue:     0.30,
		Team:        0.20,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Market + w.Costs + w.Competition + w.Revenue + w.Team
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Market, w.Costs, w.Competition, w.Revenue, w.Team} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// Blend applies the weights to already-rounded category scores.
func (w WeightSet) Blend(parts CategoryScores) int {
	return round(float64(parts.Market)*w.Market +
		float64(parts.Costs)*w.Costs +
		float64(parts.Competition)*w.Competition +
		float64(parts.Revenue)*w.Revenue +
		float64(parts.Team)*w.Team)
}
