package scoring

// Verdict labels derived from the final score.
const (
	VerdictHigh   = "High"
	VerdictMedium = "Medium"
	VerdictLow    = "Low"
)

// Compute runs the full feasibility scoring pass over one input snapshot.
// It is a pure function: no state is held between calls and the result is
// fully determined by the input.
func Compute(in FeasibilityInput) Score {
	parts := CategoryScores{
		Market:      MarketScore(in),
		Costs:       CostsScore(in),
		Competition: CompetitionScore(in),
		Revenue:     RevenueScore(in),
		Team:        TeamScore(in),
	}

	return Score{
		Final:     DefaultWeights().Blend(parts),
		Parts:     parts,
		Breakeven: Breakeven(in.MonthlyRevenue, in.MonthlyCost, in.InitialCapital),
	}
}

// Verdict maps a final score onto its viability band.
func Verdict(final int) string {
	switch {
	case final >= 75:
		return VerdictHigh
	case final >= 50:
		return VerdictMedium
	default:
		return VerdictLow
	}
}
