package scoring

import "math"

// Scale maps a 1-5 rating onto a 0-100 scale.
func Scale(v int) int {
	return round(float64(v-1) / 4 * 100)
}

// MarketScore blends market demand and reach.
func MarketScore(in FeasibilityInput) int {
	return round(float64(Scale(in.MarketDemand))*0.6 + float64(Scale(in.MarketReach))*0.4)
}

// CostsScore blends funding access with the capital burden penalty.
func CostsScore(in FeasibilityInput) int {
	return round(float64(Scale(in.FundingAccess))*0.6 + CapitalBurden(in.InitialCapital, in.MonthlyRevenue)*0.4)
}

// CapitalBurden classifies how long revenue takes to recover the upfront
// investment. It is a non-increasing step function of months-to-recover;
// the 6/12/24 month bands are product constants, not interpolated.
func CapitalBurden(initialCapital, monthlyRevenue float64) float64 {
	if initialCapital <= 0 {
		return 100 // no burden
	}
	if monthlyRevenue <= 0 {
		return 0 // capital can never be recovered
	}
	months := initialCapital / monthlyRevenue
	switch {
	case months <= 6:
		return 100
	case months <= 12:
		return 70
	case months <= 24:
		return 40
	default:
		return 15
	}
}

// CompetitionScore inverts competitive pressure and blends differentiation,
// so low pressure contributes positively.
func CompetitionScore(in FeasibilityInput) int {
	return round(float64(100-Scale(in.Competition))*0.5 + float64(Scale(in.Differentiation))*0.5)
}

// RevenueScore blends profit margin with revenue stability.
func RevenueScore(in FeasibilityInput) int {
	return round(float64(marginScore(in.MonthlyRevenue, in.MonthlyCost))*0.65 + float64(Scale(in.RevenueStability))*0.35)
}

// marginScore is the clamped profit margin on a 0-100 scale. Zero or
// negative revenue scores 0 rather than dividing.
func marginScore(monthlyRevenue, monthlyCost float64) int {
	if monthlyRevenue <= 0 {
		return 0
	}
	margin := (monthlyRevenue - monthlyCost) / monthlyRevenue
	if margin < 0 {
		margin = 0
	}
	if margin > 1 {
		margin = 1
	}
	return round(margin * 100)
}

// TeamScore blends founder experience and operational readiness.
func TeamScore(in FeasibilityInput) int {
	return round(float64(Scale(in.FounderExp))*0.6 + float64(Scale(in.OpsReady))*0.4)
}

// round is half-away-from-zero, applied per category before aggregation.
func round(v float64) int {
	return int(math.Round(v))
}
