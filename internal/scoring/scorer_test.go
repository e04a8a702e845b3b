package scoring

import (
	"reflect"
	"testing"
	"time"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	for _, w := range []WeightSet{DefaultWeights(), InvestorWeights()} {
		if err := w.Validate(); err != nil {
			t.Errorf("weights invalid: %v", err)
		}
	}
}

// fixtureInput is the worked example from the product walkthrough.
func fixtureInput() FeasibilityInput {
	in := FeasibilityInput{
		BizName:          "Acme Kombucha",
		Industry:         "Food & Beverage",
		Stage:            2,
		CostMarketing:    2000,
		CostSalaries:     3000,
		MarketDemand:     4,
		MarketReach:      4,
		FundingAccess:    3,
		Competition:      2,
		Differentiation:  4,
		MonthlyRevenue:   5000,
		MonthlyCost:      3000,
		RevenueStability: 4,
		FounderExp:       4,
		OpsReady:         3,
		Timestamp:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	in.InitialCapital = in.SumCosts()
	return in
}

func TestComputeFixture(t *testing.T) {
	in := fixtureInput()
	if in.InitialCapital != 5000 {
		t.Fatalf("InitialCapital = %v, want 5000", in.InitialCapital)
	}

	score := Compute(in)

	wantParts := CategoryScores{
		Market:      75,
		Costs:       70,
		Competition: 75,
		Revenue:     52,
		Team:        65,
	}
	if score.Parts != wantParts {
		t.Errorf("parts = %+v, want %+v", score.Parts, wantParts)
	}
	// 75*.25 + 70*.15 + 75*.20 + 52*.25 + 65*.15 = 67
	if score.Final != 67 {
		t.Errorf("final = %d, want 67", score.Final)
	}
	if Verdict(score.Final) != VerdictMedium {
		t.Errorf("verdict = %s, want %s", Verdict(score.Final), VerdictMedium)
	}
	if score.Breakeven != "3 mo" {
		t.Errorf("breakeven = %q, want \"3 mo\"", score.Breakeven)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	in := fixtureInput()
	first := Compute(in)
	for i := 0; i < 10; i++ {
		if got := Compute(in); got != first {
			t.Fatalf("Compute not deterministic: %+v != %+v", got, first)
		}
	}
	if !reflect.DeepEqual(Recommendations(first.Parts), Recommendations(first.Parts)) {
		t.Error("Recommendations not stable")
	}
}

// TestComputeBoundsPathological checks that no rating/cash-flow combination
// in (or slightly outside) the input domain produces an out-of-range
// category score or a non-finite value.
func TestComputeBoundsPathological(t *testing.T) {
	ratings := []int{1, 3, 5}
	money := []float64{-1000, 0, 1, 5000, 1e9}

	for _, demand := range ratings {
		for _, funding := range ratings {
			for _, rev := range money {
				for _, cost := range money {
					for _, capital := range money {
						in := FeasibilityInput{
							MarketDemand:     demand,
							MarketReach:      demand,
							FundingAccess:    funding,
							Competition:      demand,
							Differentiation:  funding,
							RevenueStability: funding,
							FounderExp:       demand,
							OpsReady:         funding,
							MonthlyRevenue:   rev,
							MonthlyCost:      cost,
							InitialCapital:   capital,
						}
						score := Compute(in)
						for name, v := range map[string]int{
							"market":      score.Parts.Market,
							"costs":       score.Parts.Costs,
							"competition": score.Parts.Competition,
							"revenue":     score.Parts.Revenue,
							"team":        score.Parts.Team,
							"final":       score.Final,
						} {
							if v < 0 || v > 100 {
								t.Fatalf("%s score %d out of range for %+v", name, v, in)
							}
						}
						if score.Breakeven == "" {
							t.Fatalf("empty breakeven for %+v", in)
						}
					}
				}
			}
		}
	}
}

func TestVerdictBands(t *testing.T) {
	tests := []struct {
		final int
		want  string
	}{
		{100, VerdictHigh},
		{75, VerdictHigh},
		{74, VerdictMedium},
		{50, VerdictMedium},
		{49, VerdictLow},
		{0, VerdictLow},
	}
	for _, tt := range tests {
		if got := Verdict(tt.final); got != tt.want {
			t.Errorf("Verdict(%d) = %s, want %s", tt.final, got, tt.want)
		}
	}
}
