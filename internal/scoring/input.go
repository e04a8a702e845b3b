package scoring

import "time"

// FeasibilityInput is one snapshot of user answers. Rating fields are
// integers in [1,5]; monetary fields default to 0. Coercion of absent or
// non-numeric form values happens at the collection boundary, not here.
type FeasibilityInput struct {
	BizName  string `json:"bizName"`
	Industry string `json:"industry"`
	Stage    int    `json:"stage"`

	CostMarketing float64 `json:"costMarketing"`
	CostSalaries  float64 `json:"costSalaries"`
	CostEquipment float64 `json:"costEquipment"`
	CostOther     float64 `json:"costOther"`

	MarketDemand    int `json:"marketDemand"`
	MarketReach     int `json:"marketReach"`
	FundingAccess   int `json:"fundingAccess"`
	Competition     int `json:"competition"`
	Differentiation int `json:"differentiation"`

	MonthlyRevenue float64 `json:"monthlyRevenue"`
	MonthlyCost    float64 `json:"monthlyCost"`

	RevenueStability int `json:"revenueStability"`
	FounderExp       int `json:"founderExp"`
	OpsReady         int `json:"opsReady"`

	Timestamp time.Time `json:"timestamp"`

	// InitialCapital is derived from the four cost figures once at
	// collection time and treated as part of the input afterwards.
	InitialCapital float64 `json:"initialCapital"`
}

// SumCosts returns the initial capital implied by the itemized cost figures.
// Callers set InitialCapital from this when building the input snapshot.
func (in FeasibilityInput) SumCosts() float64 {
	return in.CostMarketing + in.CostSalaries + in.CostEquipment + in.CostOther
}

// CategoryScores are the five [0,100] sub-scores. Each is rounded on its own
// before aggregation; the final score is a weighted sum of these integers.
type CategoryScores struct {
	Market      int `json:"marketScore"`
	Costs       int `json:"costsScore"`
	Competition int `json:"competitionScore"`
	Revenue     int `json:"revenueScore"`
	Team        int `json:"teamScore"`
}

// Score is the complete scoring output for one input snapshot.
type Score struct {
	Final     int            `json:"final"`
	Parts     CategoryScores `json:"parts"`
	Breakeven string         `json:"breakeven"`
}
