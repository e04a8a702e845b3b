package scoring

// Advisory texts for categories scoring under 50. Check order is fixed
// (market, costs, competition, revenue, team) and output order matches.
const (
	recMarket      = "Investigate your target market more — validate demand with surveys or small pilots. Consider starting with a niche segment."
	recCosts       = "Reduce upfront costs or secure better funding — explore grants, partnerships, or phased MVP that requires less capital."
	recCompetition = "Differentiate your offering. Clarify a unique value proposition or add services customers can't get elsewhere."
	recRevenue     = "Improve margins: raise prices where justified, reduce operating costs, or pursue higher-value customers."
	recTeam        = "Strengthen the team: co-founder with domain experience or hire part-time experts for key skills."
	recAllStrong   = "Great work — core areas look strong. Consider focusing on scale strategies, customer retention, and operational automation."
)

const categoryRecThreshold = 50

// Recommendations returns the advisory sentences for weak categories, or a
// single generic message when nothing triggers.
func Recommendations(parts CategoryScores) []string {
	var rec []string
	if parts.Market < categoryRecThreshold {
		rec = append(rec, recMarket)
	}
	if parts.Costs < categoryRecThreshold {
		rec = append(rec, recCosts)
	}
	if parts.Competition < categoryRecThreshold {
		rec = append(rec, recCompetition)
	}
	if parts.Revenue < categoryRecThreshold {
		rec = append(rec, recRevenue)
	}
	if parts.Team < categoryRecThreshold {
		rec = append(rec, recTeam)
	}
	if len(rec) == 0 {
		rec = append(rec, recAllStrong)
	}
	return rec
}

// Investor readiness advisories.
const (
	recInvestorMarket  = "Strengthen market validation and show clear demand."
	recInvestorRevenue = "Develop a clearer path to profitability."
	recInvestorTeam    = "Strengthen the team with experienced advisors or members."
	recInvestorPhased  = "Consider a phased rollout to reduce initial capital needs."
)

const (
	investorRecThreshold = 60
	phasedRolloutCapital = 50000
)

// Readiness is the investor readiness sub-score with its own advice. It is
// independent of the category recommendations; both sets may fire and they
// are never merged.
type Readiness struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// InvestorReadiness computes the secondary weighted blend over the same
// category scores, plus its threshold-driven advice.
func InvestorReadiness(in FeasibilityInput, parts CategoryScores) Readiness {
	r := Readiness{Score: InvestorWeights().Blend(parts)}

	if parts.Market < investorRecThreshold {
		r.Recommendations = append(r.Recommendations, recInvestorMarket)
	}
	if parts.Revenue < investorRecThreshold {
		r.Recommendations = append(r.Recommendations, recInvestorRevenue)
	}
	if parts.Team < investorRecThreshold {
		r.Recommendations = append(r.Recommendations, recInvestorTeam)
	}
	if in.InitialCapital > phasedRolloutCapital {
		r.Recommendations = append(r.Recommendations, recInvestorPhased)
	}
	return r
}
