package scoring

// EnvironmentInput holds the five sustainability ratings, each in [1,5].
type EnvironmentInput struct {
	EnergyConsumption int `json:"energyConsumption"`
	WasteGeneration   int `json:"wasteGeneration"`
	WaterUsage        int `json:"waterUsage"`
	SupplyChain       int `json:"supplyChain"`
	ProductLifecycle  int `json:"productLifecycle"`
}

// Environment verdict bands.
const (
	EnvVerdictExcellent = "Excellent"
	EnvVerdictGood      = "Good"
	EnvVerdictNeedsWork = "Needs Improvement"
)

// Environment recommendation blocks, keyed by the same 50/80 thresholds as
// the verdict. Deliberately coarser than the feasibility engine: no
// per-dimension advice.
var (
	envRecsLow = []string{
		"Focus on reducing energy consumption by using energy-efficient appliances and renewable energy sources.",
		"Implement a comprehensive waste reduction and recycling program.",
	}
	envRecsMid = []string{
		"Optimize your supply chain for sustainability by working with local and eco-friendly suppliers.",
		"Design your products for a circular economy, making them easy to reuse, repair, or recycle.",
	}
	envRecsHigh = []string{
		"Your business is already on a great path to sustainability. Look for innovative ways to become a leader in your industry.",
	}
)

// EnvironmentResult is the complete environment scoring output.
type EnvironmentResult struct {
	Score           int      `json:"score"`
	Verdict         string   `json:"verdict"`
	Recommendations []string `json:"recommendations"`
}

// EnvironmentScore rescales the straight mean of the five ratings to [0,100].
func EnvironmentScore(in EnvironmentInput) int {
	sum := in.EnergyConsumption + in.WasteGeneration + in.WaterUsage + in.SupplyChain + in.ProductLifecycle
	return round(float64(sum) / 25 * 100)
}

// EnvVerdict maps an environment score onto its band.
func EnvVerdict(score int) string {
	switch {
	case score >= 80:
		return EnvVerdictExcellent
	case score >= 50:
		return EnvVerdictGood
	default:
		return EnvVerdictNeedsWork
	}
}

// EnvRecommendations returns the fixed advice block for a score.
func EnvRecommendations(score int) []string {
	switch {
	case score < 50:
		return append([]string(nil), envRecsLow...)
	case score < 80:
		return append([]string(nil), envRecsMid...)
	default:
		return append([]string(nil), envRecsHigh...)
	}
}

// ComputeEnvironment runs the full environment scoring pass.
func ComputeEnvironment(in EnvironmentInput) EnvironmentResult {
	score := EnvironmentScore(in)
	return EnvironmentResult{
		Score:           score,
		Verdict:         EnvVerdict(score),
		Recommendations: EnvRecommendations(score),
	}
}
