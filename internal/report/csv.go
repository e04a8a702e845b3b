package report

import (
	"strconv"
	"strings"
	"time"
)

// CSV section headers. Consumers parse by section, not by column count.
const (
	csvSectionMeta   = "---REPORT METADATA---"
	csvSectionInputs = "---INPUTS---"
	csvSectionScores = "---SCORES---"
)

// ToCSV renders the report as a flat three-section key/value table. Every
// cell is quoted and internal quotes are doubled. Numbers are raw, with no
// locale grouping. The export is one-way: nested structure is flattened and
// not meant to round-trip.
func (r Report) ToCSV() string {
	var rows [][]string

	rows = append(rows, []string{csvSectionMeta})
	rows = append(rows,
		[]string{"name", r.Meta.Name},
		[]string{"industry", r.Meta.Industry},
		[]string{"stage", strconv.Itoa(r.Meta.Stage)},
		[]string{"timestamp", r.Meta.Timestamp.Format(time.RFC3339)},
	)
	rows = append(rows, nil)

	in := r.Inputs
	rows = append(rows, []string{csvSectionInputs})
	rows = append(rows,
		[]string{"bizName", in.BizName},
		[]string{"industry", in.Industry},
		[]string{"stage", strconv.Itoa(in.Stage)},
		[]string{"costMarketing", money(in.CostMarketing)},
		[]string{"costSalaries", money(in.CostSalaries)},
		[]string{"costEquipment", money(in.CostEquipment)},
		[]string{"costOther", money(in.CostOther)},
		[]string{"marketDemand", strconv.Itoa(in.MarketDemand)},
		[]string{"marketReach", strconv.Itoa(in.MarketReach)},
		[]string{"fundingAccess", strconv.Itoa(in.FundingAccess)},
		[]string{"competition", strconv.Itoa(in.Competition)},
		[]string{"differentiation", strconv.Itoa(in.Differentiation)},
		[]string{"monthlyRevenue", money(in.MonthlyRevenue)},
		[]string{"monthlyCost", money(in.MonthlyCost)},
		[]string{"revenueStability", strconv.Itoa(in.RevenueStability)},
		[]string{"founderExp", strconv.Itoa(in.FounderExp)},
		[]string{"opsReady", strconv.Itoa(in.OpsReady)},
		[]string{"timestamp", in.Timestamp.Format(time.RFC3339)},
		[]string{"initialCapital", money(in.InitialCapital)},
	)
	rows = append(rows, nil)

	rows = append(rows, []string{csvSectionScores})
	rows = append(rows,
		[]string{"final", strconv.Itoa(r.Score.Final)},
		[]string{"marketScore", strconv.Itoa(r.Score.Parts.Market)},
		[]string{"costsScore", strconv.Itoa(r.Score.Parts.Costs)},
		[]string{"competitionScore", strconv.Itoa(r.Score.Parts.Competition)},
		[]string{"revenueScore", strconv.Itoa(r.Score.Parts.Revenue)},
		[]string{"teamScore", strconv.Itoa(r.Score.Parts.Team)},
		[]string{"breakeven", r.Score.Breakeven},
	)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = quoteCell(c)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quoteCell always quotes, doubling embedded quotes. encoding/csv only
// quotes when it has to, which would break the fixed export shape.
func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
