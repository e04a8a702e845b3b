// Package report defines the immutable report value produced per
// calculation, plus its structured (JSON) and tabular (CSV) serializations.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/VentureLens-Labs/VentureLens/internal/scoring"
)

// Meta identifies the business idea a report was computed for.
type Meta struct {
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Stage     int       `json:"stage"`
	Timestamp time.Time `json:"timestamp"`
}

// Report is the value produced by one scoring run. It is immutable once
// created; ownership transfers wholesale to whoever persists, exports or
// displays it.
type Report struct {
	Meta   Meta                     `json:"meta"`
	Inputs scoring.FeasibilityInput `json:"inputs"`
	Score  scoring.Score            `json:"score"`
}

// New assembles a report from an input snapshot and its score. An unnamed
// idea is reported as "Untitled".
func New(in scoring.FeasibilityInput, score scoring.Score) Report {
	name := in.BizName
	if name == "" {
		name = "Untitled"
	}
	return Report{
		Meta: Meta{
			Name:      name,
			Industry:  in.Industry,
			Stage:     in.Stage,
			Timestamp: in.Timestamp,
		},
		Inputs: in,
		Score:  score,
	}
}

// ToJSON renders the report as pretty-printed JSON. The encoding is
// lossless: FromJSON returns an identical value.
func (r Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FromJSON is the inverse of ToJSON.
func FromJSON(data []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return r, nil
}

// Summary is the one-line share text for a report.
func (r Report) Summary() string {
	return fmt.Sprintf("VentureLens Report — %s | Score: %d%% (%s) — Market: %d%% — Revenue: %d%%",
		r.Meta.Name, r.Score.Final, scoring.Verdict(r.Score.Final),
		r.Score.Parts.Market, r.Score.Parts.Revenue)
}

// ExportFilename names a downloaded report file, e.g.
// "Acme_venturelens_report.json". Ext is passed without the dot.
func (r Report) ExportFilename(ext string) string {
	name := r.Meta.Name
	if name == "" {
		name = "venture"
	}
	return fmt.Sprintf("%s_venturelens_report.%s", name, ext)
}

// BusinessModelFilename names the downloaded business model document.
func BusinessModelFilename(bizName string) string {
	if bizName == "" {
		bizName = "venture"
	}
	return bizName + "_business_model.html"
}
