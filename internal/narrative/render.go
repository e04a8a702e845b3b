package narrative

import (
	"fmt"
	"strings"
	"time"

	"github.com/VentureLens-Labs/VentureLens/internal/report"
	"github.com/VentureLens-Labs/VentureLens/internal/scoring"
)

// RenderHTML renders a narrative document as an HTML fragment with numbered
// section headings. Embedded field values are emitted as-is; callers
// exposing this to untrusted input must escape independently.
func RenderHTML(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>%s</h2>\n", doc.Title)
	fmt.Fprintf(&b, "<h4>%s</h4>\n", doc.Subtitle)

	for i, s := range doc.Sections {
		fmt.Fprintf(&b, "\n<h3>%d. %s</h3>\n", i+1, s.Title)
		fmt.Fprintf(&b, "<p>%s</p>\n", s.Body)
		if len(s.Items) > 0 {
			b.WriteString("<ul>\n")
			for _, item := range s.Items {
				fmt.Fprintf(&b, "  <li>%s</li>\n", item)
			}
			b.WriteString("</ul>\n")
		}
	}
	return b.String()
}

// RenderReportHTML assembles the printable assessment view for a report:
// meta, score with verdict, category breakdown and recommendations.
func RenderReportHTML(r report.Report) string {
	var b strings.Builder

	b.WriteString("<html><head><title>VentureLens - Report</title>\n")
	b.WriteString("<style>body{font-family:Arial,Helvetica,sans-serif;color:#111;padding:20px} h1{color:#0b63b4}</style>\n")
	b.WriteString("</head><body>\n")
	b.WriteString("<h1>VentureLens — Assessment</h1>\n")
	fmt.Fprintf(&b, "<p><strong>Idea:</strong> %s</p>\n", orDash(r.Meta.Name))
	fmt.Fprintf(&b, "<p><strong>Industry:</strong> %s</p>\n", orDash(r.Meta.Industry))
	fmt.Fprintf(&b, "<p><strong>Score:</strong> %d%% — %s</p>\n", r.Score.Final, scoring.Verdict(r.Score.Final))

	b.WriteString("<h3>Category breakdown</h3>\n<ul>\n")
	fmt.Fprintf(&b, "  <li>Market: %d%%</li>\n", r.Score.Parts.Market)
	fmt.Fprintf(&b, "  <li>Costs & Funding: %d%%</li>\n", r.Score.Parts.Costs)
	fmt.Fprintf(&b, "  <li>Competition & Differentiation: %d%%</li>\n", r.Score.Parts.Competition)
	fmt.Fprintf(&b, "  <li>Revenue & Profitability: %d%%</li>\n", r.Score.Parts.Revenue)
	fmt.Fprintf(&b, "  <li>Team & Ops: %d%%</li>\n", r.Score.Parts.Team)
	b.WriteString("</ul>\n")

	b.WriteString("<h3>Recommendations</h3>\n<ul>\n")
	for _, rec := range scoring.Recommendations(r.Score.Parts) {
		fmt.Fprintf(&b, "  <li>%s</li>\n", rec)
	}
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<p><em>Generated on %s</em></p>\n", r.Meta.Timestamp.Format(time.RFC1123))
	b.WriteString("<hr>\n<p>Generated by VentureLens</p>\n</body></html>\n")
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
