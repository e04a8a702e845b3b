// Package narrative turns an input snapshot into the business model
// narrative: an ordered list of section records, rendered to HTML by a
// separate presentation step so the content rules stay format-agnostic.
package narrative

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/VentureLens-Labs/VentureLens/internal/scoring"
)

// Section is one headed block of the narrative. Items, when present, render
// as a list under the body text.
type Section struct {
	Title string
	Body  string
	Items []string
}

// Document is the structured narrative for one business idea.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a monetary amount with locale grouping
// ("5,000"). A nil value renders as the placeholder dash, never "0" or
// "NaN".
func FormatCurrency(v *float64) string {
	if v == nil {
		return "—"
	}
	return currencyPrinter.Sprint(number.Decimal(*v))
}

// BusinessModel builds the five-section narrative from an input snapshot.
// Pure formatting: the only branching is presence defaults for name and
// industry.
func BusinessModel(in scoring.FeasibilityInput) Document {
	name := in.BizName
	if name == "" {
		name = "Untitled"
	}
	industry := in.Industry
	if industry == "" {
		industry = "Not specified"
	}

	return Document{
		Title:    name + " - Business Model",
		Subtitle: "Industry: " + industry,
		Sections: []Section{
			{
				Title: "Value Proposition",
				Body: fmt.Sprintf("What unique value do you provide? Based on your differentiation score of %d/5, your value proposition needs to be clearly defined.",
					in.Differentiation),
			},
			{
				Title: "Customer Segments",
				Body: fmt.Sprintf("Who are your target customers? Your market reach score of %d/5 suggests you have a plan to reach them.",
					in.MarketReach),
			},
			{
				Title: "Revenue Streams",
				Body: fmt.Sprintf("How will you make money? You estimate a monthly revenue of %s with a monthly cost of %s.",
					FormatCurrency(&in.MonthlyRevenue), FormatCurrency(&in.MonthlyCost)),
			},
			{
				Title: "Cost Structure",
				Body: fmt.Sprintf("What are your major costs? Your initial capital is estimated at %s, broken down into:",
					FormatCurrency(&in.InitialCapital)),
				Items: []string{
					"Marketing & Sales: " + FormatCurrency(&in.CostMarketing),
					"Salaries & Fees: " + FormatCurrency(&in.CostSalaries),
					"Equipment & Technology: " + FormatCurrency(&in.CostEquipment),
					"Other: " + FormatCurrency(&in.CostOther),
				},
			},
			{
				Title: "Key Activities",
				Body: fmt.Sprintf("What key activities do you need to perform? Your operational readiness score of %d/5 indicates your preparedness.",
					in.OpsReady),
			},
		},
	}
}
