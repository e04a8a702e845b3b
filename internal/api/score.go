package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/VentureLens-Labs/VentureLens/internal/events"
	"github.com/VentureLens-Labs/VentureLens/internal/metrics"
	"github.com/VentureLens-Labs/VentureLens/internal/narrative"
	"github.com/VentureLens-Labs/VentureLens/internal/report"
	"github.com/VentureLens-Labs/VentureLens/internal/scoring"
	"github.com/VentureLens-Labs/VentureLens/internal/session"
)

// ScoreHandler runs the calculators. It never touches the database; the
// only state it keeps is the per-session last report in Redis.
type ScoreHandler struct {
	sessions *session.Manager
	events   events.Client
	logger   *slog.Logger
}

func NewScoreHandler(sessions *session.Manager, ev events.Client, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{sessions: sessions, events: ev, logger: logger}
}

type feasibilityResponse struct {
	Report          report.Report     `json:"report"`
	Verdict         string            `json:"verdict"`
	Recommendations []string          `json:"recommendations"`
	Investor        scoring.Readiness `json:"investorReadiness"`
}

func (h *ScoreHandler) Feasibility(w http.ResponseWriter, r *http.Request) {
	var in scoring.FeasibilityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateRatings(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now().UTC()
	}
	// The itemized costs are authoritative; any client-supplied capital
	// figure is recomputed here.
	in.InitialCapital = in.SumCosts()

	score := scoring.Compute(in)
	rep := report.New(in, score)
	verdict := scoring.Verdict(score.Final)

	if err := h.sessions.SetLastReport(r.Context(), tokenFrom(r.Context()), rep); err != nil {
		h.logger.Warn("failed to cache last report", "error", err)
	}

	metrics.ReportsComputed.WithLabelValues(verdict).Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectReportComputed, events.ReportComputedEvent{
			Name:      rep.Meta.Name,
			Industry:  rep.Meta.Industry,
			Final:     score.Final,
			Verdict:   verdict,
			Breakeven: score.Breakeven,
			Timestamp: rep.Meta.Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, feasibilityResponse{
		Report:          rep,
		Verdict:         verdict,
		Recommendations: scoring.Recommendations(score.Parts),
		Investor:        scoring.InvestorReadiness(in, score.Parts),
	})
}

func (h *ScoreHandler) Environment(w http.ResponseWriter, r *http.Request) {
	var in scoring.EnvironmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	for _, v := range []int{in.EnergyConsumption, in.WasteGeneration, in.WaterUsage, in.SupplyChain, in.ProductLifecycle} {
		if v < 1 || v > 5 {
			writeError(w, http.StatusBadRequest, "all ratings must be between 1 and 5")
			return
		}
	}

	result := scoring.ComputeEnvironment(in)

	metrics.EnvScoresComputed.WithLabelValues(result.Verdict).Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectEnvScoreComputed, events.EnvScoreComputedEvent{
			Score:   result.Score,
			Verdict: result.Verdict,
		})
	}

	writeJSON(w, http.StatusOK, result)
}

// BusinessModel renders the generated business model document as a
// downloadable HTML file.
func (h *ScoreHandler) BusinessModel(w http.ResponseWriter, r *http.Request) {
	var in scoring.FeasibilityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	in.InitialCapital = in.SumCosts()

	doc := narrative.BusinessModel(in)
	html := narrative.RenderHTML(doc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.BusinessModelFilename(in.BizName)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// validateRatings rejects rating fields outside [1,5]. Monetary fields are
// unconstrained; the engine clamps them where needed.
func validateRatings(in scoring.FeasibilityInput) error {
	ratings := map[string]int{
		"marketDemand":     in.MarketDemand,
		"marketReach":      in.MarketReach,
		"fundingAccess":    in.FundingAccess,
		"competition":      in.Competition,
		"differentiation":  in.Differentiation,
		"revenueStability": in.RevenueStability,
		"founderExp":       in.FounderExp,
		"opsReady":         in.OpsReady,
	}
	for name, v := range ratings {
		if v < 1 || v > 5 {
			return fmt.Errorf("%s must be between 1 and 5", name)
		}
	}
	return nil
}
