package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/VentureLens-Labs/VentureLens/internal/events"
	"github.com/VentureLens-Labs/VentureLens/internal/metrics"
	"github.com/VentureLens-Labs/VentureLens/internal/narrative"
	"github.com/VentureLens-Labs/VentureLens/internal/report"
	"github.com/VentureLens-Labs/VentureLens/internal/session"
	"github.com/VentureLens-Labs/VentureLens/internal/store"
)

type ReportsHandler struct {
	store    store.Store
	sessions *session.Manager
	events   events.Client
}

func NewReportsHandler(s store.Store, sessions *session.Manager, ev events.Client) *ReportsHandler {
	return &ReportsHandler{store: s, sessions: sessions, events: ev}
}

// Save persists the session's last computed report to the user's dashboard.
func (h *ReportsHandler) Save(w http.ResponseWriter, r *http.Request) {
	rep, err := h.sessions.LastReport(r.Context(), tokenFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load last report")
		return
	}
	if rep == nil {
		writeError(w, http.StatusNotFound, "no report calculated yet")
		return
	}

	saved := &store.SavedReport{
		ID:        uuid.New(),
		Username:  usernameFrom(r.Context()),
		Report:    *rep,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.SaveReport(r.Context(), saved); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save report")
		return
	}

	metrics.ReportsSaved.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectReportSaved(saved.ID.String()), events.ReportSavedEvent{
			ReportID: saved.ID.String(),
			Username: saved.Username,
			Final:    saved.Report.Score.Final,
		})
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	reports, err := h.store.ListReports(r.Context(), usernameFrom(r.Context()), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	if reports == nil {
		reports = []*store.SavedReport{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports, "count": len(reports)})
}

func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	saved := h.ownedReport(w, r)
	if saved == nil {
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *ReportsHandler) Export(w http.ResponseWriter, r *http.Request) {
	saved := h.ownedReport(w, r)
	if saved == nil {
		return
	}
	h.export(w, r.URL.Query().Get("format"), saved.Report)
}

// ExportLast downloads the session's last computed report without requiring
// it to be saved first.
func (h *ReportsHandler) ExportLast(w http.ResponseWriter, r *http.Request) {
	rep := h.lastReport(w, r)
	if rep == nil {
		return
	}
	h.export(w, r.URL.Query().Get("format"), *rep)
}

// ShareLast returns the one-line share text for the last computed report.
func (h *ReportsHandler) ShareLast(w http.ResponseWriter, r *http.Request) {
	rep := h.lastReport(w, r)
	if rep == nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rep.Summary()))
}

// PrintLast renders the last computed report as a print-friendly HTML page.
func (h *ReportsHandler) PrintLast(w http.ResponseWriter, r *http.Request) {
	rep := h.lastReport(w, r)
	if rep == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(narrative.RenderReportHTML(*rep)))
}

// ownedReport loads the report named in the URL and enforces ownership.
// Reports belonging to other users 404 rather than 403; IDs are not probeable.
func (h *ReportsHandler) ownedReport(w http.ResponseWriter, r *http.Request) *store.SavedReport {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report ID")
		return nil
	}
	saved, err := h.store.GetReport(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load report")
		return nil
	}
	if saved == nil || saved.Username != usernameFrom(r.Context()) {
		writeError(w, http.StatusNotFound, "report not found")
		return nil
	}
	return saved
}

func (h *ReportsHandler) lastReport(w http.ResponseWriter, r *http.Request) *report.Report {
	rep, err := h.sessions.LastReport(r.Context(), tokenFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load last report")
		return nil
	}
	if rep == nil {
		writeError(w, http.StatusNotFound, "no report calculated yet")
		return nil
	}
	return rep
}

func (h *ReportsHandler) export(w http.ResponseWriter, format string, rep report.Report) {
	if format == "" {
		format = "json"
	}
	var (
		body        []byte
		contentType string
	)
	switch format {
	case "json":
		b, err := rep.ToJSON()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to encode report")
			return
		}
		body, contentType = b, "application/json"
	case "csv":
		body, contentType = []byte(rep.ToCSV()), "text/csv; charset=utf-8"
	default:
		writeError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	metrics.ReportExports.WithLabelValues(format).Inc()
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.ExportFilename(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
