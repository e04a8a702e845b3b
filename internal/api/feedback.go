package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/VentureLens-Labs/VentureLens/internal/events"
	"github.com/VentureLens-Labs/VentureLens/internal/metrics"
	"github.com/VentureLens-Labs/VentureLens/internal/store"
)

type FeedbackHandler struct {
	store  store.Store
	events events.Client
}

func NewFeedbackHandler(s store.Store, ev events.Client) *FeedbackHandler {
	return &FeedbackHandler{store: s, events: ev}
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	f := &store.Feedback{
		ID:        uuid.New(),
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateFeedback(r.Context(), f); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save feedback")
		return
	}

	metrics.FeedbackReceived.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectFeedbackReceived, events.FeedbackReceivedEvent{
			Rating:    f.Rating,
			Timestamp: f.CreatedAt,
		})
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "thanks"})
}

func (h *FeedbackHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.GetFeedbackSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load feedback summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
