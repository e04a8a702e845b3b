package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VentureLens-Labs/VentureLens/internal/store"
)

func TestFeedbackFlow(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	for _, body := range []string{
		`{"name":"Maya","rating":5,"comment":"Love the breakeven view"}`,
		`{"rating":4}`,
	} {
		req := httptest.NewRequest("POST", "/api/v1/feedback", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, 201, w.Code, w.Body.String())
	}

	req := httptest.NewRequest("GET", "/api/v1/feedback/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var summary store.FeedbackSummary
	require.NoError(t, decodeBody(w, &summary))
	assert.Equal(t, 2, summary.Count)
	// avg(5,4) = 4.5, rounded up to the nearest star
	assert.Equal(t, 5, summary.AvgRating)
}

func TestFeedbackEmptySummary(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/feedback/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var summary store.FeedbackSummary
	require.NoError(t, decodeBody(w, &summary))
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0, summary.AvgRating)
}

func TestFeedbackRejectsBadRating(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{}`} {
		req := httptest.NewRequest("POST", "/api/v1/feedback", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, "body: %s", body)
	}
}
