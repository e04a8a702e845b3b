package events

import "time"

// ReportComputedEvent is published after every feasibility calculation.
// The report itself stays with the caller; the event carries the headline
// numbers for downstream listeners (dashboards, analytics).
type ReportComputedEvent struct {
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Final     int       `json:"final"`
	Verdict   string    `json:"verdict"`
	Breakeven string    `json:"breakeven"`
	Timestamp time.Time `json:"timestamp"`
}

type ReportSavedEvent struct {
	ReportID string `json:"report_id"`
	Username string `json:"username"`
	Final    int    `json:"final"`
}

type EnvScoreComputedEvent struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
}

type FeedbackReceivedEvent struct {
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

type UserSignedUpEvent struct {
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}
