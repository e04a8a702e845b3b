package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/VentureLens-Labs/VentureLens/internal/report"
)

// ErrDuplicateUsername is returned by CreateUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// User is one account in the credential store. Only the bcrypt hash is
// persisted.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SavedReport is a report a user saved to their dashboard. The report value
// is stored wholesale; the engine never mutates it after handover.
type SavedReport struct {
	ID        uuid.UUID     `json:"id"`
	Username  string        `json:"username"`
	Report    report.Report `json:"report"`
	CreatedAt time.Time     `json:"created_at"`
}

// Feedback is one user feedback entry.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackSummary aggregates all feedback entries. AvgRating is rounded to
// the nearest whole star.
type FeedbackSummary struct {
	Count     int `json:"count"`
	AvgRating int `json:"avg_rating"`
}

// Stats are the admin-facing totals.
type Stats struct {
	TotalUsers    int `json:"total_users"`
	TotalReports  int `json:"total_reports"`
	TotalFeedback int `json:"total_feedback"`
}

type Store interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	SaveReport(ctx context.Context, r *SavedReport) error
	ListReports(ctx context.Context, username string, limit int) ([]*SavedReport, error)
	GetReport(ctx context.Context, id uuid.UUID) (*SavedReport, error)

	CreateFeedback(ctx context.Context, f *Feedback) error
	GetFeedbackSummary(ctx context.Context) (*FeedbackSummary, error)

	GetStats(ctx context.Context) (*Stats, error)

	Close() error
}
