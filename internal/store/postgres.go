package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VentureLens-Labs/VentureLens/internal/report"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS vl_users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS vl_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL,
			report JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS vl_reports_username_idx ON vl_reports (username, created_at DESC);
		CREATE TABLE IF NOT EXISTS vl_feedback (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL DEFAULT '',
			rating INT NOT NULL,
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const uniqueViolation = "23505"

func (s *PostgresStore) CreateUser(ctx context.Context, user *User) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO vl_users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		user.Username, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateUsername
	}
	return err
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM vl_users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, r *SavedReport) error {
	body, err := json.Marshal(r.Report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO vl_reports (username, report)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		r.Username, body,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *PostgresStore) ListReports(ctx context.Context, username string, limit int) ([]*SavedReport, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, username, report, created_at
		FROM vl_reports WHERE username = $1
		ORDER BY created_at DESC
		LIMIT $2`, username, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*SavedReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *PostgresStore) GetReport(ctx context.Context, id uuid.UUID) (*SavedReport, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, username, report, created_at
		FROM vl_reports WHERE id = $1`, id)
	r, err := scanReport(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanReport(row pgx.Row) (*SavedReport, error) {
	r := &SavedReport{}
	var body []byte
	if err := row.Scan(&r.ID, &r.Username, &body, &r.CreatedAt); err != nil {
		return nil, err
	}
	var rep report.Report
	if err := json.Unmarshal(body, &rep); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", r.ID, err)
	}
	r.Report = rep
	return r, nil
}

func (s *PostgresStore) CreateFeedback(ctx context.Context, f *Feedback) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO vl_feedback (name, rating, comment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		f.Name, f.Rating, f.Comment,
	).Scan(&f.ID, &f.CreatedAt)
}

func (s *PostgresStore) GetFeedbackSummary(ctx context.Context) (*FeedbackSummary, error) {
	var count int
	var avg *float64
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), AVG(rating)::float8 FROM vl_feedback`,
	).Scan(&count, &avg)
	if err != nil {
		return nil, err
	}
	summary := &FeedbackSummary{Count: count}
	if avg != nil {
		summary.AvgRating = int(math.Round(*avg))
	}
	return summary, nil
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM vl_users),
			(SELECT COUNT(*) FROM vl_reports),
			(SELECT COUNT(*) FROM vl_feedback)`,
	).Scan(&stats.TotalUsers, &stats.TotalReports, &stats.TotalFeedback)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
