// Package session keeps login sessions and each session's last computed
// report in Redis. The engine itself never reaches in here; handlers pass
// values across this boundary explicitly.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/VentureLens-Labs/VentureLens/internal/report"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(ctx context.Context, cfg Config) (*Manager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{client: client, ttl: ttl}, nil
}

// NewManagerWithClient wires an existing client, used by tests.
func NewManagerWithClient(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

func (m *Manager) Close() error {
	return m.client.Close()
}

func sessionKey(token string) string { return "session:" + token }

func lastReportKey(token string) string { return "session:" + token + ":lastReport" }

// Create opens a session for a user and returns the token that gates the
// calculator routes.
func (m *Manager) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := m.client.Set(ctx, sessionKey(token), username, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Username resolves a session token. An unknown or expired token returns
// ("", nil).
func (m *Manager) Username(ctx context.Context, token string) (string, error) {
	username, err := m.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return username, nil
}

// Delete ends a session and drops its cached report.
func (m *Manager) Delete(ctx context.Context, token string) error {
	return m.client.Del(ctx, sessionKey(token), lastReportKey(token)).Err()
}

// SetLastReport caches the most recently computed report for a session.
// Export and share endpoints read it back; it expires with the session.
func (m *Manager) SetLastReport(ctx context.Context, token string, r report.Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return m.client.Set(ctx, lastReportKey(token), body, m.ttl).Err()
}

// LastReport returns the cached report for a session, or (nil, nil) when
// none has been computed yet.
func (m *Manager) LastReport(ctx context.Context, token string) (*report.Report, error) {
	body, err := m.client.Get(ctx, lastReportKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup last report: %w", err)
	}
	r, err := report.FromJSON(body)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
