package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/VentureLens-Labs/VentureLens/internal/report"
	"github.com/VentureLens-Labs/VentureLens/internal/scoring"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewManagerWithClient(client, time.Hour)
}

func TestSessionLifecycle(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	token, err := m.Create(ctx, "maya")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	username, err := m.Username(ctx, token)
	if err != nil || username != "maya" {
		t.Errorf("Username = %q, %v", username, err)
	}

	if err := m.Delete(ctx, token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	username, err = m.Username(ctx, token)
	if err != nil {
		t.Fatalf("lookup after delete: %v", err)
	}
	if username != "" {
		t.Errorf("expected empty username after delete, got %q", username)
	}
}

func TestUnknownToken(t *testing.T) {
	m := testManager(t)
	username, err := m.Username(context.Background(), "nope")
	if err != nil || username != "" {
		t.Errorf("unknown token: %q, %v", username, err)
	}
}

func TestLastReportRoundTrip(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	token, err := m.Create(ctx, "maya")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// No report computed yet.
	got, err := m.LastReport(ctx, token)
	if err != nil {
		t.Fatalf("last report: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil before any calculation")
	}

	in := scoring.FeasibilityInput{
		BizName:        "Acme",
		MonthlyRevenue: 1000,
		MonthlyCost:    400,
		Timestamp:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	r := report.New(in, scoring.Compute(in))
	if err := m.SetLastReport(ctx, token, r); err != nil {
		t.Fatalf("set last report: %v", err)
	}

	got, err = m.LastReport(ctx, token)
	if err != nil || got == nil {
		t.Fatalf("last report after set: %v %v", got, err)
	}
	if got.Meta.Name != "Acme" || got.Score.Final != r.Score.Final {
		t.Errorf("cached report differs: %+v", got)
	}
}
