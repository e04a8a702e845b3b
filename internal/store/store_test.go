package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/VentureLens-Labs/VentureLens/internal/report"
	"github.com/VentureLens-Labs/VentureLens/internal/scoring"
)

func TestUserPasswordHashNotSerialized(t *testing.T) {
	u := User{Username: "maya", PasswordHash: "$2a$10$secret"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) == "" || jsonHas(data, "password") {
		t.Errorf("password hash leaked into JSON: %s", data)
	}
}

func TestSavedReportCarriesWholeReport(t *testing.T) {
	in := scoring.FeasibilityInput{
		BizName:        "Acme",
		MonthlyRevenue: 1000,
		MonthlyCost:    400,
		Timestamp:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	saved := SavedReport{
		Username: "maya",
		Report:   report.New(in, scoring.Compute(in)),
	}
	data, err := json.Marshal(saved)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back SavedReport
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Report.Meta.Name != "Acme" || back.Report.Score.Final != saved.Report.Score.Final {
		t.Errorf("report not preserved: %+v", back.Report)
	}
}

func jsonHas(data []byte, substr string) bool {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	for k := range m {
		if k == substr {
			return true
		}
	}
	return false
}
