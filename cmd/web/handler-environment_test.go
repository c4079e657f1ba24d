package main

import (
	"net/http"
	"slices"
	"testing"

	"github.com/ahertta/readyday/internal/advisor"
	"github.com/ahertta/readyday/internal/e2etest"
	"github.com/ahertta/readyday/internal/testhelpers"
)

func Test_application_environment(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	t.Run("no impact recorded yet", func(t *testing.T) {
		status, err := client.GetJSON(ctx, "/api/environment-impact", nil)
		if err != nil {
			t.Fatalf("GET /api/environment-impact: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want 404", status)
		}
	})

	t.Run("records environment and derives the impact", func(t *testing.T) {
		request := map[string]any{
			"aqi":                 180,
			"temperature_celsius": 22,
			"lockdown_status":     "none",
		}
		var impact advisor.Impact
		status, err := client.PostJSON(ctx, "/api/environment-input", request, &impact)
		if err != nil {
			t.Fatalf("POST /api/environment-input: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if impact.Severity != advisor.SeverityHigh {
			t.Errorf("severity = %s, want high", impact.Severity)
		}
		if impact.Constraints.AllowOutdoor {
			t.Error("outdoor should be disallowed at AQI 180")
		}
		if !slices.Contains(impact.Constraints.BlockedWorkoutTypes, "running") {
			t.Errorf("running not blocked: %v", impact.Constraints.BlockedWorkoutTypes)
		}
	})

	t.Run("latest impact matches the recorded one", func(t *testing.T) {
		var impact advisor.Impact
		status, err := client.GetJSON(ctx, "/api/environment-impact", &impact)
		if err != nil {
			t.Fatalf("GET /api/environment-impact: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if impact.Severity != advisor.SeverityHigh {
			t.Errorf("severity = %s, want high", impact.Severity)
		}
	})

	t.Run("rejects an unknown lockdown status", func(t *testing.T) {
		request := map[string]any{
			"aqi":                 50,
			"temperature_celsius": 20,
			"lockdown_status":     "curfew",
		}
		status, err := client.PostJSON(ctx, "/api/environment-input", request, nil)
		if err != nil {
			t.Fatalf("POST /api/environment-input: %v", err)
		}
		if status != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", status)
		}
	})

	t.Run("history keeps inputs alongside derived impact", func(t *testing.T) {
		var records []advisor.EnvironmentRecord
		status, err := client.GetJSON(ctx, "/api/environment-history", &records)
		if err != nil {
			t.Fatalf("GET /api/environment-history: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if len(records) != 1 {
			t.Fatalf("records = %d, want 1", len(records))
		}
		if records[0].Input.AQI != 180 {
			t.Errorf("stored AQI = %d, want 180", records[0].Input.AQI)
		}
		if records[0].Severity != advisor.SeverityHigh {
			t.Errorf("stored severity = %s, want high", records[0].Severity)
		}
	})
}
