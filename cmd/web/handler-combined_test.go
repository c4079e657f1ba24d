package main

import (
	"net/http"
	"testing"

	"github.com/ahertta/readyday/internal/advisor"
	"github.com/ahertta/readyday/internal/e2etest"
	"github.com/ahertta/readyday/internal/testhelpers"
)

func Test_application_combinedReadiness(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	request := map[string]any{
		"sleep_hours":         8.5,
		"stress_level":        2,
		"fatigue_level":       2,
		"muscle_soreness":     2,
		"available_time":      60,
		"aqi":                 250,
		"temperature_celsius": 22,
		"lockdown_status":     "none",
	}
	var combined advisor.CombinedResult
	status, err := client.PostJSON(ctx, "/api/combined-readiness", request, &combined)
	if err != nil {
		t.Fatalf("POST /api/combined-readiness: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if combined.BaseDecision != advisor.DecisionTrain {
		t.Errorf("base decision = %s, want TRAIN", combined.BaseDecision)
	}
	if combined.FinalDecision != advisor.DecisionActiveRecovery {
		t.Errorf("final decision = %s, want ACTIVE_RECOVERY", combined.FinalDecision)
	}
	if combined.EnvironmentSeverity != advisor.SeverityCritical {
		t.Errorf("severity = %s, want critical", combined.EnvironmentSeverity)
	}

	t.Run("both record streams appear in the unified history", func(t *testing.T) {
		var history advisor.History
		status, err := client.GetJSON(ctx, "/api/history", &history)
		if err != nil {
			t.Fatalf("GET /api/history: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if len(history.Assessments) != 1 {
			t.Errorf("assessments = %d, want 1", len(history.Assessments))
		}
		if len(history.Environments) != 1 {
			t.Errorf("environment records = %d, want 1", len(history.Environments))
		}
	})

	t.Run("a fresh session sees an empty history", func(t *testing.T) {
		fresh, err := e2etest.NewClient(server.URL())
		if err != nil {
			t.Fatalf("new client: %v", err)
		}
		var history advisor.History
		status, err := fresh.GetJSON(ctx, "/api/history", &history)
		if err != nil {
			t.Fatalf("GET /api/history: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if len(history.Assessments) != 0 || len(history.Environments) != 0 {
			t.Errorf("fresh session sees %d assessments and %d environment records, want none",
				len(history.Assessments), len(history.Environments))
		}
	})
}
