package advisor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ahertta/readyday/internal/advisor"
	"github.com/ahertta/readyday/internal/contexthelpers"
	"github.com/ahertta/readyday/internal/sqlite"
	"github.com/ahertta/readyday/internal/testhelpers"
)

// newTestService spins up an in-memory database with one resolved user and
// returns a service bound to it.
func newTestService(t *testing.T) (*advisor.Service, context.Context, *sqlite.Database) {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close database: %v", closeErr)
		}
	})

	userID, err := db.EnsureUser(ctx, "test-user")
	if err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	ctx = context.WithValue(ctx, contexthelpers.CurrentUserIDContextKey, userID)

	return advisor.NewService(db, logger), ctx, db
}

func TestServiceAssess(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	proxy := advisor.Proxy{
		SleepHours:     8,
		StressLevel:    3,
		FatigueLevel:   3,
		MuscleSoreness: 3,
		AvailableTime:  60,
	}

	record, err := svc.Assess(ctx, proxy)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if record.ID == 0 {
		t.Error("expected a persisted record ID")
	}
	if diff := cmp.Diff(advisor.CalculateReadiness(proxy), record.Result); diff != "" {
		t.Errorf("stored result mismatch (-want +got):\n%s", diff)
	}

	history, err := svc.AssessmentHistory(ctx, 10)
	if err != nil {
		t.Fatalf("AssessmentHistory: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if diff := cmp.Diff(record.Result, history[0].Result); diff != "" {
		t.Errorf("history result mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceAssess_rejectsInvalidInput(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	_, err := svc.Assess(ctx, advisor.Proxy{
		SleepHours:     -1,
		StressLevel:    3,
		FatigueLevel:   3,
		MuscleSoreness: 3,
		AvailableTime:  60,
	})
	if !errors.Is(err, advisor.ErrInvalidInput) {
		t.Errorf("Assess = %v, want ErrInvalidInput", err)
	}

	history, err := svc.AssessmentHistory(ctx, 10)
	if err != nil {
		t.Fatalf("AssessmentHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("rejected input must not be persisted, got %d records", len(history))
	}
}

func TestServiceAssessCheckIn(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	record, err := svc.AssessCheckIn(ctx, advisor.CheckIn{
		Sleep: 5, Energy: 5, Stress: 5, Soreness: 5, TimeAvailable: 5,
	})
	if err != nil {
		t.Fatalf("AssessCheckIn: %v", err)
	}
	if record.ReadinessScore != 94 {
		t.Errorf("ReadinessScore = %d, want 94", record.ReadinessScore)
	}
	if record.Decision != advisor.DecisionTrain {
		t.Errorf("Decision = %s, want TRAIN", record.Decision)
	}
}

func TestServiceRecordEnvironment(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	input := advisor.EnvironmentInput{AQI: 180, TemperatureC: 20, LockdownStatus: advisor.LockdownNone}
	record, err := svc.RecordEnvironment(ctx, input)
	if err != nil {
		t.Fatalf("RecordEnvironment: %v", err)
	}
	if record.Severity != advisor.SeverityHigh {
		t.Errorf("Severity = %s, want high", record.Severity)
	}

	impact, err := svc.LatestEnvironmentImpact(ctx)
	if err != nil {
		t.Fatalf("LatestEnvironmentImpact: %v", err)
	}
	if diff := cmp.Diff(record.Impact, impact); diff != "" {
		t.Errorf("latest impact mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceLatestEnvironmentImpact_empty(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	_, err := svc.LatestEnvironmentImpact(ctx)
	if !errors.Is(err, advisor.ErrNotFound) {
		t.Errorf("LatestEnvironmentImpact = %v, want ErrNotFound", err)
	}
}

func TestServiceAssessCombined(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	proxy := advisor.DeriveProxy(advisor.CheckIn{Sleep: 5, Energy: 5, Stress: 5, Soreness: 5, TimeAvailable: 5})
	input := advisor.EnvironmentInput{AQI: 250, TemperatureC: 20, LockdownStatus: advisor.LockdownNone}

	combined, err := svc.AssessCombined(ctx, proxy, input)
	if err != nil {
		t.Fatalf("AssessCombined: %v", err)
	}
	if combined.BaseDecision != advisor.DecisionTrain {
		t.Errorf("BaseDecision = %s, want TRAIN", combined.BaseDecision)
	}
	if combined.FinalDecision != advisor.DecisionActiveRecovery {
		t.Errorf("FinalDecision = %s, want ACTIVE_RECOVERY", combined.FinalDecision)
	}

	// Both record streams got one entry each.
	history, err := svc.FullHistory(ctx, 10)
	if err != nil {
		t.Fatalf("FullHistory: %v", err)
	}
	if len(history.Assessments) != 1 {
		t.Errorf("assessments = %d, want 1", len(history.Assessments))
	}
	if len(history.Environments) != 1 {
		t.Errorf("environment records = %d, want 1", len(history.Environments))
	}
	if len(history.Assessments) == 1 && history.Assessments[0].Decision != advisor.DecisionTrain {
		t.Errorf("persisted decision = %s, want base decision TRAIN", history.Assessments[0].Decision)
	}
}

func TestServiceHistory_scopedToUser(t *testing.T) {
	svc, ctx, db := newTestService(t)

	if _, err := svc.Assess(ctx, advisor.Proxy{
		SleepHours: 8, StressLevel: 3, FatigueLevel: 3, MuscleSoreness: 3, AvailableTime: 60,
	}); err != nil {
		t.Fatalf("Assess: %v", err)
	}

	otherID, err := db.EnsureUser(t.Context(), "other-user")
	if err != nil {
		t.Fatalf("ensure other user: %v", err)
	}
	otherCtx := context.WithValue(t.Context(), contexthelpers.CurrentUserIDContextKey, otherID)

	history, err := svc.AssessmentHistory(otherCtx, 10)
	if err != nil {
		t.Fatalf("AssessmentHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("other user sees %d records, want 0", len(history))
	}
}

func TestServiceEnvironmentHistory_order(t *testing.T) {
	svc, ctx, _ := newTestService(t)

	inputs := []advisor.EnvironmentInput{
		{AQI: 20, TemperatureC: 20, LockdownStatus: advisor.LockdownNone},
		{AQI: 120, TemperatureC: 20, LockdownStatus: advisor.LockdownNone},
		{AQI: 250, TemperatureC: 20, LockdownStatus: advisor.LockdownNone},
	}
	for _, input := range inputs {
		if _, err := svc.RecordEnvironment(ctx, input); err != nil {
			t.Fatalf("RecordEnvironment: %v", err)
		}
	}

	records, err := svc.EnvironmentHistory(ctx, 2)
	if err != nil {
		t.Fatalf("EnvironmentHistory: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (limit)", len(records))
	}
	// Newest first.
	if records[0].Input.AQI != 250 || records[1].Input.AQI != 120 {
		t.Errorf("unexpected order: %d, %d", records[0].Input.AQI, records[1].Input.AQI)
	}
}
