package advisor_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ahertta/readyday/internal/advisor"
)

func TestDecisionTighten(t *testing.T) {
	tests := []struct {
		current  advisor.Decision
		proposed advisor.Decision
		want     advisor.Decision
	}{
		{advisor.DecisionTrain, advisor.DecisionRest, advisor.DecisionRest},
		{advisor.DecisionRest, advisor.DecisionTrain, advisor.DecisionRest},
		{advisor.DecisionActiveRecovery, advisor.DecisionActiveRecovery, advisor.DecisionActiveRecovery},
		{advisor.DecisionTrain, advisor.DecisionActiveRecovery, advisor.DecisionActiveRecovery},
	}
	for _, tt := range tests {
		if got := tt.current.Tighten(tt.proposed); got != tt.want {
			t.Errorf("%s.Tighten(%s) = %s, want %s", tt.current, tt.proposed, got, tt.want)
		}
	}
}

func TestDecisionJSON(t *testing.T) {
	data, err := json.Marshal(advisor.DecisionActiveRecovery)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"ACTIVE_RECOVERY"` {
		t.Errorf("Marshal = %s, want \"ACTIVE_RECOVERY\"", data)
	}

	var decision advisor.Decision
	if err = json.Unmarshal([]byte(`"REST"`), &decision); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decision != advisor.DecisionRest {
		t.Errorf("Unmarshal = %s, want REST", decision)
	}

	if err = json.Unmarshal([]byte(`"NAP"`), &decision); err == nil {
		t.Error("expected error for unknown decision")
	}
}

func TestSeverityEscalate(t *testing.T) {
	severity := advisor.SeverityLow
	severity = severity.Escalate(advisor.SeverityHigh)
	if severity != advisor.SeverityHigh {
		t.Errorf("Escalate(high) = %s, want high", severity)
	}
	severity = severity.Escalate(advisor.SeverityModerate)
	if severity != advisor.SeverityHigh {
		t.Errorf("severity downgraded to %s", severity)
	}
	severity = severity.Escalate(advisor.SeverityCritical)
	if severity != advisor.SeverityCritical {
		t.Errorf("Escalate(critical) = %s, want critical", severity)
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(advisor.SeverityCritical)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"critical"` {
		t.Errorf("Marshal = %s, want \"critical\"", data)
	}

	var severity advisor.Severity
	if err = json.Unmarshal([]byte(`"moderate"`), &severity); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if severity != advisor.SeverityModerate {
		t.Errorf("Unmarshal = %s, want moderate", severity)
	}
}

func TestExplanationJSON(t *testing.T) {
	var explanation advisor.Explanation
	explanation = explanation.Add("sleep", "too little")
	explanation = explanation.Add("overall", "low score")
	explanation = explanation.Add("sleep", "updated message")

	data, err := json.Marshal(explanation)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Insertion order preserved, duplicate key replaced in place.
	want := `{"sleep":"updated message","overall":"low score"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded advisor.Explanation
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(explanation, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if message, ok := decoded.Get("overall"); !ok || message != "low score" {
		t.Errorf("Get(overall) = %q, %v", message, ok)
	}
	if _, ok := decoded.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
}

func TestResultJSONFieldNames(t *testing.T) {
	result := advisor.CalculateReadiness(advisor.Proxy{
		SleepHours:     7.5,
		StressLevel:    4,
		FatigueLevel:   4,
		MuscleSoreness: 4,
		AvailableTime:  45,
	})

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, field := range []string{
		"readiness_score", "decision", "explanation",
		"sleep_hours", "stress_level", "fatigue_level", "muscle_soreness", "available_time",
	} {
		if _, ok := fields[field]; !ok {
			t.Errorf("missing field %q in %s", field, data)
		}
	}
}
