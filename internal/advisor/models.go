package advisor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ahertta/readyday/internal/errors"
)

// Decision is the categorical training recommendation. The zero value is
// DecisionTrain; greater values are stricter so that safety overrides are a
// simple maximum over proposals.
type Decision int

const (
	DecisionTrain Decision = iota
	DecisionActiveRecovery
	DecisionRest
)

// decisionNames are the wire values. They must stay stable for existing
// consumers.
var decisionNames = map[Decision]string{
	DecisionTrain:          "TRAIN",
	DecisionActiveRecovery: "ACTIVE_RECOVERY",
	DecisionRest:           "REST",
}

func (d Decision) String() string {
	if name, ok := decisionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// Tighten returns the stricter of the two decisions. Decisions only ever
// tighten during an assessment, never loosen.
func (d Decision) Tighten(proposed Decision) Decision {
	if proposed > d {
		return proposed
	}
	return d
}

func (d Decision) MarshalJSON() ([]byte, error) {
	name, ok := decisionNames[d]
	if !ok {
		return nil, fmt.Errorf("unknown decision: %d", int(d))
	}
	return json.Marshal(name)
}

func (d *Decision) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "unmarshal decision")
	}
	parsed, err := ParseDecision(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDecision converts a wire value into a Decision.
func ParseDecision(name string) (Decision, error) {
	for decision, decisionName := range decisionNames {
		if decisionName == name {
			return decision, nil
		}
	}
	return DecisionTrain, fmt.Errorf("unknown decision: %q", name)
}

// Severity classifies how much environmental conditions constrain training.
// Ordered from least to most severe.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityLow:      "low",
	SeverityModerate: "moderate",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Escalate returns the more severe of the two. Severity never downgrades
// within one evaluation.
func (s Severity) Escalate(proposed Severity) Severity {
	if proposed > s {
		return proposed
	}
	return s
}

func (s Severity) MarshalJSON() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown severity: %d", int(s))
	}
	return json.Marshal(name)
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "unmarshal severity")
	}
	for severity, severityName := range severityNames {
		if severityName == name {
			*s = severity
			return nil
		}
	}
	return fmt.Errorf("unknown severity: %q", name)
}

// Location is the recommended workout location.
type Location string

const (
	LocationIndoor  Location = "indoor"
	LocationOutdoor Location = "outdoor"
	LocationHome    Location = "home"
	LocationAny     Location = "any"
)

// LockdownStatus describes movement restriction policy.
type LockdownStatus string

const (
	LockdownNone    LockdownStatus = "none"
	LockdownPartial LockdownStatus = "partial"
	LockdownFull    LockdownStatus = "full"
)

// CheckIn is the self-reported biological check-in. Each rating is on a 1-5
// ordinal scale where higher is better: stress and soreness are inverted
// (5 = none). TimeAvailable indexes the discrete minute buckets.
type CheckIn struct {
	Sleep         int `json:"sleep"`
	Energy        int `json:"energy"`
	Stress        int `json:"stress"`
	Soreness      int `json:"soreness"`
	TimeAvailable int `json:"time_available"`
}

// timeBuckets maps the 1-5 time-available rating to minutes.
var timeBuckets = [5]int{15, 30, 45, 60, 90}

// Validate checks that all ratings lie in their declared 1-5 domain.
// Out-of-domain input is rejected rather than clamped so that a bad caller
// is surfaced instead of silently producing undefined proxy values.
func (c CheckIn) Validate() error {
	for _, rating := range []struct {
		name  string
		value int
	}{
		{"sleep", c.Sleep},
		{"energy", c.Energy},
		{"stress", c.Stress},
		{"soreness", c.Soreness},
		{"time_available", c.TimeAvailable},
	} {
		if rating.value < 1 || rating.value > 5 {
			return fmt.Errorf("%w: %s rating %d outside 1-5", ErrInvalidInput, rating.name, rating.value)
		}
	}
	return nil
}

// Proxy carries the derived physiological proxy measures. Stress, fatigue and
// soreness are on a 1-10 scale where higher is worse.
type Proxy struct {
	SleepHours     float64 `json:"sleep_hours"`
	StressLevel    int     `json:"stress_level"`
	FatigueLevel   int     `json:"fatigue_level"`
	MuscleSoreness int     `json:"muscle_soreness"`
	AvailableTime  int     `json:"available_time"`
}

// Validate checks that directly submitted proxy values lie in sensible
// domains. Proxies derived from a valid CheckIn always pass.
func (p Proxy) Validate() error {
	if p.SleepHours < 0 || p.SleepHours > 24 {
		return fmt.Errorf("%w: sleep_hours %.1f outside 0-24", ErrInvalidInput, p.SleepHours)
	}
	for _, level := range []struct {
		name  string
		value int
	}{
		{"stress_level", p.StressLevel},
		{"fatigue_level", p.FatigueLevel},
		{"muscle_soreness", p.MuscleSoreness},
	} {
		if level.value < 1 || level.value > 10 {
			return fmt.Errorf("%w: %s %d outside 1-10", ErrInvalidInput, level.name, level.value)
		}
	}
	if p.AvailableTime < 0 {
		return fmt.Errorf("%w: available_time %d is negative", ErrInvalidInput, p.AvailableTime)
	}
	return nil
}

// ErrInvalidInput marks domain violations in caller-provided input.
var ErrInvalidInput = errors.NewSentinel("invalid input")

// Reason is one entry of an explanation.
type Reason struct {
	Key     string
	Message string
}

// Explanation is an ordered mapping of reason key to human-readable message.
// Keys are unique within one explanation and insertion order is preserved,
// which a plain Go map cannot guarantee; on the wire it is a JSON object.
type Explanation []Reason

// Add appends a reason. Adding an existing key replaces its message in place.
func (e Explanation) Add(key, message string) Explanation {
	for i, reason := range e {
		if reason.Key == key {
			e[i].Message = message
			return e
		}
	}
	return append(e, Reason{Key: key, Message: message})
}

// Get returns the message for key and whether it is present.
func (e Explanation) Get(key string) (string, bool) {
	for _, reason := range e {
		if reason.Key == key {
			return reason.Message, true
		}
	}
	return "", false
}

func (e Explanation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, reason := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(reason.Key)
		if err != nil {
			return nil, errors.Wrap(err, "marshal explanation key")
		}
		message, err := json.Marshal(reason.Message)
		if err != nil {
			return nil, errors.Wrap(err, "marshal explanation message")
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(message)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (e *Explanation) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return errors.Wrap(err, "read explanation start")
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.New("explanation must be a JSON object")
	}
	var explanation Explanation
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return errors.Wrap(err, "read explanation key")
		}
		key, ok := keyToken.(string)
		if !ok {
			return errors.New("explanation key must be a string")
		}
		var message string
		if err = decoder.Decode(&message); err != nil {
			return errors.Wrap(err, "read explanation message")
		}
		explanation = explanation.Add(key, message)
	}
	*e = explanation
	return nil
}

// Result is the outcome of a readiness assessment. The proxy values are
// echoed back so that callers can display what the engine reasoned over.
type Result struct {
	ReadinessScore int         `json:"readiness_score"`
	Decision       Decision    `json:"decision"`
	Explanation    Explanation `json:"explanation"`
	SleepHours     float64     `json:"sleep_hours"`
	StressLevel    int         `json:"stress_level"`
	FatigueLevel   int         `json:"fatigue_level"`
	MuscleSoreness int         `json:"muscle_soreness"`
	AvailableTime  int         `json:"available_time"`
}

// EnvironmentInput carries environmental and policy conditions.
type EnvironmentInput struct {
	AQI            int            `json:"aqi"`
	TemperatureC   int            `json:"temperature_celsius"`
	IsHeatwave     bool           `json:"is_heatwave"`
	LockdownStatus LockdownStatus `json:"lockdown_status"`
	HasLocalEvent  bool           `json:"has_local_event"`
}

// Validate checks the input domains. An empty lockdown status is normalized
// to "none" since absent policy data means no restrictions.
func (e *EnvironmentInput) Validate() error {
	if e.AQI < 0 {
		return fmt.Errorf("%w: aqi %d is negative", ErrInvalidInput, e.AQI)
	}
	switch e.LockdownStatus {
	case LockdownNone, LockdownPartial, LockdownFull:
	case "":
		e.LockdownStatus = LockdownNone
	default:
		return fmt.Errorf("%w: unknown lockdown_status %q", ErrInvalidInput, e.LockdownStatus)
	}
	return nil
}

// Constraints are the structured workout limits derived from the environment.
type Constraints struct {
	AllowOutdoor        bool     `json:"allow_outdoor"`
	MaxIntensityPercent int      `json:"max_intensity_percent"`
	MaxDurationMinutes  int      `json:"max_duration_minutes"`
	RecommendedLocation Location `json:"recommended_location"`
	BlockedWorkoutTypes []string `json:"blocked_workout_types"`
	SuggestedTypes      []string `json:"suggested_workout_types"`
}

// Adjustment records one environment rule that fired, for explainability.
// The rule IDs and trigger texts are part of the external contract.
type Adjustment struct {
	RuleID  string `json:"rule_id"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
	Reason  string `json:"reason"`
}

// Impact is the outcome of an environment evaluation.
type Impact struct {
	Constraints Constraints  `json:"constraints"`
	Adjustments []Adjustment `json:"adjustments"`
	Severity    Severity     `json:"severity"`
}

// CombinedResult merges a readiness assessment with environmental pressure.
// BaseDecision is the unmodified biological decision; FinalDecision may only
// be stricter.
type CombinedResult struct {
	ReadinessScore         int          `json:"readiness_score"`
	BaseDecision           Decision     `json:"base_decision"`
	FinalDecision          Decision     `json:"final_decision"`
	ReadinessExplanation   Explanation  `json:"readiness_explanation"`
	EnvironmentAdjustments []Adjustment `json:"environment_adjustments"`
	Constraints            Constraints  `json:"constraints"`
	EnvironmentSeverity    Severity     `json:"environment_severity"`
}
