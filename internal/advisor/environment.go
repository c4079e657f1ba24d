package advisor

import (
	"fmt"
	"slices"
)

// Default constraint values before any rule fires.
const (
	defaultMaxIntensityPercent = 100
	defaultMaxDurationMinutes  = 120
)

// Temperature thresholds in degrees Celsius.
const (
	hotTemperature  = 35
	coldTemperature = 5
)

// workingConstraints is the accumulator the rule pipeline folds over.
type workingConstraints struct {
	allowOutdoor bool
	maxIntensity int
	maxDuration  int
	location     Location
	blocked      []string
	suggested    []string
	severity     Severity
}

func newWorkingConstraints() *workingConstraints {
	return &workingConstraints{
		allowOutdoor: true,
		maxIntensity: defaultMaxIntensityPercent,
		maxDuration:  defaultMaxDurationMinutes,
		location:     LocationAny,
		blocked:      nil,
		suggested:    []string{"strength", "cardio", "flexibility", "hiit"},
		severity:     SeverityLow,
	}
}

func (w *workingConstraints) escalate(s Severity) {
	w.severity = w.severity.Escalate(s)
}

// environmentRule evaluates one condition against the input. It may mutate
// the accumulator and returns the fired adjustment, or nil when the rule does
// not apply.
//
// The combination semantics differ deliberately per rule: the mutually
// exclusive AQI bands assign their caps outright, the heat and full-lockdown
// rules take the minimum against earlier caps, block lists grow additively,
// and the lockdown rules replace the suggestion list wholesale. Severity only
// ever escalates.
type environmentRule func(EnvironmentInput, *workingConstraints) *Adjustment

// environmentRules fire in declaration order; adjustment records accumulate
// in the same order.
var environmentRules = []environmentRule{
	aqiModerateRule,
	aqiSensitiveGroupsRule,
	aqiUnhealthyRule,
	aqiHazardousRule,
	heatRule,
	coldRule,
	lockdownPartialRule,
	lockdownFullRule,
	localEventRule,
}

// CalculateEnvironmentImpact converts environmental and policy conditions
// into workout constraints, a severity classification, and the list of rules
// that fired. Pure and total over validated input.
func CalculateEnvironmentImpact(env EnvironmentInput) Impact {
	working := newWorkingConstraints()

	var adjustments []Adjustment
	for _, rule := range environmentRules {
		if adjustment := rule(env, working); adjustment != nil {
			adjustments = append(adjustments, *adjustment)
		}
	}

	blocked := dedupe(working.blocked)
	suggested := make([]string, 0, len(working.suggested))
	for _, workoutType := range working.suggested {
		if !slices.Contains(blocked, workoutType) {
			suggested = append(suggested, workoutType)
		}
	}

	return Impact{
		Constraints: Constraints{
			AllowOutdoor:        working.allowOutdoor,
			MaxIntensityPercent: working.maxIntensity,
			MaxDurationMinutes:  working.maxDuration,
			RecommendedLocation: working.location,
			BlockedWorkoutTypes: blocked,
			SuggestedTypes:      suggested,
		},
		Adjustments: adjustments,
		Severity:    working.severity,
	}
}

func aqiModerateRule(env EnvironmentInput, _ *workingConstraints) *Adjustment {
	if env.AQI <= 50 || env.AQI > 100 {
		return nil
	}
	// Informational only, no constraint change.
	return &Adjustment{
		RuleID:  "AQI_001",
		Trigger: fmt.Sprintf("AQI = %d", env.AQI),
		Action:  "Monitor symptoms",
		Reason:  "Air quality is moderate. Sensitive individuals should limit prolonged outdoor exertion.",
	}
}

func aqiSensitiveGroupsRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if env.AQI <= 100 || env.AQI > 150 {
		return nil
	}
	w.escalate(SeverityModerate)
	w.maxIntensity = 80
	w.maxDuration = 60
	w.location = LocationIndoor
	return &Adjustment{
		RuleID:  "AQI_002",
		Trigger: fmt.Sprintf("AQI = %d", env.AQI),
		Action:  "Reduce outdoor intensity",
		Reason:  "Air quality is unhealthy for sensitive groups. Reduce outdoor workout intensity by 20%.",
	}
}

func aqiUnhealthyRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if env.AQI <= 150 || env.AQI > 200 {
		return nil
	}
	w.escalate(SeverityHigh)
	w.maxIntensity = 60
	w.maxDuration = 45
	w.allowOutdoor = false
	w.location = LocationIndoor
	w.blocked = append(w.blocked, "running", "cycling", "outdoor cardio")
	return &Adjustment{
		RuleID:  "AQI_003",
		Trigger: fmt.Sprintf("AQI = %d", env.AQI),
		Action:  "Move indoors",
		Reason:  "Air quality is unhealthy. All outdoor cardio activities blocked. Indoor alternatives only.",
	}
}

func aqiHazardousRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if env.AQI <= 200 {
		return nil
	}
	w.escalate(SeverityCritical)
	w.maxIntensity = 40
	w.maxDuration = 30
	w.allowOutdoor = false
	w.location = LocationHome
	w.blocked = append(w.blocked, "running", "cycling", "outdoor cardio", "hiit")
	// Hazardous air replaces the suggestion list wholesale.
	w.suggested = []string{"yoga", "stretching", "light strength"}
	return &Adjustment{
		RuleID:  "AQI_004",
		Trigger: fmt.Sprintf("AQI = %d", env.AQI),
		Action:  "Minimal exertion only",
		Reason:  "Air quality is hazardous. Recommend rest or very light indoor activity only.",
	}
}

func heatRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if env.TemperatureC <= hotTemperature && !env.IsHeatwave {
		return nil
	}

	if env.IsHeatwave {
		w.escalate(SeverityHigh)
	} else {
		w.escalate(SeverityModerate)
	}

	intensityCap, durationCap := 70, 45
	if env.IsHeatwave {
		intensityCap, durationCap = 50, 30
	}
	w.maxIntensity = min(w.maxIntensity, intensityCap)
	w.maxDuration = min(w.maxDuration, durationCap)

	adjustment := &Adjustment{
		RuleID:  "TEMP_001",
		Trigger: fmt.Sprintf("Temperature = %d°C", env.TemperatureC),
		Action:  "Reduce intensity",
		Reason:  "High temperature requires reduced intensity and increased hydration breaks.",
	}
	if env.IsHeatwave {
		adjustment.Trigger = "Heatwave Alert Active"
		adjustment.Action = "Avoid peak hours, stay hydrated"
		adjustment.Reason = "Heatwave conditions increase heat stroke risk. " +
			"Exercise only in early morning or late evening, indoors preferred."
		w.blocked = append(w.blocked, "outdoor cardio", "endurance training")
		w.location = LocationIndoor
	}
	return adjustment
}

func coldRule(env EnvironmentInput, _ *workingConstraints) *Adjustment {
	if env.TemperatureC >= coldTemperature {
		return nil
	}
	// Advisory only, no constraint change.
	return &Adjustment{
		RuleID:  "TEMP_002",
		Trigger: fmt.Sprintf("Temperature = %d°C", env.TemperatureC),
		Action:  "Extended warm-up required",
		Reason:  "Cold conditions require 10-15 min extended warm-up to prevent muscle strain and joint stiffness.",
	}
}

func lockdownPartialRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if env.LockdownStatus != LockdownPartial {
		return nil
	}
	w.escalate(SeverityModerate)
	w.location = LocationHome
	w.blocked = append(w.blocked, "gym workouts")
	w.suggested = []string{"home strength", "bodyweight", "yoga", "cardio at home"}
	return &Adjustment{
		RuleID:  "POLICY_001",
		Trigger: "Partial Lockdown Active",
		Action:  "Home workouts preferred",
		Reason:  "Movement restrictions in place. Prioritize home-based exercises. Outdoor activities may be limited.",
	}
}

func lockdownFullRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if env.LockdownStatus != LockdownFull {
		return nil
	}
	w.escalate(SeverityCritical)
	w.allowOutdoor = false
	w.maxIntensity = min(w.maxIntensity, 60)
	w.location = LocationHome
	w.blocked = append(w.blocked, "gym workouts", "outdoor activities", "group fitness")
	w.suggested = []string{"bodyweight", "yoga", "stretching", "home cardio"}
	return &Adjustment{
		RuleID:  "POLICY_002",
		Trigger: "Full Lockdown Active",
		Action:  "Home only",
		Reason:  "Full lockdown in effect. All activities must be performed at home. No outdoor exercise permitted.",
	}
}

func localEventRule(env EnvironmentInput, w *workingConstraints) *Adjustment {
	if !env.HasLocalEvent {
		return nil
	}
	if w.location == LocationAny || w.location == LocationOutdoor {
		w.location = LocationIndoor
	}
	return &Adjustment{
		RuleID:  "EVENT_001",
		Trigger: "Local Event/Crowd",
		Action:  "Avoid crowded areas",
		Reason:  "Local event may cause crowding. Avoid outdoor routes near event areas or exercise at off-peak times.",
	}
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(values []string) []string {
	if values == nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
