// Package advisor implements the training-readiness decision engine: a
// deterministic rule engine that turns self-reported biological check-ins and
// environmental conditions into a readiness score, a training decision,
// workout constraints, and human-readable explanations.
package advisor

import (
	"fmt"
	"math"
)

// Scoring constants. Sleep contributes up to 40 points, the three 1-10
// proxy levels up to 18 points each, so the natural score ceiling is 94.
// The score is deliberately not re-clamped after summation.
const (
	sleepScoreMax       = 40.0
	sleepFloorHours     = 5.0
	sleepSaturationSpan = 3.0 // hours from the floor to the 40-point ceiling

	levelScoreBase   = 10
	levelScoreWeight = 2

	restScoreThreshold     = 40
	recoveryScoreThreshold = 65
	highLevelThreshold     = 8
	shortSessionMinutes    = 30
)

// DeriveProxy maps the 1-5 ordinal ratings onto the physiological proxy
// measures. The mappings are total over the validated rating domain.
func DeriveProxy(c CheckIn) Proxy {
	return Proxy{
		SleepHours:     4 + float64(c.Sleep-1)*1.5,
		StressLevel:    (5-c.Stress)*2 + 1,
		FatigueLevel:   (5-c.Energy)*2 + 1,
		MuscleSoreness: (5-c.Soreness)*2 + 1,
		AvailableTime:  timeBuckets[c.TimeAvailable-1],
	}
}

// CalculateReadiness computes the readiness score and base training decision
// for the given proxy values.
//
// The function is pure and total over validated input; callers are expected
// to have run [Proxy.Validate] (or derived the proxy from a validated
// [CheckIn]) beforehand.
func CalculateReadiness(p Proxy) Result {
	sleepScore := math.Min(math.Max((p.SleepHours-sleepFloorHours)/sleepSaturationSpan*sleepScoreMax, 0), sleepScoreMax)
	stressScore := (levelScoreBase - p.StressLevel) * levelScoreWeight
	fatigueScore := (levelScoreBase - p.FatigueLevel) * levelScoreWeight
	sorenessScore := (levelScoreBase - p.MuscleSoreness) * levelScoreWeight

	score := int(math.Round(sleepScore + float64(stressScore+fatigueScore+sorenessScore)))

	decision := DecisionTrain
	var explanation Explanation

	// The rules below only ever tighten the decision. Several independent
	// reasons may co-exist in the explanation.
	if p.SleepHours < sleepFloorHours {
		decision = decision.Tighten(DecisionRest)
		explanation = explanation.Add("sleep", "Sleep is critically low (< 5h). High injury risk.")
	}

	if p.FatigueLevel > highLevelThreshold || p.MuscleSoreness > highLevelThreshold {
		decision = decision.Tighten(DecisionActiveRecovery)
		explanation = explanation.Add("fatigue_soreness", "High fatigue or soreness detected. Prioritize recovery.")
	}

	switch {
	case score < restScoreThreshold:
		decision = decision.Tighten(DecisionRest)
		explanation = explanation.Add("overall",
			fmt.Sprintf("Readiness score (%d) is too low for safe exercise.", score))
	case score < recoveryScoreThreshold:
		if decision == DecisionTrain {
			decision = DecisionActiveRecovery
			explanation = explanation.Add("overall", "Moderate readiness. Low-intensity recovery suggested.")
		}
	default:
		if len(explanation) == 0 {
			explanation = explanation.Add("overall", "Body is well-rested and ready for a standard session.")
		}
	}

	if decision == DecisionTrain && p.AvailableTime < shortSessionMinutes {
		decision = DecisionActiveRecovery
		explanation = explanation.Add("time_constraint", "Time is limited (<30m). Short recovery session recommended.")
	}

	return Result{
		ReadinessScore: score,
		Decision:       decision,
		Explanation:    explanation,
		SleepHours:     p.SleepHours,
		StressLevel:    p.StressLevel,
		FatigueLevel:   p.FatigueLevel,
		MuscleSoreness: p.MuscleSoreness,
		AvailableTime:  p.AvailableTime,
	}
}
