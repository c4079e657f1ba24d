package advisor

// CombinedReadiness merges the biological readiness assessment with the
// environmental impact. Environmental pressure can only tighten the decision;
// it never upgrades one.
func CombinedReadiness(p Proxy, env EnvironmentInput) CombinedResult {
	readiness := CalculateReadiness(p)
	impact := CalculateEnvironmentImpact(env)

	final := readiness.Decision

	if impact.Severity == SeverityCritical {
		if final == DecisionTrain {
			final = DecisionActiveRecovery
		}
		if !impact.Constraints.AllowOutdoor && final != DecisionRest && readiness.ReadinessScore < 50 {
			final = DecisionRest
		}
	}

	return CombinedResult{
		ReadinessScore:         readiness.ReadinessScore,
		BaseDecision:           readiness.Decision,
		FinalDecision:          final,
		ReadinessExplanation:   readiness.Explanation,
		EnvironmentAdjustments: impact.Adjustments,
		Constraints:            impact.Constraints,
		EnvironmentSeverity:    impact.Severity,
	}
}
