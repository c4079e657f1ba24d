package advisor

// Exercise is one movement within a workout phase.
type Exercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes,omitempty"`
}

// WorkoutPhase is one segment of a training program.
type WorkoutPhase struct {
	Name        string     `json:"name"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

// TrainingProgram is a complete structured workout. The catalog predates the
// snake_case wire contract, so program payloads keep their camelCase fields.
type TrainingProgram struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Focus         string         `json:"focus"`
	TotalDuration string         `json:"totalDuration"`
	Intensity     string         `json:"intensity"`
	Equipment     []string       `json:"equipment"`
	Phases        []WorkoutPhase `json:"phases"`
	Tips          []string       `json:"tips"`
	CooldownNotes string         `json:"cooldownNotes"`
}

// ProgramsFor returns the catalog programs for the given decision, ordered
// by catalog position.
func ProgramsFor(decision Decision) []TrainingProgram {
	return trainingPrograms[decision]
}

// RecommendProgram picks the program from the decision's catalog that best
// fits the environmental constraints. Selection is deterministic.
func RecommendProgram(decision Decision, constraints Constraints) TrainingProgram {
	programs := trainingPrograms[decision]

	switch decision {
	case DecisionTrain:
		// Constrained conditions favor the equipment-free bodyweight program
		// over the barbell session.
		if constraints.MaxIntensityPercent < 70 || constraints.MaxDurationMinutes < 40 {
			return programs[1]
		}
		return programs[0]
	case DecisionActiveRecovery:
		if constraints.RecommendedLocation == LocationHome {
			return programs[0]
		}
		if constraints.MaxDurationMinutes >= 30 {
			return programs[1]
		}
		return programs[0]
	default:
		return programs[0]
	}
}
