package advisor

// trainingPrograms is the static program catalog, two programs per decision
// except REST which alternates between full rest and restorative yoga.
var trainingPrograms = map[Decision][]TrainingProgram{
	DecisionTrain: {
		{
			ID:            "strength-full-body",
			Name:          "Full Body Strength",
			Focus:         "Build strength and muscle",
			TotalDuration: "45-60 min",
			Intensity:     "High (RPE 7-9)",
			Equipment:     []string{"Barbell", "Dumbbells", "Bench", "Pull-up bar"},
			Phases: []WorkoutPhase{
				{
					Name:        "Warm-Up",
					Duration:    "10 min",
					Description: "Prepare joints and activate muscles",
					Exercises: []Exercise{
						{Name: "Jumping Jacks", Sets: 1, Reps: "60 sec", Rest: "0s"},
						{Name: "Arm Circles", Sets: 1, Reps: "30 sec each direction", Rest: "0s"},
						{Name: "Bodyweight Squats", Sets: 2, Reps: "15", Rest: "30s"},
						{Name: "Hip Circles", Sets: 1, Reps: "10 each leg", Rest: "0s"},
						{Name: "Cat-Cow Stretch", Sets: 1, Reps: "10", Rest: "0s"},
					},
				},
				{
					Name:        "Primary Lifts",
					Duration:    "25 min",
					Description: "Heavy compound movements for strength",
					Exercises: []Exercise{
						{Name: "Barbell Back Squat", Sets: 4, Reps: "5", Rest: "3 min", Notes: "80-85% of 1RM"},
						{Name: "Barbell Bench Press", Sets: 4, Reps: "5", Rest: "3 min", Notes: "80-85% of 1RM"},
						{Name: "Barbell Deadlift", Sets: 3, Reps: "5", Rest: "3 min", Notes: "80% of 1RM"},
					},
				},
				{
					Name:        "Accessory Work",
					Duration:    "15 min",
					Description: "Support muscle development",
					Exercises: []Exercise{
						{Name: "Dumbbell Rows", Sets: 3, Reps: "10 each arm", Rest: "60s"},
						{Name: "Overhead Press", Sets: 3, Reps: "8", Rest: "90s"},
						{Name: "Lunges", Sets: 3, Reps: "12 each leg", Rest: "60s"},
						{Name: "Plank Hold", Sets: 3, Reps: "45 sec", Rest: "30s"},
					},
				},
				{
					Name:        "Cool-Down",
					Duration:    "5 min",
					Description: "Lower heart rate and stretch",
					Exercises: []Exercise{
						{Name: "Static Quad Stretch", Sets: 1, Reps: "30 sec each", Rest: "0s"},
						{Name: "Hamstring Stretch", Sets: 1, Reps: "30 sec each", Rest: "0s"},
						{Name: "Chest Doorway Stretch", Sets: 1, Reps: "30 sec", Rest: "0s"},
						{Name: "Deep Breathing", Sets: 1, Reps: "10 breaths", Rest: "0s"},
					},
				},
			},
			Tips: []string{
				"Focus on form over weight",
				"Breathe out on exertion",
				"Stay hydrated throughout",
				"Stop if you feel sharp pain",
			},
			CooldownNotes: "Foam roll any tight areas for 5-10 minutes post-workout",
		},
		{
			ID:            "hiit-cardio",
			Name:          "HIIT Cardio Blast",
			Focus:         "Cardiovascular endurance & fat burn",
			TotalDuration: "30-40 min",
			Intensity:     "Very High (RPE 8-10)",
			Equipment:     []string{"None (Bodyweight)"},
			Phases: []WorkoutPhase{
				{
					Name:        "Dynamic Warm-Up",
					Duration:    "5 min",
					Description: "Elevate heart rate gradually",
					Exercises: []Exercise{
						{Name: "High Knees", Sets: 1, Reps: "45 sec", Rest: "15s"},
						{Name: "Butt Kicks", Sets: 1, Reps: "45 sec", Rest: "15s"},
						{Name: "Arm Swings", Sets: 1, Reps: "30 sec", Rest: "0s"},
						{Name: "Torso Twists", Sets: 1, Reps: "30 sec", Rest: "0s"},
					},
				},
				{
					Name:        "HIIT Circuit (4 Rounds)",
					Duration:    "20 min",
					Description: "40 sec work / 20 sec rest per exercise",
					Exercises: []Exercise{
						{Name: "Burpees", Sets: 4, Reps: "40 sec", Rest: "20s", Notes: "Modify: Step back instead of jump"},
						{Name: "Mountain Climbers", Sets: 4, Reps: "40 sec", Rest: "20s"},
						{Name: "Jump Squats", Sets: 4, Reps: "40 sec", Rest: "20s", Notes: "Modify: Regular squats"},
						{Name: "Push-Ups", Sets: 4, Reps: "40 sec", Rest: "20s", Notes: "Modify: Knee push-ups"},
						{Name: "Plank Jacks", Sets: 4, Reps: "40 sec", Rest: "20s"},
					},
				},
				{
					Name:        "Finisher",
					Duration:    "5 min",
					Description: "Final push",
					Exercises: []Exercise{
						{Name: "Tabata Sprints (in place)", Sets: 8, Reps: "20 sec on / 10 sec off", Rest: "10s"},
					},
				},
				{
					Name:        "Cool-Down",
					Duration:    "5 min",
					Description: "Bring heart rate down",
					Exercises: []Exercise{
						{Name: "Walking in Place", Sets: 1, Reps: "2 min", Rest: "0s"},
						{Name: "Standing Forward Fold", Sets: 1, Reps: "45 sec", Rest: "0s"},
						{Name: "Child's Pose", Sets: 1, Reps: "60 sec", Rest: "0s"},
					},
				},
			},
			Tips: []string{
				"Push hard during work intervals",
				"Use modifications if needed",
				"Keep water nearby",
				"Don't skip the cool-down",
			},
			CooldownNotes: "Light walking for 5 minutes helps clear lactate",
		},
	},
	DecisionActiveRecovery: {
		{
			ID:            "mobility-flow",
			Name:          "Full Body Mobility Flow",
			Focus:         "Joint health & flexibility",
			TotalDuration: "25-30 min",
			Intensity:     "Low (RPE 3-4)",
			Equipment:     []string{"Yoga mat", "Foam roller (optional)"},
			Phases: []WorkoutPhase{
				{
					Name:        "Joint Prep",
					Duration:    "5 min",
					Description: "Wake up the joints",
					Exercises: []Exercise{
						{Name: "Neck Circles", Sets: 1, Reps: "10 each direction", Rest: "0s"},
						{Name: "Shoulder Rolls", Sets: 1, Reps: "10 each direction", Rest: "0s"},
						{Name: "Wrist Circles", Sets: 1, Reps: "10 each direction", Rest: "0s"},
						{Name: "Hip CARs", Sets: 1, Reps: "5 each leg", Rest: "0s", Notes: "Controlled Articular Rotations"},
						{Name: "Ankle Circles", Sets: 1, Reps: "10 each foot", Rest: "0s"},
					},
				},
				{
					Name:        "Movement Flow",
					Duration:    "15 min",
					Description: "Gentle movement sequences",
					Exercises: []Exercise{
						{Name: "Cat-Cow Flow", Sets: 1, Reps: "2 min continuous", Rest: "0s"},
						{Name: "World's Greatest Stretch", Sets: 1, Reps: "5 each side", Rest: "0s"},
						{Name: "90/90 Hip Switch", Sets: 1, Reps: "10 total", Rest: "0s"},
						{Name: "Thoracic Spine Rotations", Sets: 1, Reps: "10 each side", Rest: "0s"},
						{Name: "Downward Dog to Cobra Flow", Sets: 1, Reps: "10", Rest: "0s"},
						{Name: "Deep Squat Hold", Sets: 3, Reps: "30 sec", Rest: "15s"},
					},
				},
				{
					Name:        "Breathwork",
					Duration:    "5 min",
					Description: "Parasympathetic activation",
					Exercises: []Exercise{
						{Name: "Box Breathing", Sets: 1, Reps: "5 min", Rest: "0s", Notes: "4 sec inhale, 4 sec hold, 4 sec exhale, 4 sec hold"},
					},
				},
			},
			Tips: []string{
				"Never force a stretch",
				"Move slowly and deliberately",
				"Focus on breathing",
				"This is NOT a workout - ease into it",
			},
			CooldownNotes: "Consider 10 min foam rolling for any tight spots",
		},
		{
			ID:            "light-cardio",
			Name:          "Zone 2 Cardio Session",
			Focus:         "Aerobic base & recovery",
			TotalDuration: "30-45 min",
			Intensity:     "Low-Moderate (RPE 4-5)",
			Equipment:     []string{"None - Walking/Cycling"},
			Phases: []WorkoutPhase{
				{
					Name:        "Warm-Up",
					Duration:    "5 min",
					Description: "Gradually increase heart rate",
					Exercises: []Exercise{
						{Name: "Easy Walking", Sets: 1, Reps: "5 min", Rest: "0s", Notes: "Conversational pace"},
					},
				},
				{
					Name:        "Main Session",
					Duration:    "25-35 min",
					Description: "Maintain Zone 2 heart rate (60-70% max HR)",
					Exercises: []Exercise{
						{Name: "Brisk Walk or Light Jog", Sets: 1, Reps: "25-35 min", Rest: "0s", Notes: "HR: 120-140 BPM (approx). You should be able to hold a conversation."},
					},
				},
				{
					Name:        "Cool-Down",
					Duration:    "5 min",
					Description: "Gradual heart rate reduction",
					Exercises: []Exercise{
						{Name: "Slow Walking", Sets: 1, Reps: "3 min", Rest: "0s"},
						{Name: "Standing Calf Stretch", Sets: 1, Reps: "30 sec each", Rest: "0s"},
						{Name: "Standing Quad Stretch", Sets: 1, Reps: "30 sec each", Rest: "0s"},
					},
				},
			},
			Tips: []string{
				"Use a heart rate monitor if available",
				"Don't push pace - recovery is the goal",
				"Outdoor walking is great for mental health too",
				"Stay hydrated",
			},
			CooldownNotes: "Great time for podcast or audiobook",
		},
	},
	DecisionRest: {
		{
			ID:            "rest-day-protocol",
			Name:          "Complete Rest Protocol",
			Focus:         "Systemic recovery & restoration",
			TotalDuration: "Throughout day",
			Intensity:     "None (RPE 1-2)",
			Equipment:     []string{"None"},
			Phases: []WorkoutPhase{
				{
					Name:        "Morning",
					Duration:    "15-20 min",
					Description: "Gentle wake-up routine",
					Exercises: []Exercise{
						{Name: "Light Walk (optional)", Sets: 1, Reps: "10-15 min", Rest: "0s", Notes: "Outdoors for sunlight exposure, boosts circadian rhythm"},
						{Name: "Gentle Stretching in Bed", Sets: 1, Reps: "5 min", Rest: "0s"},
						{Name: "Hydration", Sets: 1, Reps: "16 oz water", Rest: "0s", Notes: "Add lemon or electrolytes"},
					},
				},
				{
					Name:        "Afternoon",
					Duration:    "20-30 min",
					Description: "Mental & physical restoration",
					Exercises: []Exercise{
						{Name: "NSDR (Non-Sleep Deep Rest)", Sets: 1, Reps: "20 min", Rest: "0s", Notes: "YouTube: 'NSDR Protocol' by Andrew Huberman"},
						{Name: "OR Power Nap", Sets: 1, Reps: "20-30 min", Rest: "0s", Notes: "Set alarm, don't exceed 30 min"},
					},
				},
				{
					Name:        "Evening",
					Duration:    "30 min",
					Description: "Prepare for quality sleep",
					Exercises: []Exercise{
						{Name: "Screen-Free Time", Sets: 1, Reps: "60 min before bed", Rest: "0s", Notes: "No phones, TV, computers"},
						{Name: "Gentle Yoga or Stretching", Sets: 1, Reps: "10-15 min", Rest: "0s"},
						{Name: "Journaling or Reading", Sets: 1, Reps: "15 min", Rest: "0s"},
						{Name: "Magnesium Supplement", Sets: 1, Reps: "300-400mg", Rest: "0s", Notes: "Glycinate form preferred"},
					},
				},
			},
			Tips: []string{
				"Rest is when your body adapts and grows stronger",
				"Quality sleep is non-negotiable",
				"Stay lightly active - avoid being sedentary all day",
				"Use this day for meal prep and nutrition focus",
			},
			CooldownNotes: "Tomorrow, you'll come back stronger",
		},
		{
			ID:            "gentle-yoga",
			Name:          "Restorative Yoga",
			Focus:         "Deep relaxation & stress relief",
			TotalDuration: "20-30 min",
			Intensity:     "Very Low (RPE 1-2)",
			Equipment:     []string{"Yoga mat", "Pillows/blankets"},
			Phases: []WorkoutPhase{
				{
					Name:        "Centering",
					Duration:    "3 min",
					Description: "Settle into practice",
					Exercises: []Exercise{
						{Name: "Seated Meditation", Sets: 1, Reps: "3 min", Rest: "0s", Notes: "Focus on breath"},
					},
				},
				{
					Name:        "Restorative Poses",
					Duration:    "20 min",
					Description: "Hold poses for deep relaxation",
					Exercises: []Exercise{
						{Name: "Supported Child's Pose", Sets: 1, Reps: "3-5 min", Rest: "0s", Notes: "Use pillow under torso"},
						{Name: "Supine Twist", Sets: 1, Reps: "2 min each side", Rest: "0s"},
						{Name: "Legs Up the Wall", Sets: 1, Reps: "5 min", Rest: "0s", Notes: "Great for circulation"},
						{Name: "Supported Bridge", Sets: 1, Reps: "3 min", Rest: "0s", Notes: "Block or pillow under sacrum"},
						{Name: "Savasana (Corpse Pose)", Sets: 1, Reps: "5 min", Rest: "0s"},
					},
				},
			},
			Tips: []string{
				"Use props liberally - comfort is key",
				"Dim lights or use candles",
				"Play soft ambient music",
				"Let go of any 'achieving' mindset",
			},
			CooldownNotes: "Stay in savasana as long as you like",
		},
	},
}
