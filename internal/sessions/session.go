package sessions

import "time"

// WorkoutSession is a single visit to the gym: started from a workout
// plan, filled with exercises, then completed exactly once.
type WorkoutSession struct {
	ID              int        `json:"id"`
	UserID          int        `json:"userId"`
	WorkoutID       int        `json:"workoutId"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	IsCompleted     bool       `json:"isCompleted"`
	DurationMinutes int        `json:"durationMinutes"`
	XPEarned        int        `json:"xpEarned"`
}

// ExerciseLoad is a completed exercise joined to the start date of its
// session, one point of the training load chart.
type ExerciseLoad struct {
	StartedAt time.Time `json:"startedAt"`
	Exercise  string    `json:"exercise"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
}

type WorkoutExercise struct {
	ID            int       `json:"id"`
	SessionID     int       `json:"sessionId"`
	Name          string    `json:"name"`
	MuscleGroup   string    `json:"muscleGroup,omitempty"`
	Sets          int       `json:"sets"`
	Reps          int       `json:"reps"`
	Weight        float64   `json:"weight"`
	SetsCompleted int       `json:"setsCompleted"`
	IsCompleted   bool      `json:"isCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
}
