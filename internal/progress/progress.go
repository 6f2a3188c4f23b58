package progress

import "time"

// workoutsPerLevel controls how fast users level up: every 5 completed
// workouts bump the level by one, everybody starts at level 1.
const workoutsPerLevel = 5

// UserProgress is the single accrual row per user, updated whenever a
// session completes.
type UserProgress struct {
	UserID        int        `json:"userId"`
	TotalWorkouts int        `json:"totalWorkouts"`
	TotalXP       int        `json:"totalXp"`
	Level         int        `json:"level"`
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastWorkoutAt *time.Time `json:"lastWorkoutAt,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type DayProgress struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Started   int    `json:"started"`
	Completed int    `json:"completed"`
	XP        int    `json:"xp"`
}

type WeeklyProgress struct {
	WeekStart      time.Time     `json:"weekStart"`
	WeekEnd        time.Time     `json:"weekEnd"`
	Days           []DayProgress `json:"days"`
	TotalStarted   int           `json:"totalStarted"`
	TotalCompleted int           `json:"totalCompleted"`
	TotalXP        int           `json:"totalXp"`
	CurrentStreak  int           `json:"currentStreak"`
	Level          int           `json:"level"`
}

type Stats struct {
	TotalWorkouts int        `json:"totalWorkouts"`
	TotalXP       int        `json:"totalXp"`
	Level         int        `json:"level"`
	LevelProgress float64    `json:"levelProgress"`
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastWorkoutAt *time.Time `json:"lastWorkoutAt,omitempty"`
}
