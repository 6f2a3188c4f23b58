package dashboard

// WeeklyDay is one weekday of the Monday anchored week breakdown.
// Streak is the number of completed sessions on that day.
type WeeklyDay struct {
	Day       string `json:"day"`
	Sessions  int    `json:"sessions"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

// CalendarDay is one cell of the trailing 7 day activity calendar.
type CalendarDay struct {
	Day       string `json:"day"`
	Date      int    `json:"date"`
	Completed bool   `json:"completed"`
	Sessions  int    `json:"sessions"`
	IsToday   bool   `json:"isToday"`
}

// LoadPoint is one completed exercise on the trailing 30 day training
// load chart, labelled "DD/MM" the way the frontend charts expect it.
type LoadPoint struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Exercise string  `json:"exercise"`
}

type Summary struct {
	WeeklyGoal     int     `json:"weeklyGoal"`
	TotalSessions  int     `json:"totalSessions"`
	CompletionRate float64 `json:"completionRate"`
	StreakDays     int     `json:"streakDays"`
	Level          int     `json:"level"`
	TotalXP        int     `json:"totalXp"`
}

type Data struct {
	Summary       Summary       `json:"summary"`
	Weekly        []WeeklyDay   `json:"weekly"`
	Calendar      []CalendarDay `json:"calendar"`
	LoadEvolution []LoadPoint   `json:"loadEvolution"`
}
