package progress

import (
	"context"
	"time"

	"github.com/gymquest/gymquest/internal/sessions"
	"github.com/gymquest/gymquest/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type progressRepo interface {
	Get(ctx context.Context, userID int) (*UserProgress, error)
}

type sessionsLister interface {
	List(ctx context.Context, params sessions.ListParams) ([]sessions.WorkoutSession, error)
}

type Service struct {
	repo     progressRepo
	sessions sessionsLister

	// NowFunc is used instead of time.Now, so it can be set in tests
	NowFunc func() time.Time
}

func NewService(repo progressRepo, sessionsLister sessionsLister) *Service {
	return &Service{
		repo:     repo,
		sessions: sessionsLister,
		NowFunc:  time.Now,
	}
}

// WeekStart returns midnight of the Monday of the week t falls in.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -daysSinceMonday)
}

// Weekly builds the per-day breakdown of the current week, Monday
// through Sunday, from the user's sessions.
func (s *Service) Weekly(ctx context.Context, userID int) (_ *WeeklyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	weekStart := WeekStart(s.NowFunc())
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	weekSessions, err := s.sessions.List(ctx, sessions.ListParams{
		UserID: userID,
		From:   &weekStart,
		To:     &weekEnd,
	})
	if err != nil {
		return nil, err
	}

	userProgress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekly := &WeeklyProgress{
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Days:          make([]DayProgress, 7),
		CurrentStreak: userProgress.CurrentStreak,
		Level:         userProgress.Level,
	}

	dayIndex := make(map[string]int, 7)
	for i := range weekly.Days {
		day := weekStart.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		weekly.Days[i] = DayProgress{
			Date:    date,
			Weekday: day.Weekday().String(),
		}
		dayIndex[date] = i
	}

	for _, session := range weekSessions {
		i, ok := dayIndex[session.StartedAt.In(weekStart.Location()).Format("2006-01-02")]
		if !ok {
			continue
		}
		weekly.Days[i].Started++
		weekly.TotalStarted++
		if session.IsCompleted {
			weekly.Days[i].Completed++
			weekly.Days[i].XP += session.XPEarned
			weekly.TotalCompleted++
			weekly.TotalXP += session.XPEarned
		}
	}

	return weekly, nil
}

// Stats returns the accrued lifetime numbers, with the percentage of
// the way to the next level.
func (s *Service) Stats(ctx context.Context, userID int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	userProgress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalWorkouts: userProgress.TotalWorkouts,
		TotalXP:       userProgress.TotalXP,
		Level:         userProgress.Level,
		LevelProgress: float64(userProgress.TotalWorkouts%workoutsPerLevel) / workoutsPerLevel * 100,
		CurrentStreak: userProgress.CurrentStreak,
		LongestStreak: userProgress.LongestStreak,
		LastWorkoutAt: userProgress.LastWorkoutAt,
	}, nil
}
