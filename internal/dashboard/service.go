package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/gymquest/gymquest/internal/progress"
	"github.com/gymquest/gymquest/internal/sessions"
	"github.com/gymquest/gymquest/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	minWeeklyGoal = 1
	maxWeeklyGoal = 20

	calendarDays      = 7
	loadEvolutionDays = 30
)

var ErrInvalidWeeklyGoal = errors.New("invalid weekly goal")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type settingsRepo interface {
	WeeklyGoal(ctx context.Context, userID int) (int, error)
	SetWeeklyGoal(ctx context.Context, userID, weeklyGoal int) error
}

type progressService interface {
	Stats(ctx context.Context, userID int) (*progress.Stats, error)
}

type sessionsService interface {
	List(ctx context.Context, params sessions.ListParams) ([]sessions.WorkoutSession, error)
	CompletedExercises(ctx context.Context, userID int, from time.Time) ([]sessions.ExerciseLoad, error)
}

type Service struct {
	settings settingsRepo
	progress progressService
	sessions sessionsService

	// NowFunc is used instead of time.Now, so it can be set in tests
	NowFunc func() time.Time
}

func NewService(settings settingsRepo, progressService progressService, sessionsService sessionsService) *Service {
	return &Service{
		settings: settings,
		progress: progressService,
		sessions: sessionsService,
		NowFunc:  time.Now,
	}
}

// Data assembles everything the dashboard screen shows in one call:
// the Monday anchored week breakdown, the trailing 7 day calendar, the
// trailing 30 day training load and the weekly goal summary.
func (s *Service) Data(ctx context.Context, userID int) (_ *Data, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.data")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	weeklyGoal, err := s.settings.WeeklyGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.progress.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.NowFunc()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	weekStart := progress.WeekStart(now)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)
	weekSessions, err := s.sessions.List(ctx, sessions.ListParams{
		UserID: userID,
		From:   &weekStart,
		To:     &weekEnd,
	})
	if err != nil {
		return nil, err
	}

	weekly := make([]WeeklyDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		started, completed := sessionsOnDay(weekSessions, day)
		weekly = append(weekly, WeeklyDay{
			Day:       day.Format("Mon"),
			Sessions:  started,
			Completed: completed > 0,
			Streak:    completed,
		})
	}

	calendarFrom := today.AddDate(0, 0, -(calendarDays - 1))
	calendarSessions, err := s.sessions.List(ctx, sessions.ListParams{
		UserID: userID,
		From:   &calendarFrom,
	})
	if err != nil {
		return nil, err
	}

	calendar := make([]CalendarDay, 0, calendarDays)
	for i := calendarDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		started, completed := sessionsOnDay(calendarSessions, day)
		calendar = append(calendar, CalendarDay{
			Day:       day.Format("Mon"),
			Date:      day.Day(),
			Completed: completed > 0,
			Sessions:  started,
			IsToday:   day.Equal(today),
		})
	}

	loadFrom := today.AddDate(0, 0, -(loadEvolutionDays - 1))
	loads, err := s.sessions.CompletedExercises(ctx, userID, loadFrom)
	if err != nil {
		return nil, err
	}

	loadEvolution := make([]LoadPoint, 0, len(loads))
	for _, load := range loads {
		loadEvolution = append(loadEvolution, LoadPoint{
			Date:     load.StartedAt.In(now.Location()).Format("02/01"),
			Weight:   load.Weight,
			Reps:     load.Reps,
			Exercise: load.Exercise,
		})
	}

	completedThisWeek := 0
	for _, session := range weekSessions {
		if session.IsCompleted {
			completedThisWeek++
		}
	}
	streakDays := 0
	for _, day := range weekly {
		if day.Completed {
			streakDays++
		}
	}

	return &Data{
		Summary: Summary{
			WeeklyGoal:     weeklyGoal,
			TotalSessions:  len(weekSessions),
			CompletionRate: float64(completedThisWeek) / float64(weeklyGoal) * 100,
			StreakDays:     streakDays,
			Level:          stats.Level,
			TotalXP:        stats.TotalXP,
		},
		Weekly:        weekly,
		Calendar:      calendar,
		LoadEvolution: loadEvolution,
	}, nil
}

func sessionsOnDay(list []sessions.WorkoutSession, day time.Time) (started, completed int) {
	dayEnd := day.AddDate(0, 0, 1)
	for _, session := range list {
		startedAt := session.StartedAt.In(day.Location())
		if startedAt.Before(day) || !startedAt.Before(dayEnd) {
			continue
		}
		started++
		if session.IsCompleted {
			completed++
		}
	}
	return started, completed
}

func (s *Service) UpdateWeeklyGoal(ctx context.Context, userID, weeklyGoal int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.updateWeeklyGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("weekly.goal", weeklyGoal))

	if weeklyGoal < minWeeklyGoal || weeklyGoal > maxWeeklyGoal {
		return ErrInvalidWeeklyGoal
	}

	return s.settings.SetWeeklyGoal(ctx, userID, weeklyGoal)
}
