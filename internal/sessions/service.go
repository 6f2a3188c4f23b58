package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/gymquest/gymquest/internal/telemetry/metrics"
	"github.com/gymquest/gymquest/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// XP for a completed session: a flat base, plus 2 XP per full minute
// spent in the gym, plus the completion bonus.
const (
	sessionBaseXP     = 10
	xpPerMinute       = 2
	completionBonusXP = 50
)

var (
	ErrInvalidExercise      = errors.New("invalid exercise")
	ErrInvalidSetsCompleted = errors.New("invalid sets completed")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Start(ctx context.Context, userID, workoutID int, startedAt time.Time) (*WorkoutSession, error)
	Get(ctx context.Context, id, userID int) (*WorkoutSession, error)
	List(ctx context.Context, params ListParams) ([]WorkoutSession, error)
	Complete(ctx context.Context, id, userID int, completedAt time.Time, durationMinutes, xp int) error
	AddExercise(ctx context.Context, userID int, exercise WorkoutExercise) (*WorkoutExercise, error)
	SessionExercises(ctx context.Context, sessionID, userID int) ([]WorkoutExercise, error)
	CompletedExercises(ctx context.Context, userID int, from time.Time) ([]ExerciseLoad, error)
	UpdateExerciseProgress(ctx context.Context, exerciseID, userID, setsCompleted int) (*WorkoutExercise, error)
}

type Service struct {
	repo    sessionsRepo
	metrics *metrics.Manager

	// NowFunc is used instead of time.Now, so it can be set in tests
	NowFunc func() time.Time
}

func NewService(repo sessionsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metricsManager,
		NowFunc: time.Now,
	}
}

func (s *Service) Start(ctx context.Context, userID, workoutID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.repo.Start(ctx, userID, workoutID, s.NowFunc())
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSessionsStarted.Inc()

	return session, nil
}

func (s *Service) Get(ctx context.Context, id, userID int) (*WorkoutSession, error) {
	return s.repo.Get(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, params ListParams) ([]WorkoutSession, error) {
	return s.repo.List(ctx, params)
}

// Complete finishes the session: it computes the duration from the
// session start, credits the XP and bumps the user progress. Completing
// an already completed session fails with ErrSessionAlreadyCompleted.
func (s *Service) Complete(ctx context.Context, id, userID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	session, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return nil, ErrSessionAlreadyCompleted
	}

	completedAt := s.NowFunc()
	durationMinutes := int(completedAt.Sub(session.StartedAt) / time.Minute)
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	xp := sessionBaseXP + xpPerMinute*durationMinutes + completionBonusXP

	if err := s.repo.Complete(ctx, id, userID, completedAt, durationMinutes, xp); err != nil {
		return nil, err
	}

	s.metrics.CounterSessionsCompleted.Inc()
	s.metrics.CounterXPCredited.Add(float64(xp))

	session.IsCompleted = true
	session.CompletedAt = &completedAt
	session.DurationMinutes = durationMinutes
	session.XPEarned = xp
	return session, nil
}

func (s *Service) AddExercise(ctx context.Context, userID int, exercise WorkoutExercise) (*WorkoutExercise, error) {
	if exercise.Name == "" || exercise.Sets <= 0 || exercise.Reps <= 0 || exercise.Weight < 0 {
		return nil, ErrInvalidExercise
	}
	return s.repo.AddExercise(ctx, userID, exercise)
}

func (s *Service) Exercises(ctx context.Context, sessionID, userID int) ([]WorkoutExercise, error) {
	return s.repo.SessionExercises(ctx, sessionID, userID)
}

func (s *Service) CompletedExercises(ctx context.Context, userID int, from time.Time) ([]ExerciseLoad, error) {
	return s.repo.CompletedExercises(ctx, userID, from)
}

func (s *Service) UpdateExerciseProgress(ctx context.Context, exerciseID, userID, setsCompleted int) (*WorkoutExercise, error) {
	if setsCompleted < 0 {
		return nil, ErrInvalidSetsCompleted
	}
	return s.repo.UpdateExerciseProgress(ctx, exerciseID, userID, setsCompleted)
}
