package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymquest/gymquest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionAlreadyCompleted = errors.New("session already completed")
	ErrExerciseNotFound        = errors.New("exercise not found")
	ErrWorkoutNotFound         = errors.New("workout not found")
)

type ListParams struct {
	UserID        int
	From          *time.Time
	To            *time.Time
	OnlyCompleted bool
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Start creates a new session for the given workout. The workout has
// to exist, be active and belong to the same user.
func (r *Repo) Start(ctx context.Context, userID, workoutID int, startedAt time.Time) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	session := &WorkoutSession{
		UserID:    userID,
		WorkoutID: workoutID,
		StartedAt: startedAt,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session (user_id, workout_id, started_at, is_completed)
			SELECT $1, w.id, $3, FALSE
			FROM workout w
			WHERE w.id = $2 AND w.user_id = $1 AND w.is_active = TRUE
		RETURNING id;`,
		userID, workoutID, startedAt,
	).Scan(&session.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))

	return session, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	session := &WorkoutSession{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, workout_id, started_at, completed_at, is_completed,
				COALESCE(duration_minutes, 0), COALESCE(xp_earned, 0)
			FROM workout_session
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(
		&session.ID, &session.UserID, &session.WorkoutID, &session.StartedAt,
		&session.CompletedAt, &session.IsCompleted, &session.DurationMinutes, &session.XPEarned,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.Bool("only-completed", params.OnlyCompleted))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_id, started_at, completed_at, is_completed,
				COALESCE(duration_minutes, 0), COALESCE(xp_earned, 0)
			FROM workout_session
			WHERE user_id = $1
				AND ($2::timestamptz IS NULL OR started_at >= $2)
				AND ($3::timestamptz IS NULL OR started_at <= $3)
				AND ($4::boolean IS FALSE OR is_completed = TRUE)
			ORDER BY started_at DESC;`,
		params.UserID, params.From, params.To, params.OnlyCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions := make([]WorkoutSession, 0)
	for rows.Next() {
		var s WorkoutSession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.WorkoutID, &s.StartedAt,
			&s.CompletedAt, &s.IsCompleted, &s.DurationMinutes, &s.XPEarned,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// Complete marks the session as completed and credits the earned XP to
// the user progress row, all in a single transaction. The row lock plus
// the is_completed check make sure two concurrent completions of the
// same session credit the XP only once.
func (r *Repo) Complete(ctx context.Context, id, userID int, completedAt time.Time, durationMinutes, xp int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.Int("xp", xp))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var isCompleted bool
	err = tx.QueryRow(
		ctx,
		`SELECT is_completed FROM workout_session WHERE id = $1 AND user_id = $2 FOR UPDATE;`,
		id, userID,
	).Scan(&isCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}
	if isCompleted {
		return ErrSessionAlreadyCompleted
	}

	tag, err := tx.Exec(
		ctx,
		`UPDATE workout_session
			SET is_completed = TRUE, completed_at = $3, duration_minutes = $4, xp_earned = $5
			WHERE id = $1 AND user_id = $2 AND is_completed = FALSE;`,
		id, userID, completedAt, durationMinutes, xp,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionAlreadyCompleted
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO user_progress
				(user_id, total_workouts, total_xp, level, current_streak, longest_streak, last_workout_at, updated_at)
			VALUES ($1, 1, $2, 1, 1, 1, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			total_workouts = user_progress.total_workouts + 1,
			total_xp = user_progress.total_xp + EXCLUDED.total_xp,
			level = (user_progress.total_workouts + 1) / 5 + 1,
			current_streak = user_progress.current_streak + 1,
			longest_streak = GREATEST(user_progress.longest_streak, user_progress.current_streak + 1),
			last_workout_at = EXCLUDED.last_workout_at,
			updated_at = EXCLUDED.updated_at;`,
		userID, xp, completedAt,
	)
	if err != nil {
		return fmt.Errorf("credit user progress: %w", err)
	}

	return nil
}

func (r *Repo) AddExercise(ctx context.Context, userID int, exercise WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", exercise.SessionID))

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_exercise
				(session_id, name, muscle_group, sets, reps, weight, sets_completed, is_completed, created_at)
			SELECT s.id, $3, $4, $5, $6, $7, 0, FALSE, $8
			FROM workout_session s
			WHERE s.id = $1 AND s.user_id = $2 AND s.is_completed = FALSE
		RETURNING id;`,
		exercise.SessionID, userID,
		exercise.Name, exercise.MuscleGroup, exercise.Sets, exercise.Reps, exercise.Weight,
		exercise.CreatedAt,
	).Scan(&exercise.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))

	return &exercise, nil
}

func (r *Repo) SessionExercises(ctx context.Context, sessionID, userID int) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.session_id, e.name, e.muscle_group, e.sets, e.reps, e.weight,
				e.sets_completed, e.is_completed, e.created_at
			FROM workout_exercise e
			JOIN workout_session s ON e.session_id = s.id
			WHERE e.session_id = $1 AND s.user_id = $2
			ORDER BY e.created_at ASC;`,
		sessionID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises := make([]WorkoutExercise, 0)
	for rows.Next() {
		var e WorkoutExercise
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Name, &e.MuscleGroup, &e.Sets, &e.Reps, &e.Weight,
			&e.SetsCompleted, &e.IsCompleted, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	return exercises, nil
}

// CompletedExercises returns all completed exercises of the user whose
// session started at or after the given time, oldest first.
func (r *Repo) CompletedExercises(ctx context.Context, userID int, from time.Time) (_ []ExerciseLoad, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.completedExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("from", from.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT s.started_at, e.name, e.weight, e.reps
			FROM workout_exercise e
			JOIN workout_session s ON e.session_id = s.id
			WHERE s.user_id = $1 AND s.started_at >= $2 AND e.is_completed = TRUE
			ORDER BY s.started_at ASC;`,
		userID, from,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	loads := make([]ExerciseLoad, 0)
	for rows.Next() {
		var l ExerciseLoad
		if err := rows.Scan(&l.StartedAt, &l.Exercise, &l.Weight, &l.Reps); err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}

// UpdateExerciseProgress stores the number of completed sets, marking
// the exercise as completed once all planned sets are done. Reporting
// more sets than planned is allowed and keeps the exercise completed.
func (r *Repo) UpdateExerciseProgress(ctx context.Context, exerciseID, userID, setsCompleted int) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.updateExerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.Int("sets.completed", setsCompleted))

	exercise := &WorkoutExercise{}
	err = r.db.QueryRow(
		ctx,
		`UPDATE workout_exercise e
			SET sets_completed = $3,
				is_completed = $3 >= e.sets
			FROM workout_session s
			WHERE e.id = $1 AND e.session_id = s.id AND s.user_id = $2
		RETURNING e.id, e.session_id, e.name, e.muscle_group, e.sets, e.reps, e.weight,
			e.sets_completed, e.is_completed, e.created_at;`,
		exerciseID, userID, setsCompleted,
	).Scan(
		&exercise.ID, &exercise.SessionID, &exercise.Name, &exercise.MuscleGroup,
		&exercise.Sets, &exercise.Reps, &exercise.Weight,
		&exercise.SetsCompleted, &exercise.IsCompleted, &exercise.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return exercise, nil
}
