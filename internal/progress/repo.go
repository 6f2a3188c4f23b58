package progress

import (
	"context"
	"errors"

	"github.com/gymquest/gymquest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the accrual row for the user. Users who never completed
// a session have no row yet, they get a fresh level 1 zero row instead
// of an error.
func (r *Repo) Get(ctx context.Context, userID int) (_ *UserProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	userProgress := &UserProgress{}
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, total_workouts, total_xp, level, current_streak, longest_streak, last_workout_at, updated_at
			FROM user_progress
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&userProgress.UserID, &userProgress.TotalWorkouts, &userProgress.TotalXP,
		&userProgress.Level, &userProgress.CurrentStreak, &userProgress.LongestStreak,
		&userProgress.LastWorkoutAt, &userProgress.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &UserProgress{UserID: userID, Level: 1}, nil
		}
		return nil, err
	}

	return userProgress, nil
}
