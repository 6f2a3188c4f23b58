package dashboard

import (
	"context"
	"errors"

	"github.com/gymquest/gymquest/internal/telemetry/tracing"
	"github.com/gymquest/gymquest/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ErrUnknownUser: the user row behind the settings upsert is gone,
// e.g. removed while an issued token was still live.
var ErrUnknownUser = errors.New("unknown user")

type SettingsRepo struct {
	db                *pgxpool.Pool
	defaultWeeklyGoal int
}

func NewSettingsRepo(db *pgxpool.Pool, defaultWeeklyGoal int) *SettingsRepo {
	return &SettingsRepo{
		db:                db,
		defaultWeeklyGoal: defaultWeeklyGoal,
	}
}

// WeeklyGoal returns the user's weekly workout goal, falling back to
// the configured default for users who never set one.
func (r *SettingsRepo) WeeklyGoal(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.weeklyGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var weeklyGoal int
	err = r.db.QueryRow(
		ctx,
		`SELECT weekly_goal FROM user_settings WHERE user_id = $1;`,
		userID,
	).Scan(&weeklyGoal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.defaultWeeklyGoal, nil
		}
		return 0, err
	}

	return weeklyGoal, nil
}

func (r *SettingsRepo) SetWeeklyGoal(ctx context.Context, userID, weeklyGoal int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.setWeeklyGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("weekly.goal", weeklyGoal))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_settings (user_id, weekly_goal)
			VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET weekly_goal = EXCLUDED.weekly_goal;`,
		userID, weeklyGoal,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrUnknownUser
	}
	return err
}
