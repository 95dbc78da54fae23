// Package dailylimit implements the per-user quota ledger storage using PostgreSQL.
package dailylimit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

const table = "user_daily_limits"

var columns = []string{"user_id", "stanzas_written_today", "last_submission_at", "last_theme_id"}

// Repo provides quota ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily limit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// LockOrCreate returns the user's ledger row, inserting a zeroed one first
// if none exists, and holds a row lock until the transaction ends.
// Concurrent submissions by the same user serialize here.
func (r *Repo) LockOrCreate(ctx context.Context, userID int64) (*domain.DailyLimit, error) {
	insert, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ensure daily_limit: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, insert, args...); err != nil {
		return nil, postgres.MapError(err, "daily_limit", userID)
	}

	return r.get(ctx, userID, "FOR UPDATE")
}

// Get returns the user's ledger row without locking.
// Returns domain.ErrNotFound if the user never submitted.
func (r *Repo) Get(ctx context.Context, userID int64) (*domain.DailyLimit, error) {
	return r.get(ctx, userID, "")
}

func (r *Repo) get(ctx context.Context, userID int64, suffix string) (*domain.DailyLimit, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"user_id": userID})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get daily_limit: %w", err)
	}

	var l domain.DailyLimit
	err = r.q(ctx).QueryRow(ctx, query, args...).
		Scan(&l.UserID, &l.StanzasWrittenToday, &l.LastSubmissionAt, &l.LastThemeID)
	if err != nil {
		return nil, postgres.MapError(err, "daily_limit", userID)
	}

	return &l, nil
}

// Reset zeroes today's count and forgets the last theme. The last submission
// instant is kept so a repeated reset on the same day is a no-op in effect.
func (r *Repo) Reset(ctx context.Context, userID int64) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("stanzas_written_today", 0).
		Set("last_theme_id", nil).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reset daily_limit: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "daily_limit", userID)
	}
	return nil
}

// RecordSubmission counts one accepted stanza and remembers its theme.
func (r *Repo) RecordSubmission(ctx context.Context, userID, themeID int64, at time.Time) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("stanzas_written_today", sq.Expr("stanzas_written_today + 1")).
		Set("last_submission_at", at).
		Set("last_theme_id", themeID).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build record daily_limit: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "daily_limit", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("daily_limit %d: %w", userID, domain.ErrNotFound)
	}
	return nil
}
