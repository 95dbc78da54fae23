// Package quota owns the per-user daily submission rules: the daily cap,
// the consecutive-theme rule, and lazy day rollover.
package quota

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/clock"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

// DefaultDailyCap is the number of stanzas a user may have accepted per day.
const DefaultDailyCap = 3

type limitRepo interface {
	LockOrCreate(ctx context.Context, userID int64) (*domain.DailyLimit, error)
	Get(ctx context.Context, userID int64) (*domain.DailyLimit, error)
	Reset(ctx context.Context, userID int64) error
	RecordSubmission(ctx context.Context, userID, themeID int64, at time.Time) error
}

// Decision is the outcome of a quota check.
type Decision struct {
	Allowed bool
	Reason  domain.DenyReason
}

// Allow is the permissive decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny refuses a submission for the given reason.
func Deny(reason domain.DenyReason) Decision { return Decision{Reason: reason} }

// Status is a read-only view of a user's quota for the current day.
type Status struct {
	WrittenToday int
	DailyCap     int
	Remaining    int
	LastThemeID  *int64
	ResetsAt     time.Time
}

// Ledger evaluates submissions against a user's DailyLimit row.
type Ledger struct {
	limits   limitRepo
	oracle   *clock.Oracle
	dailyCap int
	log      *slog.Logger
}

// NewLedger creates a Ledger. A non-positive cap falls back to DefaultDailyCap.
func NewLedger(log *slog.Logger, limits limitRepo, oracle *clock.Oracle, dailyCap int) *Ledger {
	if dailyCap <= 0 {
		dailyCap = DefaultDailyCap
	}
	if oracle == nil {
		oracle = clock.NewOracle(nil, nil)
	}
	return &Ledger{
		limits:   limits,
		oracle:   oracle,
		dailyCap: dailyCap,
		log:      log.With("service", "quota"),
	}
}

// DailyCap returns the configured cap.
func (l *Ledger) DailyCap() int { return l.dailyCap }

// CheckAndReserve locks the user's ledger row, applies day rollover and
// evaluates the cap and consecutive-theme rules at now.
//
// It must run inside a transaction: the row lock taken here is what keeps two
// concurrent submissions by one user from both passing the cap check. A reset
// caused by rollover is written immediately, whatever the decision.
// On Allow the caller records the submission with Commit in the same transaction.
func (l *Ledger) CheckAndReserve(ctx context.Context, userID, themeID int64, now time.Time) (Decision, error) {
	limit, err := l.limits.LockOrCreate(ctx, userID)
	if err != nil {
		return Decision{}, fmt.Errorf("lock daily limit: %w", err)
	}

	current, rolled := l.rollover(*limit, now)
	if rolled {
		if err := l.limits.Reset(ctx, userID); err != nil {
			return Decision{}, fmt.Errorf("reset daily limit: %w", err)
		}
		l.log.DebugContext(ctx, "daily limit rolled over",
			slog.Int64("user_id", userID),
			slog.String("day", l.oracle.DayKey(now)),
		)
	}

	return l.evaluate(current, themeID), nil
}

// Commit records an accepted submission: count+1, last submission at now,
// last theme set to themeID.
func (l *Ledger) Commit(ctx context.Context, userID, themeID int64, now time.Time) error {
	if err := l.limits.RecordSubmission(ctx, userID, themeID, now); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

// Status reports the user's quota for the current day without locking or
// writing. Rollover is applied to the returned view only.
func (l *Ledger) Status(ctx context.Context, userID int64) (*Status, error) {
	now := l.oracle.Now()

	limit, err := l.limits.Get(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		limit = &domain.DailyLimit{UserID: userID}
	default:
		return nil, fmt.Errorf("get daily limit: %w", err)
	}

	current, _ := l.rollover(*limit, now)
	return &Status{
		WrittenToday: current.StanzasWrittenToday,
		DailyCap:     l.dailyCap,
		Remaining:    max(0, l.dailyCap-current.StanzasWrittenToday),
		LastThemeID:  current.LastThemeID,
		ResetsAt:     l.oracle.NextDayStart(now),
	}, nil
}

// rollover returns the ledger state as seen on now's calendar day and whether
// a reset has to be persisted. Applying it twice on the same day is a no-op.
func (l *Ledger) rollover(limit domain.DailyLimit, now time.Time) (domain.DailyLimit, bool) {
	if limit.LastSubmissionAt != nil && l.oracle.SameDay(*limit.LastSubmissionAt, now) {
		return limit, false
	}
	dirty := limit.StanzasWrittenToday != 0 || limit.LastThemeID != nil
	limit.StanzasWrittenToday = 0
	limit.LastThemeID = nil
	return limit, dirty
}

func (l *Ledger) evaluate(limit domain.DailyLimit, themeID int64) Decision {
	if limit.StanzasWrittenToday >= l.dailyCap {
		return Deny(domain.DenyDailyCapExceeded)
	}
	if limit.LastThemeID != nil && *limit.LastThemeID == themeID {
		return Deny(domain.DenyConsecutiveTheme)
	}
	return Allow()
}
