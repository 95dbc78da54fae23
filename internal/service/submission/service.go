// Package submission accepts new stanzas: it validates input, consults the
// quota ledger, assigns a page and persists the stanza as pending, all in one
// transaction.
package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/clock"
	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
)

// DefaultMaxLength bounds stanza content, in runes.
const DefaultMaxLength = 2000

type stanzaRepo interface {
	Create(ctx context.Context, s domain.Stanza) (*domain.Stanza, error)
}

type themeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Theme, error)
}

type quotaLedger interface {
	CheckAndReserve(ctx context.Context, userID, themeID int64, now time.Time) (quota.Decision, error)
	Commit(ctx context.Context, userID, themeID int64, now time.Time) error
}

type pageAssigner interface {
	AssignPage(ctx context.Context, themeID int64) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the submission engine.
type Service struct {
	stanzas   stanzaRepo
	themes    themeRepo
	ledger    quotaLedger
	pages     pageAssigner
	tx        txManager
	oracle    *clock.Oracle
	maxLength int
	log       *slog.Logger
}

// NewService creates a submission Service. A non-positive maxLength falls
// back to DefaultMaxLength.
func NewService(
	log *slog.Logger,
	stanzas stanzaRepo,
	themes themeRepo,
	ledger quotaLedger,
	pages pageAssigner,
	tx txManager,
	oracle *clock.Oracle,
	maxLength int,
) *Service {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if oracle == nil {
		oracle = clock.NewOracle(nil, nil)
	}
	return &Service{
		stanzas:   stanzas,
		themes:    themes,
		ledger:    ledger,
		pages:     pages,
		tx:        tx,
		oracle:    oracle,
		maxLength: maxLength,
		log:       log.With("service", "submission"),
	}
}
