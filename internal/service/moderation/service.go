// Package moderation moves stanzas out of the pending state. Every call
// re-resolves the caller's role from the user store.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/poetic-threads/internal/clock"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

type stanzaRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Stanza, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StanzaStatus) error
	ListPending(ctx context.Context) ([]domain.PendingStanza, error)
	CountByStatus(ctx context.Context, status domain.StanzaStatus) (int, error)
}

type userRepo interface {
	GetRole(ctx context.Context, id int64) (domain.UserRole, error)
	Count(ctx context.Context) (int, error)
}

type themeCounter interface {
	Count(ctx context.Context) (int, error)
}

type auditLog interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
	ListByStanza(ctx context.Context, stanzaID int64) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the moderation engine.
type Service struct {
	stanzas stanzaRepo
	users   userRepo
	themes  themeCounter
	audit   auditLog
	tx      txManager
	oracle  *clock.Oracle
	log     *slog.Logger
}

// NewService creates a moderation Service.
func NewService(
	log *slog.Logger,
	stanzas stanzaRepo,
	users userRepo,
	themes themeCounter,
	audit auditLog,
	tx txManager,
	oracle *clock.Oracle,
) *Service {
	if oracle == nil {
		oracle = clock.NewOracle(nil, nil)
	}
	return &Service{
		stanzas: stanzas,
		users:   users,
		themes:  themes,
		audit:   audit,
		tx:      tx,
		oracle:  oracle,
		log:     log.With("service", "moderation"),
	}
}

// authorize resolves the caller's role. Unknown ids and non-admins are Forbidden.
func (s *Service) authorize(ctx context.Context, adminID int64) error {
	if adminID <= 0 {
		return domain.ErrForbidden
	}
	role, err := s.users.GetRole(ctx, adminID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrForbidden
	case err != nil:
		return s.fail(ctx, "resolve role", err, slog.Int64("admin_id", adminID))
	case !role.IsAdmin():
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) fail(ctx context.Context, op string, err error, attrs ...any) error {
	if domain.IsExpected(err) {
		return err
	}
	s.log.ErrorContext(ctx, op+" failed", append(attrs, slog.String("error", err.Error()))...)
	return fmt.Errorf("%s: %w", op, domain.ErrStorage)
}
