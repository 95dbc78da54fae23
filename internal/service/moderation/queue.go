package moderation

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

// ListPending returns the moderation queue, oldest first.
func (s *Service) ListPending(ctx context.Context, adminID int64) ([]domain.PendingStanza, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}

	items, err := s.stanzas.ListPending(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list pending", err, slog.Int64("admin_id", adminID))
	}
	return items, nil
}

// Stats returns catalog counters for the admin dashboard.
func (s *Service) Stats(ctx context.Context, adminID int64) (*domain.ModerationStats, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}

	var stats domain.ModerationStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Users, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Themes, err = s.themes.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Pending, err = s.stanzas.CountByStatus(gctx, domain.StanzaStatusPending)
		return err
	})
	g.Go(func() (err error) {
		stats.Approved, err = s.stanzas.CountByStatus(gctx, domain.StanzaStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		stats.Rejected, err = s.stanzas.CountByStatus(gctx, domain.StanzaStatusRejected)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "moderation stats", err, slog.Int64("admin_id", adminID))
	}

	return &stats, nil
}

// History returns the audit trail of one stanza, oldest first.
func (s *Service) History(ctx context.Context, adminID, stanzaID int64) ([]domain.AuditRecord, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	if stanzaID <= 0 {
		return nil, domain.NewValidationError("stanza_id", "must be a positive integer")
	}

	records, err := s.audit.ListByStanza(ctx, stanzaID)
	if err != nil {
		return nil, s.fail(ctx, "stanza history", err,
			slog.Int64("admin_id", adminID),
			slog.Int64("stanza_id", stanzaID),
		)
	}
	return records, nil
}
