package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

// DecideInput holds the parameters for a moderation decision.
type DecideInput struct {
	StanzaID int64
	AdminID  int64
	Decision domain.StanzaStatus
}

// Validate checks all fields and collects all errors.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError
	if i.StanzaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stanza_id", Message: "must be a positive integer"})
	}
	if !i.Decision.IsDecision() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be approved or rejected"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Decide applies one terminal transition to a pending stanza and records it in
// the audit log within the same transaction.
// The caller is authorized before the input is looked at.
// A stanza that is no longer pending yields domain.ErrAlreadyDecided.
func (s *Service) Decide(ctx context.Context, input DecideInput) (*domain.Stanza, error) {
	if err := s.authorize(ctx, input.AdminID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var stanza *domain.Stanza
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		stanza, err = s.stanzas.GetByIDForUpdate(txCtx, input.StanzaID)
		if err != nil {
			return fmt.Errorf("get stanza: %w", err)
		}
		if stanza.Status != domain.StanzaStatusPending {
			return fmt.Errorf("stanza %d is %s: %w", stanza.ID, stanza.Status, domain.ErrAlreadyDecided)
		}

		if err := s.stanzas.UpdateStatus(txCtx, stanza.ID, input.Decision); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:   input.AdminID,
			StanzaID:  stanza.ID,
			From:      stanza.Status,
			To:        input.Decision,
			CreatedAt: s.oracle.Now(),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		stanza.Status = input.Decision
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "decide stanza", err,
			slog.Int64("stanza_id", input.StanzaID),
			slog.Int64("admin_id", input.AdminID),
			slog.String("decision", input.Decision.String()),
		)
	}

	s.log.InfoContext(ctx, "stanza decided",
		slog.Int64("stanza_id", stanza.ID),
		slog.Int64("admin_id", input.AdminID),
		slog.Int64("theme_id", stanza.ThemeID),
		slog.String("decision", input.Decision.String()),
	)

	return stanza, nil
}
