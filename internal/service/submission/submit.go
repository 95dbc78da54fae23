package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
)

const previewLength = 50

// Submit creates a pending stanza for the author.
//
// Quota denials return domain.ErrDailyCapExceeded or domain.ErrConsecutiveTheme;
// any rollover the ledger applied is still committed. A missing theme returns
// domain.ErrNotFound. Persistence faults are logged and returned as
// domain.ErrStorage with nothing written.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Stanza, error) {
	content, err := input.Validate(s.maxLength)
	if err != nil {
		return nil, err
	}

	now := s.oracle.Now()

	var (
		created  *domain.Stanza
		decision quota.Decision
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.themes.GetByID(txCtx, input.ThemeID); err != nil {
			return fmt.Errorf("get theme: %w", err)
		}

		var err error
		decision, err = s.ledger.CheckAndReserve(txCtx, input.AuthorID, input.ThemeID, now)
		if err != nil {
			return fmt.Errorf("check quota: %w", err)
		}
		if !decision.Allowed {
			return nil
		}

		page, err := s.pages.AssignPage(txCtx, input.ThemeID)
		if err != nil {
			return fmt.Errorf("assign page: %w", err)
		}

		created, err = s.stanzas.Create(txCtx, domain.Stanza{
			ThemeID:    input.ThemeID,
			AuthorID:   input.AuthorID,
			Content:    content,
			Status:     domain.StanzaStatusPending,
			PageNumber: page,
		})
		if err != nil {
			return fmt.Errorf("create stanza: %w", err)
		}

		return s.ledger.Commit(txCtx, input.AuthorID, input.ThemeID, now)
	})
	if err != nil {
		return nil, s.fail(ctx, input, content, err)
	}

	if !decision.Allowed {
		s.log.InfoContext(ctx, "stanza denied",
			slog.Int64("user_id", input.AuthorID),
			slog.Int64("theme_id", input.ThemeID),
			slog.String("reason", decision.Reason.String()),
		)
		return nil, decision.Reason.Err()
	}

	s.log.InfoContext(ctx, "stanza submitted",
		slog.Int64("user_id", input.AuthorID),
		slog.Int64("theme_id", input.ThemeID),
		slog.Int64("stanza_id", created.ID),
		slog.Int("page", created.PageNumber),
	)

	return created, nil
}

func (s *Service) fail(ctx context.Context, input SubmitInput, content string, err error) error {
	if domain.IsExpected(err) {
		return err
	}
	s.log.ErrorContext(ctx, "submit stanza failed",
		slog.Int64("user_id", input.AuthorID),
		slog.Int64("theme_id", input.ThemeID),
		slog.String("preview", domain.Preview(content, previewLength)),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("submit stanza: %w", domain.ErrStorage)
}
