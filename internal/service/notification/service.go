// Package notification derives unread-approval counts for authors. The
// acknowledged watermark belongs to the client; only the approved total is
// stored here.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

type approvedCounter interface {
	CountByAuthorStatus(ctx context.Context, authorID int64, status domain.StanzaStatus) (int, error)
}

// Service counts approved stanzas per author.
type Service struct {
	stanzas approvedCounter
	log     *slog.Logger
}

// NewService creates a notification Service.
func NewService(log *slog.Logger, stanzas approvedCounter) *Service {
	return &Service{
		stanzas: stanzas,
		log:     log.With("service", "notification"),
	}
}

// Counts is the author's approved total and what is left after the watermark.
type Counts struct {
	Total  int
	Unread int
}

// TotalApproved returns how many of the user's stanzas have been approved.
func (s *Service) TotalApproved(ctx context.Context, userID int64) (int, error) {
	if userID <= 0 {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.stanzas.CountByAuthorStatus(ctx, userID, domain.StanzaStatusApproved)
	if err != nil {
		if domain.IsExpected(err) {
			return 0, err
		}
		s.log.ErrorContext(ctx, "count approved failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("count approved: %w", domain.ErrStorage)
	}
	return n, nil
}

// UnreadApprovedCount returns total approved minus the watermark, floored at 0.
// A negative watermark counts as 0.
func (s *Service) UnreadApprovedCount(ctx context.Context, userID int64, watermark int) (Counts, error) {
	total, err := s.TotalApproved(ctx, userID)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Total: total, Unread: max(0, total-max(0, watermark))}, nil
}
