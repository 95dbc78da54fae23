package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/moderation"
	"github.com/heartmarshall/poetic-threads/pkg/ctxutil"
)

type moderationService interface {
	ListPending(ctx context.Context, adminID int64) ([]domain.PendingStanza, error)
	Decide(ctx context.Context, input moderation.DecideInput) (*domain.Stanza, error)
	Stats(ctx context.Context, adminID int64) (*domain.ModerationStats, error)
	History(ctx context.Context, adminID, stanzaID int64) ([]domain.AuditRecord, error)
}

// ModerationHandler serves admin moderation endpoints.
type ModerationHandler struct {
	moderation moderationService
	log        *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(moderation moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderation: moderation,
		log:        logger.With("handler", "moderation"),
	}
}

// Pending returns the moderation queue.
// GET /stanzas/pending
func (h *ModerationHandler) Pending(w http.ResponseWriter, r *http.Request) {
	adminID, _ := ctxutil.UserIDFromCtx(r.Context())
	items, err := h.moderation.ListPending(r.Context(), adminID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]stanzaDTO, len(items))
	for i, p := range items {
		out[i] = toStanzaDTO(p.Stanza)
		out[i].ThemeTitle = p.ThemeTitle
	}
	writeJSON(w, http.StatusOK, out)
}

type decideRequest struct {
	Status string `json:"status"`
}

// Decide approves or rejects a pending stanza.
// PATCH /stanzas/{id}/status
func (h *ModerationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	stanzaID, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req decideRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	adminID, _ := ctxutil.UserIDFromCtx(r.Context())
	stanza, err := h.moderation.Decide(r.Context(), moderation.DecideInput{
		StanzaID: stanzaID,
		AdminID:  adminID,
		Decision: domain.StanzaStatus(req.Status),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStanzaDTO(*stanza))
}

// Stats returns catalog counters for the dashboard.
// GET /admin/stats
func (h *ModerationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	adminID, _ := ctxutil.UserIDFromCtx(r.Context())
	stats, err := h.moderation.Stats(r.Context(), adminID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"users":    stats.Users,
		"themes":   stats.Themes,
		"pending":  stats.Pending,
		"approved": stats.Approved,
		"rejected": stats.Rejected,
	})
}

// History returns the decisions recorded for one stanza.
// GET /stanzas/{id}/history
func (h *ModerationHandler) History(w http.ResponseWriter, r *http.Request) {
	stanzaID, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	adminID, _ := ctxutil.UserIDFromCtx(r.Context())
	records, err := h.moderation.History(r.Context(), adminID, stanzaID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]auditDTO, len(records))
	for i, rec := range records {
		out[i] = auditDTO{
			ID:        rec.ID.String(),
			ActorID:   rec.ActorID,
			From:      rec.From.String(),
			To:        rec.To.String(),
			CreatedAt: rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
