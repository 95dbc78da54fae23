package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/notification"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
	"github.com/heartmarshall/poetic-threads/internal/service/submission"
	"github.com/heartmarshall/poetic-threads/pkg/ctxutil"
)

type submitter interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*domain.Stanza, error)
}

type stanzaReader interface {
	ListApproved(ctx context.Context, themeID int64, page int, viewerID int64) (*domain.StanzaPage, error)
	LastApproved(ctx context.Context, themeID int64, n int) ([]domain.Stanza, error)
	Totals(ctx context.Context) (*domain.Totals, error)
}

type quotaStatus interface {
	Status(ctx context.Context, userID int64) (*quota.Status, error)
}

type approvalCounter interface {
	UnreadApprovedCount(ctx context.Context, userID int64, watermark int) (notification.Counts, error)
}

// StanzaHandler serves submission and public reads.
type StanzaHandler struct {
	submit submitter
	reader stanzaReader
	quota  quotaStatus
	notify approvalCounter
	log    *slog.Logger
}

// NewStanzaHandler creates a StanzaHandler.
func NewStanzaHandler(
	submit submitter,
	reader stanzaReader,
	quota quotaStatus,
	notify approvalCounter,
	logger *slog.Logger,
) *StanzaHandler {
	return &StanzaHandler{
		submit: submit,
		reader: reader,
		quota:  quota,
		notify: notify,
		log:    logger.With("handler", "stanza"),
	}
}

type submitRequest struct {
	ThemeID int64  `json:"theme_id"`
	Content string `json:"content"`
}

// Submit creates a pending stanza authored by the caller.
// POST /stanzas
func (h *StanzaHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	authorID, _ := ctxutil.UserIDFromCtx(r.Context())
	created, err := h.submit.Submit(r.Context(), submission.SubmitInput{
		ThemeID:  req.ThemeID,
		AuthorID: authorID,
		Content:  req.Content,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStanzaDTO(*created))
}

// List returns one page of approved stanzas, plus the caller's own
// unapproved stanzas when authenticated.
// GET /stanzas?theme_id=1&page=1
func (h *StanzaHandler) List(w http.ResponseWriter, r *http.Request) {
	themeID, err := queryID(r, "theme_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	viewerID, _ := ctxutil.UserIDFromCtx(r.Context())
	result, err := h.reader.ListApproved(r.Context(), themeID, page, viewerID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStanzaPageDTO(result))
}

// Last returns the most recent approved stanzas in chronological order.
// GET /stanzas/last?theme_id=1&n=5
func (h *StanzaHandler) Last(w http.ResponseWriter, r *http.Request) {
	themeID, err := queryID(r, "theme_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	n, err := queryInt(r, "n", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items, err := h.reader.LastApproved(r.Context(), themeID, n)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStanzaDTOs(items))
}

// Quota reports the caller's remaining submissions for today.
// GET /quota
func (h *StanzaHandler) Quota(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	st, err := h.quota.Status(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuotaDTO(st))
}

type approvedCountResponse struct {
	Count  int `json:"count"`
	Unread int `json:"unread"`
}

// ApprovedCount returns the caller's approved total and how many of those
// are newer than the client's watermark.
// GET /notifications/approved-count?seen=3
func (h *StanzaHandler) ApprovedCount(w http.ResponseWriter, r *http.Request) {
	seen, err := queryInt(r, "seen", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	counts, err := h.notify.UnreadApprovedCount(r.Context(), userID, seen)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, approvedCountResponse{Count: counts.Total, Unread: counts.Unread})
}

// Totals returns the public landing-page counters.
// GET /stats
func (h *StanzaHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.reader.Totals(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"users":   totals.Users,
		"themes":  totals.Themes,
		"stanzas": totals.Approved,
	})
}
