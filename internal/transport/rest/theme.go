package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/theme"
	"github.com/heartmarshall/poetic-threads/pkg/ctxutil"
)

type themeService interface {
	List(ctx context.Context) ([]domain.Theme, error)
	Create(ctx context.Context, adminID int64, input theme.CreateInput) (*domain.Theme, error)
}

// ThemeHandler serves the theme catalog.
type ThemeHandler struct {
	themes themeService
	log    *slog.Logger
}

// NewThemeHandler creates a ThemeHandler.
func NewThemeHandler(themes themeService, logger *slog.Logger) *ThemeHandler {
	return &ThemeHandler{themes: themes, log: logger.With("handler", "theme")}
}

// List returns all themes.
// GET /themes
func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	themes, err := h.themes.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]themeDTO, len(themes))
	for i, t := range themes {
		out[i] = toThemeDTO(t)
	}
	writeJSON(w, http.StatusOK, out)
}

type createThemeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Pages       int    `json:"pages"`
}

// Create adds a theme.
// POST /themes
func (h *ThemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	adminID, _ := ctxutil.UserIDFromCtx(r.Context())
	created, err := h.themes.Create(r.Context(), adminID, theme.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Pages:       req.Pages,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toThemeDTO(*created))
}
