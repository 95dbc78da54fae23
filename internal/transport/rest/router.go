package rest

import (
	"net/http"

	"github.com/heartmarshall/poetic-threads/internal/transport/middleware"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Health     *HealthHandler
	Themes     *ThemeHandler
	Stanzas    *StanzaHandler
	Moderation *ModerationHandler
}

// NewRouter registers all routes. submitLimit guards POST /stanzas and may be nil.
// Global middleware (recovery, logging, auth) is applied by the caller.
func NewRouter(h Handlers, submitLimit middleware.Middleware) *http.ServeMux {
	if submitLimit == nil {
		submitLimit = func(next http.Handler) http.Handler { return next }
	}
	user := middleware.RequireAuth
	admin := middleware.RequireAdmin

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /themes", h.Themes.List)
	mux.Handle("POST /themes", admin(http.HandlerFunc(h.Themes.Create)))

	mux.Handle("POST /stanzas", user(submitLimit(http.HandlerFunc(h.Stanzas.Submit))))
	mux.HandleFunc("GET /stanzas", h.Stanzas.List)
	mux.HandleFunc("GET /stanzas/last", h.Stanzas.Last)
	mux.Handle("GET /quota", user(http.HandlerFunc(h.Stanzas.Quota)))
	mux.Handle("GET /notifications/approved-count", user(http.HandlerFunc(h.Stanzas.ApprovedCount)))
	mux.HandleFunc("GET /stats", h.Stanzas.Totals)

	mux.Handle("GET /stanzas/pending", admin(http.HandlerFunc(h.Moderation.Pending)))
	mux.Handle("PATCH /stanzas/{id}/status", admin(http.HandlerFunc(h.Moderation.Decide)))
	mux.Handle("GET /stanzas/{id}/history", admin(http.HandlerFunc(h.Moderation.History)))
	mux.Handle("GET /admin/stats", admin(http.HandlerFunc(h.Moderation.Stats)))

	return mux
}
