package domain

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a collaborative-writing thread that stanzas attach to.
type Theme struct {
	ID          int64
	Title       string
	Description string
	// Pages is a display-only hint set by the theme's creator.
	Pages     int
	CreatedAt time.Time
}

// Stanza is a single moderated contribution to a theme.
// Content and PageNumber are fixed at creation; only Status changes, once.
type Stanza struct {
	ID         int64
	ThemeID    int64
	AuthorID   int64
	AuthorName string
	Content    string
	Status     StanzaStatus
	PageNumber int
	CreatedAt  time.Time
}

// PendingStanza is a stanza awaiting moderation, enriched for the admin queue.
type PendingStanza struct {
	Stanza
	ThemeTitle string
}

// DailyLimit is the per-user quota ledger row.
type DailyLimit struct {
	UserID              int64
	StanzasWrittenToday int
	LastSubmissionAt    *time.Time
	LastThemeID         *int64
}

// StanzaPage is one window of a theme's approved stanzas.
type StanzaPage struct {
	Items      []Stanza
	Page       int
	TotalPages int
	Total      int
	// MyStanzas holds the requesting author's own non-approved stanzas,
	// newest first. Nil when the request is anonymous.
	MyStanzas []Stanza
}

// ModerationStats summarises the catalog for the admin dashboard.
type ModerationStats struct {
	Users    int
	Themes   int
	Pending  int
	Approved int
	Rejected int
}

// Totals are the public counters shown on the landing page.
type Totals struct {
	Users    int
	Themes   int
	Approved int
}

// AuditRecord logs one moderation decision.
type AuditRecord struct {
	ID        uuid.UUID
	ActorID   int64
	StanzaID  int64
	From      StanzaStatus
	To        StanzaStatus
	CreatedAt time.Time
}
