// Package pagination assigns stanzas to fixed-size pages and windows the
// approved set for display.
package pagination

import (
	"context"
	"fmt"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

// DefaultPageSize is the number of stanzas per page.
const DefaultPageSize = 20

// PageFor returns the page a new stanza lands on when approved stanzas
// already number approvedCount.
func PageFor(approvedCount, pageSize int) int {
	if approvedCount < 0 {
		approvedCount = 0
	}
	return approvedCount/pageSize + 1
}

// TotalPages returns how many windows of pageSize cover total items.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Offset returns the first item index of page. Pages below 1 are treated as 1.
func Offset(page, pageSize int) int {
	return (ClampPage(page) - 1) * pageSize
}

// ClampPage normalizes a requested page number.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

type approvedCounter interface {
	CountByThemeStatus(ctx context.Context, themeID int64, status domain.StanzaStatus) (int, error)
}

// Assigner fixes a stanza's page at submission time from the theme's current
// approved count. Two racing submissions may receive the same page.
type Assigner struct {
	stanzas  approvedCounter
	pageSize int
}

// NewAssigner creates an Assigner. A non-positive pageSize means DefaultPageSize.
func NewAssigner(stanzas approvedCounter, pageSize int) *Assigner {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Assigner{stanzas: stanzas, pageSize: pageSize}
}

// PageSize returns the configured window size.
func (a *Assigner) PageSize() int { return a.pageSize }

// AssignPage returns the page (>= 1) a stanza submitted now to themeID belongs to.
func (a *Assigner) AssignPage(ctx context.Context, themeID int64) (int, error) {
	approved, err := a.stanzas.CountByThemeStatus(ctx, themeID, domain.StanzaStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("count approved stanzas: %w", err)
	}
	return PageFor(approved, a.pageSize), nil
}
