// Package stanza implements the stanza repository using PostgreSQL.
package stanza

import (
	"context"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/schema"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

const table = "stanzas"

// columns selected for every read model, qualified for the users join.
var columns = []string{
	"s.id", "s.theme_id", "s.author_id", "s.content", "s.status",
	"s.page_number", "s.created_at", "u.nick_name AS author_name",
}

type row struct {
	ID         int64     `db:"id"`
	ThemeID    int64     `db:"theme_id"`
	AuthorID   int64     `db:"author_id"`
	Content    string    `db:"content"`
	Status     string    `db:"status"`
	PageNumber int       `db:"page_number"`
	CreatedAt  time.Time `db:"created_at"`
	AuthorName string    `db:"author_name"`

	// Only selected by ListPending.
	ThemeTitle string `db:"theme_title"`
}

func (r row) toDomain() domain.Stanza {
	return domain.Stanza{
		ID:         r.ID,
		ThemeID:    r.ThemeID,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		Content:    r.Content,
		Status:     domain.StanzaStatus(r.Status),
		PageNumber: r.PageNumber,
		CreatedAt:  r.CreatedAt,
	}
}

// Repo provides stanza persistence backed by PostgreSQL.
type Repo struct {
	db     postgres.Querier
	schema schema.Schema
}

// New creates a new stanza repository.
func New(db postgres.Querier, s schema.Schema) *Repo {
	return &Repo{db: db, schema: s}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectStanzas() sq.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From(table + " s").
		Join("users u ON u.id = s.author_id")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a stanza and returns it with the generated id and timestamp.
// A missing theme or author surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, s domain.Stanza) (*domain.Stanza, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("theme_id", "author_id", "content", "status", "page_number").
		Values(s.ThemeID, s.AuthorID, s.Content, string(s.Status), s.PageNumber).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert stanza: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "stanza", fmt.Sprintf("theme=%d author=%d", s.ThemeID, s.AuthorID))
	}

	return &s, nil
}

// UpdateStatus sets the moderation status. Returns domain.ErrNotFound if
// the stanza does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.StanzaStatus) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update stanza: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "stanza", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stanza %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a stanza by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Stanza, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate returns a stanza and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Stanza, error) {
	return r.get(ctx, id, "FOR UPDATE OF s")
}

func (r *Repo) get(ctx context.Context, id int64, suffix string) (*domain.Stanza, error) {
	b := selectStanzas().Where(sq.Eq{"s.id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get stanza: %w", err)
	}

	var rr row
	if err := pgxscan.Get(ctx, r.q(ctx), &rr, query, args...); err != nil {
		return nil, postgres.MapError(err, "stanza", id)
	}

	s := rr.toDomain()
	return &s, nil
}

// CountByThemeStatus counts a theme's stanzas in the given status.
func (r *Repo) CountByThemeStatus(ctx context.Context, themeID int64, status domain.StanzaStatus) (int, error) {
	return r.count(ctx, sq.Eq{"theme_id": themeID, "status": string(status)})
}

// CountByAuthorStatus counts an author's stanzas in the given status.
func (r *Repo) CountByAuthorStatus(ctx context.Context, authorID int64, status domain.StanzaStatus) (int, error) {
	return r.count(ctx, sq.Eq{"author_id": authorID, "status": string(status)})
}

// CountByStatus counts all stanzas in the given status.
func (r *Repo) CountByStatus(ctx context.Context, status domain.StanzaStatus) (int, error) {
	return r.count(ctx, sq.Eq{"status": string(status)})
}

func (r *Repo) count(ctx context.Context, where sq.Eq) (int, error) {
	query, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count stanzas: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stanzas: %w", err)
	}
	return n, nil
}

// ListApproved returns a window of a theme's approved stanzas by ascending id.
func (r *Repo) ListApproved(ctx context.Context, themeID int64, limit, offset int) ([]domain.Stanza, error) {
	return r.list(ctx, selectStanzas().
		Where(sq.Eq{"s.theme_id": themeID, "s.status": string(domain.StanzaStatusApproved)}).
		OrderBy("s.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

// LastApproved returns the n most recent approved stanzas of a theme,
// oldest first.
func (r *Repo) LastApproved(ctx context.Context, themeID int64, n int) ([]domain.Stanza, error) {
	items, err := r.list(ctx, selectStanzas().
		Where(sq.Eq{"s.theme_id": themeID, "s.status": string(domain.StanzaStatusApproved)}).
		OrderBy("s.id DESC").
		Limit(uint64(n)))
	if err != nil {
		return nil, err
	}

	slices.Reverse(items)
	return items, nil
}

// ListByAuthorNotApproved returns an author's pending and rejected stanzas
// for a theme, newest first.
func (r *Repo) ListByAuthorNotApproved(ctx context.Context, themeID, authorID int64) ([]domain.Stanza, error) {
	return r.list(ctx, selectStanzas().
		Where(sq.Eq{"s.theme_id": themeID, "s.author_id": authorID}).
		Where(sq.NotEq{"s.status": string(domain.StanzaStatusApproved)}).
		OrderBy("s.created_at DESC", "s.id DESC"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Stanza, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list stanzas: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stanzas: %w", err)
	}

	items := make([]domain.Stanza, len(rows))
	for i, rr := range rows {
		items[i] = rr.toDomain()
	}
	return items, nil
}

// ListPending returns every pending stanza, oldest first, with its theme title.
func (r *Repo) ListPending(ctx context.Context) ([]domain.PendingStanza, error) {
	query, args, err := selectStanzas().
		Column("t.title AS theme_title").
		Join(r.schema.ThemeTableIdent() + " t ON t.id = s.theme_id").
		Where(sq.Eq{"s.status": string(domain.StanzaStatusPending)}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pending stanzas: %w", err)
	}

	items := make([]domain.PendingStanza, len(rows))
	for i, pr := range rows {
		items[i] = domain.PendingStanza{Stanza: pr.toDomain(), ThemeTitle: pr.ThemeTitle}
	}
	return items, nil
}
