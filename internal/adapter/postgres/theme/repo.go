// Package theme implements the theme catalog repository using PostgreSQL.
// Table and column names come from the detected schema.Schema.
package theme

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/schema"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

type row struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Pages       *int      `db:"pages"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Theme {
	t := domain.Theme{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Pages != nil {
		t.Pages = *r.Pages
	}
	return t
}

// Repo provides theme persistence backed by PostgreSQL.
type Repo struct {
	db     postgres.Querier
	schema schema.Schema
}

// New creates a new theme repository.
func New(db postgres.Querier, s schema.Schema) *Repo {
	return &Repo{db: db, schema: s}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) columns() []string {
	cols := []string{"id", "title", r.schema.DescriptionIdent() + " AS description"}
	if r.schema.ThemeHasPages {
		cols = append(cols, r.schema.PagesIdent()+" AS pages")
	}
	return append(cols, "created_at")
}

// List returns every theme, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Theme, error) {
	query, args, err := postgres.Builder.
		Select(r.columns()...).
		From(r.schema.ThemeTableIdent()).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list themes: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	themes := make([]domain.Theme, len(rows))
	for i, rr := range rows {
		themes[i] = rr.toDomain()
	}
	return themes, nil
}

// GetByID returns a theme by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Theme, error) {
	query, args, err := postgres.Builder.
		Select(r.columns()...).
		From(r.schema.ThemeTableIdent()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get theme: %w", err)
	}

	var rr row
	if err := pgxscan.Get(ctx, r.q(ctx), &rr, query, args...); err != nil {
		return nil, postgres.MapError(err, "theme", id)
	}

	t := rr.toDomain()
	return &t, nil
}

// Create inserts a theme. Pages is dropped when the table has no pages column.
func (r *Repo) Create(ctx context.Context, t domain.Theme) (*domain.Theme, error) {
	cols := []string{"title", r.schema.DescriptionIdent()}
	vals := []any{t.Title, t.Description}
	if r.schema.ThemeHasPages {
		cols = append(cols, r.schema.PagesIdent())
		vals = append(vals, t.Pages)
	}

	query, args, err := postgres.Builder.
		Insert(r.schema.ThemeTableIdent()).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert theme: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "theme", t.Title)
	}
	if !r.schema.ThemeHasPages {
		t.Pages = 0
	}

	return &t, nil
}

// Count returns the number of themes.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(r.schema.ThemeTableIdent()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count themes: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count themes: %w", err)
	}
	return n, nil
}
