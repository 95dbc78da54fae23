// Package schema resolves, once at startup, which theme table and columns
// the database actually has. Older deployments keep themes in a "tema" table
// with a localized description column.
package schema

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
)

const (
	legacyThemeTable  = "tema"
	defaultThemeTable = "themes"
	defaultDescColumn = "description"
)

// descriptionCandidates are tried in order before falling back to the second column.
var descriptionCandidates = []string{"description", "desc", "deskripsi"}

// Schema describes the theme storage layout.
type Schema struct {
	ThemeTable             string
	ThemeDescriptionColumn string
	ThemeHasPages          bool

	// ThemePagesColumn is "pages" or "page"; empty when ThemeHasPages is false.
	ThemePagesColumn string
}

// Default is the layout created by the bundled migrations.
func Default() Schema {
	return Schema{
		ThemeTable:             defaultThemeTable,
		ThemeDescriptionColumn: defaultDescColumn,
		ThemeHasPages:          true,
		ThemePagesColumn:       "pages",
	}
}

// ThemeTableIdent returns the quoted theme table name.
func (s Schema) ThemeTableIdent() string {
	return pgx.Identifier{s.ThemeTable}.Sanitize()
}

// PagesIdent returns the quoted pages column name, or "" when absent.
func (s Schema) PagesIdent() string {
	if !s.ThemeHasPages {
		return ""
	}
	return pgx.Identifier{s.ThemePagesColumn}.Sanitize()
}

// DescriptionIdent returns the quoted description column name.
func (s Schema) DescriptionIdent() string {
	return pgx.Identifier{s.ThemeDescriptionColumn}.Sanitize()
}

// Detect inspects the current schema. A legacy "tema" table wins over "themes".
func Detect(ctx context.Context, q postgres.Querier) (Schema, error) {
	var legacy bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		)`, legacyThemeTable,
	).Scan(&legacy)
	if err != nil {
		return Schema{}, fmt.Errorf("detect theme table: %w", err)
	}

	if !legacy {
		return Default(), nil
	}

	cols, err := columns(ctx, q, legacyThemeTable)
	if err != nil {
		return Schema{}, err
	}

	s := Schema{
		ThemeTable:             legacyThemeTable,
		ThemeDescriptionColumn: pickDescription(cols),
	}
	for _, c := range []string{"pages", "page"} {
		if slices.Contains(cols, c) {
			s.ThemeHasPages = true
			s.ThemePagesColumn = c
			break
		}
	}
	return s, nil
}

func columns(ctx context.Context, q postgres.Querier, table string) ([]string, error) {
	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1
		 ORDER BY ordinal_position`, table,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s columns: %w", table, err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan %s columns: %w", table, err)
	}

	for i, n := range names {
		names[i] = strings.ToLower(n)
	}
	return names, nil
}

func pickDescription(cols []string) string {
	for _, c := range descriptionCandidates {
		if slices.Contains(cols, c) {
			return c
		}
	}
	if len(cols) > 1 {
		return cols[1]
	}
	return defaultDescColumn
}
