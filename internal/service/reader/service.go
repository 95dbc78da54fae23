// Package reader serves approved stanzas to the public.
package reader

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/pagination"
)

type stanzaRepo interface {
	ListApproved(ctx context.Context, themeID int64, limit, offset int) ([]domain.Stanza, error)
	LastApproved(ctx context.Context, themeID int64, n int) ([]domain.Stanza, error)
	ListByAuthorNotApproved(ctx context.Context, themeID, authorID int64) ([]domain.Stanza, error)
	CountByThemeStatus(ctx context.Context, themeID int64, status domain.StanzaStatus) (int, error)
	CountByStatus(ctx context.Context, status domain.StanzaStatus) (int, error)
}

type snapshotter interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type counter interface {
	Count(ctx context.Context) (int, error)
}

// Options tunes windowing.
type Options struct {
	PageSize    int
	LastDefault int
	LastMax     int
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = pagination.DefaultPageSize
	}
	if o.LastMax <= 0 {
		o.LastMax = pagination.DefaultPageSize
	}
	if o.LastDefault <= 0 || o.LastDefault > o.LastMax {
		o.LastDefault = min(5, o.LastMax)
	}
	return o
}

// Service reads approved content.
type Service struct {
	stanzas stanzaRepo
	users   counter
	themes  counter
	snap    snapshotter
	opts    Options
	log     *slog.Logger
}

// NewService creates a reader Service.
func NewService(log *slog.Logger, stanzas stanzaRepo, users, themes counter, snap snapshotter, opts Options) *Service {
	return &Service{
		stanzas: stanzas,
		users:   users,
		themes:  themes,
		snap:    snap,
		opts:    opts.withDefaults(),
		log:     log.With("service", "reader"),
	}
}

// ListApproved returns one window of a theme's approved stanzas in ascending
// id order. Windows are computed over the approved set itself, not from the
// stored page numbers, so pages stay dense.
//
// Items and Total are read from one snapshot so TotalPages always agrees
// with the window returned.
//
// When viewerID is positive, the viewer's own pending and rejected stanzas
// for the theme are returned separately in MyStanzas, newest first.
func (s *Service) ListApproved(ctx context.Context, themeID int64, page int, viewerID int64) (*domain.StanzaPage, error) {
	if themeID <= 0 {
		return nil, domain.NewValidationError("theme_id", "must be a positive integer")
	}
	page = pagination.ClampPage(page)
	size := s.opts.PageSize

	result := &domain.StanzaPage{Page: page}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.snap.RunReadOnly(gctx, func(ctx context.Context) (err error) {
			result.Items, err = s.stanzas.ListApproved(ctx, themeID, size, pagination.Offset(page, size))
			if err != nil {
				return err
			}
			result.Total, err = s.stanzas.CountByThemeStatus(ctx, themeID, domain.StanzaStatusApproved)
			return err
		})
	})
	if viewerID > 0 {
		g.Go(func() (err error) {
			result.MyStanzas, err = s.stanzas.ListByAuthorNotApproved(gctx, themeID, viewerID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "list approved", err,
			slog.Int64("theme_id", themeID),
			slog.Int("page", page),
		)
	}

	if result.Items == nil {
		result.Items = []domain.Stanza{}
	}
	if viewerID > 0 && result.MyStanzas == nil {
		result.MyStanzas = []domain.Stanza{}
	}
	result.TotalPages = pagination.TotalPages(result.Total, size)
	return result, nil
}

// LastApproved returns the n most recent approved stanzas of a theme in
// chronological order. n outside [1, LastMax] is replaced by the default or
// clamped to LastMax.
func (s *Service) LastApproved(ctx context.Context, themeID int64, n int) ([]domain.Stanza, error) {
	if themeID <= 0 {
		return nil, domain.NewValidationError("theme_id", "must be a positive integer")
	}
	switch {
	case n <= 0:
		n = s.opts.LastDefault
	case n > s.opts.LastMax:
		n = s.opts.LastMax
	}

	items, err := s.stanzas.LastApproved(ctx, themeID, n)
	if err != nil {
		return nil, s.fail(ctx, "last approved", err, slog.Int64("theme_id", themeID), slog.Int("n", n))
	}
	if items == nil {
		items = []domain.Stanza{}
	}
	return items, nil
}

// Totals returns the public landing-page counters.
func (s *Service) Totals(ctx context.Context) (*domain.Totals, error) {
	var totals domain.Totals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals.Users, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totals.Themes, err = s.themes.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totals.Approved, err = s.stanzas.CountByStatus(gctx, domain.StanzaStatusApproved)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "totals", err)
	}
	return &totals, nil
}

func (s *Service) fail(ctx context.Context, op string, err error, attrs ...any) error {
	if domain.IsExpected(err) {
		return err
	}
	s.log.ErrorContext(ctx, op+" failed", append(attrs, slog.String("error", err.Error()))...)
	return fmt.Errorf("%s: %w", op, domain.ErrStorage)
}
