// Package seeder loads starter themes into a fresh database.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

// ThemeRepo is the subset of the theme repository the seeder writes to.
type ThemeRepo interface {
	List(ctx context.Context) ([]domain.Theme, error)
	Create(ctx context.Context, t domain.Theme) (*domain.Theme, error)
}

// Result summarises one seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Pipeline inserts seed themes whose titles are not already present.
type Pipeline struct {
	log  *slog.Logger
	repo ThemeRepo
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo ThemeRepo, cfg Config) *Pipeline {
	return &Pipeline{log: log, repo: repo, cfg: cfg}
}

// Run seeds the configured themes. Titles are matched case-insensitively
// after trimming, so repeated runs are no-ops.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	existing, err := p.repo.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list themes: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		seen[titleKey(t.Title)] = struct{}{}
	}

	for i, s := range p.cfg.Themes {
		key := titleKey(s.Title)
		if key == "" {
			return res, fmt.Errorf("theme #%d: title is required", i+1)
		}
		if s.Pages < 0 {
			return res, fmt.Errorf("theme %q: pages must be >= 0", s.Title)
		}
		if _, ok := seen[key]; ok {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}

		if p.cfg.DryRun {
			p.log.Info("dry run: would insert theme", slog.String("title", s.Title))
			res.Inserted++
			continue
		}

		created, err := p.repo.Create(ctx, domain.Theme{
			Title:       strings.TrimSpace(s.Title),
			Description: strings.TrimSpace(s.Description),
			Pages:       s.Pages,
		})
		if err != nil {
			return res, fmt.Errorf("create theme %q: %w", s.Title, err)
		}
		p.log.Info("theme inserted",
			slog.Int64("theme_id", created.ID),
			slog.String("title", created.Title),
		)
		res.Inserted++
	}

	res.Duration = time.Since(start)
	return res, nil
}

func titleKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
