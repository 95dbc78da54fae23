package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

type themeRepo interface {
	List(ctx context.Context) ([]domain.Theme, error)
	GetByID(ctx context.Context, id int64) (*domain.Theme, error)
	Create(ctx context.Context, t domain.Theme) (*domain.Theme, error)
}

type roleResolver interface {
	GetRole(ctx context.Context, id int64) (domain.UserRole, error)
}

// Service provides the theme catalog.
type Service struct {
	themes themeRepo
	users  roleResolver
	log    *slog.Logger
}

// NewService creates a new theme Service.
func NewService(log *slog.Logger, themes themeRepo, users roleResolver) *Service {
	return &Service{
		themes: themes,
		users:  users,
		log:    log.With("service", "theme"),
	}
}

// List returns all themes, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Theme, error) {
	themes, err := s.themes.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list themes", err)
	}
	if themes == nil {
		themes = []domain.Theme{}
	}
	return themes, nil
}

// Get returns one theme or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Theme, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("theme_id", "must be a positive integer")
	}
	t, err := s.themes.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get theme", err, slog.Int64("theme_id", id))
	}
	return t, nil
}

// Create adds a theme. Only admins may create themes; the caller is
// authorized before the input is validated.
func (s *Service) Create(ctx context.Context, adminID int64, input CreateInput) (*domain.Theme, error) {
	if adminID <= 0 {
		return nil, domain.ErrForbidden
	}
	role, err := s.users.GetRole(ctx, adminID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrForbidden
	case err != nil:
		return nil, s.fail(ctx, "resolve role", err, slog.Int64("admin_id", adminID))
	case !role.IsAdmin():
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.themes.Create(ctx, domain.Theme{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Pages:       input.Pages,
	})
	if err != nil {
		return nil, s.fail(ctx, "create theme", err, slog.Int64("admin_id", adminID))
	}

	s.log.InfoContext(ctx, "theme created",
		slog.Int64("admin_id", adminID),
		slog.Int64("theme_id", created.ID),
		slog.String("title", created.Title),
	)

	return created, nil
}

func (s *Service) fail(ctx context.Context, op string, err error, attrs ...any) error {
	if domain.IsExpected(err) {
		return err
	}
	s.log.ErrorContext(ctx, op+" failed", append(attrs, slog.String("error", err.Error()))...)
	return fmt.Errorf("%s: %w", op, domain.ErrStorage)
}
