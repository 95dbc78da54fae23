// Package user implements read access to user accounts using PostgreSQL.
// Accounts are created by the identity provider; this service never writes them.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

const table = "users"

// Repo provides user lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select("id", "nick_name", "email", "role", "created_at").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var (
		u    domain.User
		role string
	)
	err = r.q(ctx).QueryRow(ctx, query, args...).Scan(&u.ID, &u.NickName, &u.Email, &role, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u.Role = normalizeRole(role)

	return &u, nil
}

// GetRole returns only the user's role. Roles are compared case-insensitively.
func (r *Repo) GetRole(ctx context.Context, id int64) (domain.UserRole, error) {
	query, args, err := postgres.Builder.
		Select("role").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get role: %w", err)
	}

	var role string
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&role); err != nil {
		return "", postgres.MapError(err, "user", id)
	}

	return normalizeRole(role), nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func normalizeRole(s string) domain.UserRole {
	return domain.UserRole(strings.ToLower(strings.TrimSpace(s)))
}
