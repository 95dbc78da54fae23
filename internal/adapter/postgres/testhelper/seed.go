package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		NickName: "poet-" + suffix,
		Email:    "poet-" + suffix + "@example.com",
		Role:     role,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (nick_name, email, role) VALUES ($1, $2, $3) RETURNING id, created_at`,
		user.NickName, user.Email, string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTheme inserts a theme.
func SeedTheme(t *testing.T, pool *pgxpool.Pool) domain.Theme {
	t.Helper()

	theme := domain.Theme{
		Title:       "Theme " + uniqueSuffix(),
		Description: "a thread for testing",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO themes (title, description) VALUES ($1, $2) RETURNING id, created_at`,
		theme.Title, theme.Description,
	).Scan(&theme.ID, &theme.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTheme: %v", err)
	}

	return theme
}

// SeedStanzas inserts n stanzas with the given status and returns their ids in insertion order.
func SeedStanzas(t *testing.T, pool *pgxpool.Pool, themeID, authorID int64, status domain.StanzaStatus, n int) []int64 {
	t.Helper()

	ids := make([]int64, 0, n)
	for i := range n {
		var id int64
		err := pool.QueryRow(context.Background(),
			`INSERT INTO stanzas (theme_id, author_id, content, status, page_number)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			themeID, authorID, "line "+uniqueSuffix(), string(status), i/20+1,
		).Scan(&id)
		if err != nil {
			t.Fatalf("testhelper: SeedStanzas: %v", err)
		}
		ids = append(ids, id)
	}

	return ids
}
