// Package audit implements the moderation audit log using PostgreSQL.
// Records are append-only.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

const table = "moderation_audit"

type row struct {
	ID         uuid.UUID `db:"id"`
	ActorID    int64     `db:"actor_id"`
	StanzaID   int64     `db:"stanza_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends a record. A zero ID is replaced by a random UUID and a zero
// CreatedAt by the database clock.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	cols := []string{"id", "actor_id", "stanza_id", "from_status", "to_status"}
	vals := []any{rec.ID, rec.ActorID, rec.StanzaID, string(rec.From), string(rec.To)}
	if !rec.CreatedAt.IsZero() {
		cols = append(cols, "created_at")
		vals = append(vals, rec.CreatedAt)
	}

	query, args, err := postgres.Builder.Insert(table).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ListByStanza returns a stanza's decision history, oldest first.
func (r *Repo) ListByStanza(ctx context.Context, stanzaID int64) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Builder.
		Select("id", "actor_id", "stanza_id", "from_status", "to_status", "created_at").
		From(table).
		Where(sq.Eq{"stanza_id": stanzaID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	out := make([]domain.AuditRecord, len(rows))
	for i, rr := range rows {
		out[i] = domain.AuditRecord{
			ID:        rr.ID,
			ActorID:   rr.ActorID,
			StanzaID:  rr.StanzaID,
			From:      domain.StanzaStatus(rr.FromStatus),
			To:        domain.StanzaStatus(rr.ToStatus),
			CreatedAt: rr.CreatedAt,
		}
	}
	return out, nil
}
