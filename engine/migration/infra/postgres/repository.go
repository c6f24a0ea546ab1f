// Package postgres implements the migration record store over a single
// jsonb-backed documents table.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/apollotravel/apollo-migration/engine/migration/decode"
	"github.com/apollotravel/apollo-migration/engine/migration/model"
	"github.com/apollotravel/apollo-migration/engine/migration/rules"
	"github.com/apollotravel/apollo-migration/engine/migration/uc"
)

const documentsTable = "documents"

// DBInterface is the minimal pgx surface the repository needs; satisfied by
// pgxpool.Pool and by pgxmock in tests.
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements uc.Repository using PostgreSQL.
type Repository struct {
	db DBInterface
}

// NewRepository creates a Postgres-backed record store.
func NewRepository(db DBInterface) uc.Repository {
	return &Repository{db: db}
}

type documentRow struct {
	DocumentType string `db:"document_type"`
	Body         []byte `db:"body"`
}

// Count returns how many legacy booking documents are stored.
func (r *Repository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.Select("COUNT(*)").
		From(documentsTable).
		Where(squirrel.Eq{"document_type": model.DocTypeGroupBookings}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}
	var count int
	if err := pgxscan.Get(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("counting legacy documents: %w", err)
	}
	return count, nil
}

// FetchPage returns a page of legacy records ordered by id.
func (r *Repository) FetchPage(ctx context.Context, offset, limit int) ([]decode.Record, error) {
	query, args, err := squirrel.Select("body").
		From(documentsTable).
		Where(squirrel.Eq{"document_type": model.DocTypeGroupBookings}).
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building page query: %w", err)
	}
	var bodies [][]byte
	if err := pgxscan.Select(ctx, r.db, &bodies, query, args...); err != nil {
		return nil, fmt.Errorf("fetching page at offset %d: %w", offset, err)
	}
	records := make([]decode.Record, 0, len(bodies))
	for _, body := range bodies {
		var rec decode.Record
		if err := json.Unmarshal(body, &rec); err != nil {
			return nil, fmt.Errorf("decoding document body: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetByID returns the stored record with the document_type column merged in.
func (r *Repository) GetByID(ctx context.Context, id string) (decode.Record, error) {
	query, args, err := squirrel.Select("document_type", "body").
		From(documentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var row documentRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, uc.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("retrieving document %s: %w", id, err)
	}
	var rec decode.Record
	if err := json.Unmarshal(row.Body, &rec); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", id, err)
	}
	rec[rules.DocumentTypeField] = row.DocumentType
	return rec, nil
}

// Upsert stores doc under id, refreshing updated_at on conflict.
func (r *Repository) Upsert(ctx context.Context, docType, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", id, err)
	}
	query, args, err := squirrel.Insert(documentsTable).
		Columns("id", "document_type", "body").
		Values(id, docType, body).
		PlaceholderFormat(squirrel.Dollar).
		Suffix(`
ON CONFLICT (id) DO UPDATE SET
    document_type = EXCLUDED.document_type,
    body = EXCLUDED.body,
    updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("building upsert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting document %s: %w", id, err)
	}
	return nil
}

// Exists reports whether a document is stored under id.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.Select("1").
		From(documentsTable).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building exists query: %w", err)
	}
	var exists bool
	if err := pgxscan.Get(ctx, r.db, &exists, query, args...); err != nil {
		return false, fmt.Errorf("checking document %s: %w", id, err)
	}
	return exists, nil
}

// Delete removes the document stored under id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.Delete(documentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting document %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return uc.ErrDocumentNotFound
	}
	return nil
}
