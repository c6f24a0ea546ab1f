package uc

import (
	"context"

	"github.com/apollotravel/apollo-migration/engine/migration/decode"
)

// Repository is the abstract record-store contract consumed by the migration
// use cases. Backends own connection management, pooling and retries.
type Repository interface {
	// Count returns the number of legacy documents awaiting migration.
	Count(ctx context.Context) (int, error)
	// FetchPage returns a page of raw legacy records at the given offset.
	FetchPage(ctx context.Context, offset, limit int) ([]decode.Record, error)
	// GetByID returns the raw record stored under id, or ErrDocumentNotFound.
	GetByID(ctx context.Context, id string) (decode.Record, error)
	// Upsert stores doc under id with the given document type tag.
	Upsert(ctx context.Context, docType, id string, doc any) error
	// Exists reports whether a document is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
	// Delete removes the document stored under id.
	Delete(ctx context.Context, id string) error
}
