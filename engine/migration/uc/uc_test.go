package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/apollotravel/apollo-migration/engine/migration/decode"
)

// memoryRepo is an in-memory Repository used across the use-case tests.
type memoryRepo struct {
	legacy     []decode.Record
	docs       map[string]decode.Record
	upserts    []upsertCall
	countErr   error
	fetchErr   error
	getErr     error
	fetchCalls int
	failOnID   string
}

type upsertCall struct {
	docType string
	id      string
	doc     any
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: map[string]decode.Record{}}
}

func (r *memoryRepo) Count(_ context.Context) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.legacy), nil
}

func (r *memoryRepo) FetchPage(_ context.Context, offset, limit int) ([]decode.Record, error) {
	r.fetchCalls++
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	if offset >= len(r.legacy) {
		return []decode.Record{}, nil
	}
	end := offset + limit
	if end > len(r.legacy) {
		end = len(r.legacy)
	}
	return r.legacy[offset:end], nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (decode.Record, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

func (r *memoryRepo) Upsert(_ context.Context, docType, id string, doc any) error {
	if r.failOnID != "" && id == r.failOnID {
		return fmt.Errorf("simulated write failure for %s", id)
	}
	r.upserts = append(r.upserts, upsertCall{docType: docType, id: id, doc: doc})
	return nil
}

func (r *memoryRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.docs[id]
	return ok, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return ErrDocumentNotFound
	}
	delete(r.docs, id)
	return nil
}

var errStoreDown = errors.New("store unavailable")
