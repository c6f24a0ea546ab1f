package uc

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/apollotravel/apollo-migration/engine/migration/decode"
	"github.com/apollotravel/apollo-migration/engine/migration/denorm"
	"github.com/apollotravel/apollo-migration/engine/migration/model"
	"github.com/apollotravel/apollo-migration/pkg/logger"
)

// batchSize is the fixed page size of the migration loop, independent of any
// caller preference.
const batchSize = 15

// MigrateAll drives the bulk migration: it pages through every legacy
// booking document, denormalizes each page and persists the results under
// the new schema. Pages are processed strictly sequentially.
type MigrateAll struct {
	repo         Repository
	denormalizer *denorm.Denormalizer
}

// NewMigrateAll creates the bulk migration use case.
func NewMigrateAll(repo Repository, denormalizer *denorm.Denormalizer) *MigrateAll {
	return &MigrateAll{repo: repo, denormalizer: denormalizer}
}

// Execute runs the migration and always returns a structured summary; store
// failures on the count or fetch path abort the run but still surface as a
// failed response rather than an error.
func (uc *MigrateAll) Execute(ctx context.Context) *ConversionResponse {
	start := time.Now()
	log := logger.FromContext(ctx)
	response := newResponse()

	log.Info("Starting data conversion from legacy bookings")
	total, err := uc.repo.Count(ctx)
	if err != nil {
		log.Error("Failed to count legacy documents", "error", err)
		response.Success = false
		response.Message = fmt.Sprintf("Conversion failed: %s", err)
		response.Errors = append(response.Errors, err.Error())
		return response.finish(start)
	}
	log.Info("Found documents to convert", "count", total)

	if total == 0 {
		response.Success = true
		response.Message = "No documents found to convert"
		return response.finish(start)
	}

	processed := 0
	errorCount := 0
	for offset := 0; offset < total; offset += batchSize {
		page, err := uc.repo.FetchPage(ctx, offset, batchSize)
		if err != nil {
			// A fetch failure is fatal to the whole run.
			log.Error("Failed to fetch page", "offset", offset, "error", err)
			response.Success = false
			response.Message = fmt.Sprintf("Conversion failed: %s", err)
			response.Errors = append(response.Errors, err.Error())
			response.ProcessedCount = processed
			response.ErrorCount = errorCount
			return response.finish(start)
		}
		persisted, err := uc.transformPage(ctx, page)
		processed += persisted
		if err != nil {
			errorCount++
			message := fmt.Sprintf("Error converting document %s", err)
			response.Errors = append(response.Errors, message)
			log.Error("Error converting document batch", "offset", offset, "error", err)
		}
		log.Info("Processed documents", "processed", processed, "total", total)
	}

	response.Success = errorCount == 0
	response.ProcessedCount = processed
	response.ErrorCount = errorCount
	response.Message = fmt.Sprintf(
		"Conversion completed. Processed %d documents with %d errors.", processed, errorCount)
	return response.finish(start)
}

// transformPage denormalizes and persists one page as a single unit of work.
// The first failing record aborts the page; records persisted before the
// failure stay persisted and are included in the returned count.
func (uc *MigrateAll) transformPage(ctx context.Context, page []decode.Record) (int, error) {
	persisted := 0
	for _, rec := range page {
		booking, err := uc.denormalizer.Denormalize(rec)
		if err != nil {
			return persisted, fmt.Errorf("denormalizing record: %w", err)
		}
		id := strconv.FormatUint(uint64(booking.ID), 10)
		if err := uc.repo.Upsert(ctx, model.DocTypeBooking3, id, booking); err != nil {
			return persisted, fmt.Errorf("persisting booking %s: %w", id, err)
		}
		persisted++
	}
	return persisted, nil
}
