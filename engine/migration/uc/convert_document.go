package uc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apollotravel/apollo-migration/engine/migration/decode"
	"github.com/apollotravel/apollo-migration/engine/migration/rules"
	"github.com/apollotravel/apollo-migration/pkg/logger"
)

// ConvertDocumentInput identifies the document to convert and the schema to
// convert it into.
type ConvertDocumentInput struct {
	DocumentID string
	TargetType string
}

// ConvertDocument applies one registered conversion rule to one document,
// used for ad-hoc re-conversion outside the bulk path.
type ConvertDocument struct {
	repo     Repository
	registry *rules.Registry
	input    *ConvertDocumentInput
}

// NewConvertDocument creates the single-document conversion use case.
func NewConvertDocument(repo Repository, registry *rules.Registry, input *ConvertDocumentInput) *ConvertDocument {
	return &ConvertDocument{repo: repo, registry: registry, input: input}
}

// Execute converts the document and reports a structured outcome. Store and
// lookup failures become failed responses, never errors to the caller.
func (uc *ConvertDocument) Execute(ctx context.Context) *ConversionResponse {
	start := time.Now()
	log := logger.FromContext(ctx)
	response := newResponse()

	if err := uc.convert(ctx); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			response.Success = false
			response.Message = fmt.Sprintf("Document with id %s not found", uc.input.DocumentID)
			return response.finish(start)
		}
		log.Error("Error converting single document",
			"document_id", uc.input.DocumentID, "target_type", uc.input.TargetType, "error", err)
		response.Success = false
		response.Message = fmt.Sprintf("Conversion failed: %s", err)
		response.Errors = append(response.Errors, err.Error())
		return response.finish(start)
	}

	log.Info("Document converted",
		"document_id", uc.input.DocumentID, "target_type", uc.input.TargetType)
	response.Success = true
	response.Message = "Document converted successfully"
	response.ProcessedCount = 1
	return response.finish(start)
}

func (uc *ConvertDocument) convert(ctx context.Context) error {
	document, err := uc.repo.GetByID(ctx, uc.input.DocumentID)
	if err != nil {
		return err
	}
	sourceType := decode.String(document, rules.DocumentTypeField, "")
	rule, ok := uc.registry.Resolve(sourceType, uc.input.TargetType)
	if !ok {
		return fmt.Errorf("%w for %s", ErrRuleNotFound, rules.Key(sourceType, uc.input.TargetType))
	}
	converted, err := rule.Convert(document)
	if err != nil {
		return fmt.Errorf("applying rule %s: %w", rules.Key(sourceType, uc.input.TargetType), err)
	}
	// The requested target tag and the original id always win over whatever
	// the rule produced.
	converted[rules.DocumentTypeField] = uc.input.TargetType
	converted["id"] = uc.input.DocumentID
	return uc.repo.Upsert(ctx, uc.input.TargetType, uc.input.DocumentID, converted)
}
