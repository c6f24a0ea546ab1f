package uc

import (
	"github.com/apollotravel/apollo-migration/engine/migration/denorm"
	"github.com/apollotravel/apollo-migration/engine/migration/rules"
)

// Factory builds migration use cases around shared collaborators.
type Factory struct {
	repo         Repository
	registry     *rules.Registry
	denormalizer *denorm.Denormalizer
}

// NewFactory creates a use-case factory.
func NewFactory(repo Repository, registry *rules.Registry, denormalizer *denorm.Denormalizer) *Factory {
	return &Factory{repo: repo, registry: registry, denormalizer: denormalizer}
}

func (f *Factory) NewMigrateAll() *MigrateAll {
	return NewMigrateAll(f.repo, f.denormalizer)
}

func (f *Factory) NewConvertDocument(input *ConvertDocumentInput) *ConvertDocument {
	return NewConvertDocument(f.repo, f.registry, input)
}

func (f *Factory) NewListRules() *ListRules {
	return NewListRules(f.registry)
}

func (f *Factory) NewValidateRule(input *ValidateRuleInput) *ValidateRule {
	return NewValidateRule(f.registry, input)
}
