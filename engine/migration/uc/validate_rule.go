package uc

import (
	"context"

	"github.com/apollotravel/apollo-migration/engine/migration/rules"
)

// ValidateRuleInput names the source/target pair to look up.
type ValidateRuleInput struct {
	SourceType string
	TargetType string
}

// ValidateRule checks whether a conversion rule is registered for a pair.
type ValidateRule struct {
	registry *rules.Registry
	input    *ValidateRuleInput
}

// NewValidateRule creates the rule-validation use case.
func NewValidateRule(registry *rules.Registry, input *ValidateRuleInput) *ValidateRule {
	return &ValidateRule{registry: registry, input: input}
}

// Execute reports whether the pair resolves to a registered rule.
func (uc *ValidateRule) Execute(_ context.Context) bool {
	return uc.registry.Validate(uc.input.SourceType, uc.input.TargetType)
}
