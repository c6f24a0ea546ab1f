package uc

import (
	"context"

	"github.com/apollotravel/apollo-migration/engine/migration/rules"
)

// ListRules exposes the registered conversion rules for introspection.
type ListRules struct {
	registry *rules.Registry
}

// NewListRules creates the rule-listing use case.
func NewListRules(registry *rules.Registry) *ListRules {
	return &ListRules{registry: registry}
}

// Execute returns descriptors of every registered rule.
func (uc *ListRules) Execute(_ context.Context) []rules.Descriptor {
	return uc.registry.List()
}
