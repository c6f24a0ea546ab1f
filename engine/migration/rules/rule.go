// Package rules owns the conversion-rule contract and the registry that maps
// "{sourceType}->{targetType}" keys to transforms. The registry is built once
// at startup from an explicit list and is read-only afterwards, so concurrent
// readers need no locking.
package rules

import "fmt"

// Document is a loosely-typed document at the rule boundary. Rules read and
// write plain field maps; the documentType field carries the schema tag.
type Document = map[string]any

// DocumentTypeField is the record field holding a document's type tag.
const DocumentTypeField = "documentType"

// ConversionRule is a pure transform between two document schemas. Rules are
// immutable once registered.
type ConversionRule interface {
	// Convert transforms a source document into the target schema. It must
	// not mutate the input.
	Convert(source Document) (Document, error)
	// CanConvert reports whether the rule applies to the given document.
	CanConvert(source Document) bool
	// SourceType is the document type tag the rule consumes.
	SourceType() string
	// TargetType is the document type tag the rule produces.
	TargetType() string
}

// Descriptor is an introspection snapshot of a registered rule.
type Descriptor struct {
	Name       string `json:"name"`
	SourceType string `json:"sourceType"`
	TargetType string `json:"targetType"`
}

// Registry resolves conversion rules by source and target type tags.
type Registry struct {
	rules map[string]ConversionRule
}

// Key composes the registry lookup key for a source/target pair.
func Key(sourceType, targetType string) string {
	return fmt.Sprintf("%s->%s", sourceType, targetType)
}

// NewRegistry builds a registry from an explicit rule list. When two rules
// declare the same source/target pair, the later one wins.
func NewRegistry(ruleList ...ConversionRule) *Registry {
	rules := make(map[string]ConversionRule, len(ruleList))
	for _, rule := range ruleList {
		rules[Key(rule.SourceType(), rule.TargetType())] = rule
	}
	return &Registry{rules: rules}
}

// Default returns a registry holding every built-in rule.
func Default() *Registry {
	return NewRegistry(
		&TravelerV1ToV2{},
	)
}

// Resolve returns the rule registered for the given pair.
func (r *Registry) Resolve(sourceType, targetType string) (ConversionRule, bool) {
	rule, ok := r.rules[Key(sourceType, targetType)]
	return rule, ok
}

// Validate reports whether a rule exists for the given pair.
func (r *Registry) Validate(sourceType, targetType string) bool {
	_, ok := r.rules[Key(sourceType, targetType)]
	return ok
}

// List returns descriptors for every registered rule. Order is unspecified.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, Descriptor{
			Name:       fmt.Sprintf("%T", rule),
			SourceType: rule.SourceType(),
			TargetType: rule.TargetType(),
		})
	}
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
