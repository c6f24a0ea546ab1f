package uc

import "errors"

// ErrDocumentNotFound is returned when a requested document id is absent.
var ErrDocumentNotFound = errors.New("document not found")

// ErrRuleNotFound is returned when no conversion rule is registered for a
// requested source/target type pair.
var ErrRuleNotFound = errors.New("no conversion rule found")
