package rules

import (
	"strings"
	"time"

	"github.com/apollotravel/apollo-migration/engine/migration/decode"
)

// TravelerV1ToV2 upgrades flat v1 traveler profiles to the nested v2 schema:
// first/last name collapse into fullName and contact details move under a
// contact object.
type TravelerV1ToV2 struct{}

func (r *TravelerV1ToV2) SourceType() string { return "TravelerV1" }

func (r *TravelerV1ToV2) TargetType() string { return "TravelerV2" }

func (r *TravelerV1ToV2) CanConvert(source Document) bool {
	return decode.String(source, DocumentTypeField, "") == r.SourceType()
}

func (r *TravelerV1ToV2) Convert(source Document) (Document, error) {
	now := time.Now().UTC()
	firstName := decode.String(source, "firstName", "")
	lastName := decode.String(source, "lastName", "")
	return Document{
		"id":           decode.String(source, "id", ""),
		"createdAt":    decode.DateAt(source, "createdAt"),
		"updatedAt":    now,
		DocumentTypeField: r.TargetType(),
		"fullName":     strings.TrimSpace(firstName + " " + lastName),
		"email":        decode.String(source, "email", ""),
		"age":          decode.Int(source, "age", 0),
		"contact": Document{
			"phoneNumber":            decode.String(source, "phoneNumber", ""),
			"preferredContactMethod": "email",
		},
		"metadata": Document{
			"version":   "2.0",
			"lastLogin": now,
			"isActive":  true,
		},
	}, nil
}
