// Package ident generates the 24-hex-character identifiers used for all rows.
package ident

import "go.mongodb.org/mongo-driver/bson/primitive"

// New returns a fresh identifier: 24 lowercase hex characters, leading with
// the current Unix timestamp. The wire contract fixes the shape only; there
// is no collision check, a duplicate surfaces as a primary-key violation.
func New() string {
	return primitive.NewObjectID().Hex()
}
