package entities

import "github.com/google/uuid"

// NewID generates an opaque, collision-resistant identifier.
//
// Aggregates receive their id at construction time and never change it.
func NewID() string {
	return uuid.NewString()
}
