// Package services provides the operation layer consumed by the editor
// boundary: archive listings and the explicit validation helpers callers must
// invoke before the permissive store mutators.
package services

import (
	"errors"

	"github.com/vgnl/procesflow/pkg/store"
)

// Validation errors (400-class).
var (
	// ErrEmptyID indicates a node or edge without an id.
	ErrEmptyID = errors.New("id must not be empty")

	// ErrDuplicateNodeID indicates a node id collision within a graph.
	ErrDuplicateNodeID = errors.New("node id already exists")

	// ErrUnknownEndpoint indicates an edge endpoint that references no
	// existing node.
	ErrUnknownEndpoint = errors.New("edge endpoint does not reference an existing node")

	// ErrDuplicateEdge indicates an edge with the same source and target as
	// an existing edge.
	ErrDuplicateEdge = errors.New("an edge with this source and target already exists")
)

// IsValidationError checks whether an error should map to a bad-request
// response.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyID) ||
		errors.Is(err, ErrDuplicateNodeID) ||
		errors.Is(err, ErrUnknownEndpoint) ||
		errors.Is(err, ErrDuplicateEdge) ||
		errors.Is(err, store.ErrUnknownCategorie) ||
		errors.Is(err, store.ErrOptieNotFound)
}

// IsConflictError checks whether an error should map to a conflict response.
func IsConflictError(err error) bool {
	return errors.Is(err, store.ErrDuplicateOptieID)
}
