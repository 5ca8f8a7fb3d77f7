// Package persistence provides standardized error types for storage
// operations.
package persistence

import (
	"errors"
	"fmt"
)

var (
	// ErrCanvasNotFound indicates no canvas exists with the given id.
	ErrCanvasNotFound = errors.New("canvas not found")

	// ErrFlowchartNotFound indicates no decision flowchart exists with the
	// given id.
	ErrFlowchartNotFound = errors.New("flowchart not found")
)

// DocumentError wraps document-related storage errors with context.
type DocumentError struct {
	Op         string // Operation being performed (e.g. "GetByID", "Delete")
	DocumentID string
	Err        error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s operation failed for document %s: %v", e.Op, e.DocumentID, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func (e *DocumentError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewDocumentError creates a new document error with context.
func NewDocumentError(op, documentID string, err error) *DocumentError {
	return &DocumentError{
		Op:         op,
		DocumentID: documentID,
		Err:        err,
	}
}

// IsCanvasNotFound checks if an error indicates a missing canvas.
func IsCanvasNotFound(err error) bool {
	return errors.Is(err, ErrCanvasNotFound)
}

// IsFlowchartNotFound checks if an error indicates a missing flowchart.
func IsFlowchartNotFound(err error) bool {
	return errors.Is(err, ErrFlowchartNotFound)
}

// IsNotFound checks if an error indicates any missing document.
func IsNotFound(err error) bool {
	return IsCanvasNotFound(err) || IsFlowchartNotFound(err)
}
