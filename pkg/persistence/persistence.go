// Package persistence provides the storage abstraction for canvases, decision
// flowcharts and filter configuration.
package persistence

import (
	"context"

	"github.com/vgnl/procesflow/pkg/models"
)

// Persistence groups the per-domain repositories. Each domain maps onto its
// own storage namespace; a write replaces the whole collection for that
// namespace (last writer wins, no cross-process coordination).
type Persistence interface {
	Canvases() CanvasRepository
	Flowcharts() FlowchartRepository
	FilterConfigs() FilterConfigRepository

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}

// CanvasRepository stores process-canvas documents.
type CanvasRepository interface {
	// All returns every stored canvas. Absent or unreadable storage degrades
	// to an empty collection, never an error.
	All(ctx context.Context) ([]*models.Canvas, error)
	// GetByID returns the canvas with the given id, or ErrCanvasNotFound.
	GetByID(ctx context.Context, id string) (*models.Canvas, error)
	// Save upserts a canvas by id and stamps LaatstGewijzigd.
	Save(ctx context.Context, canvas *models.Canvas) error
	// Delete removes the canvas with the given id, or returns
	// ErrCanvasNotFound.
	Delete(ctx context.Context, id string) error
	// ListMetadata derives the archive listing from the stored collection.
	ListMetadata(ctx context.Context) ([]models.CanvasMetadata, error)
}

// FlowchartRepository stores decision-flowchart documents.
type FlowchartRepository interface {
	All(ctx context.Context) ([]*models.DecisionFlowchart, error)
	GetByID(ctx context.Context, id string) (*models.DecisionFlowchart, error)
	Save(ctx context.Context, flowchart *models.DecisionFlowchart) error
	Delete(ctx context.Context, id string) error
	ListMetadata(ctx context.Context) ([]models.DecisionFlowchartMetadata, error)
}

// FilterConfigRepository stores the single filter-configuration document.
type FilterConfigRepository interface {
	// Load returns the stored configuration, falling back to the built-in
	// defaults when nothing (readable) is stored.
	Load(ctx context.Context) (*models.FilterConfig, error)
	Save(ctx context.Context, config *models.FilterConfig) error
	// Reset overwrites the stored configuration with the built-in defaults.
	Reset(ctx context.Context) (*models.FilterConfig, error)
}
