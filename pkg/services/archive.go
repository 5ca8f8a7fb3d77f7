package services

import (
	"context"
	"fmt"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

// Archive derives lightweight listing records for the open/delete dialogs.
// Listings are always recomputed from the persisted collection; there is no
// separate index to keep in sync.
type Archive struct {
	persistence persistence.Persistence
}

// NewArchive creates an archive service over the given persistence.
func NewArchive(p persistence.Persistence) *Archive {
	return &Archive{persistence: p}
}

// ListCanvases returns the canvas archive listing.
func (a *Archive) ListCanvases(ctx context.Context) ([]models.CanvasMetadata, error) {
	metadata, err := a.persistence.Canvases().ListMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list canvases: %w", err)
	}

	return metadata, nil
}

// ListFlowcharts returns the decision-flowchart archive listing.
func (a *Archive) ListFlowcharts(ctx context.Context) ([]models.DecisionFlowchartMetadata, error) {
	metadata, err := a.persistence.Flowcharts().ListMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flowcharts: %w", err)
	}

	return metadata, nil
}

// HealthCheck checks the persistence layer.
func (a *Archive) HealthCheck(ctx context.Context) (string, bool) {
	if a.persistence == nil {
		return "Persistence layer not initialized", false
	}

	if err := a.persistence.HealthCheck(ctx); err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}
