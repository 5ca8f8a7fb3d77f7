package file

import (
	"context"
	"time"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

// CanvasRepository stores the process-canvas collection as one JSON blob.
type CanvasRepository struct {
	store *blobStore
}

// All returns every stored canvas. Absent or corrupt storage degrades to an
// empty collection.
func (r *CanvasRepository) All(_ context.Context) ([]*models.Canvas, error) {
	var canvasses []*models.Canvas
	if !r.store.read(canvasKey, &canvasses) {
		return []*models.Canvas{}, nil
	}

	return canvasses, nil
}

// GetByID returns the canvas with the given id.
func (r *CanvasRepository) GetByID(ctx context.Context, id string) (*models.Canvas, error) {
	canvasses, _ := r.All(ctx)

	for _, c := range canvasses {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, persistence.NewDocumentError("GetByID", id, persistence.ErrCanvasNotFound)
}

// Save upserts a canvas by id, stamping timestamps, and rewrites the blob.
func (r *CanvasRepository) Save(ctx context.Context, canvas *models.Canvas) error {
	now := time.Now().UTC()
	if canvas.AanmaakDatum.IsZero() {
		canvas.AanmaakDatum = now
	}

	canvas.LaatstGewijzigd = now

	canvasses, _ := r.All(ctx)

	replaced := false

	for i, c := range canvasses {
		if c.ID == canvas.ID {
			// Keep the original creation date on overwrite.
			canvas.AanmaakDatum = c.AanmaakDatum
			canvasses[i] = canvas
			replaced = true

			break
		}
	}

	if !replaced {
		canvasses = append(canvasses, canvas)
	}

	r.store.write(canvasKey, canvasses)

	return nil
}

// Delete removes the canvas with the given id and rewrites the blob.
func (r *CanvasRepository) Delete(ctx context.Context, id string) error {
	canvasses, _ := r.All(ctx)

	filtered := make([]*models.Canvas, 0, len(canvasses))

	for _, c := range canvasses {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == len(canvasses) {
		return persistence.NewDocumentError("Delete", id, persistence.ErrCanvasNotFound)
	}

	r.store.write(canvasKey, filtered)

	return nil
}

// ListMetadata derives the archive listing from the stored collection.
func (r *CanvasRepository) ListMetadata(ctx context.Context) ([]models.CanvasMetadata, error) {
	canvasses, _ := r.All(ctx)

	metadata := make([]models.CanvasMetadata, 0, len(canvasses))
	for _, c := range canvasses {
		metadata = append(metadata, c.Metadata())
	}

	return metadata, nil
}
