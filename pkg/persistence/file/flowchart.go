package file

import (
	"context"
	"time"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

// FlowchartRepository stores the decision-flowchart collection as one JSON
// blob.
type FlowchartRepository struct {
	store *blobStore
}

// All returns every stored flowchart. Absent or corrupt storage degrades to
// an empty collection.
func (r *FlowchartRepository) All(_ context.Context) ([]*models.DecisionFlowchart, error) {
	var flowcharts []*models.DecisionFlowchart
	if !r.store.read(flowchartKey, &flowcharts) {
		return []*models.DecisionFlowchart{}, nil
	}

	return flowcharts, nil
}

// GetByID returns the flowchart with the given id.
func (r *FlowchartRepository) GetByID(ctx context.Context, id string) (*models.DecisionFlowchart, error) {
	flowcharts, _ := r.All(ctx)

	for _, f := range flowcharts {
		if f.ID == id {
			return f, nil
		}
	}

	return nil, persistence.NewDocumentError("GetByID", id, persistence.ErrFlowchartNotFound)
}

// Save upserts a flowchart by id, stamping timestamps, and rewrites the blob.
func (r *FlowchartRepository) Save(ctx context.Context, flowchart *models.DecisionFlowchart) error {
	now := time.Now().UTC()
	if flowchart.AanmaakDatum.IsZero() {
		flowchart.AanmaakDatum = now
	}

	flowchart.LaatstGewijzigd = now

	flowcharts, _ := r.All(ctx)

	replaced := false

	for i, f := range flowcharts {
		if f.ID == flowchart.ID {
			// Keep the original creation date on overwrite.
			flowchart.AanmaakDatum = f.AanmaakDatum
			flowcharts[i] = flowchart
			replaced = true

			break
		}
	}

	if !replaced {
		flowcharts = append(flowcharts, flowchart)
	}

	r.store.write(flowchartKey, flowcharts)

	return nil
}

// Delete removes the flowchart with the given id and rewrites the blob.
func (r *FlowchartRepository) Delete(ctx context.Context, id string) error {
	flowcharts, _ := r.All(ctx)

	filtered := make([]*models.DecisionFlowchart, 0, len(flowcharts))

	for _, f := range flowcharts {
		if f.ID != id {
			filtered = append(filtered, f)
		}
	}

	if len(filtered) == len(flowcharts) {
		return persistence.NewDocumentError("Delete", id, persistence.ErrFlowchartNotFound)
	}

	r.store.write(flowchartKey, filtered)

	return nil
}

// ListMetadata derives the archive listing from the stored collection.
func (r *FlowchartRepository) ListMetadata(ctx context.Context) ([]models.DecisionFlowchartMetadata, error) {
	flowcharts, _ := r.All(ctx)

	metadata := make([]models.DecisionFlowchartMetadata, 0, len(flowcharts))
	for _, f := range flowcharts {
		metadata = append(metadata, f.Metadata())
	}

	return metadata, nil
}
