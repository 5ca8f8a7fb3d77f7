package file

import (
	"context"

	"github.com/vgnl/procesflow/pkg/models"
)

// FilterConfigRepository stores the filter configuration as one JSON blob.
type FilterConfigRepository struct {
	store *blobStore
}

// Load returns the stored configuration, falling back to the built-in
// defaults when nothing usable is stored.
func (r *FilterConfigRepository) Load(_ context.Context) (*models.FilterConfig, error) {
	var config models.FilterConfig
	if !r.store.read(filterConfigKey, &config) {
		return models.DefaultFilterConfig(), nil
	}

	return &config, nil
}

// Save replaces the stored configuration.
func (r *FilterConfigRepository) Save(_ context.Context, config *models.FilterConfig) error {
	r.store.write(filterConfigKey, config)

	return nil
}

// Reset overwrites the stored configuration with the built-in defaults and
// returns them.
func (r *FilterConfigRepository) Reset(ctx context.Context) (*models.FilterConfig, error) {
	defaults := models.DefaultFilterConfig()
	if err := r.Save(ctx, defaults); err != nil {
		return nil, err
	}

	return defaults, nil
}
