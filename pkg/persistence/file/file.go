// Package file provides file-based persistence for canvases, decision
// flowcharts and filter configuration. Each domain is stored as a single JSON
// collection blob under its own storage key (one file per key), mirroring the
// namespaced keys of the editor's original storage layout.
package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vgnl/procesflow/pkg/persistence"
)

// Storage keys, one per domain.
const (
	canvasKey       = "procesflow-canvasses"
	flowchartKey    = "procesflow-decision-flowcharts"
	filterConfigKey = "procesflow-filter-config"
)

// Persistence implements persistence.Persistence on top of the file system.
type Persistence struct {
	root           string
	canvasRepo     *CanvasRepository
	flowchartRepo  *FlowchartRepository
	filterConfRepo *FilterConfigRepository
}

// NewPersistence creates a file-backed persistence rooted at the given
// directory.
func NewPersistence(root string, logger *slog.Logger) *Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)
	store := &blobStore{root: cleanRoot, logger: logger}

	return &Persistence{
		root:           cleanRoot,
		canvasRepo:     &CanvasRepository{store: store},
		flowchartRepo:  &FlowchartRepository{store: store},
		filterConfRepo: &FilterConfigRepository{store: store},
	}
}

// Canvases returns the canvas repository.
func (fp *Persistence) Canvases() persistence.CanvasRepository {
	return fp.canvasRepo
}

// Flowcharts returns the decision-flowchart repository.
func (fp *Persistence) Flowcharts() persistence.FlowchartRepository {
	return fp.flowchartRepo
}

// FilterConfigs returns the filter-configuration repository.
func (fp *Persistence) FilterConfigs() persistence.FilterConfigRepository {
	return fp.filterConfRepo
}

// HealthCheck verifies the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Close performs any necessary cleanup. Nothing to clean up for files.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// blobStore reads and writes whole-collection JSON blobs by storage key.
// Reads of absent or corrupt blobs degrade to "no data" so the caller can
// fall back to an empty collection. Writes are best effort: failures are
// logged and swallowed, the in-memory store stays the source of truth.
type blobStore struct {
	root   string
	logger *slog.Logger
}

func (bs *blobStore) path(key string) string {
	return filepath.Join(bs.root, key+".json")
}

// read unmarshals the blob under key into v. It reports whether usable data
// was found.
func (bs *blobStore) read(key string, v any) bool {
	body, err := os.ReadFile(bs.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			bs.logger.Warn("failed to read collection, degrading to empty", "key", key, "error", err)
		}

		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		bs.logger.Warn("corrupt collection blob, degrading to empty", "key", key, "error", err)

		return false
	}

	return true
}

// write replaces the blob under key. Failures are logged and dropped.
func (bs *blobStore) write(key string, v any) {
	if err := os.MkdirAll(bs.root, 0750); err != nil {
		bs.logger.Error("failed to create storage directory, write dropped", "key", key, "error", err)

		return
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		bs.logger.Error("failed to marshal collection, write dropped", "key", key, "error", err)

		return
	}

	if err := os.WriteFile(bs.path(key), data, 0600); err != nil {
		bs.logger.Error("failed to write collection, write dropped", "key", key, "error", err)
	}
}
