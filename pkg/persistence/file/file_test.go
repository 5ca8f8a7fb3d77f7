package file

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPersistence(t *testing.T) {
	// Test with regular path
	p := NewPersistence("/tmp/test", testLogger())
	assert.Equal(t, "/tmp/test", p.root)

	// Test with file:// prefix
	p = NewPersistence("file:///tmp/test", testLogger())
	assert.Equal(t, "/tmp/test", p.root)
}

func TestPersistence_Close(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())
	err := p.Close(t.Context())
	assert.NoError(t, err)
}

func TestCanvasRepository_SaveAndGet(t *testing.T) {
	testDir := t.TempDir()
	p := NewPersistence(testDir, testLogger())

	canvas := &models.Canvas{
		ID:   "canvas-1",
		Naam: "Ledenwerving",
		Nodes: []*models.ProcesNode{
			{ID: "n1", Titel: "Lead registreren"},
		},
		Edges: []*models.ProcesEdge{},
	}

	err := p.Canvases().Save(t.Context(), canvas)
	require.NoError(t, err)

	// The whole collection lives in a single blob under the canvas key.
	assert.FileExists(t, filepath.Join(testDir, "procesflow-canvasses.json"))

	// Timestamps were stamped on save.
	assert.False(t, canvas.AanmaakDatum.IsZero())
	assert.False(t, canvas.LaatstGewijzigd.IsZero())

	loaded, err := p.Canvases().GetByID(t.Context(), "canvas-1")
	require.NoError(t, err)
	assert.Equal(t, "Ledenwerving", loaded.Naam)
	require.Len(t, loaded.Nodes, 1)
	assert.Equal(t, "n1", loaded.Nodes[0].ID)
}

func TestCanvasRepository_SavePreservesCreationDate(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	original := &models.Canvas{ID: "canvas-1", Naam: "Eerste versie"}
	require.NoError(t, p.Canvases().Save(t.Context(), original))

	created := original.AanmaakDatum
	require.False(t, created.IsZero())

	time.Sleep(10 * time.Millisecond)

	// Overwrite with a fresh snapshot that carries no creation date.
	overwrite := &models.Canvas{ID: "canvas-1", Naam: "Tweede versie"}
	require.NoError(t, p.Canvases().Save(t.Context(), overwrite))

	loaded, err := p.Canvases().GetByID(t.Context(), "canvas-1")
	require.NoError(t, err)
	assert.Equal(t, "Tweede versie", loaded.Naam)
	assert.True(t, loaded.AanmaakDatum.Equal(created))
	assert.True(t, loaded.LaatstGewijzigd.After(created))
}

func TestCanvasRepository_GetByID_NotFound(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	_, err := p.Canvases().GetByID(t.Context(), "missing")
	require.Error(t, err)
	assert.True(t, persistence.IsCanvasNotFound(err))
}

func TestCanvasRepository_Delete(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	require.NoError(t, p.Canvases().Save(t.Context(), &models.Canvas{ID: "canvas-1", Naam: "Weg ermee"}))
	require.NoError(t, p.Canvases().Delete(t.Context(), "canvas-1"))

	_, err := p.Canvases().GetByID(t.Context(), "canvas-1")
	assert.True(t, persistence.IsCanvasNotFound(err))

	err = p.Canvases().Delete(t.Context(), "canvas-1")
	assert.True(t, persistence.IsCanvasNotFound(err))
}

func TestCanvasRepository_All_EmptyWhenAbsent(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	canvasses, err := p.Canvases().All(t.Context())
	require.NoError(t, err)
	assert.Empty(t, canvasses)
}

func TestCanvasRepository_All_DegradesOnCorruptBlob(t *testing.T) {
	testDir := t.TempDir()
	p := NewPersistence(testDir, testLogger())

	err := os.WriteFile(filepath.Join(testDir, "procesflow-canvasses.json"), []byte("{not json"), 0600)
	require.NoError(t, err)

	canvasses, err := p.Canvases().All(t.Context())
	require.NoError(t, err)
	assert.Empty(t, canvasses)
}

func TestCanvasRepository_ListMetadata(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	canvas := &models.Canvas{
		ID:   "canvas-1",
		Naam: "Met inhoud",
		Nodes: []*models.ProcesNode{
			{ID: "n1", Titel: "Stap 1"},
			{ID: "n2", Titel: "Stap 2"},
		},
		Edges: []*models.ProcesEdge{
			{ID: "e1", Van: "n1", Naar: "n2"},
		},
	}
	require.NoError(t, p.Canvases().Save(t.Context(), canvas))

	metadata, err := p.Canvases().ListMetadata(t.Context())
	require.NoError(t, err)
	require.Len(t, metadata, 1)

	assert.Equal(t, "canvas-1", metadata[0].ID)
	assert.Equal(t, 2, metadata[0].NodeCount)
	assert.Equal(t, 1, metadata[0].EdgeCount)
}

func TestFlowchartRepository_SaveAndGet(t *testing.T) {
	testDir := t.TempDir()
	p := NewPersistence(testDir, testLogger())

	flowchart := &models.DecisionFlowchart{
		ID:   "fc-1",
		Naam: "Toelating",
		Nodes: []*models.DecisionNode{
			{ID: "start", Type: models.DecisionNodeStart, Titel: "Start"},
		},
	}

	require.NoError(t, p.Flowcharts().Save(t.Context(), flowchart))
	assert.FileExists(t, filepath.Join(testDir, "procesflow-decision-flowcharts.json"))

	loaded, err := p.Flowcharts().GetByID(t.Context(), "fc-1")
	require.NoError(t, err)
	assert.Equal(t, "Toelating", loaded.Naam)
}

func TestFlowchartRepository_GetByID_NotFound(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	_, err := p.Flowcharts().GetByID(t.Context(), "missing")
	require.Error(t, err)
	assert.True(t, persistence.IsFlowchartNotFound(err))
	assert.False(t, persistence.IsCanvasNotFound(err))
}

func TestFilterConfigRepository_LoadFallsBackToDefaults(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	config, err := p.FilterConfigs().Load(t.Context())
	require.NoError(t, err)

	categorie := config.Categorie(models.CategorieFases)
	require.NotNil(t, categorie)
	assert.Len(t, categorie.Opties, 4)
}

func TestFilterConfigRepository_SaveAndLoad(t *testing.T) {
	testDir := t.TempDir()
	p := NewPersistence(testDir, testLogger())

	config := models.DefaultFilterConfig()
	fases := config.Categorie(models.CategorieFases)
	fases.Opties = append(fases.Opties, models.FilterOptie{
		ID: "herstel", Label: "Herstel", Volgorde: 5, Actief: true,
	})

	require.NoError(t, p.FilterConfigs().Save(t.Context(), config))
	assert.FileExists(t, filepath.Join(testDir, "procesflow-filter-config.json"))

	loaded, err := p.FilterConfigs().Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, loaded.Categorie(models.CategorieFases).Opties, 5)
}

func TestFilterConfigRepository_Reset(t *testing.T) {
	p := NewPersistence(t.TempDir(), testLogger())

	config := models.DefaultFilterConfig()
	fases := config.Categorie(models.CategorieFases)
	fases.Opties = fases.Opties[:1]
	require.NoError(t, p.FilterConfigs().Save(t.Context(), config))

	restored, err := p.FilterConfigs().Reset(t.Context())
	require.NoError(t, err)
	assert.Len(t, restored.Categorie(models.CategorieFases).Opties, 4)

	loaded, err := p.FilterConfigs().Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, loaded.Categorie(models.CategorieFases).Opties, 4)
}
