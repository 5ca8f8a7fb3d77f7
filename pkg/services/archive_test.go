package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence/file"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestArchive_ListCanvases(t *testing.T) {
	p := file.NewPersistence(t.TempDir(), testLogger())
	archive := NewArchive(p)

	listing, err := archive.ListCanvases(t.Context())
	require.NoError(t, err)
	assert.Empty(t, listing)

	canvas := &models.Canvas{
		ID:   "canvas-1",
		Naam: "Ledenwerving",
		Nodes: []*models.ProcesNode{
			{ID: "n1", Titel: "Stap 1"},
		},
	}
	require.NoError(t, p.Canvases().Save(t.Context(), canvas))

	listing, err = archive.ListCanvases(t.Context())
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "Ledenwerving", listing[0].Naam)
	assert.Equal(t, 1, listing[0].NodeCount)
}

func TestArchive_ListFlowcharts(t *testing.T) {
	p := file.NewPersistence(t.TempDir(), testLogger())
	archive := NewArchive(p)

	require.NoError(t, p.Flowcharts().Save(t.Context(), &models.DecisionFlowchart{
		ID:   "fc-1",
		Naam: "Toelating",
	}))

	listing, err := archive.ListFlowcharts(t.Context())
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "fc-1", listing[0].ID)
}

func TestArchive_HealthCheck(t *testing.T) {
	p := file.NewPersistence(t.TempDir(), testLogger())
	archive := NewArchive(p)

	msg, ok := archive.HealthCheck(t.Context())
	assert.True(t, ok)
	assert.NotEmpty(t, msg)

	missing := NewArchive(file.NewPersistence("/nonexistent/procesflow", testLogger()))
	_, ok = missing.HealthCheck(t.Context())
	assert.False(t, ok)
}

func TestArchive_NilPersistence(t *testing.T) {
	archive := NewArchive(nil)

	_, ok := archive.HealthCheck(t.Context())
	assert.False(t, ok)
}
