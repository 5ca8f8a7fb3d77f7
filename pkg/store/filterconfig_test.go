package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence/file"
)

func newTestFilterConfigStore(t *testing.T) *FilterConfigStore {
	t.Helper()

	p := file.NewPersistence(t.TempDir(), testLogger())

	return NewFilterConfigStore(p, testLogger())
}

func TestFilterConfigStore_StartsWithDefaults(t *testing.T) {
	s := newTestFilterConfigStore(t)

	config := s.Config()
	require.NotNil(t, config)

	assert.Len(t, config.Categorie(models.CategorieFases).Opties, 4)
	assert.Len(t, config.Categorie(models.CategorieAfdelingen).Opties, 8)
	assert.Len(t, config.Categorie(models.CategorieKlantreisStatussen).Opties, 7)
	assert.Len(t, config.Categorie(models.CategorieProcesFases).Opties, 9)
}

func TestFilterConfigStore_AddOptie(t *testing.T) {
	s := newTestFilterConfigStore(t)

	err := s.AddOptie(t.Context(), models.CategorieAfdelingen, models.FilterOptie{
		ID: "hr", Label: "HR", Volgorde: 9, Actief: true,
	})
	require.NoError(t, err)

	categorie, err := s.Categorie(models.CategorieAfdelingen)
	require.NoError(t, err)
	assert.Len(t, categorie.Opties, 9)
}

func TestFilterConfigStore_AddOptieDuplicateIDLeavesConfigUnchanged(t *testing.T) {
	s := newTestFilterConfigStore(t)

	err := s.AddOptie(t.Context(), models.CategorieAfdelingen, models.FilterOptie{
		ID: "sales", Label: "Sales nogmaals",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateOptieID)

	categorie, err := s.Categorie(models.CategorieAfdelingen)
	require.NoError(t, err)
	assert.Len(t, categorie.Opties, 8)
}

func TestFilterConfigStore_AddOptieUnknownCategorie(t *testing.T) {
	s := newTestFilterConfigStore(t)

	err := s.AddOptie(t.Context(), "bestaat-niet", models.FilterOptie{ID: "x", Label: "X"})
	assert.ErrorIs(t, err, ErrUnknownCategorie)
}

func TestFilterConfigStore_UpdateOptie(t *testing.T) {
	s := newTestFilterConfigStore(t)

	label := "Verkoop"
	actief := false
	err := s.UpdateOptie(t.Context(), models.CategorieAfdelingen, "sales", OptieUpdate{
		Label: &label, Actief: &actief,
	})
	require.NoError(t, err)

	categorie, err := s.Categorie(models.CategorieAfdelingen)
	require.NoError(t, err)

	var optie *models.FilterOptie

	for i := range categorie.Opties {
		if categorie.Opties[i].ID == "sales" {
			optie = &categorie.Opties[i]
		}
	}

	require.NotNil(t, optie)
	assert.Equal(t, "Verkoop", optie.Label)
	assert.False(t, optie.Actief)
}

func TestFilterConfigStore_UpdateOptieUnknownID(t *testing.T) {
	s := newTestFilterConfigStore(t)

	label := "x"
	err := s.UpdateOptie(t.Context(), models.CategorieAfdelingen, "missing", OptieUpdate{Label: &label})
	assert.ErrorIs(t, err, ErrOptieNotFound)
}

func TestFilterConfigStore_UpdateOptieIDCollision(t *testing.T) {
	s := newTestFilterConfigStore(t)

	newID := "legal"
	err := s.UpdateOptie(t.Context(), models.CategorieAfdelingen, "sales", OptieUpdate{ID: &newID})
	assert.ErrorIs(t, err, ErrDuplicateOptieID)
}

func TestFilterConfigStore_DeleteOptie(t *testing.T) {
	s := newTestFilterConfigStore(t)

	err := s.DeleteOptie(t.Context(), models.CategorieAfdelingen, "sales")
	require.NoError(t, err)

	categorie, err := s.Categorie(models.CategorieAfdelingen)
	require.NoError(t, err)
	assert.Len(t, categorie.Opties, 7)

	// Deleting an absent option is not an error.
	require.NoError(t, s.DeleteOptie(t.Context(), models.CategorieAfdelingen, "sales"))
}

func TestFilterConfigStore_ReorderOpties(t *testing.T) {
	s := newTestFilterConfigStore(t)

	err := s.ReorderOpties(t.Context(), models.CategorieFases, []string{
		"behouden", "binden", "boeien", "bereiken",
	})
	require.NoError(t, err)

	categorie, err := s.Categorie(models.CategorieFases)
	require.NoError(t, err)
	require.Len(t, categorie.Opties, 4)

	assert.Equal(t, "behouden", categorie.Opties[0].ID)
	assert.Equal(t, 1, categorie.Opties[0].Volgorde)
	assert.Equal(t, "bereiken", categorie.Opties[3].ID)
	assert.Equal(t, 4, categorie.Opties[3].Volgorde)
}

func TestFilterConfigStore_ReorderOptiesDropsUnlisted(t *testing.T) {
	s := newTestFilterConfigStore(t)

	err := s.ReorderOpties(t.Context(), models.CategorieFases, []string{"binden", "bereiken"})
	require.NoError(t, err)

	categorie, err := s.Categorie(models.CategorieFases)
	require.NoError(t, err)
	require.Len(t, categorie.Opties, 2)
	assert.Equal(t, "binden", categorie.Opties[0].ID)
}

func TestFilterConfigStore_ResetRestoresDefaults(t *testing.T) {
	s := newTestFilterConfigStore(t)

	require.NoError(t, s.DeleteOptie(t.Context(), models.CategorieFases, "bereiken"))

	s.Reset(t.Context())

	config := s.Config()
	assert.Len(t, config.Categorie(models.CategorieFases).Opties, 4)
}

func TestFilterConfigStore_LoadPersistedConfig(t *testing.T) {
	p := file.NewPersistence(t.TempDir(), testLogger())

	first := NewFilterConfigStore(p, testLogger())
	require.NoError(t, first.AddOptie(t.Context(), models.CategorieAfdelingen, models.FilterOptie{
		ID: "hr", Label: "HR", Volgorde: 9, Actief: true,
	}))

	// A fresh store over the same persistence picks the saved config up.
	second := NewFilterConfigStore(p, testLogger())
	second.Load(t.Context())

	categorie, err := second.Categorie(models.CategorieAfdelingen)
	require.NoError(t, err)
	assert.Len(t, categorie.Opties, 9)
}

func TestFilterConfigStore_ConfigReturnsCopy(t *testing.T) {
	s := newTestFilterConfigStore(t)

	config := s.Config()
	config.Categorie(models.CategorieFases).Opties = nil

	assert.Len(t, s.Config().Categorie(models.CategorieFases).Opties, 4)
}

func TestFilterConfigStore_Labels(t *testing.T) {
	s := newTestFilterConfigStore(t)

	labels := s.Labels(models.CategorieFases)
	assert.Equal(t, "Bereiken", labels["bereiken"])

	kleuren := s.Kleuren(models.CategorieAfdelingen)
	assert.NotEmpty(t, kleuren["sales"])
}

func TestIsOptieInUse(t *testing.T) {
	nodes := []*models.ProcesNode{
		{ID: "n1", Titel: "Stap", Fase: models.FaseBereiken, PrimaireAfdeling: models.AfdelingSales},
	}

	assert.True(t, IsOptieInUse(models.CategorieFases, "bereiken", nodes))
	assert.True(t, IsOptieInUse(models.CategorieAfdelingen, "sales", nodes))
	assert.False(t, IsOptieInUse(models.CategorieFases, "binden", nodes))
	assert.False(t, IsOptieInUse("bestaat-niet", "sales", nodes))
	assert.False(t, IsOptieInUse(models.CategorieFases, "bereiken", nil))
}
