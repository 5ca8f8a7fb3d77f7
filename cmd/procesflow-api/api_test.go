package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence/file"
)

func setupTestAPI(t *testing.T) *API {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	persistence := file.NewPersistence(t.TempDir(), logger)

	api := NewAPI(logger, persistence, 0)
	require.NoError(t, api.Init(t.Context()))

	t.Cleanup(api.Close)

	return api
}

func TestAPI_RootEndpoint(t *testing.T) {
	api := setupTestAPI(t)
	app := api.App()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Procesflow API", string(body))
}

func TestAPI_HealthCheck(t *testing.T) {
	api := setupTestAPI(t)
	app := api.App()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_InitLoadsSeedDataset(t *testing.T) {
	api := setupTestAPI(t)
	app := api.App()

	req := httptest.NewRequest(http.MethodGet, "/process/nodes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var nodes []*models.ProcesNode
	require.NoError(t, json.Unmarshal(body, &nodes))
	assert.NotEmpty(t, nodes)

	// Dataset legacy values never leak out of the loader.
	for _, node := range nodes {
		assert.NotEqual(t, models.ProcesFase("contributie"), node.ProcesFase)
		assert.NotEqual(t, models.Afdeling("events-opleidingen"), node.PrimaireAfdeling)
		require.NotNil(t, node.Position, "node %s has no position", node.ID)
	}
}

func TestAPI_FilterConfigEndpoint(t *testing.T) {
	api := setupTestAPI(t)
	app := api.App()

	req := httptest.NewRequest(http.MethodGet, "/filter-config/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var config models.FilterConfig
	require.NoError(t, json.Unmarshal(body, &config))
	require.NotNil(t, config.Categorie(models.CategorieFases))
	assert.Len(t, config.Categorie(models.CategorieFases).Opties, 4)
}
