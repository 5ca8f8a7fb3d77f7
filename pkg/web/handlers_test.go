package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence/file"
	"github.com/vgnl/procesflow/pkg/services"
	"github.com/vgnl/procesflow/pkg/store"
	"github.com/vgnl/procesflow/pkg/web"
)

type fixture struct {
	app           *fiber.App
	processStore  *store.ProcessStore
	decisionStore *store.DecisionStore
	filterStore   *store.FilterConfigStore
}

func setupTestApp(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := file.NewPersistence(t.TempDir(), logger)

	processStore := store.NewProcessStore(p, logger)
	decisionStore := store.NewDecisionStore(p, nil, logger)
	filterStore := store.NewFilterConfigStore(p, logger)
	archive := services.NewArchive(p)
	validate := validator.New(validator.WithRequiredStructEnabled())

	handlers := web.NewAPIHandlers(processStore, decisionStore, filterStore, archive, validate)

	app := fiber.New()

	pr := app.Group("/process")
	pr.Get("/", handlers.GetProcessGraph)
	pr.Get("/nodes", handlers.GetProcessNodes)
	pr.Post("/nodes", handlers.CreateProcessNode)
	pr.Patch("/nodes/:id", handlers.UpdateProcessNode)
	pr.Delete("/nodes/:id", handlers.DeleteProcessNode)
	pr.Post("/edges", handlers.CreateProcessEdge)
	pr.Patch("/edges/:id", handlers.UpdateProcessEdge)
	pr.Delete("/edges/:id", handlers.DeleteProcessEdge)
	pr.Put("/selection", handlers.SetProcessSelection)
	pr.Patch("/filters", handlers.UpdateFilters)
	pr.Delete("/filters", handlers.ResetFilters)

	cv := app.Group("/canvasses")
	cv.Get("/", handlers.GetCanvasses)
	cv.Post("/", handlers.SaveCanvas)
	cv.Post("/new", handlers.NewCanvas)
	cv.Post("/:id/load", handlers.LoadCanvas)
	cv.Delete("/:id", handlers.DeleteCanvas)

	d := app.Group("/decision")
	d.Get("/", handlers.GetDecisionGraph)
	d.Post("/nodes", handlers.CreateDecisionNode)
	d.Delete("/nodes/:id", handlers.DeleteDecisionNode)
	d.Post("/edges", handlers.CreateDecisionEdge)
	d.Post("/undo", handlers.Undo)

	fc := app.Group("/filter-config")
	fc.Get("/", handlers.GetFilterConfig)
	fc.Post("/:categorieId/opties", handlers.CreateFilterOptie)
	fc.Patch("/:categorieId/opties/:optieId", handlers.UpdateFilterOptie)
	fc.Delete("/:categorieId/opties/:optieId", handlers.DeleteFilterOptie)

	app.Get("/health", handlers.HealthCheck)

	return &fixture{
		app:           app,
		processStore:  processStore,
		decisionStore: decisionStore,
		filterStore:   filterStore,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestCreateProcessNode(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/process/nodes", models.ProcesNode{
		ID:    "n1",
		Titel: "Lead registreren",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, f.processStore.Nodes(), 1)
}

func TestCreateProcessNode_MissingTitle(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/process/nodes", models.ProcesNode{ID: "n1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, f.processStore.Nodes())
}

func TestCreateProcessNode_DuplicateID(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Bestaand"})

	resp := doJSON(t, f.app, http.MethodPost, "/process/nodes", models.ProcesNode{
		ID:    "n1",
		Titel: "Nogmaals",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, f.processStore.Nodes(), 1)
}

func TestUpdateProcessNode(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Origineel"})

	resp := doJSON(t, f.app, http.MethodPatch, "/process/nodes/n1", map[string]any{
		"titel": "Hernoemd",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hernoemd", f.processStore.Nodes()[0].Titel)
}

func TestUpdateProcessNode_NotFound(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPatch, "/process/nodes/missing", map[string]any{
		"titel": "Hernoemd",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProcessNode_CascadesEdges(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Een"})
	f.processStore.AddNode(&models.ProcesNode{ID: "n2", Titel: "Twee"})
	f.processStore.AddEdge(&models.ProcesEdge{ID: "e1", Van: "n1", Naar: "n2"})

	resp := doJSON(t, f.app, http.MethodDelete, "/process/nodes/n1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, f.processStore.Nodes(), 1)
	assert.Empty(t, f.processStore.Edges())
}

func TestCreateProcessEdge_UnknownEndpoint(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Een"})

	resp := doJSON(t, f.app, http.MethodPost, "/process/edges", models.ProcesEdge{
		ID: "e1", Van: "n1", Naar: "ghost",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, f.processStore.Edges())
}

func TestSetProcessSelection_MutuallyExclusive(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Een"})

	resp := doJSON(t, f.app, http.MethodPut, "/process/selection", map[string]any{
		"nodeId": "n1",
		"edgeId": "e1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPut, "/process/selection", map[string]any{
		"nodeId": "n1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, f.processStore.SelectedNode())
}

func TestSaveAndLoadCanvas(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Een"})

	resp := doJSON(t, f.app, http.MethodPost, "/canvasses/", map[string]any{
		"naam": "Mijn canvas",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var canvas models.Canvas

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &canvas))
	assert.NotEmpty(t, canvas.ID)

	resp = doJSON(t, f.app, http.MethodPost, "/canvasses/"+canvas.ID+"/load", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, "/canvasses/missing/load", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveCanvas_NameConflict(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{ID: "n1", Titel: "Een"})
	f.processStore.SaveCanvasAs(t.Context(), "Bezet", "")

	resp := doJSON(t, f.app, http.MethodPost, "/canvasses/", map[string]any{
		"naam":   "bezet",
		"saveAs": true,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, "/canvasses/", map[string]any{
		"naam":      "bezet",
		"saveAs":    true,
		"overwrite": true,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestDeleteCanvas_NotFound(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodDelete, "/canvasses/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateDecisionNode_InvalidType(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/decision/nodes", map[string]any{
		"id":    "n1",
		"type":  "loop",
		"titel": "Ongeldig",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, f.decisionStore.Nodes())
}

func TestDecisionUndoEndpoint(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/decision/nodes", models.DecisionNode{
		ID: "n1", Type: models.DecisionNodeStart, Titel: "Start",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, "/decision/undo", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, f.decisionStore.Nodes())

	// Undo with empty history stays a silent no-op.
	resp = doJSON(t, f.app, http.MethodPost, "/decision/undo", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateFilterOptie_Conflicts(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/filter-config/afdelingen/opties", models.FilterOptie{
		ID: "sales", Label: "Sales nogmaals",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, "/filter-config/bestaat-niet/opties", models.FilterOptie{
		ID: "x", Label: "X",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, "/filter-config/afdelingen/opties", models.FilterOptie{
		ID: "hr", Label: "HR",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUpdateFilterOptie_NotFound(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodPatch, "/filter-config/afdelingen/opties/missing", map[string]any{
		"label": "X",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteFilterOptie_InUse(t *testing.T) {
	f := setupTestApp(t)

	f.processStore.AddNode(&models.ProcesNode{
		ID: "n1", Titel: "Een", PrimaireAfdeling: models.AfdelingSales,
	})

	resp := doJSON(t, f.app, http.MethodDelete, "/filter-config/afdelingen/opties/sales", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodDelete, "/filter-config/afdelingen/opties/sales?force=true", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	f := setupTestApp(t)

	resp := doJSON(t, f.app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
