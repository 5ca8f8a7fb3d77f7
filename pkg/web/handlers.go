// Package web provides the HTTP handlers for the process-editor API: the live
// process and decision graphs, the document archive, and the filter
// configuration.
package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/services"
	"github.com/vgnl/procesflow/pkg/store"
)

type APIHandlers struct {
	processStore  *store.ProcessStore
	decisionStore *store.DecisionStore
	filterStore   *store.FilterConfigStore
	archive       *services.Archive
	validator     *validator.Validate
}

func NewAPIHandlers(
	processStore *store.ProcessStore,
	decisionStore *store.DecisionStore,
	filterStore *store.FilterConfigStore,
	archive *services.Archive,
	validator *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		processStore:  processStore,
		decisionStore: decisionStore,
		filterStore:   filterStore,
		archive:       archive,
		validator:     validator,
	}
}

// Process graph

func (h *APIHandlers) GetProcessGraph(c fiber.Ctx) error {
	selected := h.processStore.SelectedNode()

	selectedID := ""
	if selected != nil {
		selectedID = selected.ID
	}

	return c.JSON(fiber.Map{
		"nodes":          h.processStore.Nodes(),
		"edges":          h.processStore.Edges(),
		"modules":        h.processStore.Modules(),
		"selectedNodeId": selectedID,
		"selectedEdgeId": h.processStore.SelectedEdgeID(),
		"editMode":       h.processStore.EditMode(),
		"activeCanvasId": h.processStore.ActiveCanvasID(),
		"canvasNaam":     h.processStore.ActiveCanvasName(),
	})
}

func (h *APIHandlers) GetProcessNodes(c fiber.Ctx) error {
	if filteredStr := c.Query("filtered"); filteredStr != "" {
		filtered, err := strconv.ParseBool(filteredStr)
		if err != nil {
			return badRequest(c, "Invalid filtered parameter: "+err.Error())
		}

		if filtered {
			return c.JSON(h.processStore.FilteredNodes())
		}
	}

	return c.JSON(h.processStore.Nodes())
}

func (h *APIHandlers) CreateProcessNode(c fiber.Ctx) error {
	var node models.ProcesNode
	if err := c.Bind().JSON(&node); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(node); err != nil {
		return badRequest(c, err.Error())
	}

	if err := services.ValidateProcesNodeID(h.processStore.Nodes(), node.ID); err != nil {
		return handleServiceError(c, err)
	}

	h.processStore.AddNode(&node)

	return c.Status(fiber.StatusCreated).JSON(&node)
}

func (h *APIHandlers) UpdateProcessNode(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Node ID is required")
	}

	var req UpdateProcesNodeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	node := findProcesNode(h.processStore.Nodes(), id)
	if node == nil {
		return notFound(c, "Node not found")
	}

	h.processStore.UpdateNode(id, req.ToUpdate())

	return c.JSON(findProcesNode(h.processStore.Nodes(), id))
}

func (h *APIHandlers) DeleteProcessNode(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Node ID is required")
	}

	if findProcesNode(h.processStore.Nodes(), id) == nil {
		return notFound(c, "Node not found")
	}

	h.processStore.DeleteNode(id)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) GetProcessEdges(c fiber.Ctx) error {
	return c.JSON(h.processStore.Edges())
}

func (h *APIHandlers) CreateProcessEdge(c fiber.Ctx) error {
	var edge models.ProcesEdge
	if err := c.Bind().JSON(&edge); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(edge); err != nil {
		return badRequest(c, err.Error())
	}

	if err := services.ValidateProcesEdge(h.processStore.Nodes(), h.processStore.Edges(), &edge); err != nil {
		return handleServiceError(c, err)
	}

	h.processStore.AddEdge(&edge)

	return c.Status(fiber.StatusCreated).JSON(&edge)
}

func (h *APIHandlers) UpdateProcessEdge(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Edge ID is required")
	}

	var req UpdateProcesEdgeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if findProcesEdge(h.processStore.Edges(), id) == nil {
		return notFound(c, "Edge not found")
	}

	h.processStore.UpdateEdge(id, req.ToUpdate())

	return c.JSON(findProcesEdge(h.processStore.Edges(), id))
}

func (h *APIHandlers) DeleteProcessEdge(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Edge ID is required")
	}

	if findProcesEdge(h.processStore.Edges(), id) == nil {
		return notFound(c, "Edge not found")
	}

	h.processStore.DeleteEdge(id)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) GetProcessModules(c fiber.Ctx) error {
	return c.JSON(h.processStore.Modules())
}

func (h *APIHandlers) SetProcessSelection(c fiber.Ctx) error {
	var req SelectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if req.NodeID != "" && req.EdgeID != "" {
		return badRequest(c, "Node and edge selection are mutually exclusive")
	}

	if req.EdgeID != "" {
		h.processStore.SetSelectedEdge(req.EdgeID)
	} else {
		h.processStore.SetSelectedNode(req.NodeID)
	}

	selected := h.processStore.SelectedNode()

	selectedID := ""
	if selected != nil {
		selectedID = selected.ID
	}

	return c.JSON(fiber.Map{
		"selectedNodeId": selectedID,
		"selectedEdgeId": h.processStore.SelectedEdgeID(),
	})
}

func (h *APIHandlers) ToggleEditMode(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"editMode": h.processStore.ToggleEditMode()})
}

func (h *APIHandlers) ToggleSidebar(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"sidebarOpen": h.processStore.ToggleSidebar()})
}

// Filters

func (h *APIHandlers) GetFilters(c fiber.Ctx) error {
	return c.JSON(h.processStore.Filters())
}

func (h *APIHandlers) UpdateFilters(c fiber.Ctx) error {
	var req UpdateFiltersRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	h.processStore.SetFilters(req.ToUpdate())

	return c.JSON(h.processStore.Filters())
}

func (h *APIHandlers) ResetFilters(c fiber.Ctx) error {
	h.processStore.ResetFilters()

	return c.JSON(h.processStore.Filters())
}

// Canvas archive

func (h *APIHandlers) GetCanvasses(c fiber.Ctx) error {
	canvasses, err := h.archive.ListCanvases(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(canvasses)
}

func (h *APIHandlers) SaveCanvas(c fiber.Ctx) error {
	var req SaveDocumentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	excludeID := h.processStore.ActiveCanvasID()
	if req.SaveAs {
		excludeID = ""
	}

	if !req.Overwrite && h.processStore.CanvasNameExists(c.Context(), req.Naam, excludeID) {
		return conflict(c, "A canvas with this name already exists")
	}

	var canvas *models.Canvas
	if req.SaveAs {
		canvas = h.processStore.SaveCanvasAs(c.Context(), req.Naam, req.Beschrijving)
	} else {
		canvas = h.processStore.SaveCanvas(c.Context(), req.Naam, req.Beschrijving)
	}

	return c.Status(fiber.StatusCreated).JSON(canvas)
}

func (h *APIHandlers) LoadCanvas(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Canvas ID is required")
	}

	if err := h.processStore.LoadCanvas(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return h.GetProcessGraph(c)
}

func (h *APIHandlers) DeleteCanvas(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Canvas ID is required")
	}

	if err := h.processStore.DeleteCanvas(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) NewCanvas(c fiber.Ctx) error {
	h.processStore.CreateNewCanvas()

	return h.GetProcessGraph(c)
}

// Decision graph

func (h *APIHandlers) GetDecisionGraph(c fiber.Ctx) error {
	selected := h.decisionStore.SelectedNode()

	selectedID := ""
	if selected != nil {
		selectedID = selected.ID
	}

	return c.JSON(fiber.Map{
		"nodes":             h.decisionStore.Nodes(),
		"edges":             h.decisionStore.Edges(),
		"selectedNodeId":    selectedID,
		"selectedEdgeId":    h.decisionStore.SelectedEdgeID(),
		"canUndo":           h.decisionStore.CanUndo(),
		"activeFlowchartId": h.decisionStore.ActiveFlowchartID(),
		"flowchartNaam":     h.decisionStore.ActiveFlowchartName(),
	})
}

func (h *APIHandlers) CreateDecisionNode(c fiber.Ctx) error {
	var node models.DecisionNode
	if err := c.Bind().JSON(&node); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(node); err != nil {
		return badRequest(c, err.Error())
	}

	if err := services.ValidateDecisionNodeID(h.decisionStore.Nodes(), node.ID); err != nil {
		return handleServiceError(c, err)
	}

	h.decisionStore.AddNode(&node)

	return c.Status(fiber.StatusCreated).JSON(&node)
}

func (h *APIHandlers) UpdateDecisionNode(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Node ID is required")
	}

	var req UpdateDecisionNodeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if findDecisionNode(h.decisionStore.Nodes(), id) == nil {
		return notFound(c, "Node not found")
	}

	h.decisionStore.UpdateNode(id, req.ToUpdate())

	return c.JSON(findDecisionNode(h.decisionStore.Nodes(), id))
}

func (h *APIHandlers) DeleteDecisionNode(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Node ID is required")
	}

	if findDecisionNode(h.decisionStore.Nodes(), id) == nil {
		return notFound(c, "Node not found")
	}

	h.decisionStore.DeleteNode(id)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) CreateDecisionEdge(c fiber.Ctx) error {
	var edge models.DecisionEdge
	if err := c.Bind().JSON(&edge); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(edge); err != nil {
		return badRequest(c, err.Error())
	}

	if err := services.ValidateDecisionEdge(h.decisionStore.Nodes(), h.decisionStore.Edges(), &edge); err != nil {
		return handleServiceError(c, err)
	}

	h.decisionStore.AddEdge(&edge)

	return c.Status(fiber.StatusCreated).JSON(&edge)
}

func (h *APIHandlers) UpdateDecisionEdge(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Edge ID is required")
	}

	var req UpdateDecisionEdgeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if findDecisionEdge(h.decisionStore.Edges(), id) == nil {
		return notFound(c, "Edge not found")
	}

	h.decisionStore.UpdateEdge(id, req.ToUpdate())

	return c.JSON(findDecisionEdge(h.decisionStore.Edges(), id))
}

func (h *APIHandlers) DeleteDecisionEdge(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Edge ID is required")
	}

	if findDecisionEdge(h.decisionStore.Edges(), id) == nil {
		return notFound(c, "Edge not found")
	}

	h.decisionStore.DeleteEdge(id)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) Undo(c fiber.Ctx) error {
	h.decisionStore.Undo()

	return c.JSON(fiber.Map{"canUndo": h.decisionStore.CanUndo()})
}

func (h *APIHandlers) SetDecisionSelection(c fiber.Ctx) error {
	var req SelectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if req.NodeID != "" && req.EdgeID != "" {
		return badRequest(c, "Node and edge selection are mutually exclusive")
	}

	if req.EdgeID != "" {
		h.decisionStore.SetSelectedEdge(req.EdgeID)
	} else {
		h.decisionStore.SetSelectedNode(req.NodeID)
	}

	selected := h.decisionStore.SelectedNode()

	selectedID := ""
	if selected != nil {
		selectedID = selected.ID
	}

	return c.JSON(fiber.Map{
		"selectedNodeId": selectedID,
		"selectedEdgeId": h.decisionStore.SelectedEdgeID(),
	})
}

// Flowchart archive

func (h *APIHandlers) GetFlowcharts(c fiber.Ctx) error {
	flowcharts, err := h.archive.ListFlowcharts(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(flowcharts)
}

func (h *APIHandlers) SaveFlowchart(c fiber.Ctx) error {
	var req SaveDocumentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	excludeID := h.decisionStore.ActiveFlowchartID()
	if req.SaveAs {
		excludeID = ""
	}

	if !req.Overwrite && h.decisionStore.FlowchartNameExists(c.Context(), req.Naam, excludeID) {
		return conflict(c, "A flowchart with this name already exists")
	}

	var flowchart *models.DecisionFlowchart
	if req.SaveAs {
		flowchart = h.decisionStore.SaveFlowchartAs(c.Context(), req.Naam, req.Beschrijving)
	} else {
		flowchart = h.decisionStore.SaveFlowchart(c.Context(), req.Naam, req.Beschrijving)
	}

	return c.Status(fiber.StatusCreated).JSON(flowchart)
}

func (h *APIHandlers) LoadFlowchart(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Flowchart ID is required")
	}

	if err := h.decisionStore.LoadFlowchart(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return h.GetDecisionGraph(c)
}

func (h *APIHandlers) DeleteFlowchart(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Flowchart ID is required")
	}

	if err := h.decisionStore.DeleteFlowchart(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) NewFlowchart(c fiber.Ctx) error {
	h.decisionStore.CreateNewFlowchart()

	return h.GetDecisionGraph(c)
}

// Filter configuration

func (h *APIHandlers) GetFilterConfig(c fiber.Ctx) error {
	return c.JSON(h.filterStore.Config())
}

func (h *APIHandlers) CreateFilterOptie(c fiber.Ctx) error {
	categorieID := models.FilterCategorieID(c.Params("categorieId"))

	var optie models.FilterOptie
	if err := c.Bind().JSON(&optie); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(optie); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.filterStore.AddOptie(c.Context(), categorieID, optie); err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(&optie)
}

func (h *APIHandlers) UpdateFilterOptie(c fiber.Ctx) error {
	categorieID := models.FilterCategorieID(c.Params("categorieId"))

	optieID := c.Params("optieId")
	if optieID == "" {
		return badRequest(c, "Option ID is required")
	}

	var req UpdateFilterOptieRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.filterStore.UpdateOptie(c.Context(), categorieID, optieID, req.ToUpdate()); err != nil {
		return handleServiceError(c, err)
	}

	categorie, err := h.filterStore.Categorie(categorieID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(categorie)
}

func (h *APIHandlers) DeleteFilterOptie(c fiber.Ctx) error {
	categorieID := models.FilterCategorieID(c.Params("categorieId"))

	optieID := c.Params("optieId")
	if optieID == "" {
		return badRequest(c, "Option ID is required")
	}

	force := false

	if forceStr := c.Query("force"); forceStr != "" {
		parsed, err := strconv.ParseBool(forceStr)
		if err != nil {
			return badRequest(c, "Invalid force parameter: "+err.Error())
		}

		force = parsed
	}

	if !force && store.IsOptieInUse(categorieID, optieID, h.processStore.Nodes()) {
		return conflict(c, "Filter option is in use by one or more process nodes")
	}

	if err := h.filterStore.DeleteOptie(c.Context(), categorieID, optieID); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) ReorderFilterOpties(c fiber.Ctx) error {
	categorieID := models.FilterCategorieID(c.Params("categorieId"))

	var req ReorderOptiesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.filterStore.ReorderOpties(c.Context(), categorieID, req.OptieIDs); err != nil {
		return handleServiceError(c, err)
	}

	categorie, err := h.filterStore.Categorie(categorieID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(categorie)
}

func (h *APIHandlers) ResetFilterConfig(c fiber.Ctx) error {
	h.filterStore.Reset(c.Context())

	return c.JSON(h.filterStore.Config())
}

// Health

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	repositoryCheck, ok := h.archive.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Procesflow API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if ok {
		status = "healthy"
		message = "Procesflow API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"repository": repositoryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

func findProcesNode(nodes []*models.ProcesNode, id string) *models.ProcesNode {
	for _, node := range nodes {
		if node.ID == id {
			return node
		}
	}

	return nil
}

func findProcesEdge(edges []*models.ProcesEdge, id string) *models.ProcesEdge {
	for _, edge := range edges {
		if edge.ID == id {
			return edge
		}
	}

	return nil
}

func findDecisionNode(nodes []*models.DecisionNode, id string) *models.DecisionNode {
	for _, node := range nodes {
		if node.ID == id {
			return node
		}
	}

	return nil
}

func findDecisionEdge(edges []*models.DecisionEdge, id string) *models.DecisionEdge {
	for _, edge := range edges {
		if edge.ID == id {
			return edge
		}
	}

	return nil
}
