// Package store implements the live in-memory graph stores backing the
// editor: the process-flow store, the decision-flowchart store and the
// filter-configuration store. Stores are constructed objects with injected
// persistence; they hold the working copy of a graph and own the archive
// (save / save-as / load / delete) lifecycle against persisted storage.
package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

// SeedData is the normalized startup dataset for the process store.
type SeedData struct {
	Nodes   []*models.ProcesNode
	Edges   []*models.ProcesEdge
	Modules []*models.Module
}

// ProcessStore owns the live business-process graph. Mutators are permissive:
// they do not validate id uniqueness or endpoint existence (callers
// pre-validate via the services package) and unknown ids are silent no-ops.
type ProcessStore struct {
	mu          sync.Mutex
	persistence persistence.Persistence
	logger      *slog.Logger

	nodes   []*models.ProcesNode
	edges   []*models.ProcesEdge
	modules []*models.Module

	selectedNodeID string
	selectedEdgeID string
	editMode       bool
	sidebarOpen    bool

	filters models.FilterState

	activeCanvasID   string
	activeCanvasName string
	canvasList       []models.CanvasMetadata
}

// NewProcessStore creates an empty process store over the given persistence.
func NewProcessStore(p persistence.Persistence, logger *slog.Logger) *ProcessStore {
	return &ProcessStore{
		persistence: p,
		logger:      logger,
		sidebarOpen: true,
	}
}

// Init loads a normalized seed dataset into the live graph and refreshes the
// archive listing. It replaces any current state.
func (s *ProcessStore) Init(ctx context.Context, seed SeedData) {
	s.mu.Lock()
	s.nodes = seed.Nodes
	s.edges = seed.Edges
	s.modules = seed.Modules
	s.mu.Unlock()

	s.RefreshCanvasList(ctx)
}

// Nodes returns the live node collection.
func (s *ProcessStore) Nodes() []*models.ProcesNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.ProcesNode(nil), s.nodes...)
}

// Edges returns the live edge collection.
func (s *ProcessStore) Edges() []*models.ProcesEdge {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.ProcesEdge(nil), s.edges...)
}

// Modules returns the seed-dataset modules.
func (s *ProcessStore) Modules() []*models.Module {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.Module(nil), s.modules...)
}

// AddNode appends a node to the live graph.
func (s *ProcessStore) AddNode(node *models.ProcesNode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = append(s.nodes, node)
}

// AddEdge appends an edge to the live graph.
func (s *ProcessStore) AddEdge(edge *models.ProcesEdge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges = append(s.edges, edge)
}

// ProcesNodeUpdate is a partial update for a process node. Nil fields leave
// the current value unchanged; ClearPosition drops a stored canvas position.
type ProcesNodeUpdate struct {
	Titel                *string
	KorteBeschrijving    *string
	Fase                 *models.Fase
	KlantreisStatus      *models.KlantreisStatus
	ProcesFase           *models.ProcesFase
	PrimaireAfdeling     *models.Afdeling
	Raci                 *[]models.RaciToewijzing
	Trigger              *string
	Inputs               *[]string
	Acties               *[]string
	Outputs              *[]string
	Doorlooptijd         *models.Doorlooptijd
	Handovers            *[]models.Handover
	Uitzonderingen       *[]models.Uitzondering
	Registraties         *[]models.Registratie
	ReglementReferenties *[]models.ReglementReferentie
	Versie               *models.VersieInfo
	Tags                 *[]string
	Notities             *string
	Position             *models.NodePosition
	ClearPosition        bool
}

func (u ProcesNodeUpdate) apply(node *models.ProcesNode) {
	if u.Titel != nil {
		node.Titel = *u.Titel
	}

	if u.KorteBeschrijving != nil {
		node.KorteBeschrijving = *u.KorteBeschrijving
	}

	if u.Fase != nil {
		node.Fase = *u.Fase
	}

	if u.KlantreisStatus != nil {
		node.KlantreisStatus = *u.KlantreisStatus
	}

	if u.ProcesFase != nil {
		node.ProcesFase = *u.ProcesFase
	}

	if u.PrimaireAfdeling != nil {
		node.PrimaireAfdeling = *u.PrimaireAfdeling
	}

	if u.Raci != nil {
		node.Raci = *u.Raci
	}

	if u.Trigger != nil {
		node.Trigger = *u.Trigger
	}

	if u.Inputs != nil {
		node.Inputs = *u.Inputs
	}

	if u.Acties != nil {
		node.Acties = *u.Acties
	}

	if u.Outputs != nil {
		node.Outputs = *u.Outputs
	}

	if u.Doorlooptijd != nil {
		d := *u.Doorlooptijd
		node.Doorlooptijd = &d
	}

	if u.Handovers != nil {
		node.Handovers = *u.Handovers
	}

	if u.Uitzonderingen != nil {
		node.Uitzonderingen = *u.Uitzonderingen
	}

	if u.Registraties != nil {
		node.Registraties = *u.Registraties
	}

	if u.ReglementReferenties != nil {
		node.ReglementReferenties = *u.ReglementReferenties
	}

	if u.Versie != nil {
		node.Versie = *u.Versie
	}

	if u.Tags != nil {
		node.Tags = *u.Tags
	}

	if u.Notities != nil {
		node.Notities = *u.Notities
	}

	switch {
	case u.ClearPosition:
		node.Position = nil
	case u.Position != nil:
		p := *u.Position
		node.Position = &p
	}
}

// isContentEdit reports whether the update changes node content rather than
// only its canvas position. Pure position moves do not bump the version
// record.
func (u ProcesNodeUpdate) isContentEdit() bool {
	positionOnly := u
	positionOnly.Position = nil
	positionOnly.ClearPosition = false

	return positionOnly != (ProcesNodeUpdate{})
}

// UpdateNode merges a partial update into the node with the given id. It is a
// silent no-op when the id is unknown. Content edits stamp
// Versie.LaatstGewijzigd.
func (s *ProcessStore) UpdateNode(id string, update ProcesNodeUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, node := range s.nodes {
		if node.ID != id {
			continue
		}

		update.apply(node)

		if update.isContentEdit() && update.Versie == nil {
			node.Versie.LaatstGewijzigd = time.Now().UTC().Format(time.RFC3339)
		}

		return
	}
}

// DeleteNode removes a node and cascades to every edge touching it. The
// selection is cleared when the deleted node was selected.
func (s *ProcessStore) DeleteNode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := make([]*models.ProcesNode, 0, len(s.nodes))

	for _, node := range s.nodes {
		if node.ID != id {
			nodes = append(nodes, node)
		}
	}

	s.nodes = nodes

	edges := make([]*models.ProcesEdge, 0, len(s.edges))

	for _, edge := range s.edges {
		if edge.Van != id && edge.Naar != id {
			edges = append(edges, edge)
		}
	}

	s.edges = edges

	if s.selectedNodeID == id {
		s.selectedNodeID = ""
	}
}

// ProcesEdgeUpdate is a partial update for a process edge.
type ProcesEdgeUpdate struct {
	Label    *string
	Conditie *string
	Type     *models.EdgeType
}

// UpdateEdge merges a partial update into the edge with the given id. Silent
// no-op when the id is unknown.
func (s *ProcessStore) UpdateEdge(id string, update ProcesEdgeUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, edge := range s.edges {
		if edge.ID != id {
			continue
		}

		if update.Label != nil {
			edge.Label = *update.Label
		}

		if update.Conditie != nil {
			edge.Conditie = *update.Conditie
		}

		if update.Type != nil {
			edge.Type = *update.Type
		}

		return
	}
}

// DeleteEdge removes the edge with the given id. Edges have no dependents, so
// no cascade is needed.
func (s *ProcessStore) DeleteEdge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edges := make([]*models.ProcesEdge, 0, len(s.edges))

	for _, edge := range s.edges {
		if edge.ID != id {
			edges = append(edges, edge)
		}
	}

	s.edges = edges

	if s.selectedEdgeID == id {
		s.selectedEdgeID = ""
	}
}

// SetSelectedNode selects a node (empty id clears). Node and edge selection
// are mutually exclusive.
func (s *ProcessStore) SetSelectedNode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedNodeID = id
	s.selectedEdgeID = ""
}

// SetSelectedEdge selects an edge (empty id clears). Node and edge selection
// are mutually exclusive.
func (s *ProcessStore) SetSelectedEdge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedEdgeID = id
	s.selectedNodeID = ""
}

// SelectedNode returns the currently selected node, or nil.
func (s *ProcessStore) SelectedNode() *models.ProcesNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedNodeID == "" {
		return nil
	}

	for _, node := range s.nodes {
		if node.ID == s.selectedNodeID {
			return node
		}
	}

	return nil
}

// SelectedEdgeID returns the currently selected edge id, or "".
func (s *ProcessStore) SelectedEdgeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectedEdgeID
}

// ToggleEditMode flips the edit-mode view flag and returns the new value.
func (s *ProcessStore) ToggleEditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editMode = !s.editMode

	return s.editMode
}

// ToggleSidebar flips the sidebar view flag and returns the new value.
func (s *ProcessStore) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sidebarOpen = !s.sidebarOpen

	return s.sidebarOpen
}

// EditMode reports the edit-mode view flag.
func (s *ProcessStore) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editMode
}

// FilterUpdate is a partial update of the filter state. Nil fields leave the
// current value unchanged.
type FilterUpdate struct {
	Fases              *[]string
	ProcesFases        *[]string
	Afdelingen         *[]string
	KlantreisStatussen *[]string
	Zoekterm           *string
}

// SetFilters merges a partial filter update into the active filter state.
func (s *ProcessStore) SetFilters(update FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Fases != nil {
		s.filters.Fases = *update.Fases
	}

	if update.ProcesFases != nil {
		s.filters.ProcesFases = *update.ProcesFases
	}

	if update.Afdelingen != nil {
		s.filters.Afdelingen = *update.Afdelingen
	}

	if update.KlantreisStatussen != nil {
		s.filters.KlantreisStatussen = *update.KlantreisStatussen
	}

	if update.Zoekterm != nil {
		s.filters.Zoekterm = *update.Zoekterm
	}
}

// ResetFilters clears the active filter state.
func (s *ProcessStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = models.FilterState{}
}

// Filters returns the active filter state.
func (s *ProcessStore) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

// FilteredNodes returns the nodes passing the active filter: the search term
// must match title, description or id (case-insensitive substring) AND the
// node must be a member of every non-empty categorical filter set.
func (s *ProcessStore) FilteredNodes() []*models.ProcesNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.ProcesNode, 0, len(s.nodes))

	for _, node := range s.nodes {
		if s.matchesFilters(node) {
			out = append(out, node)
		}
	}

	return out
}

func (s *ProcessStore) matchesFilters(node *models.ProcesNode) bool {
	if s.filters.Zoekterm != "" {
		zoek := strings.ToLower(s.filters.Zoekterm)

		if !strings.Contains(strings.ToLower(node.Titel), zoek) &&
			!strings.Contains(strings.ToLower(node.KorteBeschrijving), zoek) &&
			!strings.Contains(strings.ToLower(node.ID), zoek) {
			return false
		}
	}

	if len(s.filters.Fases) > 0 && !containsString(s.filters.Fases, string(node.Fase)) {
		return false
	}

	if len(s.filters.ProcesFases) > 0 && !containsString(s.filters.ProcesFases, string(node.ProcesFase)) {
		return false
	}

	if len(s.filters.Afdelingen) > 0 && !containsString(s.filters.Afdelingen, string(node.PrimaireAfdeling)) {
		return false
	}

	if len(s.filters.KlantreisStatussen) > 0 && !containsString(s.filters.KlantreisStatussen, string(node.KlantreisStatus)) {
		return false
	}

	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}

	return false
}

// ActiveCanvasID returns the id of the loaded canvas, or "".
func (s *ProcessStore) ActiveCanvasID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeCanvasID
}

// ActiveCanvasName returns the name of the loaded canvas, or "".
func (s *ProcessStore) ActiveCanvasName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeCanvasName
}

// CanvasList returns the cached archive listing.
func (s *ProcessStore) CanvasList() []models.CanvasMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CanvasMetadata(nil), s.canvasList...)
}

// RefreshCanvasList recomputes the archive listing from persisted storage.
func (s *ProcessStore) RefreshCanvasList(ctx context.Context) {
	metadata, err := s.persistence.Canvases().ListMetadata(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh canvas list", "error", err)

		return
	}

	s.mu.Lock()
	s.canvasList = metadata
	s.mu.Unlock()
}

// SaveCanvas persists the live graph: it overwrites the active canvas when
// one is loaded and otherwise behaves as SaveCanvasAs.
func (s *ProcessStore) SaveCanvas(ctx context.Context, naam, beschrijving string) *models.Canvas {
	s.mu.Lock()
	activeID := s.activeCanvasID
	s.mu.Unlock()

	if activeID == "" {
		return s.SaveCanvasAs(ctx, naam, beschrijving)
	}

	canvas := s.snapshotCanvas(activeID, naam, beschrijving)

	if err := s.persistence.Canvases().Save(ctx, canvas); err != nil {
		s.logger.Error("failed to save canvas", "canvas_id", canvas.ID, "error", err)
	}

	s.mu.Lock()
	s.activeCanvasName = naam
	s.mu.Unlock()

	s.RefreshCanvasList(ctx)

	return canvas
}

// SaveCanvasAs persists the live graph as a new canvas document and makes it
// the active canvas.
func (s *ProcessStore) SaveCanvasAs(ctx context.Context, naam, beschrijving string) *models.Canvas {
	canvas := s.snapshotCanvas(newDocumentID(), naam, beschrijving)

	if err := s.persistence.Canvases().Save(ctx, canvas); err != nil {
		s.logger.Error("failed to save canvas", "canvas_id", canvas.ID, "error", err)
	}

	s.mu.Lock()
	s.activeCanvasID = canvas.ID
	s.activeCanvasName = canvas.Naam
	s.mu.Unlock()

	s.RefreshCanvasList(ctx)

	return canvas
}

func (s *ProcessStore) snapshotCanvas(id, naam, beschrijving string) *models.Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.Canvas{
		ID:           id,
		Naam:         naam,
		Beschrijving: beschrijving,
		Nodes:        models.CloneProcesNodes(s.nodes),
		Edges:        models.CloneProcesEdges(s.edges),
	}
}

// LoadCanvas replaces the live graph with a persisted canvas, clears the
// selection and filters, and makes it the active canvas.
func (s *ProcessStore) LoadCanvas(ctx context.Context, id string) error {
	canvas, err := s.persistence.Canvases().GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.nodes = models.CloneProcesNodes(canvas.Nodes)
	s.edges = models.CloneProcesEdges(canvas.Edges)
	s.activeCanvasID = canvas.ID
	s.activeCanvasName = canvas.Naam
	s.selectedNodeID = ""
	s.selectedEdgeID = ""
	s.filters = models.FilterState{}
	s.mu.Unlock()

	return nil
}

// DeleteCanvas removes a persisted canvas. When it was the active canvas the
// live state resets to an empty graph.
func (s *ProcessStore) DeleteCanvas(ctx context.Context, id string) error {
	if err := s.persistence.Canvases().Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.activeCanvasID == id {
		s.nodes = nil
		s.edges = nil
		s.activeCanvasID = ""
		s.activeCanvasName = ""
		s.selectedNodeID = ""
		s.selectedEdgeID = ""
	}
	s.mu.Unlock()

	s.RefreshCanvasList(ctx)

	return nil
}

// CreateNewCanvas resets the live state to an empty, unsaved graph. The store
// performs no dirty-check; warning about unsaved work is a caller concern.
func (s *ProcessStore) CreateNewCanvas() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = nil
	s.edges = nil
	s.selectedNodeID = ""
	s.selectedEdgeID = ""
	s.activeCanvasID = ""
	s.activeCanvasName = ""
	s.filters = models.FilterState{}
}

// CanvasNameExists reports whether a persisted canvas already carries the
// given name (case-insensitive), excluding the given id. Name uniqueness is a
// caller-side dialog check, not a store invariant.
func (s *ProcessStore) CanvasNameExists(ctx context.Context, naam, excludeID string) bool {
	canvasses, err := s.persistence.Canvases().All(ctx)
	if err != nil {
		return false
	}

	for _, c := range canvasses {
		if c.ID != excludeID && strings.EqualFold(c.Naam, naam) {
			return true
		}
	}

	return false
}

func newDocumentID() string {
	return uuid.NewString()
}
