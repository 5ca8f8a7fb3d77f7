package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/vgnl/procesflow/pkg/events"
	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

// undoDepth bounds the decision-store history to the most recent snapshots.
const undoDepth = 3

// graphSnapshot is one undo checkpoint of the decision graph.
type graphSnapshot struct {
	nodes []*models.DecisionNode
	edges []*models.DecisionEdge
}

// DecisionStore owns the live decision-flowchart graph. It mirrors the
// process store's CRUD/cascade/selection/archive shape and additionally keeps
// a bounded undo history over structural mutations and publishes a mutation
// event after every node/edge change so the autosaver can persist the active
// flowchart.
type DecisionStore struct {
	mu          sync.Mutex
	persistence persistence.Persistence
	publisher   message.Publisher
	logger      *slog.Logger

	nodes []*models.DecisionNode
	edges []*models.DecisionEdge

	selectedNodeID string
	selectedEdgeID string

	// history holds pre-mutation snapshots, oldest first, capped at
	// undoDepth. Undo pops the newest entry.
	history []graphSnapshot

	activeFlowchartID   string
	activeFlowchartName string
	flowchartList       []models.DecisionFlowchartMetadata
}

// NewDecisionStore creates an empty decision store. The publisher receives a
// FlowchartMutated event after every node/edge mutation; pass nil to disable
// auto-save eventing.
func NewDecisionStore(p persistence.Persistence, publisher message.Publisher, logger *slog.Logger) *DecisionStore {
	return &DecisionStore{
		persistence: p,
		publisher:   publisher,
		logger:      logger,
	}
}

// Nodes returns the live node collection.
func (s *DecisionStore) Nodes() []*models.DecisionNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.DecisionNode(nil), s.nodes...)
}

// Edges returns the live edge collection.
func (s *DecisionStore) Edges() []*models.DecisionEdge {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.DecisionEdge(nil), s.edges...)
}

// checkpoint pushes a deep snapshot of the current graph onto the history,
// dropping the oldest entry beyond undoDepth. Callers hold s.mu.
func (s *DecisionStore) checkpoint() {
	snapshot := graphSnapshot{
		nodes: models.CloneDecisionNodes(s.nodes),
		edges: models.CloneDecisionEdges(s.edges),
	}

	history := append(s.history, snapshot)
	if len(history) > undoDepth {
		history = history[len(history)-undoDepth:]
	}

	s.history = history
}

// AddNode appends a node. Structural mutation: checkpoints the undo history
// and triggers auto-save.
func (s *DecisionStore) AddNode(node *models.DecisionNode) {
	s.mu.Lock()
	s.checkpoint()
	s.nodes = append(s.nodes, node)
	s.mu.Unlock()

	s.publishMutation()
}

// DecisionNodeUpdate is a partial update for a decision node.
type DecisionNodeUpdate struct {
	Type              *models.DecisionNodeType
	Titel             *string
	Beschrijving      *string
	Afdeling          *string
	Fase              *string
	Vraag             *string
	LinkedProcessID   *string
	LinkedFlowchartID *string
	Position          *models.NodePosition
	ClearPosition     bool
}

// UpdateNode merges a partial update into the node with the given id. Content
// edits do not checkpoint the undo history (undo covers structural mutations
// only). Silent no-op when the id is unknown.
func (s *DecisionStore) UpdateNode(id string, update DecisionNodeUpdate) {
	s.mu.Lock()

	for _, node := range s.nodes {
		if node.ID != id {
			continue
		}

		if update.Type != nil {
			node.Type = *update.Type
		}

		if update.Titel != nil {
			node.Titel = *update.Titel
		}

		if update.Beschrijving != nil {
			node.Beschrijving = *update.Beschrijving
		}

		if update.Afdeling != nil {
			node.Afdeling = *update.Afdeling
		}

		if update.Fase != nil {
			node.Fase = *update.Fase
		}

		if update.Vraag != nil {
			node.Vraag = *update.Vraag
		}

		if update.LinkedProcessID != nil {
			node.LinkedProcessID = *update.LinkedProcessID
		}

		if update.LinkedFlowchartID != nil {
			node.LinkedFlowchartID = *update.LinkedFlowchartID
		}

		switch {
		case update.ClearPosition:
			node.Position = nil
		case update.Position != nil:
			p := *update.Position
			node.Position = &p
		}

		break
	}

	s.mu.Unlock()

	s.publishMutation()
}

// DeleteNode removes a node and cascades to every edge touching it.
// Structural mutation: checkpoints the undo history.
func (s *DecisionStore) DeleteNode(id string) {
	s.mu.Lock()
	s.checkpoint()

	nodes := make([]*models.DecisionNode, 0, len(s.nodes))

	for _, node := range s.nodes {
		if node.ID != id {
			nodes = append(nodes, node)
		}
	}

	s.nodes = nodes

	edges := make([]*models.DecisionEdge, 0, len(s.edges))

	for _, edge := range s.edges {
		if edge.Van != id && edge.Naar != id {
			edges = append(edges, edge)
		}
	}

	s.edges = edges

	if s.selectedNodeID == id {
		s.selectedNodeID = ""
	}

	s.mu.Unlock()

	s.publishMutation()
}

// AddEdge appends an edge. Structural mutation: checkpoints the undo history.
func (s *DecisionStore) AddEdge(edge *models.DecisionEdge) {
	s.mu.Lock()
	s.checkpoint()
	s.edges = append(s.edges, edge)
	s.mu.Unlock()

	s.publishMutation()
}

// DecisionEdgeUpdate is a partial update for a decision edge.
type DecisionEdgeUpdate struct {
	Label *string
	Type  *models.DecisionEdgeType
}

// UpdateEdge merges a partial update into the edge with the given id. Does
// not checkpoint the undo history. Silent no-op when the id is unknown.
func (s *DecisionStore) UpdateEdge(id string, update DecisionEdgeUpdate) {
	s.mu.Lock()

	for _, edge := range s.edges {
		if edge.ID != id {
			continue
		}

		if update.Label != nil {
			edge.Label = *update.Label
		}

		if update.Type != nil {
			edge.Type = *update.Type
		}

		break
	}

	s.mu.Unlock()

	s.publishMutation()
}

// DeleteEdge removes the edge with the given id. Structural mutation:
// checkpoints the undo history.
func (s *DecisionStore) DeleteEdge(id string) {
	s.mu.Lock()
	s.checkpoint()

	edges := make([]*models.DecisionEdge, 0, len(s.edges))

	for _, edge := range s.edges {
		if edge.ID != id {
			edges = append(edges, edge)
		}
	}

	s.edges = edges

	if s.selectedEdgeID == id {
		s.selectedEdgeID = ""
	}

	s.mu.Unlock()

	s.publishMutation()
}

// Undo restores the most recent pre-mutation snapshot and pops it. Silent
// no-op when no snapshot exists.
func (s *DecisionStore) Undo() {
	s.mu.Lock()

	if len(s.history) == 0 {
		s.mu.Unlock()

		return
	}

	previous := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.nodes = models.CloneDecisionNodes(previous.nodes)
	s.edges = models.CloneDecisionEdges(previous.edges)
	s.selectedNodeID = ""
	s.selectedEdgeID = ""

	s.mu.Unlock()

	s.publishMutation()
}

// CanUndo reports whether a prior snapshot exists.
func (s *DecisionStore) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.history) > 0
}

// SetSelectedNode selects a node (empty id clears). Node and edge selection
// are mutually exclusive.
func (s *DecisionStore) SetSelectedNode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedNodeID = id
	s.selectedEdgeID = ""
}

// SetSelectedEdge selects an edge (empty id clears). Node and edge selection
// are mutually exclusive.
func (s *DecisionStore) SetSelectedEdge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedEdgeID = id
	s.selectedNodeID = ""
}

// SelectedNode returns the currently selected node, or nil.
func (s *DecisionStore) SelectedNode() *models.DecisionNode {
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
func (s *DecisionStore) SelectedEdgeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectedEdgeID
}

// ActiveFlowchartID returns the id of the loaded flowchart, or "".
func (s *DecisionStore) ActiveFlowchartID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeFlowchartID
}

// ActiveFlowchartName returns the name of the loaded flowchart, or "".
func (s *DecisionStore) ActiveFlowchartName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeFlowchartName
}

// FlowchartList returns the cached archive listing.
func (s *DecisionStore) FlowchartList() []models.DecisionFlowchartMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.DecisionFlowchartMetadata(nil), s.flowchartList...)
}

// RefreshFlowchartList recomputes the archive listing from persisted storage.
func (s *DecisionStore) RefreshFlowchartList(ctx context.Context) {
	metadata, err := s.persistence.Flowcharts().ListMetadata(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh flowchart list", "error", err)

		return
	}

	s.mu.Lock()
	s.flowchartList = metadata
	s.mu.Unlock()
}

// SaveFlowchart persists the live graph: it overwrites the active flowchart
// when one is loaded and otherwise behaves as SaveFlowchartAs.
func (s *DecisionStore) SaveFlowchart(ctx context.Context, naam, beschrijving string) *models.DecisionFlowchart {
	s.mu.Lock()
	activeID := s.activeFlowchartID
	s.mu.Unlock()

	if activeID == "" {
		return s.SaveFlowchartAs(ctx, naam, beschrijving)
	}

	flowchart := s.snapshotFlowchart(activeID, naam, beschrijving)

	if err := s.persistence.Flowcharts().Save(ctx, flowchart); err != nil {
		s.logger.Error("failed to save flowchart", "flowchart_id", flowchart.ID, "error", err)
	}

	s.mu.Lock()
	s.activeFlowchartName = naam
	s.mu.Unlock()

	s.RefreshFlowchartList(ctx)

	return flowchart
}

// SaveFlowchartAs persists the live graph as a new flowchart document and
// makes it the active flowchart.
func (s *DecisionStore) SaveFlowchartAs(ctx context.Context, naam, beschrijving string) *models.DecisionFlowchart {
	flowchart := s.snapshotFlowchart(newDocumentID(), naam, beschrijving)

	if err := s.persistence.Flowcharts().Save(ctx, flowchart); err != nil {
		s.logger.Error("failed to save flowchart", "flowchart_id", flowchart.ID, "error", err)
	}

	s.mu.Lock()
	s.activeFlowchartID = flowchart.ID
	s.activeFlowchartName = flowchart.Naam
	s.mu.Unlock()

	s.RefreshFlowchartList(ctx)

	return flowchart
}

func (s *DecisionStore) snapshotFlowchart(id, naam, beschrijving string) *models.DecisionFlowchart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.DecisionFlowchart{
		ID:           id,
		Naam:         naam,
		Beschrijving: beschrijving,
		Nodes:        models.CloneDecisionNodes(s.nodes),
		Edges:        models.CloneDecisionEdges(s.edges),
	}
}

// Snapshot returns a persisted-document snapshot of the live graph for the
// active flowchart, or nil when none is active. Used by the autosaver.
func (s *DecisionStore) Snapshot() *models.DecisionFlowchart {
	s.mu.Lock()
	id := s.activeFlowchartID
	naam := s.activeFlowchartName
	s.mu.Unlock()

	if id == "" {
		return nil
	}

	return s.snapshotFlowchart(id, naam, "")
}

// LoadFlowchart replaces the live graph with a persisted flowchart, clears
// the selection, and makes it the active flowchart.
func (s *DecisionStore) LoadFlowchart(ctx context.Context, id string) error {
	flowchart, err := s.persistence.Flowcharts().GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.nodes = models.CloneDecisionNodes(flowchart.Nodes)
	s.edges = models.CloneDecisionEdges(flowchart.Edges)
	s.activeFlowchartID = flowchart.ID
	s.activeFlowchartName = flowchart.Naam
	s.selectedNodeID = ""
	s.selectedEdgeID = ""
	s.mu.Unlock()

	return nil
}

// DeleteFlowchart removes a persisted flowchart. When it was the active
// flowchart the live state resets to an empty graph.
func (s *DecisionStore) DeleteFlowchart(ctx context.Context, id string) error {
	if err := s.persistence.Flowcharts().Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.activeFlowchartID == id {
		s.nodes = nil
		s.edges = nil
		s.activeFlowchartID = ""
		s.activeFlowchartName = ""
		s.selectedNodeID = ""
		s.selectedEdgeID = ""
	}
	s.mu.Unlock()

	s.RefreshFlowchartList(ctx)

	return nil
}

// CreateNewFlowchart resets the live state to an empty, unsaved graph.
func (s *DecisionStore) CreateNewFlowchart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = nil
	s.edges = nil
	s.selectedNodeID = ""
	s.selectedEdgeID = ""
	s.activeFlowchartID = ""
	s.activeFlowchartName = ""
}

// FlowchartNameExists reports whether a persisted flowchart already carries
// the given name (case-insensitive), excluding the given id. Name uniqueness
// is a caller-side dialog check, not a store invariant.
func (s *DecisionStore) FlowchartNameExists(ctx context.Context, naam, excludeID string) bool {
	flowcharts, err := s.persistence.Flowcharts().All(ctx)
	if err != nil {
		return false
	}

	for _, f := range flowcharts {
		if f.ID != excludeID && strings.EqualFold(f.Naam, naam) {
			return true
		}
	}

	return false
}

// publishMutation emits a FlowchartMutated event for the active flowchart.
// Publishing is fire and forget; the autosaver debounces and persists.
func (s *DecisionStore) publishMutation() {
	if s.publisher == nil {
		return
	}

	s.mu.Lock()
	event := events.FlowchartMutated{FlowchartID: s.activeFlowchartID}
	s.mu.Unlock()

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal mutation event", "error", err)

		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(events.EventTypeMetadataKey, string(events.FlowchartMutatedEvent))

	if err := s.publisher.Publish(events.FlowchartTopic, msg); err != nil {
		s.logger.Error("failed to publish mutation event", "error", err)
	}
}
