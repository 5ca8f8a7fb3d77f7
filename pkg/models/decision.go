package models

import "time"

// DecisionNodeType is the closed set of node kinds in a decision flowchart.
type DecisionNodeType string

const (
	DecisionNodeStart      DecisionNodeType = "start"
	DecisionNodeEnd        DecisionNodeType = "end"
	DecisionNodeDecision   DecisionNodeType = "decision"
	DecisionNodeAction     DecisionNodeType = "action"
	DecisionNodeSubprocess DecisionNodeType = "subprocess"
)

// DecisionEdgeType classifies a decision edge. Ja/nee edges originate from the
// two output ports of a decision node; standaard is used everywhere else.
type DecisionEdgeType string

const (
	DecisionEdgeJa        DecisionEdgeType = "ja"
	DecisionEdgeNee       DecisionEdgeType = "nee"
	DecisionEdgeStandaard DecisionEdgeType = "standaard"
)

// DecisionNode is a step in a decision flowchart. Which optional fields are
// meaningful depends on Type (Vraag for decision nodes, Afdeling for action
// and subprocess nodes, Linked* for subprocess nodes); the store does not
// enforce this.
type DecisionNode struct {
	ID               string           `json:"id"    validate:"required"`
	Type             DecisionNodeType `json:"type"  validate:"required,oneof=start end decision action subprocess"`
	Titel            string           `json:"titel" validate:"required"`
	Beschrijving     string           `json:"beschrijving,omitempty"`
	Afdeling         string           `json:"afdeling,omitempty"`
	Fase             string           `json:"fase,omitempty"`
	Position         *NodePosition    `json:"position,omitempty"`
	Vraag            string           `json:"vraag,omitempty"`
	LinkedProcessID  string           `json:"linkedProcessId,omitempty"`
	LinkedFlowchartID string          `json:"linkedFlowchartId,omitempty"`
}

// Clone returns a deep copy of the node.
func (n *DecisionNode) Clone() *DecisionNode {
	clone := *n

	if n.Position != nil {
		p := *n.Position
		clone.Position = &p
	}

	return &clone
}

// DecisionEdge is a directed link between two decision nodes.
type DecisionEdge struct {
	ID    string           `json:"id"   validate:"required"`
	Van   string           `json:"van"  validate:"required"`
	Naar  string           `json:"naar" validate:"required"`
	Label string           `json:"label,omitempty"`
	Type  DecisionEdgeType `json:"type" validate:"required,oneof=ja nee standaard"`
}

// Clone returns a copy of the edge.
func (e *DecisionEdge) Clone() *DecisionEdge {
	clone := *e

	return &clone
}

// DecisionFlowchart is a named, persisted decision-tree graph document.
type DecisionFlowchart struct {
	ID              string          `json:"id"   validate:"required"`
	Naam            string          `json:"naam" validate:"required"`
	Beschrijving    string          `json:"beschrijving,omitempty"`
	AanmaakDatum    time.Time       `json:"aanmaakDatum"`
	LaatstGewijzigd time.Time       `json:"laatstGewijzigd"`
	Nodes           []*DecisionNode `json:"nodes"`
	Edges           []*DecisionEdge `json:"edges"`
	LinkedProcessID string          `json:"linkedProcessId,omitempty"`
}

// DecisionFlowchartMetadata is the archive-listing record for a flowchart.
type DecisionFlowchartMetadata struct {
	ID              string    `json:"id"`
	Naam            string    `json:"naam"`
	Beschrijving    string    `json:"beschrijving,omitempty"`
	AanmaakDatum    time.Time `json:"aanmaakDatum"`
	LaatstGewijzigd time.Time `json:"laatstGewijzigd"`
	NodeCount       int       `json:"nodeCount"`
	EdgeCount       int       `json:"edgeCount"`
}

// Metadata derives the archive-listing record from the full document.
func (f *DecisionFlowchart) Metadata() DecisionFlowchartMetadata {
	return DecisionFlowchartMetadata{
		ID:              f.ID,
		Naam:            f.Naam,
		Beschrijving:    f.Beschrijving,
		AanmaakDatum:    f.AanmaakDatum,
		LaatstGewijzigd: f.LaatstGewijzigd,
		NodeCount:       len(f.Nodes),
		EdgeCount:       len(f.Edges),
	}
}

// Clone returns a deep copy of the flowchart.
func (f *DecisionFlowchart) Clone() *DecisionFlowchart {
	clone := *f
	clone.Nodes = CloneDecisionNodes(f.Nodes)
	clone.Edges = CloneDecisionEdges(f.Edges)

	return &clone
}

// CloneDecisionNodes deep-copies a node collection.
func CloneDecisionNodes(nodes []*DecisionNode) []*DecisionNode {
	if nodes == nil {
		return nil
	}

	out := make([]*DecisionNode, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}

// CloneDecisionEdges deep-copies an edge collection.
func CloneDecisionEdges(edges []*DecisionEdge) []*DecisionEdge {
	if edges == nil {
		return nil
	}

	out := make([]*DecisionEdge, len(edges))
	for i, e := range edges {
		out[i] = e.Clone()
	}

	return out
}
