package models

import "time"

// Canvas is a named, persisted business-process graph document.
type Canvas struct {
	ID              string        `json:"id"           validate:"required"`
	Naam            string        `json:"naam"         validate:"required"`
	Beschrijving    string        `json:"beschrijving,omitempty"`
	AanmaakDatum    time.Time     `json:"aanmaakDatum"`
	LaatstGewijzigd time.Time     `json:"laatstGewijzigd"`
	Nodes           []*ProcesNode `json:"nodes"`
	Edges           []*ProcesEdge `json:"edges"`
}

// CanvasMetadata is the archive-listing record for a canvas. It carries counts
// only, never the node/edge payload.
type CanvasMetadata struct {
	ID              string    `json:"id"`
	Naam            string    `json:"naam"`
	Beschrijving    string    `json:"beschrijving,omitempty"`
	AanmaakDatum    time.Time `json:"aanmaakDatum"`
	LaatstGewijzigd time.Time `json:"laatstGewijzigd"`
	NodeCount       int       `json:"nodeCount"`
	EdgeCount       int       `json:"edgeCount"`
}

// Metadata derives the archive-listing record from the full document.
func (c *Canvas) Metadata() CanvasMetadata {
	return CanvasMetadata{
		ID:              c.ID,
		Naam:            c.Naam,
		Beschrijving:    c.Beschrijving,
		AanmaakDatum:    c.AanmaakDatum,
		LaatstGewijzigd: c.LaatstGewijzigd,
		NodeCount:       len(c.Nodes),
		EdgeCount:       len(c.Edges),
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	clone := *c
	clone.Nodes = CloneProcesNodes(c.Nodes)
	clone.Edges = CloneProcesEdges(c.Edges)

	return &clone
}

// CloneProcesNodes deep-copies a node collection.
func CloneProcesNodes(nodes []*ProcesNode) []*ProcesNode {
	if nodes == nil {
		return nil
	}

	out := make([]*ProcesNode, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}

// CloneProcesEdges deep-copies an edge collection.
func CloneProcesEdges(edges []*ProcesEdge) []*ProcesEdge {
	if edges == nil {
		return nil
	}

	out := make([]*ProcesEdge, len(edges))
	for i, e := range edges {
		out[i] = e.Clone()
	}

	return out
}
