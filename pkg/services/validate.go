package services

import (
	"fmt"

	"github.com/vgnl/procesflow/pkg/models"
)

// The graph stores are deliberately permissive: AddNode/AddEdge append
// without checks and unknown-id updates are silent no-ops. These pure helpers
// make the caller contract explicit; dialogs invoke them before calling the
// mutators.

// ValidateProcesNodeID checks that a new node id is non-empty and unique
// within the given node collection.
func ValidateProcesNodeID(nodes []*models.ProcesNode, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	for _, n := range nodes {
		if n.ID == id {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, id)
		}
	}

	return nil
}

// ValidateProcesEdge checks that both endpoints exist and that no edge with
// the same source and target is already present.
func ValidateProcesEdge(nodes []*models.ProcesNode, edges []*models.ProcesEdge, edge *models.ProcesEdge) error {
	if edge.ID == "" {
		return ErrEmptyID
	}

	if !procesNodeExists(nodes, edge.Van) {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, edge.Van)
	}

	if !procesNodeExists(nodes, edge.Naar) {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, edge.Naar)
	}

	for _, e := range edges {
		if e.Van == edge.Van && e.Naar == edge.Naar {
			return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, edge.Van, edge.Naar)
		}
	}

	return nil
}

// ValidateDecisionNodeID checks that a new node id is non-empty and unique
// within the given node collection.
func ValidateDecisionNodeID(nodes []*models.DecisionNode, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	for _, n := range nodes {
		if n.ID == id {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, id)
		}
	}

	return nil
}

// ValidateDecisionEdge checks that both endpoints exist and that no edge with
// the same source and target is already present.
func ValidateDecisionEdge(nodes []*models.DecisionNode, edges []*models.DecisionEdge, edge *models.DecisionEdge) error {
	if edge.ID == "" {
		return ErrEmptyID
	}

	if !decisionNodeExists(nodes, edge.Van) {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, edge.Van)
	}

	if !decisionNodeExists(nodes, edge.Naar) {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, edge.Naar)
	}

	for _, e := range edges {
		if e.Van == edge.Van && e.Naar == edge.Naar {
			return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, edge.Van, edge.Naar)
		}
	}

	return nil
}

func procesNodeExists(nodes []*models.ProcesNode, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}

func decisionNodeExists(nodes []*models.DecisionNode, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}
