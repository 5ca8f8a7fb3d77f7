// Package web provides HTTP request and response types for the editor API.
package web

import (
	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/store"
)

// UpdateProcesNodeRequest is the request body for partially updating a process
// node. All fields are optional; clearPosition drops a stored canvas position.
type UpdateProcesNodeRequest struct {
	Titel                *string                       `json:"titel,omitempty"             validate:"omitempty,min=1"`
	KorteBeschrijving    *string                       `json:"korteBeschrijving,omitempty"`
	Fase                 *models.Fase                  `json:"fase,omitempty"`
	KlantreisStatus      *models.KlantreisStatus       `json:"klantreisStatus,omitempty"`
	ProcesFase           *models.ProcesFase            `json:"procesFase,omitempty"`
	PrimaireAfdeling     *models.Afdeling              `json:"primaireAfdeling,omitempty"`
	Raci                 *[]models.RaciToewijzing      `json:"raci,omitempty"`
	Trigger              *string                       `json:"trigger,omitempty"`
	Inputs               *[]string                     `json:"inputs,omitempty"`
	Acties               *[]string                     `json:"acties,omitempty"`
	Outputs              *[]string                     `json:"outputs,omitempty"`
	Doorlooptijd         *models.Doorlooptijd          `json:"doorlooptijd,omitempty"`
	Handovers            *[]models.Handover            `json:"handovers,omitempty"`
	Uitzonderingen       *[]models.Uitzondering        `json:"uitzonderingen,omitempty"`
	Registraties         *[]models.Registratie         `json:"registraties,omitempty"`
	ReglementReferenties *[]models.ReglementReferentie `json:"reglementReferenties,omitempty"`
	Versie               *models.VersieInfo            `json:"versie,omitempty"`
	Tags                 *[]string                     `json:"tags,omitempty"`
	Notities             *string                       `json:"notities,omitempty"`
	Position             *models.NodePosition          `json:"position,omitempty"`
	ClearPosition        bool                          `json:"clearPosition,omitempty"`
}

// ToUpdate converts the request into a store update.
func (r UpdateProcesNodeRequest) ToUpdate() store.ProcesNodeUpdate {
	return store.ProcesNodeUpdate{
		Titel:                r.Titel,
		KorteBeschrijving:    r.KorteBeschrijving,
		Fase:                 r.Fase,
		KlantreisStatus:      r.KlantreisStatus,
		ProcesFase:           r.ProcesFase,
		PrimaireAfdeling:     r.PrimaireAfdeling,
		Raci:                 r.Raci,
		Trigger:              r.Trigger,
		Inputs:               r.Inputs,
		Acties:               r.Acties,
		Outputs:              r.Outputs,
		Doorlooptijd:         r.Doorlooptijd,
		Handovers:            r.Handovers,
		Uitzonderingen:       r.Uitzonderingen,
		Registraties:         r.Registraties,
		ReglementReferenties: r.ReglementReferenties,
		Versie:               r.Versie,
		Tags:                 r.Tags,
		Notities:             r.Notities,
		Position:             r.Position,
		ClearPosition:        r.ClearPosition,
	}
}

// UpdateProcesEdgeRequest is the request body for partially updating a process
// edge.
type UpdateProcesEdgeRequest struct {
	Label    *string          `json:"label,omitempty"`
	Conditie *string          `json:"conditie,omitempty"`
	Type     *models.EdgeType `json:"type,omitempty" validate:"omitempty,oneof=standaard uitzondering escalatie terugkoppeling"`
}

// ToUpdate converts the request into a store update.
func (r UpdateProcesEdgeRequest) ToUpdate() store.ProcesEdgeUpdate {
	return store.ProcesEdgeUpdate{
		Label:    r.Label,
		Conditie: r.Conditie,
		Type:     r.Type,
	}
}

// UpdateDecisionNodeRequest is the request body for partially updating a
// decision node.
type UpdateDecisionNodeRequest struct {
	Type              *models.DecisionNodeType `json:"type,omitempty"  validate:"omitempty,oneof=start end decision action subprocess"`
	Titel             *string                  `json:"titel,omitempty" validate:"omitempty,min=1"`
	Beschrijving      *string                  `json:"beschrijving,omitempty"`
	Afdeling          *string                  `json:"afdeling,omitempty"`
	Fase              *string                  `json:"fase,omitempty"`
	Vraag             *string                  `json:"vraag,omitempty"`
	LinkedProcessID   *string                  `json:"linkedProcessId,omitempty"`
	LinkedFlowchartID *string                  `json:"linkedFlowchartId,omitempty"`
	Position          *models.NodePosition     `json:"position,omitempty"`
	ClearPosition     bool                     `json:"clearPosition,omitempty"`
}

// ToUpdate converts the request into a store update.
func (r UpdateDecisionNodeRequest) ToUpdate() store.DecisionNodeUpdate {
	return store.DecisionNodeUpdate{
		Type:              r.Type,
		Titel:             r.Titel,
		Beschrijving:      r.Beschrijving,
		Afdeling:          r.Afdeling,
		Fase:              r.Fase,
		Vraag:             r.Vraag,
		LinkedProcessID:   r.LinkedProcessID,
		LinkedFlowchartID: r.LinkedFlowchartID,
		Position:          r.Position,
		ClearPosition:     r.ClearPosition,
	}
}

// UpdateDecisionEdgeRequest is the request body for partially updating a
// decision edge.
type UpdateDecisionEdgeRequest struct {
	Label *string                  `json:"label,omitempty"`
	Type  *models.DecisionEdgeType `json:"type,omitempty" validate:"omitempty,oneof=ja nee standaard"`
}

// ToUpdate converts the request into a store update.
func (r UpdateDecisionEdgeRequest) ToUpdate() store.DecisionEdgeUpdate {
	return store.DecisionEdgeUpdate{
		Label: r.Label,
		Type:  r.Type,
	}
}

// SaveDocumentRequest is the request body for saving the live graph into the
// archive, either over the active document or as a new one.
type SaveDocumentRequest struct {
	Naam         string `json:"naam" validate:"required,min=1"`
	Beschrijving string `json:"beschrijving"`
	SaveAs       bool   `json:"saveAs"`
	Overwrite    bool   `json:"overwrite"`
}

// SelectionRequest is the request body for changing the selection. Node and
// edge selection are mutually exclusive; empty ids clear the selection.
type SelectionRequest struct {
	NodeID string `json:"nodeId"`
	EdgeID string `json:"edgeId"`
}

// UpdateFiltersRequest is the request body for merging a partial filter update
// into the active filter state.
type UpdateFiltersRequest struct {
	Fases              *[]string `json:"fases,omitempty"`
	ProcesFases        *[]string `json:"procesFases,omitempty"`
	Afdelingen         *[]string `json:"afdelingen,omitempty"`
	KlantreisStatussen *[]string `json:"klantreisStatussen,omitempty"`
	Zoekterm           *string   `json:"zoekterm,omitempty"`
}

// ToUpdate converts the request into a store update.
func (r UpdateFiltersRequest) ToUpdate() store.FilterUpdate {
	return store.FilterUpdate{
		Fases:              r.Fases,
		ProcesFases:        r.ProcesFases,
		Afdelingen:         r.Afdelingen,
		KlantreisStatussen: r.KlantreisStatussen,
		Zoekterm:           r.Zoekterm,
	}
}

// UpdateFilterOptieRequest is the request body for partially updating a filter
// option.
type UpdateFilterOptieRequest struct {
	ID           *string `json:"id,omitempty"    validate:"omitempty,min=1"`
	Label        *string `json:"label,omitempty" validate:"omitempty,min=1"`
	Beschrijving *string `json:"beschrijving,omitempty"`
	Kleur        *string `json:"kleur,omitempty"`
	Volgorde     *int    `json:"volgorde,omitempty"`
	Actief       *bool   `json:"actief,omitempty"`
}

// ToUpdate converts the request into a store update.
func (r UpdateFilterOptieRequest) ToUpdate() store.OptieUpdate {
	return store.OptieUpdate{
		ID:           r.ID,
		Label:        r.Label,
		Beschrijving: r.Beschrijving,
		Kleur:        r.Kleur,
		Volgorde:     r.Volgorde,
		Actief:       r.Actief,
	}
}

// ReorderOptiesRequest is the request body for reordering the options of a
// filter category.
type ReorderOptiesRequest struct {
	OptieIDs []string `json:"optieIds" validate:"required,min=1"`
}
