// Package models defines the domain models for process canvases, decision
// flowcharts and filter configuration. Field names follow the persisted JSON
// shape of the editor documents.
package models

// Fase is one of the four top-level phases of the member journey.
type Fase string

const (
	FaseBereiken Fase = "bereiken"
	FaseBoeien   Fase = "boeien"
	FaseBinden   Fase = "binden"
	FaseBehouden Fase = "behouden"
)

// KlantreisStatus is the member-journey status a process step applies to.
type KlantreisStatus string

const (
	KlantreisLead              KlantreisStatus = "lead"
	KlantreisProspect          KlantreisStatus = "prospect"
	KlantreisAanvrager         KlantreisStatus = "aanvrager"
	KlantreisAanvragerBestaand KlantreisStatus = "aanvrager-bestaand"
	KlantreisLid               KlantreisStatus = "lid"
	KlantreisOpzegger          KlantreisStatus = "opzegger"
	KlantreisExLid             KlantreisStatus = "ex-lid"
)

// Afdeling identifies an organisational department.
type Afdeling string

const (
	AfdelingSales              Afdeling = "sales"
	AfdelingLedenadministratie Afdeling = "ledenadministratie"
	AfdelingLegal              Afdeling = "legal"
	AfdelingFinance            Afdeling = "finance"
	AfdelingMarcom             Afdeling = "marcom"
	AfdelingIT                 Afdeling = "it"
	AfdelingDeelnemingen       Afdeling = "deelnemingen"
	AfdelingBestuur            Afdeling = "bestuur"
)

// ProcesFase is the fine-grained process phase of a step.
type ProcesFase string

const (
	ProcesFaseLeadgeneratie      ProcesFase = "leadgeneratie"
	ProcesFaseIntake             ProcesFase = "intake"
	ProcesFaseAanvraag           ProcesFase = "aanvraag"
	ProcesFaseBeoordeling        ProcesFase = "beoordeling"
	ProcesFaseActivatie          ProcesFase = "activatie"
	ProcesFaseOnboarding         ProcesFase = "onboarding"
	ProcesFaseLopendLidmaatschap ProcesFase = "lopend-lidmaatschap"
	ProcesFaseWijzigingen        ProcesFase = "wijzigingen"
	ProcesFaseBeeindiging        ProcesFase = "beeindiging"
)

// NodeStatus is the lifecycle status of a process node's version record.
type NodeStatus string

const (
	NodeStatusConcept   NodeStatus = "concept"
	NodeStatusActief    NodeStatus = "actief"
	NodeStatusVervallen NodeStatus = "vervallen"
)

// RaciType is a RACI responsibility marker.
type RaciType string

const (
	RaciResponsible RaciType = "R"
	RaciAccountable RaciType = "A"
	RaciConsulted   RaciType = "C"
	RaciInformed    RaciType = "I"
)

// EdgeType classifies a process edge.
type EdgeType string

const (
	EdgeTypeStandaard     EdgeType = "standaard"
	EdgeTypeUitzondering  EdgeType = "uitzondering"
	EdgeTypeEscalatie     EdgeType = "escalatie"
	EdgeTypeTerugkoppeling EdgeType = "terugkoppeling"
)

// RaciToewijzing assigns a RACI role to a process node.
type RaciToewijzing struct {
	Rol         string   `json:"rol"`
	Afdeling    Afdeling `json:"afdeling"`
	Type        RaciType `json:"type"`
	Toelichting string   `json:"toelichting,omitempty"`
}

// VersieInfo is the version and ownership record of a process node.
type VersieInfo struct {
	Versie             string     `json:"versie"`
	Eigenaar           string     `json:"eigenaar"`
	EigenaarAfdeling   Afdeling   `json:"eigenaarAfdeling"`
	AanmaakDatum       string     `json:"aanmaakDatum"`
	LaatstGewijzigd    string     `json:"laatstGewijzigd"`
	Status             NodeStatus `json:"status"`
	Wijzigingsnotities string     `json:"wijzigingsnotities,omitempty"`
}

// ReglementReferentie points to a clause in a regulation document.
type ReglementReferentie struct {
	Document     string `json:"document"`
	Artikel      string `json:"artikel"`
	Omschrijving string `json:"omschrijving"`
	URL          string `json:"url,omitempty"`
}

// Registratie describes a required registration in a target system.
type Registratie struct {
	Systeem   string `json:"systeem"`
	Actie     string `json:"actie"`
	Veld      string `json:"veld,omitempty"`
	Verplicht bool   `json:"verplicht"`
}

// Uitzondering is an exception path on a process node.
type Uitzondering struct {
	ID               string `json:"id"`
	Conditie         string `json:"conditie"`
	Actie            string `json:"actie"`
	Verantwoordelijke string `json:"verantwoordelijke"`
	EscaleertNaar    string `json:"escaleertNaar,omitempty"`
}

// Handover describes the transfer of work to another process node.
type Handover struct {
	NaarNode  string `json:"naarNode"`
	Conditie  string `json:"conditie,omitempty"`
	Overdracht string `json:"overdracht"`
}

// Doorlooptijd is the throughput/SLA record of a process node.
type Doorlooptijd struct {
	Standaard   string `json:"standaard"`
	Maximum     string `json:"maximum"`
	EscalatieBij string `json:"escalatieBij,omitempty"`
}

// NodePosition is a stored canvas position.
type NodePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProcesNode is a step in the business-process graph.
type ProcesNode struct {
	ID                   string                `json:"id"                   validate:"required"`
	Titel                string                `json:"titel"                validate:"required"`
	KorteBeschrijving    string                `json:"korteBeschrijving"`
	Fase                 Fase                  `json:"fase"`
	KlantreisStatus      KlantreisStatus       `json:"klantreisStatus"`
	ProcesFase           ProcesFase            `json:"procesFase"`
	PrimaireAfdeling     Afdeling              `json:"primaireAfdeling"`
	Raci                 []RaciToewijzing      `json:"raci"`
	Trigger              string                `json:"trigger"`
	Inputs               []string              `json:"inputs"`
	Acties               []string              `json:"acties"`
	Outputs              []string              `json:"outputs"`
	Doorlooptijd         *Doorlooptijd         `json:"doorlooptijd,omitempty"`
	Handovers            []Handover            `json:"handovers"`
	Uitzonderingen       []Uitzondering        `json:"uitzonderingen"`
	Registraties         []Registratie         `json:"registraties"`
	ReglementReferenties []ReglementReferentie `json:"reglementReferenties"`
	Versie               VersieInfo            `json:"versie"`
	Tags                 []string              `json:"tags,omitempty"`
	Notities             string                `json:"notities,omitempty"`
	Position             *NodePosition         `json:"position,omitempty"`
}

// Clone returns a deep copy of the node.
func (n *ProcesNode) Clone() *ProcesNode {
	clone := *n

	clone.Raci = append([]RaciToewijzing(nil), n.Raci...)
	clone.Inputs = append([]string(nil), n.Inputs...)
	clone.Acties = append([]string(nil), n.Acties...)
	clone.Outputs = append([]string(nil), n.Outputs...)
	clone.Handovers = append([]Handover(nil), n.Handovers...)
	clone.Uitzonderingen = append([]Uitzondering(nil), n.Uitzonderingen...)
	clone.Registraties = append([]Registratie(nil), n.Registraties...)
	clone.ReglementReferenties = append([]ReglementReferentie(nil), n.ReglementReferenties...)
	clone.Tags = append([]string(nil), n.Tags...)

	if n.Doorlooptijd != nil {
		d := *n.Doorlooptijd
		clone.Doorlooptijd = &d
	}

	if n.Position != nil {
		p := *n.Position
		clone.Position = &p
	}

	return &clone
}

// ProcesEdge is a directed link between two process nodes.
type ProcesEdge struct {
	ID       string   `json:"id"       validate:"required"`
	Van      string   `json:"van"      validate:"required"`
	Naar     string   `json:"naar"     validate:"required"`
	Label    string   `json:"label,omitempty"`
	Conditie string   `json:"conditie,omitempty"`
	Type     EdgeType `json:"type"`
}

// Clone returns a copy of the edge.
func (e *ProcesEdge) Clone() *ProcesEdge {
	clone := *e

	return &clone
}

// Module is a seed-dataset grouping record for process nodes.
type Module struct {
	ID               string   `json:"id"`
	Naam             string   `json:"naam"`
	Beschrijving     string   `json:"beschrijving"`
	Actief           bool     `json:"actief"`
	Afhankelijkheden []string `json:"afhankelijkheden,omitempty"`
	Versie           string   `json:"versie"`
}

// FilterState is the active filter predicate over process nodes. Empty slices
// impose no constraint; Zoekterm matches title, description and id.
type FilterState struct {
	Fases              []string `json:"fases"`
	ProcesFases        []string `json:"procesFases"`
	Afdelingen         []string `json:"afdelingen"`
	KlantreisStatussen []string `json:"klantreisStatussen"`
	Zoekterm           string   `json:"zoekterm"`
}
