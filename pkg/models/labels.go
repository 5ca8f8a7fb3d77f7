package models

// Display labels and colors for fixed enumerations. The configurable
// categories (phases, departments, journey statuses, process phases) resolve
// their labels through the filter configuration instead; these tables are the
// fallback for seed data and for the fixed decision-node palette.

// FaseLabels maps each journey phase to its display label.
var FaseLabels = map[Fase]string{
	FaseBereiken: "Bereiken",
	FaseBoeien:   "Boeien",
	FaseBinden:   "Binden",
	FaseBehouden: "Behouden",
}

// AfdelingLabels maps each department to its display label.
var AfdelingLabels = map[Afdeling]string{
	AfdelingSales:              "Sales",
	AfdelingLedenadministratie: "Ledenadministratie",
	AfdelingLegal:              "Legal",
	AfdelingFinance:            "Finance",
	AfdelingMarcom:             "MarCom",
	AfdelingIT:                 "IT",
	AfdelingDeelnemingen:       "Deelnemingen",
	AfdelingBestuur:            "Bestuur",
}

// AfdelingKleuren maps each department to its display color.
var AfdelingKleuren = map[Afdeling]string{
	AfdelingSales:              "#FFF3E0",
	AfdelingLedenadministratie: "#E8F5E9",
	AfdelingLegal:              "#FCE4EC",
	AfdelingFinance:            "#F3E5F5",
	AfdelingMarcom:             "#E0F7FA",
	AfdelingIT:                 "#ECEFF1",
	AfdelingDeelnemingen:       "#EFEBE9",
	AfdelingBestuur:            "#FFEBEE",
}

// DecisionNodeKleuren maps decision node types to their base color. Action
// nodes are overridden by the department color when one is set.
var DecisionNodeKleuren = map[DecisionNodeType]string{
	DecisionNodeStart:      "#4CAF50",
	DecisionNodeEnd:        "#f44336",
	DecisionNodeDecision:   "#FFC107",
	DecisionNodeAction:     "#2196F3",
	DecisionNodeSubprocess: "#9C27B0",
}

// DecisionNodeLabels maps decision node types to display labels.
var DecisionNodeLabels = map[DecisionNodeType]string{
	DecisionNodeStart:      "Start",
	DecisionNodeEnd:        "Einde",
	DecisionNodeDecision:   "Beslissing",
	DecisionNodeAction:     "Actie",
	DecisionNodeSubprocess: "Subprocess",
}

// DecisionEdgeKleuren maps decision edge types to their color.
var DecisionEdgeKleuren = map[DecisionEdgeType]string{
	DecisionEdgeJa:        "#4CAF50",
	DecisionEdgeNee:       "#f44336",
	DecisionEdgeStandaard: "#64748b",
}

// DecisionEdgeLabels maps decision edge types to their default label.
var DecisionEdgeLabels = map[DecisionEdgeType]string{
	DecisionEdgeJa:        "Ja",
	DecisionEdgeNee:       "Nee",
	DecisionEdgeStandaard: "",
}
