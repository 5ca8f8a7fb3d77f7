// Package seed loads the bundled startup dataset for the process store. The
// dataset predates the current enumerations, so loading validates the raw
// JSON against a schema and remaps legacy categorical values onto the current
// members before handing normalized entities to the store.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/store"
)

//go:embed data/*.json schema.json
var dataset embed.FS

type nodesFile struct {
	Nodes []*models.ProcesNode `json:"nodes"`
}

type edgesFile struct {
	Edges []*models.ProcesEdge `json:"edges"`
}

type modulesFile struct {
	Modules []*models.Module `json:"modules"`
}

// Load reads, validates and normalizes the bundled dataset.
func Load() (store.SeedData, error) {
	var seed store.SeedData

	var nodes nodesFile
	if err := loadFile("data/nodes.json", &nodes); err != nil {
		return seed, err
	}

	var edges edgesFile
	if err := loadFile("data/edges.json", &edges); err != nil {
		return seed, err
	}

	var modules modulesFile
	if err := loadFile("data/modules.json", &modules); err != nil {
		return seed, err
	}

	seed.Nodes = make([]*models.ProcesNode, 0, len(nodes.Nodes))
	for _, node := range nodes.Nodes {
		seed.Nodes = append(seed.Nodes, Normalize(node))
	}

	ApplyGridPositions(seed.Nodes)

	seed.Edges = edges.Edges
	seed.Modules = modules.Modules

	return seed, nil
}

// loadFile reads an embedded dataset file, validates it against the bundled
// schema and unmarshals it into v.
func loadFile(name string, v any) error {
	body, err := dataset.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", name, err)
	}

	schemaBody, err := dataset.ReadFile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to read dataset schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBody),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return fmt.Errorf("failed to validate dataset %s: %w", name, err)
	}

	if !result.Valid() {
		return fmt.Errorf("dataset %s does not match schema: %v", name, result.Errors())
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse dataset %s: %w", name, err)
	}

	return nil
}

// Normalize remaps legacy categorical values on a node onto the current
// enumerations and derives the journey phase from the process phase.
func Normalize(node *models.ProcesNode) *models.ProcesNode {
	node.ProcesFase = mapProcesFase(node.ProcesFase)
	node.Fase = faseVoorProcesFase(node.ProcesFase)
	node.KlantreisStatus = mapKlantreisStatus(node.KlantreisStatus)
	node.PrimaireAfdeling = mapAfdeling(node.PrimaireAfdeling)

	return node
}

// Legacy process phases that no longer exist map onto current ones.
func mapProcesFase(fase models.ProcesFase) models.ProcesFase {
	switch fase {
	case "contributie", "gilde-beheer":
		return models.ProcesFaseLopendLidmaatschap
	case "escalatie":
		return models.ProcesFaseWijzigingen
	default:
		return fase
	}
}

// faseVoorProcesFase derives the journey phase from the process phase.
func faseVoorProcesFase(fase models.ProcesFase) models.Fase {
	switch fase {
	case models.ProcesFaseLeadgeneratie:
		return models.FaseBereiken
	case models.ProcesFaseIntake, models.ProcesFaseAanvraag, models.ProcesFaseBeoordeling:
		return models.FaseBoeien
	case models.ProcesFaseActivatie, models.ProcesFaseOnboarding:
		return models.FaseBinden
	default:
		return models.FaseBehouden
	}
}

func mapKlantreisStatus(status models.KlantreisStatus) models.KlantreisStatus {
	if status == "extra-lid" {
		return models.KlantreisAanvragerBestaand
	}

	return status
}

func mapAfdeling(afdeling models.Afdeling) models.Afdeling {
	switch afdeling {
	case "events-opleidingen":
		return models.AfdelingDeelnemingen
	case "gilde-organisatie":
		return models.AfdelingBestuur
	default:
		return afdeling
	}
}

// Grid layout constants for nodes without a stored position.
const (
	xSpacing    = 320
	ySpacing    = 200
	nodeOffsetX = 250
	nodeOffsetY = 160
)

var procesFaseOrder = []models.ProcesFase{
	models.ProcesFaseLeadgeneratie,
	models.ProcesFaseIntake,
	models.ProcesFaseAanvraag,
	models.ProcesFaseBeoordeling,
	models.ProcesFaseActivatie,
	models.ProcesFaseOnboarding,
	models.ProcesFaseLopendLidmaatschap,
	models.ProcesFaseWijzigingen,
	models.ProcesFaseBeeindiging,
}

var afdelingOrder = []models.Afdeling{
	models.AfdelingSales,
	models.AfdelingLedenadministratie,
	models.AfdelingLegal,
	models.AfdelingFinance,
	models.AfdelingMarcom,
	models.AfdelingDeelnemingen,
	models.AfdelingIT,
	models.AfdelingBestuur,
}

// ApplyGridPositions assigns a default canvas position to every node without
// a stored one: a fixed grid keyed by process phase (columns) and department
// (rows), with nodes sharing a cell staggered two per row.
func ApplyGridPositions(nodes []*models.ProcesNode) {
	type cell struct {
		fase     models.ProcesFase
		afdeling models.Afdeling
	}

	perCell := make(map[cell]int)

	for _, node := range nodes {
		key := cell{fase: node.ProcesFase, afdeling: node.PrimaireAfdeling}
		indexInCell := perCell[key]
		perCell[key]++

		if node.Position != nil {
			continue
		}

		col := indexInCell % 2
		row := indexInCell / 2

		node.Position = &models.NodePosition{
			X: float64(indexOfProcesFase(node.ProcesFase)*xSpacing + col*nodeOffsetX),
			Y: float64(indexOfAfdeling(node.PrimaireAfdeling)*ySpacing + row*nodeOffsetY),
		}
	}
}

func indexOfProcesFase(fase models.ProcesFase) int {
	for i, f := range procesFaseOrder {
		if f == fase {
			return i
		}
	}

	return 0
}

func indexOfAfdeling(afdeling models.Afdeling) int {
	for i, a := range afdelingOrder {
		if a == afdeling {
			return i
		}
	}

	return 0
}
