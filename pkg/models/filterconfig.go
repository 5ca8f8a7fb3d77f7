package models

import "sort"

// FilterCategorieID identifies one of the four fixed filter categories.
type FilterCategorieID string

const (
	CategorieFases              FilterCategorieID = "fases"
	CategorieAfdelingen         FilterCategorieID = "afdelingen"
	CategorieKlantreisStatussen FilterCategorieID = "klantreisStatussen"
	CategorieProcesFases        FilterCategorieID = "procesFases"
)

// FilterCategorieIDs lists the fixed category ids.
var FilterCategorieIDs = []FilterCategorieID{
	CategorieFases,
	CategorieAfdelingen,
	CategorieKlantreisStatussen,
	CategorieProcesFases,
}

// FilterOptie is an administrator-definable categorical tag. The ID is stable
// after creation; Actief soft-disables an option without deleting it.
type FilterOptie struct {
	ID           string `json:"id"    validate:"required"`
	Label        string `json:"label" validate:"required"`
	Beschrijving string `json:"beschrijving,omitempty"`
	Kleur        string `json:"kleur,omitempty"`
	Volgorde     int    `json:"volgorde"`
	Actief       bool   `json:"actief"`
}

// FilterCategorie groups options under a fixed category id.
type FilterCategorie struct {
	ID           FilterCategorieID `json:"id"`
	Naam         string            `json:"naam"`
	Beschrijving string            `json:"beschrijving,omitempty"`
	Opties       []FilterOptie     `json:"opties"`
}

// Clone returns a deep copy of the category.
func (c *FilterCategorie) Clone() *FilterCategorie {
	clone := *c
	clone.Opties = append([]FilterOptie(nil), c.Opties...)

	return &clone
}

// FilterConfig holds the four filter categories.
type FilterConfig struct {
	Fases              FilterCategorie `json:"fases"`
	Afdelingen         FilterCategorie `json:"afdelingen"`
	KlantreisStatussen FilterCategorie `json:"klantreisStatussen"`
	ProcesFases        FilterCategorie `json:"procesFases"`
}

// Categorie returns the category with the given id, or nil for unknown ids.
func (c *FilterConfig) Categorie(id FilterCategorieID) *FilterCategorie {
	switch id {
	case CategorieFases:
		return &c.Fases
	case CategorieAfdelingen:
		return &c.Afdelingen
	case CategorieKlantreisStatussen:
		return &c.KlantreisStatussen
	case CategorieProcesFases:
		return &c.ProcesFases
	default:
		return nil
	}
}

// Clone returns a deep copy of the config.
func (c *FilterConfig) Clone() *FilterConfig {
	return &FilterConfig{
		Fases:              *c.Fases.Clone(),
		Afdelingen:         *c.Afdelingen.Clone(),
		KlantreisStatussen: *c.KlantreisStatussen.Clone(),
		ProcesFases:        *c.ProcesFases.Clone(),
	}
}

// OptiesToLabels maps active options to id-to-label, respecting Volgorde when
// callers iterate via SortedActieveOpties.
func OptiesToLabels(opties []FilterOptie) map[string]string {
	out := make(map[string]string)

	for _, o := range opties {
		if o.Actief {
			out[o.ID] = o.Label
		}
	}

	return out
}

// OptiesToKleuren maps active options with a color to id-to-color.
func OptiesToKleuren(opties []FilterOptie) map[string]string {
	out := make(map[string]string)

	for _, o := range opties {
		if o.Actief && o.Kleur != "" {
			out[o.ID] = o.Kleur
		}
	}

	return out
}

// OptiesToBeschrijvingen maps active options with a description to
// id-to-description.
func OptiesToBeschrijvingen(opties []FilterOptie) map[string]string {
	out := make(map[string]string)

	for _, o := range opties {
		if o.Actief && o.Beschrijving != "" {
			out[o.ID] = o.Beschrijving
		}
	}

	return out
}

// SortedActieveOpties returns the active options ordered by Volgorde.
func SortedActieveOpties(opties []FilterOptie) []FilterOptie {
	out := make([]FilterOptie, 0, len(opties))

	for _, o := range opties {
		if o.Actief {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volgorde < out[j].Volgorde
	})

	return out
}
