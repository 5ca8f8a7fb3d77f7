package models

// DefaultFilterConfig returns the built-in filter configuration used when no
// persisted configuration exists (or the persisted blob cannot be read).
func DefaultFilterConfig() *FilterConfig {
	return &FilterConfig{
		Fases: FilterCategorie{
			ID:           CategorieFases,
			Naam:         "Fases",
			Beschrijving: "De 4 hoofdfasen van de klantreis",
			Opties: []FilterOptie{
				{ID: "bereiken", Label: "Bereiken", Beschrijving: "Marketing - nieuwe leden aantrekken", Kleur: "#E8F5E9", Volgorde: 1, Actief: true},
				{ID: "boeien", Label: "Boeien", Beschrijving: "Interesse wekken en vasthouden", Kleur: "#FFF3E0", Volgorde: 2, Actief: true},
				{ID: "binden", Label: "Binden", Beschrijving: "Lidmaatschap activeren", Kleur: "#E3F2FD", Volgorde: 3, Actief: true},
				{ID: "behouden", Label: "Behouden", Beschrijving: "Campagnes, Webinars, Connect, Wijzigingen", Kleur: "#F3E5F5", Volgorde: 4, Actief: true},
			},
		},
		Afdelingen: FilterCategorie{
			ID:           CategorieAfdelingen,
			Naam:         "Afdelingen",
			Beschrijving: "Afdelingen binnen de organisatie",
			Opties: []FilterOptie{
				{ID: "sales", Label: "Sales", Kleur: "#FFF3E0", Volgorde: 1, Actief: true},
				{ID: "ledenadministratie", Label: "Ledenadministratie", Kleur: "#E8F5E9", Volgorde: 2, Actief: true},
				{ID: "legal", Label: "Legal", Kleur: "#FCE4EC", Volgorde: 3, Actief: true},
				{ID: "finance", Label: "Finance", Kleur: "#F3E5F5", Volgorde: 4, Actief: true},
				{ID: "marcom", Label: "MarCom", Kleur: "#E0F7FA", Volgorde: 5, Actief: true},
				{ID: "it", Label: "IT", Kleur: "#ECEFF1", Volgorde: 6, Actief: true},
				{ID: "deelnemingen", Label: "Deelnemingen", Kleur: "#EFEBE9", Volgorde: 7, Actief: true},
				{ID: "bestuur", Label: "Bestuur", Kleur: "#FFEBEE", Volgorde: 8, Actief: true},
			},
		},
		KlantreisStatussen: FilterCategorie{
			ID:           CategorieKlantreisStatussen,
			Naam:         "Klantreis Status",
			Beschrijving: "Status van de klant in de klantreis",
			Opties: []FilterOptie{
				{ID: "lead", Label: "Lead", Kleur: "#E3F2FD", Volgorde: 1, Actief: true},
				{ID: "prospect", Label: "Prospect", Kleur: "#BBDEFB", Volgorde: 2, Actief: true},
				{ID: "aanvrager", Label: "Aanvrager (nieuw)", Kleur: "#90CAF9", Volgorde: 3, Actief: true},
				{ID: "aanvrager-bestaand", Label: "Aanvrager (bestaand lid)", Kleur: "#64B5F6", Volgorde: 4, Actief: true},
				{ID: "lid", Label: "Lid", Kleur: "#4CAF50", Volgorde: 5, Actief: true},
				{ID: "opzegger", Label: "Opzegger", Kleur: "#FF9800", Volgorde: 6, Actief: true},
				{ID: "ex-lid", Label: "Ex-lid", Kleur: "#9E9E9E", Volgorde: 7, Actief: true},
			},
		},
		ProcesFases: FilterCategorie{
			ID:           CategorieProcesFases,
			Naam:         "Procesfases",
			Beschrijving: "Fases in het procesverloop",
			Opties: []FilterOptie{
				{ID: "leadgeneratie", Label: "Leadgeneratie", Volgorde: 1, Actief: true},
				{ID: "intake", Label: "Intake", Volgorde: 2, Actief: true},
				{ID: "aanvraag", Label: "Aanvraag", Volgorde: 3, Actief: true},
				{ID: "beoordeling", Label: "Beoordeling", Volgorde: 4, Actief: true},
				{ID: "activatie", Label: "Activatie", Volgorde: 5, Actief: true},
				{ID: "onboarding", Label: "Onboarding", Volgorde: 6, Actief: true},
				{ID: "lopend-lidmaatschap", Label: "Lopend lidmaatschap", Volgorde: 7, Actief: true},
				{ID: "wijzigingen", Label: "Wijzigingen", Volgorde: 8, Actief: true},
				{ID: "beeindiging", Label: "Beëindiging", Volgorde: 9, Actief: true},
			},
		},
	}
}
