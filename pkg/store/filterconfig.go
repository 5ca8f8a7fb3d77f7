package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vgnl/procesflow/pkg/models"
	"github.com/vgnl/procesflow/pkg/persistence"
)

var (
	// ErrUnknownCategorie indicates a category id outside the fixed set.
	ErrUnknownCategorie = errors.New("unknown filter category")

	// ErrDuplicateOptieID indicates an option id collision within a category.
	ErrDuplicateOptieID = errors.New("filter option id already exists")

	// ErrOptieNotFound indicates no option exists with the given id.
	ErrOptieNotFound = errors.New("filter option not found")
)

// FilterConfigStore holds the administrator-editable filter configuration.
// Every mutating operation persists immediately.
type FilterConfigStore struct {
	mu          sync.Mutex
	persistence persistence.Persistence
	logger      *slog.Logger

	config *models.FilterConfig
}

// NewFilterConfigStore creates a store with the built-in default
// configuration; call Load to read the persisted one.
func NewFilterConfigStore(p persistence.Persistence, logger *slog.Logger) *FilterConfigStore {
	return &FilterConfigStore{
		persistence: p,
		logger:      logger,
		config:      models.DefaultFilterConfig(),
	}
}

// Load reads the persisted configuration, falling back to the built-in
// defaults on absence or error.
func (s *FilterConfigStore) Load(ctx context.Context) {
	config, err := s.persistence.FilterConfigs().Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load filter config, using defaults", "error", err)

		config = models.DefaultFilterConfig()
	}

	s.mu.Lock()
	s.config = config
	s.mu.Unlock()
}

// Config returns a deep copy of the current configuration.
func (s *FilterConfigStore) Config() *models.FilterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.config.Clone()
}

// Categorie returns a deep copy of the category with the given id.
func (s *FilterConfigStore) Categorie(id models.FilterCategorieID) (*models.FilterCategorie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(id)
	if categorie == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategorie, id)
	}

	return categorie.Clone(), nil
}

// AddOptie appends an option to a category. Fails with ErrDuplicateOptieID
// when the option id already exists in the category.
func (s *FilterConfigStore) AddOptie(ctx context.Context, categorieID models.FilterCategorieID, optie models.FilterOptie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCategorie, categorieID)
	}

	for _, o := range categorie.Opties {
		if o.ID == optie.ID {
			return fmt.Errorf("%w: %q in category %s", ErrDuplicateOptieID, optie.ID, categorieID)
		}
	}

	categorie.Opties = append(categorie.Opties, optie)

	s.persist(ctx)

	return nil
}

// OptieUpdate is a partial update for a filter option.
type OptieUpdate struct {
	ID           *string
	Label        *string
	Beschrijving *string
	Kleur        *string
	Volgorde     *int
	Actief       *bool
}

// UpdateOptie merges a partial update into an option. Fails with
// ErrOptieNotFound for an unknown id and with ErrDuplicateOptieID when an id
// change collides with another option in the same category.
func (s *FilterConfigStore) UpdateOptie(ctx context.Context, categorieID models.FilterCategorieID, optieID string, update OptieUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCategorie, categorieID)
	}

	index := -1

	for i, o := range categorie.Opties {
		if o.ID == optieID {
			index = i

			break
		}
	}

	if index == -1 {
		return fmt.Errorf("%w: %q in category %s", ErrOptieNotFound, optieID, categorieID)
	}

	if update.ID != nil && *update.ID != optieID {
		for _, o := range categorie.Opties {
			if o.ID == *update.ID {
				return fmt.Errorf("%w: %q in category %s", ErrDuplicateOptieID, *update.ID, categorieID)
			}
		}
	}

	optie := &categorie.Opties[index]

	if update.ID != nil {
		optie.ID = *update.ID
	}

	if update.Label != nil {
		optie.Label = *update.Label
	}

	if update.Beschrijving != nil {
		optie.Beschrijving = *update.Beschrijving
	}

	if update.Kleur != nil {
		optie.Kleur = *update.Kleur
	}

	if update.Volgorde != nil {
		optie.Volgorde = *update.Volgorde
	}

	if update.Actief != nil {
		optie.Actief = *update.Actief
	}

	s.persist(ctx)

	return nil
}

// DeleteOptie removes an option unconditionally. Whether the option is in use
// is a caller-side concern, checked via IsOptieInUse.
func (s *FilterConfigStore) DeleteOptie(ctx context.Context, categorieID models.FilterCategorieID, optieID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCategorie, categorieID)
	}

	opties := make([]models.FilterOptie, 0, len(categorie.Opties))

	for _, o := range categorie.Opties {
		if o.ID != optieID {
			opties = append(opties, o)
		}
	}

	categorie.Opties = opties

	s.persist(ctx)

	return nil
}

// ReorderOpties reassigns each option's Volgorde to its 1-based index in
// orderedIDs. Options absent from orderedIDs are dropped from the category;
// callers must pass the complete id list.
func (s *FilterConfigStore) ReorderOpties(ctx context.Context, categorieID models.FilterCategorieID, orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCategorie, categorieID)
	}

	byID := make(map[string]models.FilterOptie, len(categorie.Opties))
	for _, o := range categorie.Opties {
		byID[o.ID] = o
	}

	opties := make([]models.FilterOptie, 0, len(orderedIDs))

	for i, id := range orderedIDs {
		optie, ok := byID[id]
		if !ok {
			continue
		}

		optie.Volgorde = i + 1
		opties = append(opties, optie)
	}

	categorie.Opties = opties

	s.persist(ctx)

	return nil
}

// Reset overwrites the configuration with the built-in defaults.
func (s *FilterConfigStore) Reset(ctx context.Context) {
	defaults, err := s.persistence.FilterConfigs().Reset(ctx)
	if err != nil {
		s.logger.Error("failed to reset filter config", "error", err)

		defaults = models.DefaultFilterConfig()
	}

	s.mu.Lock()
	s.config = defaults
	s.mu.Unlock()
}

// Labels returns id-to-label for the active options of a category.
func (s *FilterConfigStore) Labels(categorieID models.FilterCategorieID) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return map[string]string{}
	}

	return models.OptiesToLabels(categorie.Opties)
}

// Kleuren returns id-to-color for the active options of a category.
func (s *FilterConfigStore) Kleuren(categorieID models.FilterCategorieID) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return map[string]string{}
	}

	return models.OptiesToKleuren(categorie.Opties)
}

// Beschrijvingen returns id-to-description for the active options of a category.
func (s *FilterConfigStore) Beschrijvingen(categorieID models.FilterCategorieID) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categorie := s.config.Categorie(categorieID)
	if categorie == nil {
		return map[string]string{}
	}

	return models.OptiesToBeschrijvingen(categorie.Opties)
}

// IsOptieInUse reports whether any of the given process nodes carries the
// option id in the classifier field belonging to the category. Deletion is
// not blocked by use; the UI warns based on this query.
func IsOptieInUse(categorieID models.FilterCategorieID, optieID string, nodes []*models.ProcesNode) bool {
	for _, node := range nodes {
		var value string

		switch categorieID {
		case models.CategorieFases:
			value = string(node.Fase)
		case models.CategorieAfdelingen:
			value = string(node.PrimaireAfdeling)
		case models.CategorieKlantreisStatussen:
			value = string(node.KlantreisStatus)
		case models.CategorieProcesFases:
			value = string(node.ProcesFase)
		default:
			return false
		}

		if value == optieID {
			return true
		}
	}

	return false
}

// persist writes the configuration. Callers hold s.mu. Write failures are
// swallowed by the adapter; the in-memory config stays authoritative.
func (s *FilterConfigStore) persist(ctx context.Context) {
	if err := s.persistence.FilterConfigs().Save(ctx, s.config); err != nil {
		s.logger.Error("failed to persist filter config", "error", err)
	}
}
