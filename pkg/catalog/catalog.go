// Package catalog manages the persisted recipe catalog. Recipes are
// read-only for the engine packages; this service owns their lifecycle.
package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/openai"
	"github.com/platewise/platewise/pkg/storage"
)

const keyPrefix = "recipe:"

// Service provides access to the recipe catalog
type Service struct {
	store        *storage.Store
	openaiClient *openai.Client
	logger       *logger.Logger
}

// New creates a new catalog service
func New(store *storage.Store, openaiClient *openai.Client) *Service {
	return &Service{
		store:        store,
		openaiClient: openaiClient,
		logger:       logger.New("catalog"),
	}
}

// List returns every recipe in the catalog, in stable name order so the
// engine's catalog-order tie-breaks are reproducible across calls
func (s *Service) List() ([]models.Recipe, error) {
	keys, err := s.store.List(keyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]models.Recipe, 0, len(keys))
	for _, key := range keys {
		var recipe models.Recipe
		if err := s.store.Get(key, &recipe); err != nil {
			s.logger.Error("Failed to get recipe %s: %v", key, err)
			continue
		}
		recipes = append(recipes, recipe)
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].Name < recipes[j].Name
	})

	return recipes, nil
}

// Get returns a single recipe by ID
func (s *Service) Get(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.store.Get(keyPrefix+id, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindByName returns the first recipe whose name contains the query,
// case-insensitively
func (s *Service) FindByName(query string) (*models.Recipe, error) {
	recipes, err := s.List()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	for _, recipe := range recipes {
		if strings.Contains(strings.ToLower(recipe.Name), query) {
			return &recipe, nil
		}
	}

	return nil, errors.Wrap(storage.ErrNotFound, query)
}

// Add stores a recipe, assigning an ID when it has none
func (s *Service) Add(recipe models.Recipe) (*models.Recipe, error) {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}

	if err := s.store.Set(keyPrefix+recipe.ID, recipe); err != nil {
		return nil, errors.Wrapf(err, "failed to save recipe %s", recipe.Name)
	}

	return &recipe, nil
}

// AddByName fetches recipe details from the OpenAI collaborator and
// stores the result
func (s *Service) AddByName(dishName string) (*models.Recipe, error) {
	recipe, err := s.openaiClient.GetRecipeInfo(dishName)
	if err != nil {
		return nil, err
	}

	return s.Add(*recipe)
}

// EnsureSeeded populates the catalog with the built-in starter recipes
// when it is empty
func (s *Service) EnsureSeeded() error {
	keys, err := s.store.List(keyPrefix)
	if err != nil {
		return errors.Wrap(err, "failed to check catalog")
	}
	if len(keys) > 0 {
		return nil
	}

	s.logger.Info("Seeding catalog with %d starter recipes", len(seedRecipes))
	for _, recipe := range seedRecipes {
		if _, err := s.Add(recipe); err != nil {
			return err
		}
	}

	return nil
}
