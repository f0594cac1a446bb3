// Package pantry tracks the observed ingredients available in a chat.
// The detector feeding it (photo or text analysis) gives no schema
// guarantees beyond "sequence of strings", so names are stored as-is
// and normalized only inside the engine packages.
package pantry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/storage"
)

// Service provides pantry management functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new pantry service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("pantry"),
	}
}

// GetPantry retrieves the pantry for a chat, creating it when absent
func (s *Service) GetPantry(chatID int64) (*models.Pantry, error) {
	pantryKey := fmt.Sprintf("pantry:%d", chatID)

	var pantry models.Pantry
	err := s.store.Get(pantryKey, &pantry)
	if err != nil {
		if !storage.IsNotFound(err) {
			return nil, err
		}

		pantry = models.Pantry{
			ID:          pantryKey,
			ChatID:      chatID,
			Ingredients: make(map[string]models.Ingredient),
			LastUpdated: time.Now(),
		}

		if err := s.store.Set(pantryKey, pantry); err != nil {
			return nil, fmt.Errorf("failed to create pantry: %w", err)
		}
	}

	return &pantry, nil
}

// AddIngredients adds multiple observed ingredients at once. Names are
// keyed lower-cased so the same item reported twice is stored once.
func (s *Service) AddIngredients(chatID int64, names []string) error {
	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return err
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		pantry.Ingredients[strings.ToLower(name)] = models.Ingredient{
			Name:    name,
			AddedAt: time.Now(),
		}
	}

	pantry.LastUpdated = time.Now()

	return s.store.Set(pantry.ID, pantry)
}

// RemoveIngredient removes an ingredient from the pantry
func (s *Service) RemoveIngredient(chatID int64, name string) error {
	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return err
	}

	delete(pantry.Ingredients, strings.ToLower(strings.TrimSpace(name)))
	pantry.LastUpdated = time.Now()

	return s.store.Set(pantry.ID, pantry)
}

// ListIngredientNames returns the names of all observed ingredients in
// a stable order
func (s *Service) ListIngredientNames(chatID int64) ([]string, error) {
	pantry, err := s.GetPantry(chatID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(pantry.Ingredients))
	for _, ingredient := range pantry.Ingredients {
		names = append(names, ingredient.Name)
	}
	sort.Strings(names)

	return names, nil
}

// Reset clears the pantry for a chat
func (s *Service) Reset(chatID int64) error {
	pantryKey := fmt.Sprintf("pantry:%d", chatID)

	pantry := models.Pantry{
		ID:          pantryKey,
		ChatID:      chatID,
		Ingredients: make(map[string]models.Ingredient),
		LastUpdated: time.Now(),
	}

	return s.store.Set(pantryKey, pantry)
}
