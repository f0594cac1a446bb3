// Package profile stores per-user dietary preferences and goals.
package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/storage"
)

// Service provides profile management functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new profile service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("profile"),
	}
}

// Get retrieves the profile for a user, creating an empty one when absent
func (s *Service) Get(userID string) (*models.Profile, error) {
	key := fmt.Sprintf("profile:%s", userID)

	var profile models.Profile
	err := s.store.Get(key, &profile)
	if err != nil {
		if !storage.IsNotFound(err) {
			return nil, err
		}

		profile = models.Profile{
			UserID:    userID,
			UpdatedAt: time.Now(),
		}

		if err := s.store.Set(key, profile); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
	}

	return &profile, nil
}

// SetDietaryTags replaces the user's dietary tags
func (s *Service) SetDietaryTags(userID, username string, tags []string) error {
	profile, err := s.Get(userID)
	if err != nil {
		return err
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}

	profile.Username = username
	profile.DietaryTags = cleaned
	profile.UpdatedAt = time.Now()

	return s.store.Set(fmt.Sprintf("profile:%s", userID), profile)
}

// SetCalorieGoal sets the user's daily calorie goal
func (s *Service) SetCalorieGoal(userID, username string, goal int) error {
	if goal < 0 {
		return fmt.Errorf("calorie goal must be non-negative, got %d", goal)
	}

	profile, err := s.Get(userID)
	if err != nil {
		return err
	}

	profile.Username = username
	profile.CalorieGoal = goal
	profile.UpdatedAt = time.Now()

	return s.store.Set(fmt.Sprintf("profile:%s", userID), profile)
}
