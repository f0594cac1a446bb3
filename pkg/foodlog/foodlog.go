// Package foodlog stores dated meal entries per chat and derives the
// consecutive-day streak and daily calorie totals from them.
package foodlog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/storage"
	"github.com/platewise/platewise/pkg/streak"
)

// Service provides food logging functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new food log service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("foodlog"),
	}
}

// Add records a logged meal for a chat
func (s *Service) Add(chatID int64, userID, username, mealName string, calories int, date time.Time) (*models.FoodLogEntry, error) {
	entry := &models.FoodLogEntry{
		ID:       uuid.NewString(),
		ChatID:   chatID,
		UserID:   userID,
		Username: username,
		MealName: mealName,
		Calories: calories,
		Date:     date,
	}

	key := fmt.Sprintf("foodlog:%d:%s", chatID, entry.ID)
	if err := s.store.Set(key, entry); err != nil {
		return nil, fmt.Errorf("failed to save log entry: %w", err)
	}

	s.logger.Info("Logged meal %q for chat %d", mealName, chatID)
	return entry, nil
}

// List returns all log entries for a chat
func (s *Service) List(chatID int64) ([]models.FoodLogEntry, error) {
	keys, err := s.store.List(fmt.Sprintf("foodlog:%d:", chatID))
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	entries := make([]models.FoodLogEntry, 0, len(keys))
	for _, key := range keys {
		var entry models.FoodLogEntry
		if err := s.store.Get(key, &entry); err != nil {
			s.logger.Error("Failed to get log entry %s: %v", key, err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Streak returns the chat's current consecutive-day logging streak
func (s *Service) Streak(chatID int64, today time.Time) (int, error) {
	entries, err := s.List(chatID)
	if err != nil {
		return 0, err
	}

	dates := make([]time.Time, len(entries))
	for i, entry := range entries {
		dates[i] = entry.Date
	}

	return streak.Calculate(dates, today), nil
}

// CaloriesOn sums the logged calories for a single calendar day
func (s *Service) CaloriesOn(chatID int64, day time.Time) (int, error) {
	entries, err := s.List(chatID)
	if err != nil {
		return 0, err
	}

	y, m, d := day.Date()
	total := 0
	for _, entry := range entries {
		ey, em, ed := entry.Date.Date()
		if ey == y && em == m && ed == d {
			total += entry.Calories
		}
	}

	return total, nil
}
