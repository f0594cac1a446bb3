// Package poll manages meal polls: chats vote over the recipes the
// availability scorer suggested for the evening.
package poll

import (
	"fmt"
	"time"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/storage"
)

// Service provides meal poll functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new poll service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("poll"),
	}
}

// Create starts a meal poll for a chat over the given recipe names
func (s *Service) Create(chatID int64, pollID string, messageID int, options []string) (*models.MealPoll, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("a poll needs at least one option")
	}

	poll := &models.MealPoll{
		PollID:    pollID,
		MessageID: messageID,
		Options:   options,
		Votes:     make(map[string]string),
		StartedAt: time.Now(),
	}

	pollKey := fmt.Sprintf("poll:%d:%s", chatID, pollID)
	if err := s.store.Set(pollKey, poll); err != nil {
		return nil, err
	}

	// Direct mapping from poll ID to chat ID for answer routing
	mappingKey := fmt.Sprintf("poll_mapping:%s", pollID)
	if err := s.store.Set(mappingKey, chatID); err != nil {
		s.logger.Error("Failed to create poll mapping: %v", err)
		// Continue anyway, as this is just an optimization
	}

	// Update chat state
	chatKey := fmt.Sprintf("chat:%d", chatID)
	var chatState models.ChatState
	err := s.store.Get(chatKey, &chatState)
	if err != nil {
		chatState = models.ChatState{
			ChatID:   chatID,
			PantryID: fmt.Sprintf("pantry:%d", chatID),
		}
	}

	chatState.ActivePoll = poll
	chatState.LastActivity = time.Now()

	if err := s.store.Set(chatKey, chatState); err != nil {
		return nil, err
	}

	return poll, nil
}

// Active returns the chat's active poll, or nil when there is none
func (s *Service) Active(chatID int64) (*models.MealPoll, error) {
	var chatState models.ChatState
	err := s.store.Get(fmt.Sprintf("chat:%d", chatID), &chatState)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return chatState.ActivePoll, nil
}

// ChatForPoll resolves which chat a Telegram poll belongs to
func (s *Service) ChatForPoll(pollID string) (int64, error) {
	var chatID int64
	err := s.store.Get(fmt.Sprintf("poll_mapping:%s", pollID), &chatID)
	if err != nil {
		return 0, fmt.Errorf("unknown poll %s: %w", pollID, err)
	}
	return chatID, nil
}

// RecordVote records a vote from a user
func (s *Service) RecordVote(chatID int64, pollID, userID, option string) error {
	pollKey := fmt.Sprintf("poll:%d:%s", chatID, pollID)
	var poll models.MealPoll
	if err := s.store.Get(pollKey, &poll); err != nil {
		return err
	}

	optionValid := false
	for _, validOption := range poll.Options {
		if option == validOption {
			optionValid = true
			break
		}
	}

	if !optionValid {
		return fmt.Errorf("invalid option: %s", option)
	}

	poll.Votes[userID] = option

	return s.store.Set(pollKey, poll)
}

// Results returns the vote counts per option and the current winner
func (s *Service) Results(chatID int64, pollID string) (map[string]int, string, error) {
	pollKey := fmt.Sprintf("poll:%d:%s", chatID, pollID)
	var poll models.MealPoll
	if err := s.store.Get(pollKey, &poll); err != nil {
		return nil, "", err
	}

	results := make(map[string]int)
	for _, option := range poll.Options {
		results[option] = 0
	}

	for _, option := range poll.Votes {
		results[option]++
	}

	// The first listed option wins ties: options arrive ranked best
	// match first, so the tie goes to the better-matching recipe
	var winner string
	var maxVotes int
	for _, option := range poll.Options {
		if results[option] > maxVotes {
			maxVotes = results[option]
			winner = option
		}
	}

	return results, winner, nil
}

// End marks a poll as ended and records the winning meal
func (s *Service) End(chatID int64, pollID, winner string) error {
	pollKey := fmt.Sprintf("poll:%d:%s", chatID, pollID)
	var poll models.MealPoll
	if err := s.store.Get(pollKey, &poll); err != nil {
		return err
	}

	poll.EndedAt = time.Now()
	poll.Winner = winner

	if err := s.store.Set(pollKey, poll); err != nil {
		return err
	}

	// Clear the active poll from chat state if it is still this one
	chatKey := fmt.Sprintf("chat:%d", chatID)
	var chatState models.ChatState
	if err := s.store.Get(chatKey, &chatState); err != nil {
		return err
	}

	if chatState.ActivePoll != nil && chatState.ActivePoll.PollID == pollID {
		chatState.ActivePoll = nil
		chatState.LastActivity = time.Now()
		if err := s.store.Set(chatKey, chatState); err != nil {
			return err
		}
	}

	return nil
}
