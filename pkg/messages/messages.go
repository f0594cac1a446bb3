// Package messages generates the bot's chat copy via the OpenAI
// collaborator, with deterministic fallbacks when the API is down.
package messages

import (
	"fmt"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/openai"
)

// Service provides message generation functionality
type Service struct {
	openaiClient *openai.Client
	logger       *logger.Logger
}

// New creates a new message service
func New(openaiClient *openai.Client) *Service {
	return &Service{
		openaiClient: openaiClient,
		logger:       logger.New("messages"),
	}
}

// Welcome generates a welcome message
func (s *Service) Welcome() string {
	msg, err := s.openaiClient.GenerateChatMessage("welcome", map[string]interface{}{
		"purpose": "Help people plan meals, track what they eat and shop smarter",
	})
	if err != nil {
		s.logger.Error("Failed to generate welcome message: %v", err)
		return "👋 Welcome to PlateWise! Tell me what's in your pantry and I'll find recipes you can cook tonight. Try /pantry to get started."
	}
	return msg
}

// RecipeSuggestions generates a message presenting scored recipe matches
func (s *Service) RecipeSuggestions(matches []models.MatchResult) string {
	names := make([]string, len(matches))
	for i, match := range matches {
		names[i] = fmt.Sprintf("%s (%d%% match)", match.Recipe.Name, match.MatchPercentage)
	}

	msg, err := s.openaiClient.GenerateChatMessage("recipe_suggestions", map[string]interface{}{
		"recipes": names,
	})
	if err != nil {
		s.logger.Error("Failed to generate recipe suggestions message: %v", err)
		return "🍽️ Based on your pantry, here's what you could cook:\n" + formatList(names)
	}
	return msg
}

// EmptyPantry generates a message for an empty pantry
func (s *Service) EmptyPantry() string {
	msg, err := s.openaiClient.GenerateChatMessage("empty_pantry", map[string]interface{}{})
	if err != nil {
		s.logger.Error("Failed to generate empty pantry message: %v", err)
		return "Your pantry is empty! Add ingredients with /sync_pantry or by sending a photo of your groceries."
	}
	return msg
}

// PantryContents generates a message listing the pantry contents
func (s *Service) PantryContents(ingredients []string) string {
	msg, err := s.openaiClient.GenerateChatMessage("pantry_contents", map[string]interface{}{
		"ingredients": ingredients,
	})
	if err != nil {
		s.logger.Error("Failed to generate pantry contents message: %v", err)
		return "🧊 Here's what's in your pantry:\n" + formatList(ingredients)
	}
	return msg
}

// StreakUpdate generates a message about the chat's logging streak
func (s *Service) StreakUpdate(days int) string {
	msg, err := s.openaiClient.GenerateChatMessage("streak_update", map[string]interface{}{
		"streak_days": days,
	})
	if err != nil {
		s.logger.Error("Failed to generate streak message: %v", err)
		if days == 0 {
			return "No active streak right now. Log a meal today with /log to start one! 🔥"
		}
		return fmt.Sprintf("🔥 You're on a %d-day logging streak. Keep it going!", days)
	}
	return msg
}

// BasketEstimate generates a message summarizing a basket cost estimate
func (s *Service) BasketEstimate(estimate models.BasketEstimate) string {
	msg, err := s.openaiClient.GenerateChatMessage("basket_estimate", map[string]interface{}{
		"estimated_total": estimate.EstimatedTotal,
		"min_total":       estimate.MinTotal,
		"max_total":       estimate.MaxTotal,
		"item_count":      len(estimate.Items),
	})
	if err != nil {
		s.logger.Error("Failed to generate basket estimate message: %v", err)
		return fmt.Sprintf("🛒 Your basket of %d items should cost around %.2f (between %.2f and %.2f).",
			len(estimate.Items), estimate.EstimatedTotal, estimate.MinTotal, estimate.MaxTotal)
	}
	return msg
}

// Error generates an error message
func (s *Service) Error(context string) string {
	msg, err := s.openaiClient.GenerateChatMessage("error", map[string]interface{}{
		"context": context,
	})
	if err != nil {
		s.logger.Error("Failed to generate error message: %v", err)
		return "😢 Sorry, something went wrong. Please try again later."
	}
	return msg
}

// formatList formats items as a bullet list for fallback messages
func formatList(items []string) string {
	result := ""
	for _, item := range items {
		result += "• " + item + "\n"
	}
	return result
}
