package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/platewise/platewise/pkg/foodlog"
	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/messages"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/openai"
	"github.com/platewise/platewise/pkg/pricing"
	"github.com/platewise/platewise/pkg/telegram"
)

// userKey returns the stable identifier used for a Telegram user
func userKey(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	return strconv.FormatInt(user.ID, 10)
}

// formatMatches renders scored recipe matches for a chat message
func formatMatches(matches []models.MatchResult) string {
	var b strings.Builder
	b.WriteString("🍽️ Here's what you could cook with your pantry:\n\n")

	for i, match := range matches {
		fmt.Fprintf(&b, "%d. %s — %d%% match (%d/%d ingredients)\n",
			i+1, match.Recipe.Name, match.MatchPercentage, match.MatchedCount, match.TotalCount)
		if len(match.MissingIngredients) > 0 {
			fmt.Fprintf(&b, "   Missing: %s\n", strings.Join(match.MissingIngredients, ", "))
		}
	}

	b.WriteString("\nRun /mealpoll to vote, or /basket to price the missing items.")
	return b.String()
}

// formatSimilar renders ranked similar recipes for a chat message
func formatSimilar(reference models.Recipe, similarRecipes []models.SimilarRecipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipes similar to %s:\n\n", reference.Name)

	for i, candidate := range similarRecipes {
		fmt.Fprintf(&b, "%d. %s", i+1, candidate.Recipe.Name)
		details := make([]string, 0, 2)
		if candidate.Recipe.CuisineType != "" {
			details = append(details, candidate.Recipe.CuisineType)
		}
		if candidate.Recipe.Calories > 0 {
			details = append(details, fmt.Sprintf("%d kcal", candidate.Recipe.Calories))
		}
		if len(details) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(details, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// parseBasketItems turns a free-text shopping list into basket items.
// Accepts one item per line or comma-separated, with an optional leading
// quantity ("2 chicken breast") or trailing "x2".
func parseBasketItems(text string) []models.BasketItem {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})

	items := make([]models.BasketItem, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quantity := 0.0
		fields := strings.Fields(part)

		// Leading quantity: "2 chicken breast"
		if len(fields) > 1 {
			if q, err := strconv.ParseFloat(fields[0], 64); err == nil && q > 0 {
				quantity = q
				fields = fields[1:]
			}
		}

		// Trailing quantity: "chicken breast x2"
		if quantity == 0 && len(fields) > 1 {
			last := fields[len(fields)-1]
			if strings.HasPrefix(strings.ToLower(last), "x") {
				if q, err := strconv.ParseFloat(last[1:], 64); err == nil && q > 0 {
					quantity = q
					fields = fields[:len(fields)-1]
				}
			}
		}

		name := strings.Join(fields, " ")
		if name == "" {
			continue
		}

		items = append(items, models.BasketItem{Name: name, Quantity: quantity})
	}

	return items
}

// handleBasket parses a shopping list, estimates its cost and replies
func handleBasket(bot *telegram.Bot, estimator *pricing.Estimator, messageService *messages.Service, chatID int64, text string) {
	items := parseBasketItems(text)
	if len(items) == 0 {
		bot.SendMessage(chatID, "I couldn't find any items in that list. Send one item per line, e.g. \"2 chicken breast\".")
		return
	}

	estimate, err := estimator.Estimate(items)
	if err != nil {
		logger.Global.Error("Failed to estimate basket: %v", err)
		bot.SendMessage(chatID, messageService.Error("estimate the basket"))
		return
	}

	var b strings.Builder
	b.WriteString(messageService.BasketEstimate(estimate))
	b.WriteString("\n")
	for _, item := range estimate.Items {
		fmt.Fprintf(&b, "• %s ×%g: ~%.2f (%.2f–%.2f, per %s)\n",
			item.ItemName, item.Quantity, item.EstimatedCost, item.MinCost, item.MaxCost, item.Unit)
	}

	bot.SendMessage(chatID, b.String())
}

// logMeal records a meal in the food log, asking the OpenAI collaborator
// for a best-effort calorie estimate, and reports the updated streak
func logMeal(bot *telegram.Bot, foodlogService *foodlog.Service, openaiClient *openai.Client, messageService *messages.Service, message *tgbotapi.Message, mealName string) {
	chatID := message.Chat.ID

	calories, err := openaiClient.EstimateMealCalories(mealName)
	if err != nil {
		logger.Global.Warn("Calorie estimate failed for %q: %v", mealName, err)
		calories = 0
	}

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}

	if _, err := foodlogService.Add(chatID, userKey(message.From), username, mealName, calories, time.Now()); err != nil {
		logger.Global.Error("Failed to log meal: %v", err)
		bot.SendMessage(chatID, messageService.Error("log the meal"))
		return
	}

	days, err := foodlogService.Streak(chatID, time.Now())
	if err != nil {
		logger.Global.Error("Failed to compute streak: %v", err)
		days = 0
	}

	reply := fmt.Sprintf("✅ Logged %q", mealName)
	if calories > 0 {
		reply += fmt.Sprintf(" (~%d kcal)", calories)
	}
	if days > 0 {
		reply += fmt.Sprintf(". 🔥 %d-day logging streak!", days)
	} else {
		reply += "."
	}

	bot.SendMessage(chatID, reply)
}
