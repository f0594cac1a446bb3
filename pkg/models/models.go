package models

import (
	"time"
)

// ChatState represents the persisted state of a Telegram chat
type ChatState struct {
	ChatID       int64     `json:"chat_id"`
	PantryID     string    `json:"pantry_id"`
	ActivePoll   *MealPoll `json:"active_poll,omitempty"`
	LastActivity time.Time `json:"last_activity"`
}

// Pantry represents the observed ingredients available in a chat
type Pantry struct {
	ID          string                `json:"id"`
	ChatID      int64                 `json:"chat_id"`
	Ingredients map[string]Ingredient `json:"ingredients"`
	LastUpdated time.Time             `json:"last_updated"`
}

// Ingredient represents a single observed ingredient in the pantry
type Ingredient struct {
	Name    string    `json:"name"`
	AddedAt time.Time `json:"added_at"`
}

// Recipe represents an entry in the recipe catalog
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	MealType     string   `json:"meal_type"`
	CuisineType  string   `json:"cuisine_type,omitempty"`
	DietaryTags  []string `json:"dietary_tags,omitempty"`
	Calories     int      `json:"calories"`
	PrepTimeMins int      `json:"prep_time_mins,omitempty"`
	CookTimeMins int      `json:"cook_time_mins,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}

// MatchResult represents how well a recipe matches the observed ingredients
type MatchResult struct {
	Recipe             Recipe   `json:"recipe"`
	MatchPercentage    int      `json:"match_percentage"`
	MatchedCount       int      `json:"matched_count"`
	TotalCount         int      `json:"total_count"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// SimilarRecipe represents a catalog recipe scored against a reference recipe
type SimilarRecipe struct {
	Recipe Recipe `json:"recipe"`
	Score  int    `json:"score"`
}

// BasketItem represents a single item in a shopping basket request
type BasketItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
}

// CostEstimate represents the estimated cost of a single basket item
type CostEstimate struct {
	ItemName      string  `json:"item_name"`
	Quantity      float64 `json:"quantity"`
	EstimatedCost float64 `json:"estimated_cost"`
	MinCost       float64 `json:"min_cost"`
	MaxCost       float64 `json:"max_cost"`
	Unit          string  `json:"unit"`
}

// BasketEstimate represents the aggregated cost estimate for a basket
type BasketEstimate struct {
	EstimatedTotal float64        `json:"estimated_total"`
	MinTotal       float64        `json:"min_total"`
	MaxTotal       float64        `json:"max_total"`
	Items          []CostEstimate `json:"items"`
}

// FoodLogEntry represents a single logged meal for a chat
type FoodLogEntry struct {
	ID       string    `json:"id"`
	ChatID   int64     `json:"chat_id"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	MealName string    `json:"meal_name"`
	Calories int       `json:"calories,omitempty"`
	Date     time.Time `json:"date"`
}

// Profile represents a user's dietary profile
type Profile struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DietaryTags []string  `json:"dietary_tags,omitempty"`
	CalorieGoal int       `json:"calorie_goal,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MealPoll represents a vote over suggested recipes
type MealPoll struct {
	PollID    string            `json:"poll_id"`
	MessageID int               `json:"message_id"`
	Options   []string          `json:"options"`
	Votes     map[string]string `json:"votes"` // UserID -> Option
	StartedAt time.Time         `json:"started_at"`
	EndedAt   time.Time         `json:"ended_at,omitempty"`
	Winner    string            `json:"winner,omitempty"`
}
