// Package openai wraps the OpenAI API for the collaborators the engine
// does not implement itself: ingredient detection from text and photos,
// recipe enrichment, and conversational message generation. None of the
// matching or ranking logic lives here.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/models"
)

// Client represents an OpenAI API client
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new OpenAI client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	client := openai.NewClientWithConfig(config)
	return &Client{
		client: client,
		model:  model,
		logger: logger.New("openai"),
	}
}

// recipePayload is the JSON shape the model is asked to return for a recipe
type recipePayload struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	MealType     string   `json:"meal_type"`
	CuisineType  string   `json:"cuisine_type"`
	DietaryTags  []string `json:"dietary_tags"`
	Calories     int      `json:"calories"`
	PrepTimeMins int      `json:"prep_time_mins"`
	CookTimeMins int      `json:"cook_time_mins"`
	Instructions []string `json:"instructions"`
}

// GetRecipeInfo retrieves structured information about a dish from the LLM
func (c *Client) GetRecipeInfo(dishName string) (*models.Recipe, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
You are a nutrition and cooking expert. Provide information about the dish "%s".
Return the information in the following JSON format:
{
  "name": "Full dish name",
  "ingredients": ["ingredient1", "ingredient2", ...],
  "meal_type": "breakfast|lunch|dinner|snack",
  "cuisine_type": "Cuisine type",
  "dietary_tags": ["vegetarian", "gluten-free", ...],
  "calories": 450,
  "prep_time_mins": 15,
  "cook_time_mins": 30,
  "instructions": ["step1", "step2", ...]
}
Only return the JSON, no other text.
`, dishName)

	c.logger.Info("Requesting recipe info for %s", dishName)
	c.logger.Debug("OpenAI prompt (first 100 chars): %s", truncateString(prompt, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a nutrition expert who provides accurate information about dishes and recipes.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	var payload recipePayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	recipe := &models.Recipe{
		Name:         payload.Name,
		Ingredients:  payload.Ingredients,
		MealType:     payload.MealType,
		CuisineType:  payload.CuisineType,
		DietaryTags:  payload.DietaryTags,
		Calories:     payload.Calories,
		PrepTimeMins: payload.PrepTimeMins,
		CookTimeMins: payload.CookTimeMins,
		Instructions: payload.Instructions,
	}

	c.logger.Info("Successfully got information for dish: %s", dishName)
	return recipe, nil
}

// GenerateChatMessage generates a chat message for a specific intent
func (c *Client) GenerateChatMessage(intent string, contextData map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal context: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a friendly diet and meal-planning assistant bot for Telegram. Generate a short, engaging message for the following intent: "%s".
Use the context provided below to personalize the message. Keep it concise and mobile-friendly.
Add appropriate emojis for fun and readability.

Context:
%s

Return only the message text, no explanations or other text.
`, intent, string(contextJSON))

	c.logger.Info("Generating chat message for intent: %s", intent)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI API")
	}

	return resp.Choices[0].Message.Content, nil
}

// ExtractIngredientsFromPhoto extracts ingredient names from a photo
func (c *Client) ExtractIngredientsFromPhoto(photoURL string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := `You are a computer vision expert. Look at the image of a fridge, pantry or groceries and list all visible food ingredients.
Be thorough and try to identify as many food items as possible.
Return only a JSON array of ingredient names, no other text.
For example: ["eggs", "milk", "tomatoes", "chicken breast"]
`

	c.logger.Info("Extracting ingredients from photo")
	c.logger.Debug("Photo URL (truncated): %s", truncateString(photoURL, 50))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: prompt,
				},
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: "What food ingredients do you see in this image? List all of them in a JSON array.",
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL: photoURL,
							},
						},
					},
				},
			},
			Temperature: 0.2,
		},
	)

	if err != nil {
		c.logger.Error("OpenAI API error: %v", err)
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	var ingredients []string
	if err := json.Unmarshal([]byte(content), &ingredients); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)

		// Try to extract ingredients using a more lenient approach
		extracted := extractIngredientsFromText(content)
		if len(extracted) > 0 {
			c.logger.Info("Extracted %d ingredients using fallback method", len(extracted))
			return extracted, nil
		}

		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	c.logger.Info("Successfully extracted %d ingredients from photo", len(ingredients))
	return ingredients, nil
}

// ParseIngredientsFromText extracts ingredient names from free-form text
func (c *Client) ParseIngredientsFromText(text string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
You are a cooking assistant. Extract all food ingredients from the following text.
Return only a JSON array of ingredient names, no other text.
For example: ["eggs", "milk", "tomatoes", "chicken breast"]

Text: %s
`, text)

	c.logger.Info("Parsing ingredients from text")
	c.logger.Debug("Text to parse (first 100 chars): %s", truncateString(text, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	var ingredients []string
	if err := json.Unmarshal([]byte(content), &ingredients); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	return ingredients, nil
}

// EstimateMealCalories asks the model for a rough calorie figure for a
// logged meal. Best-effort; the caller treats 0 as unknown.
func (c *Client) EstimateMealCalories(mealName string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
Estimate the calories in a typical serving of "%s".
Return only a JSON object like {"calories": 450}, no other text.
`, mealName)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
		},
	)

	if err != nil {
		return 0, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var payload struct {
		Calories int `json:"calories"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return 0, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	return payload.Calories, nil
}

// Helper functions

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// cleanJSONResponse cleans up the JSON response from OpenAI
// Sometimes the model returns markdown code blocks with ```json and ``` delimiters
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		// Skip the first line (which might contain "```json")
		firstLineEnd := strings.Index(s, "\n")
		if firstLineEnd != -1 {
			s = s[firstLineEnd+1:]
		}

		if strings.HasSuffix(s, "```") {
			s = s[:len(s)-3]
		}

		s = strings.TrimSpace(s)
	}

	return s
}

// extractIngredientsFromText extracts ingredients from text using a simple heuristic
// This is a fallback method when JSON parsing fails
func extractIngredientsFromText(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '"' || r == '[' || r == ']' || r == '\t'
	})

	var ingredients []string
	for _, word := range words {
		word = strings.TrimSpace(word)
		// Skip empty strings and single characters
		if len(word) <= 1 {
			continue
		}
		// Skip common JSON syntax
		if word == "null" || word == "true" || word == "false" {
			continue
		}
		// Skip if it starts with a number (likely part of JSON syntax)
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}

		ingredients = append(ingredients, word)
	}

	return ingredients
}
