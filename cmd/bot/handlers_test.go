package main

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/platewise/platewise/pkg/models"
)

func TestParseBasketItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.BasketItem
	}{
		{
			name: "one item per line",
			text: "chicken breast\nmilk",
			want: []models.BasketItem{
				{Name: "chicken breast"},
				{Name: "milk"},
			},
		},
		{
			name: "comma separated",
			text: "rice, beans",
			want: []models.BasketItem{
				{Name: "rice"},
				{Name: "beans"},
			},
		},
		{
			name: "leading quantity",
			text: "2 chicken breast",
			want: []models.BasketItem{
				{Name: "chicken breast", Quantity: 2},
			},
		},
		{
			name: "trailing quantity",
			text: "chicken breast x2",
			want: []models.BasketItem{
				{Name: "chicken breast", Quantity: 2},
			},
		},
		{
			name: "fractional quantity",
			text: "0.5 salmon fillet",
			want: []models.BasketItem{
				{Name: "salmon fillet", Quantity: 0.5},
			},
		},
		{
			name: "bare number stays a name",
			text: "7",
			want: []models.BasketItem{
				{Name: "7"},
			},
		},
		{
			name: "blank lines skipped",
			text: "\n  \nmilk\n",
			want: []models.BasketItem{
				{Name: "milk"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: []models.BasketItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBasketItems(tt.text))
		})
	}
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "", userKey(nil))
	assert.Equal(t, "12345", userKey(&tgbotapi.User{ID: 12345}))
}

func TestFormatMatchesListsMissingIngredients(t *testing.T) {
	matches := []models.MatchResult{
		{
			Recipe:             models.Recipe{Name: "Chicken Stir Fry"},
			MatchPercentage:    75,
			MatchedCount:       3,
			TotalCount:         4,
			MissingIngredients: []string{"soy sauce"},
		},
	}

	out := formatMatches(matches)
	assert.Contains(t, out, "Chicken Stir Fry")
	assert.Contains(t, out, "75% match")
	assert.Contains(t, out, "Missing: soy sauce")
}

func TestFormatSimilarIncludesDetails(t *testing.T) {
	reference := models.Recipe{Name: "Beef Tacos"}
	similar := []models.SimilarRecipe{
		{Recipe: models.Recipe{Name: "Chicken Tacos", CuisineType: "mexican", Calories: 520}},
	}

	out := formatSimilar(reference, similar)
	assert.Contains(t, out, "Beef Tacos")
	assert.Contains(t, out, "Chicken Tacos")
	assert.Contains(t, out, "mexican, 520 kcal")
}
