// Package similar ranks a recipe catalog by weighted similarity to a
// reference recipe.
package similar

import (
	"sort"
	"strings"

	"github.com/platewise/platewise/pkg/match"
	"github.com/platewise/platewise/pkg/models"
)

// DefaultK is the number of similar recipes returned when the caller
// does not ask for a specific count
const DefaultK = 6

// Weights holds the score contribution of each similarity factor.
// Tunable configuration data; see DefaultWeights for the shipped values.
type Weights struct {
	Cuisine    int `json:"cuisine" mapstructure:"cuisine"`
	MealType   int `json:"meal_type" mapstructure:"meal_type"`
	Ingredient int `json:"ingredient" mapstructure:"ingredient"`
	DietaryTag int `json:"dietary_tag" mapstructure:"dietary_tag"`
}

// DefaultWeights returns the shipped similarity weights
func DefaultWeights() Weights {
	return Weights{
		Cuisine:    3,
		MealType:   2,
		Ingredient: 1,
		DietaryTag: 1,
	}
}

// Rank scores every catalog recipe against the reference and returns at
// most k of them, best first. The reference itself is excluded, as is
// any candidate scoring zero: a zero score means no discernible
// relationship and must not be surfaced as similar. Ties keep catalog
// order.
func Rank(m match.Matcher, w Weights, reference models.Recipe, catalog []models.Recipe, k int) []models.SimilarRecipe {
	if k <= 0 {
		k = DefaultK
	}

	candidates := make([]models.SimilarRecipe, 0, len(catalog))
	for _, candidate := range catalog {
		if candidate.ID == reference.ID {
			continue
		}

		score := scoreCandidate(m, w, reference, candidate)
		if score <= 0 {
			continue
		}

		candidates = append(candidates, models.SimilarRecipe{
			Recipe: candidate,
			Score:  score,
		})
	}

	// Stable so equal scores keep catalog order run to run
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	return candidates
}

// scoreCandidate computes the weighted similarity of a single candidate
func scoreCandidate(m match.Matcher, w Weights, reference, candidate models.Recipe) int {
	score := 0

	if reference.CuisineType != "" && candidate.CuisineType != "" &&
		strings.EqualFold(reference.CuisineType, candidate.CuisineType) {
		score += w.Cuisine
	}

	if reference.MealType != "" && strings.EqualFold(reference.MealType, candidate.MealType) {
		score += w.MealType
	}

	// Ingredient overlap: one bonus per reference ingredient found among
	// the candidate's ingredients
	for _, ingredient := range reference.Ingredients {
		needed := strings.ToLower(ingredient)
		for _, other := range candidate.Ingredients {
			if m.Matches(needed, strings.ToLower(other)) {
				score += w.Ingredient
				break
			}
		}
	}

	// Shared dietary tags count as set intersection size
	tags := make(map[string]bool, len(candidate.DietaryTags))
	for _, tag := range candidate.DietaryTags {
		tags[strings.ToLower(tag)] = true
	}
	for _, tag := range reference.DietaryTags {
		if tags[strings.ToLower(tag)] {
			score += w.DietaryTag
		}
	}

	return score
}
