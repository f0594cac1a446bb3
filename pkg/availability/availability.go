// Package availability scores a recipe catalog against the observed
// ingredients in a pantry and returns the best matches.
package availability

import (
	"math"
	"sort"
	"strings"

	"github.com/platewise/platewise/pkg/match"
	"github.com/platewise/platewise/pkg/models"
)

const (
	// DefaultMinMatchPct is the threshold below which recipes are discarded
	DefaultMinMatchPct = 30
	// MaxResults caps the number of returned matches
	MaxResults = 10
)

// Score computes a match result for every recipe against the observed
// ingredient names and returns up to MaxResults of them, best first.
// Recipes below minMatchPct are discarded; ties keep catalog order.
// A non-empty dietaryFilter narrows the results to recipes whose tags
// intersect it, unless that would leave nothing, in which case the
// unfiltered list is returned.
func Score(m match.Matcher, recipes []models.Recipe, observed []string, minMatchPct int, dietaryFilter []string) []models.MatchResult {
	normalized := make([]string, 0, len(observed))
	for _, name := range observed {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			normalized = append(normalized, name)
		}
	}

	results := make([]models.MatchResult, 0, len(recipes))
	for _, recipe := range recipes {
		results = append(results, scoreRecipe(m, recipe, normalized))
	}

	// Discard weak matches
	kept := results[:0]
	for _, result := range results {
		if result.MatchPercentage >= minMatchPct {
			kept = append(kept, result)
		}
	}

	// Sort by match percentage descending; stable so equal scores keep catalog order
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MatchPercentage > kept[j].MatchPercentage
	})

	if len(kept) > MaxResults {
		kept = kept[:MaxResults]
	}

	if len(dietaryFilter) > 0 {
		filtered := filterByTags(kept, dietaryFilter)
		// Fall back to the unfiltered list rather than hiding every result
		if len(filtered) > 0 {
			return filtered
		}
	}

	return kept
}

// scoreRecipe computes a single recipe's match result against the
// normalized observed ingredient names
func scoreRecipe(m match.Matcher, recipe models.Recipe, observed []string) models.MatchResult {
	result := models.MatchResult{
		Recipe:             recipe,
		TotalCount:         len(recipe.Ingredients),
		MissingIngredients: []string{},
	}

	for _, ingredient := range recipe.Ingredients {
		needed := strings.ToLower(ingredient)

		found := false
		for _, have := range observed {
			if m.Matches(needed, have) {
				found = true
				break
			}
		}

		if found {
			result.MatchedCount++
		} else {
			result.MissingIngredients = append(result.MissingIngredients, ingredient)
		}
	}

	// A recipe with no ingredients scores 0, never a division fault
	if result.TotalCount > 0 {
		result.MatchPercentage = int(math.Round(float64(result.MatchedCount) / float64(result.TotalCount) * 100))
	}

	return result
}

// filterByTags keeps results whose recipe tags intersect the wanted set
func filterByTags(results []models.MatchResult, wanted []string) []models.MatchResult {
	wantedSet := make(map[string]bool, len(wanted))
	for _, tag := range wanted {
		wantedSet[strings.ToLower(tag)] = true
	}

	filtered := make([]models.MatchResult, 0, len(results))
	for _, result := range results {
		for _, tag := range result.Recipe.DietaryTags {
			if wantedSet[strings.ToLower(tag)] {
				filtered = append(filtered, result)
				break
			}
		}
	}

	return filtered
}
