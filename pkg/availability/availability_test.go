package availability

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/pkg/match"
	"github.com/platewise/platewise/pkg/models"
)

func TestScoreBasicMatching(t *testing.T) {
	recipes := []models.Recipe{
		{
			ID:          "a",
			Name:        "Recipe A",
			Ingredients: []string{"chicken", "rice", "broccoli", "soy sauce"},
		},
		{
			ID:          "b",
			Name:        "Recipe B",
			Ingredients: []string{"beef", "pasta"},
		},
	}
	observed := []string{"chicken", "rice", "broccoli"}

	results := Score(match.NewLexical(), recipes, observed, DefaultMinMatchPct, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Recipe.ID)
	assert.Equal(t, 75, results[0].MatchPercentage)
	assert.Equal(t, 3, results[0].MatchedCount)
	assert.Equal(t, 4, results[0].TotalCount)
	assert.Equal(t, []string{"soy sauce"}, results[0].MissingIngredients)
}

func TestScoreQualifiedIngredientMatchesBareObserved(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "a", Ingredients: []string{"low-sodium soy sauce"}},
	}

	results := Score(match.NewLexical(), recipes, []string{"soy sauce"}, 0, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].MatchPercentage)
}

func TestScoreZeroIngredientRecipe(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "empty", Name: "Empty"},
	}

	results := Score(match.NewLexical(), recipes, []string{"chicken"}, 0, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].MatchPercentage)
	assert.Equal(t, 0, results[0].TotalCount)
}

func TestScoreDuplicateObservedDoesNotDoubleCount(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "a", Ingredients: []string{"chicken", "rice"}},
	}

	results := Score(match.NewLexical(), recipes, []string{"chicken", "chicken", "chicken"}, 0, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].MatchedCount)
	assert.Equal(t, 50, results[0].MatchPercentage)
}

func TestScoreSortsAndCapsResults(t *testing.T) {
	var recipes []models.Recipe
	for i := 0; i < 15; i++ {
		recipes = append(recipes, models.Recipe{
			ID:          fmt.Sprintf("r%d", i),
			Ingredients: []string{"rice", "tofu"},
		})
	}
	// One stronger match at the end of the catalog
	recipes = append(recipes, models.Recipe{
		ID:          "best",
		Ingredients: []string{"rice", "chicken"},
	})

	results := Score(match.NewLexical(), recipes, []string{"rice", "chicken"}, 0, nil)

	require.Len(t, results, MaxResults)
	assert.Equal(t, "best", results[0].Recipe.ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchPercentage, results[i].MatchPercentage)
	}
	// Equal scores keep catalog order
	assert.Equal(t, "r0", results[1].Recipe.ID)
	assert.Equal(t, "r1", results[2].Recipe.ID)
}

func TestScoreThresholdFiltering(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "weak", Ingredients: []string{"beef", "pasta", "cream", "onion"}},
		{ID: "strong", Ingredients: []string{"beef", "pasta"}},
	}

	results := Score(match.NewLexical(), recipes, []string{"beef"}, DefaultMinMatchPct, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "strong", results[0].Recipe.ID)
}

func TestScoreDietaryFilter(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "meaty", Ingredients: []string{"chicken"}, DietaryTags: []string{"high-protein"}},
		{ID: "veggie", Ingredients: []string{"chicken"}, DietaryTags: []string{"vegetarian"}},
	}
	observed := []string{"chicken"}

	filtered := Score(match.NewLexical(), recipes, observed, 0, []string{"vegetarian"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "veggie", filtered[0].Recipe.ID)
}

func TestScoreDietaryFilterFallsBackWhenNothingMatches(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "a", Ingredients: []string{"chicken"}, DietaryTags: []string{"high-protein"}},
		{ID: "b", Ingredients: []string{"chicken"}},
	}
	observed := []string{"chicken"}

	unfiltered := Score(match.NewLexical(), recipes, observed, 0, nil)
	filtered := Score(match.NewLexical(), recipes, observed, 0, []string{"vegan"})

	// A filter matching nothing must not hide every result
	assert.Equal(t, unfiltered, filtered)
}

func TestScoreEmptyInputs(t *testing.T) {
	assert.Empty(t, Score(match.NewLexical(), nil, []string{"chicken"}, 0, nil))

	results := Score(match.NewLexical(), []models.Recipe{{ID: "a", Ingredients: []string{"rice"}}}, nil, DefaultMinMatchPct, nil)
	assert.Empty(t, results)
}

func TestScorePercentageBounds(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "a", Ingredients: []string{"rice", "beans", "corn"}},
		{ID: "b", Ingredients: []string{"rice"}},
		{ID: "c", Ingredients: []string{"tofu", "kale"}},
	}

	results := Score(match.NewLexical(), recipes, []string{"rice", "corn"}, 0, nil)
	for _, result := range results {
		assert.GreaterOrEqual(t, result.MatchPercentage, 0)
		assert.LessOrEqual(t, result.MatchPercentage, 100)
	}
}
