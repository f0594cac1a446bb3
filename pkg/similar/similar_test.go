package similar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/pkg/match"
	"github.com/platewise/platewise/pkg/models"
)

var reference = models.Recipe{
	ID:          "ref",
	Name:        "Chicken Stir Fry",
	Ingredients: []string{"chicken breast", "broccoli", "rice"},
	MealType:    "dinner",
	CuisineType: "Asian",
	DietaryTags: []string{"high-protein", "dairy-free"},
}

func TestRankScoring(t *testing.T) {
	catalog := []models.Recipe{
		reference,
		{
			// Same cuisine (+3), same meal (+2), two shared ingredients (+2),
			// one shared tag (+1) = 8
			ID:          "close",
			Ingredients: []string{"chicken thighs", "rice", "peas"},
			MealType:    "dinner",
			CuisineType: "Asian",
			DietaryTags: []string{"high-protein"},
		},
		{
			// Same meal only (+2)
			ID:          "far",
			Ingredients: []string{"pasta", "cream"},
			MealType:    "dinner",
			CuisineType: "Italian",
		},
		{
			// Nothing in common: score 0, must not appear
			ID:          "unrelated",
			Ingredients: []string{"oats", "banana"},
			MealType:    "breakfast",
			CuisineType: "American",
		},
	}

	ranked := Rank(match.NewLexical(), DefaultWeights(), reference, catalog, DefaultK)

	require.Len(t, ranked, 2)
	assert.Equal(t, "close", ranked[0].Recipe.ID)
	assert.Equal(t, 8, ranked[0].Score)
	assert.Equal(t, "far", ranked[1].Recipe.ID)
	assert.Equal(t, 2, ranked[1].Score)
}

func TestRankExcludesReference(t *testing.T) {
	catalog := []models.Recipe{reference}

	ranked := Rank(match.NewLexical(), DefaultWeights(), reference, catalog, DefaultK)
	assert.Empty(t, ranked)
}

func TestRankCuisineBonusNeedsBothDefined(t *testing.T) {
	ref := models.Recipe{ID: "ref", MealType: "lunch"}
	catalog := []models.Recipe{
		{ID: "no-cuisine", MealType: "lunch"},
	}

	ranked := Rank(match.NewLexical(), DefaultWeights(), ref, catalog, DefaultK)
	require.Len(t, ranked, 1)
	// Only the meal-type bonus applies, even though both cuisines are
	// (equally) empty
	assert.Equal(t, DefaultWeights().MealType, ranked[0].Score)
}

func TestRankTruncatesToK(t *testing.T) {
	var catalog []models.Recipe
	for i := 0; i < 10; i++ {
		catalog = append(catalog, models.Recipe{
			ID:       fmt.Sprintf("r%d", i),
			MealType: "dinner",
		})
	}

	ranked := Rank(match.NewLexical(), DefaultWeights(), reference, catalog, 3)
	assert.Len(t, ranked, 3)
}

func TestRankStableTieBreak(t *testing.T) {
	var catalog []models.Recipe
	for i := 0; i < 5; i++ {
		catalog = append(catalog, models.Recipe{
			ID:       fmt.Sprintf("r%d", i),
			MealType: "dinner",
		})
	}

	for run := 0; run < 3; run++ {
		ranked := Rank(match.NewLexical(), DefaultWeights(), reference, catalog, DefaultK)
		require.Len(t, ranked, 5)
		for i, candidate := range ranked {
			assert.Equal(t, fmt.Sprintf("r%d", i), candidate.Recipe.ID)
		}
	}
}

func TestRankSortedNonIncreasing(t *testing.T) {
	catalog := []models.Recipe{
		{ID: "a", MealType: "dinner"},
		{ID: "b", MealType: "dinner", CuisineType: "Asian"},
		{ID: "c", MealType: "dinner", CuisineType: "Asian", DietaryTags: []string{"dairy-free"}},
	}

	ranked := Rank(match.NewLexical(), DefaultWeights(), reference, catalog, DefaultK)
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Equal(t, "c", ranked[0].Recipe.ID)
}

func TestRankFewerCandidatesThanK(t *testing.T) {
	catalog := []models.Recipe{
		{ID: "only", MealType: "dinner"},
	}

	ranked := Rank(match.NewLexical(), DefaultWeights(), reference, catalog, 6)
	assert.Len(t, ranked, 1)
}

func TestRankEmptyCatalog(t *testing.T) {
	assert.Empty(t, Rank(match.NewLexical(), DefaultWeights(), reference, nil, DefaultK))
}
