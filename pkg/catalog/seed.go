package catalog

import (
	"github.com/platewise/platewise/pkg/models"
)

// seedRecipes are the starter recipes written into an empty catalog so
// the bot is useful before anyone adds their own dishes
var seedRecipes = []models.Recipe{
	{
		ID:           "chicken-stir-fry",
		Name:         "Chicken Stir Fry",
		Ingredients:  []string{"chicken breast", "broccoli", "carrots", "soy sauce", "garlic", "rice"},
		MealType:     "dinner",
		CuisineType:  "Asian",
		DietaryTags:  []string{"high-protein", "dairy-free"},
		Calories:     520,
		PrepTimeMins: 15,
		CookTimeMins: 20,
	},
	{
		ID:           "spaghetti-bolognese",
		Name:         "Spaghetti Bolognese",
		Ingredients:  []string{"ground beef", "pasta", "tomatoes", "onion", "garlic", "olive oil"},
		MealType:     "dinner",
		CuisineType:  "Italian",
		DietaryTags:  []string{"high-protein"},
		Calories:     680,
		PrepTimeMins: 10,
		CookTimeMins: 35,
	},
	{
		ID:           "veggie-omelette",
		Name:         "Veggie Omelette",
		Ingredients:  []string{"eggs", "bell pepper", "onion", "spinach", "cheese"},
		MealType:     "breakfast",
		CuisineType:  "French",
		DietaryTags:  []string{"vegetarian", "gluten-free", "high-protein"},
		Calories:     340,
		PrepTimeMins: 5,
		CookTimeMins: 10,
	},
	{
		ID:           "greek-salad",
		Name:         "Greek Salad",
		Ingredients:  []string{"tomatoes", "cucumber", "red onion", "feta cheese", "olives", "olive oil"},
		MealType:     "lunch",
		CuisineType:  "Greek",
		DietaryTags:  []string{"vegetarian", "gluten-free", "low-calorie"},
		Calories:     280,
		PrepTimeMins: 10,
	},
	{
		ID:           "salmon-quinoa-bowl",
		Name:         "Salmon Quinoa Bowl",
		Ingredients:  []string{"salmon", "quinoa", "avocado", "spinach", "lemon"},
		MealType:     "lunch",
		CuisineType:  "Mediterranean",
		DietaryTags:  []string{"gluten-free", "high-protein", "dairy-free"},
		Calories:     590,
		PrepTimeMins: 10,
		CookTimeMins: 20,
	},
	{
		ID:           "vegetable-curry",
		Name:         "Vegetable Curry",
		Ingredients:  []string{"potatoes", "carrots", "peas", "coconut milk", "curry paste", "rice"},
		MealType:     "dinner",
		CuisineType:  "Indian",
		DietaryTags:  []string{"vegan", "vegetarian", "dairy-free"},
		Calories:     540,
		PrepTimeMins: 15,
		CookTimeMins: 30,
	},
	{
		ID:           "beef-tacos",
		Name:         "Beef Tacos",
		Ingredients:  []string{"ground beef", "tortillas", "lettuce", "tomatoes", "cheese", "onion"},
		MealType:     "dinner",
		CuisineType:  "Mexican",
		DietaryTags:  []string{"high-protein"},
		Calories:     620,
		PrepTimeMins: 15,
		CookTimeMins: 15,
	},
	{
		ID:           "overnight-oats",
		Name:         "Overnight Oats",
		Ingredients:  []string{"oats", "milk", "banana", "honey", "berries"},
		MealType:     "breakfast",
		CuisineType:  "American",
		DietaryTags:  []string{"vegetarian"},
		Calories:     380,
		PrepTimeMins: 5,
	},
	{
		ID:           "chicken-caesar-salad",
		Name:         "Chicken Caesar Salad",
		Ingredients:  []string{"chicken breast", "romaine lettuce", "parmesan cheese", "croutons", "caesar dressing"},
		MealType:     "lunch",
		CuisineType:  "American",
		DietaryTags:  []string{"high-protein"},
		Calories:     430,
		PrepTimeMins: 15,
		CookTimeMins: 10,
	},
	{
		ID:           "tofu-fried-rice",
		Name:         "Tofu Fried Rice",
		Ingredients:  []string{"tofu", "rice", "peas", "carrots", "soy sauce", "eggs"},
		MealType:     "dinner",
		CuisineType:  "Asian",
		DietaryTags:  []string{"vegetarian", "dairy-free"},
		Calories:     490,
		PrepTimeMins: 10,
		CookTimeMins: 15,
	},
}
