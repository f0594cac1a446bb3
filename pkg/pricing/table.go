package pricing

// DefaultTable returns the built-in price-range table, in priority order:
// proteins, dairy, vegetables, fruits, grains, then the catch-all.
// Values are plain decimal amounts in a single currency unit; the table
// is meant to be overridden by configuration, not edited here.
func DefaultTable() Table {
	return Table{
		// Proteins
		{Key: "chicken", Min: 3.5, Max: 6.0, Unit: "lb", AvgQuantity: 1},
		{Key: "beef", Min: 5.0, Max: 9.0, Unit: "lb", AvgQuantity: 1},
		{Key: "pork", Min: 3.0, Max: 6.0, Unit: "lb", AvgQuantity: 1},
		{Key: "salmon", Min: 8.0, Max: 14.0, Unit: "lb", AvgQuantity: 0.75},
		{Key: "fish", Min: 6.0, Max: 12.0, Unit: "lb", AvgQuantity: 0.75},
		{Key: "shrimp", Min: 7.0, Max: 12.0, Unit: "lb", AvgQuantity: 0.5},
		{Key: "tofu", Min: 1.5, Max: 3.0, Unit: "block", AvgQuantity: 1},
		{Key: "egg", Min: 2.0, Max: 4.5, Unit: "dozen", AvgQuantity: 1},

		// Dairy
		{Key: "milk", Min: 2.5, Max: 4.5, Unit: "gallon", AvgQuantity: 1},
		{Key: "cheese", Min: 3.0, Max: 7.0, Unit: "lb", AvgQuantity: 0.5},
		{Key: "yogurt", Min: 0.8, Max: 1.8, Unit: "cup", AvgQuantity: 4},
		{Key: "butter", Min: 2.5, Max: 5.0, Unit: "lb", AvgQuantity: 0.5},
		{Key: "cream", Min: 1.5, Max: 3.5, Unit: "pint", AvgQuantity: 1},

		// Vegetables
		{Key: "tomato", Min: 1.0, Max: 3.0, Unit: "lb", AvgQuantity: 1},
		{Key: "potato", Min: 0.6, Max: 1.5, Unit: "lb", AvgQuantity: 2},
		{Key: "onion", Min: 0.6, Max: 1.5, Unit: "lb", AvgQuantity: 1},
		{Key: "carrot", Min: 0.8, Max: 1.8, Unit: "lb", AvgQuantity: 1},
		{Key: "broccoli", Min: 1.5, Max: 3.0, Unit: "lb", AvgQuantity: 1},
		{Key: "spinach", Min: 1.5, Max: 3.5, Unit: "bunch", AvgQuantity: 1},
		{Key: "pepper", Min: 1.0, Max: 2.5, Unit: "each", AvgQuantity: 2},
		{Key: "lettuce", Min: 1.0, Max: 2.5, Unit: "head", AvgQuantity: 1},
		{Key: "garlic", Min: 0.4, Max: 1.0, Unit: "head", AvgQuantity: 1},
		{Key: "mushroom", Min: 2.0, Max: 4.0, Unit: "lb", AvgQuantity: 0.5},

		// Fruits
		{Key: "apple", Min: 1.2, Max: 2.5, Unit: "lb", AvgQuantity: 1},
		{Key: "banana", Min: 0.5, Max: 0.8, Unit: "lb", AvgQuantity: 1},
		{Key: "orange", Min: 1.0, Max: 2.0, Unit: "lb", AvgQuantity: 1},
		{Key: "berr", Min: 3.0, Max: 6.0, Unit: "pint", AvgQuantity: 1},
		{Key: "lemon", Min: 0.5, Max: 1.0, Unit: "each", AvgQuantity: 2},

		// Grains
		{Key: "rice", Min: 1.0, Max: 3.0, Unit: "lb", AvgQuantity: 1},
		{Key: "pasta", Min: 1.0, Max: 2.5, Unit: "lb", AvgQuantity: 1},
		{Key: "bread", Min: 2.0, Max: 4.5, Unit: "loaf", AvgQuantity: 1},
		{Key: "flour", Min: 1.5, Max: 3.5, Unit: "5lb bag", AvgQuantity: 1},
		{Key: "oat", Min: 2.0, Max: 4.0, Unit: "lb", AvgQuantity: 1},
		{Key: "quinoa", Min: 4.0, Max: 7.0, Unit: "lb", AvgQuantity: 0.5},

		// Catch-all for anything unrecognized
		{Key: DefaultKey, Min: 1.5, Max: 4.0, Unit: "item", AvgQuantity: 1},
	}
}
