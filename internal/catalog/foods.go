package catalog

import "nutrisearch/internal/models"

// defaultEntries is the fixed nutrition data served by the widget.
var defaultEntries = []Entry{
	{Key: "salmon", Label: "Salmon", Record: models.NutritionRecord{
		Name: "Atlantic Salmon", Calories: 206, Protein: 22, Carbs: 0, Fats: 13, Fiber: 0,
		ServingSize: "100g (3.5 oz)",
	}},
	{Key: "brown rice", Label: "Brown Rice", Record: models.NutritionRecord{
		Name: "Brown Rice (cooked)", Calories: 112, Protein: 2.6, Carbs: 24, Fats: 0.9, Fiber: 1.8,
		ServingSize: "1 cup (195g)",
	}},
	{Key: "greek yogurt", Label: "Greek Yogurt", Record: models.NutritionRecord{
		Name: "Greek Yogurt (plain, non-fat)", Calories: 97, Protein: 17, Carbs: 7, Fats: 0.3, Fiber: 0,
		ServingSize: "170g (6 oz)",
	}},
	{Key: "avocado", Label: "Avocado", Record: models.NutritionRecord{
		Name: "Avocado", Calories: 240, Protein: 3, Carbs: 13, Fats: 22, Fiber: 10,
		ServingSize: "1 medium (150g)",
	}},
	{Key: "quinoa", Label: "Quinoa", Record: models.NutritionRecord{
		Name: "Quinoa (cooked)", Calories: 120, Protein: 4.4, Carbs: 21, Fats: 1.9, Fiber: 2.8,
		ServingSize: "1 cup (185g)",
	}},
	{Key: "chicken breast", Label: "Chicken Breast", Record: models.NutritionRecord{
		Name: "Chicken Breast (grilled)", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0,
		ServingSize: "100g (3.5 oz)",
	}},
	{Key: "banana", Label: "Banana", Record: models.NutritionRecord{
		Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4, Fiber: 3.1,
		ServingSize: "1 medium (118g)",
	}},
	{Key: "spinach", Label: "Spinach", Record: models.NutritionRecord{
		Name: "Spinach (raw)", Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4, Fiber: 2.2,
		ServingSize: "100g (3 cups)",
	}},
	{Key: "oatmeal", Label: "Oatmeal", Record: models.NutritionRecord{
		Name: "Oatmeal (cooked)", Calories: 71, Protein: 2.5, Carbs: 12, Fats: 1.5, Fiber: 1.7,
		ServingSize: "1 cup (234g)",
	}},
	{Key: "almonds", Label: "Almonds", Record: models.NutritionRecord{
		Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fats: 14, Fiber: 3.5,
		ServingSize: "28g (23 almonds)",
	}},
}

var defaultTable = mustNew(defaultEntries)

// Default returns the process-wide lookup table.
func Default() *Table {
	return defaultTable
}

func mustNew(entries []Entry) *Table {
	t, err := New(entries)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return t
}
