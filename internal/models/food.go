package models

// NutritionRecord holds the nutrition facts for one serving of a food.
type NutritionRecord struct {
	Name        string  `json:"foodName" yaml:"name"`
	Calories    float64 `json:"calories" yaml:"calories"`
	Protein     float64 `json:"protein" yaml:"protein"`
	Carbs       float64 `json:"carbs" yaml:"carbs"`
	Fats        float64 `json:"fats" yaml:"fats"`
	Fiber       float64 `json:"fiber" yaml:"fiber"`
	ServingSize string  `json:"servingSize" yaml:"serving_size"`
}

// Nutrient is a single labelled value of a record, used for display.
type Nutrient struct {
	Label     string
	Value     float64
	Unit      string
	Highlight bool
}

// Nutrients returns the record's values in display order.
func (r NutritionRecord) Nutrients() []Nutrient {
	return []Nutrient{
		{Label: "Calories", Value: r.Calories, Unit: "kcal", Highlight: true},
		{Label: "Protein", Value: r.Protein, Unit: "g"},
		{Label: "Carbs", Value: r.Carbs, Unit: "g"},
		{Label: "Fats", Value: r.Fats, Unit: "g"},
		{Label: "Fiber", Value: r.Fiber, Unit: "g"},
	}
}
