package models

// FoodListItem pairs a lookup key with its record.
type FoodListItem struct {
	Key    string          `json:"key"`
	Record NutritionRecord `json:"record"`
}

// SearchRequest is the JSON body accepted by the search API.
type SearchRequest struct {
	Query string `json:"query"`
}

// LookupResponse contains the result of an immediate food lookup.
type LookupResponse struct {
	Query  string          `json:"query"`
	Key    string          `json:"key"`
	Record NutritionRecord `json:"record"`
}
