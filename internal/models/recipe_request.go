package models

// SaveRecipeRequest represents the request body for saving a recipe. The shape
// mirrors what the recommendation engine returns so the front-end can post a
// suggestion back verbatim.
type SaveRecipeRequest struct {
	Title              string   `json:"title" binding:"required"`
	TimeMinutes        *int     `json:"time_minutes,omitempty"`
	Difficulty         *string  `json:"difficulty,omitempty"`
	IngredientsUsed    []string `json:"ingredients_used,omitempty"`
	MissingIngredients []string `json:"missing_ingredients,omitempty"`
	Steps              []string `json:"steps,omitempty"`
	Tips               *string  `json:"tips,omitempty"`
}
