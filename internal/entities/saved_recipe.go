package entities

import "time"

// SavedRecipe is a recipe suggestion the user chose to keep.
type SavedRecipe struct {
	ID                 string    `json:"id"` // UUID
	UserID             string    `json:"-"`
	Title              string    `json:"title"`
	TimeMinutes        *int      `json:"time_minutes,omitempty"`
	Difficulty         *string   `json:"difficulty,omitempty"`
	IngredientsUsed    []string  `json:"ingredients_used"`
	MissingIngredients []string  `json:"missing_ingredients"`
	Steps              []string  `json:"steps"`
	Tips               *string   `json:"tips,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
