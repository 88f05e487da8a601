package models

// RecipeSuggestion is one recipe in the collaborator's contracted reply shape.
type RecipeSuggestion struct {
	Title              string   `json:"title"`
	TimeMinutes        int      `json:"time_minutes"`
	Difficulty         string   `json:"difficulty"`
	IngredientsUsed    []string `json:"ingredients_used"`
	MissingIngredients []string `json:"missing_ingredients"`
	Steps              []string `json:"steps"`
	Tips               string   `json:"tips"`
}

// RecommendationsResponse is the payload for GET /recommendations. Message is
// set when the engine skipped the collaborator (e.g. empty shopping list).
type RecommendationsResponse struct {
	Recipes []RecipeSuggestion `json:"recipes"`
	Message string             `json:"message,omitempty"`
}

// AuditRequest represents the request body for POST /shopping-list/audit.
// Bounds are enforced in the service so a zero value fails with a
// ValidationError before any external call.
type AuditRequest struct {
	People       int `json:"people"`
	ShopsPerWeek int `json:"shops_per_week"`
}

// ReduceSuggestion is one over-buying finding in an audit report.
type ReduceSuggestion struct {
	Item         string `json:"item"`
	Reason       string `json:"reason"`
	SuggestedQty string `json:"suggested_qty"`
}

// AuditReport is the collaborator's contracted reply shape for an audit.
type AuditReport struct {
	OK                bool               `json:"ok"`
	Summary           string             `json:"summary"`
	Warnings          []string           `json:"warnings"`
	Tips              []string           `json:"tips"`
	ReduceSuggestions []ReduceSuggestion `json:"reduce_suggestions"`
}

// FilterOptions is the payload for GET /filters: both dropdown sources in one
// response, fetched concurrently server-side.
type FilterOptions struct {
	Stores     []string `json:"stores"`
	Categories []string `json:"categories"`
}
