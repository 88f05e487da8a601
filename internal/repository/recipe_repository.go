package repository

import (
	"database/sql"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/entities"

	"github.com/lib/pq"
)

// RecipeRepository defines the interface for saved-recipe database operations
type RecipeRepository interface {
	Create(recipe *entities.SavedRecipe) (*entities.SavedRecipe, error)
	GetByUserID(userID string) ([]*entities.SavedRecipe, error)
	Delete(id, userID string) error
}

type recipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new saved-recipe repository
func NewRecipeRepository(db *sql.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

const recipeColumns = `id, user_id, title, time_minutes, difficulty, ingredients_used, missing_ingredients, steps, tips, created_at`

func scanRecipe(row interface{ Scan(...interface{}) error }) (*entities.SavedRecipe, error) {
	var rec entities.SavedRecipe
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Title,
		&rec.TimeMinutes,
		&rec.Difficulty,
		pq.Array(&rec.IngredientsUsed),
		pq.Array(&rec.MissingIngredients),
		pq.Array(&rec.Steps),
		&rec.Tips,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts a saved recipe. The ordered string sequences are stored as
// Postgres text[] columns via pq.Array.
func (r *recipeRepository) Create(recipe *entities.SavedRecipe) (*entities.SavedRecipe, error) {
	query := `
		INSERT INTO saved_recipes
			(user_id, title, time_minutes, difficulty, ingredients_used, missing_ingredients, steps, tips)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + recipeColumns

	row := r.db.QueryRow(query,
		recipe.UserID,
		recipe.Title,
		recipe.TimeMinutes,
		recipe.Difficulty,
		pq.Array(recipe.IngredientsUsed),
		pq.Array(recipe.MissingIngredients),
		pq.Array(recipe.Steps),
		recipe.Tips,
	)

	created, err := scanRecipe(row)
	if err != nil {
		return nil, apperrors.Persistence("failed to save recipe", err)
	}

	return created, nil
}

// GetByUserID returns the owner's saved recipes, newest first.
func (r *recipeRepository) GetByUserID(userID string) ([]*entities.SavedRecipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM saved_recipes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, apperrors.Persistence("failed to list saved recipes", err)
	}
	defer rows.Close()

	recipes := []*entities.SavedRecipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, apperrors.Persistence("failed to scan saved recipe", err)
		}
		recipes = append(recipes, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Persistence("error iterating saved recipes", err)
	}

	return recipes, nil
}

// Delete removes the caller's recipe; foreign or unknown ids match zero rows.
func (r *recipeRepository) Delete(id, userID string) error {
	query := `DELETE FROM saved_recipes WHERE id = $1 AND user_id = $2`

	if _, err := r.db.Exec(query, id, userID); err != nil {
		return apperrors.Persistence("failed to delete saved recipe", err)
	}

	return nil
}
