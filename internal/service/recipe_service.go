package service

import (
	"cartly-be/internal/entities"
	"cartly-be/internal/models"
	"cartly-be/internal/repository"
)

// RecipeService defines the interface for saved-recipe business logic
type RecipeService interface {
	Save(userID string, req *models.SaveRecipeRequest) (*entities.SavedRecipe, error)
	List(userID string) ([]*entities.SavedRecipe, error)
	Remove(userID, recipeID string) error
}

type recipeService struct {
	repo repository.RecipeRepository
}

// NewRecipeService creates a new saved-recipe service
func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

// Save persists a recipe suggestion for the owner. Nil slices are stored as
// empty arrays so reads always return ordered sequences.
func (s *recipeService) Save(userID string, req *models.SaveRecipeRequest) (*entities.SavedRecipe, error) {
	recipe := &entities.SavedRecipe{
		UserID:             userID,
		Title:              req.Title,
		TimeMinutes:        req.TimeMinutes,
		Difficulty:         req.Difficulty,
		IngredientsUsed:    emptyIfNil(req.IngredientsUsed),
		MissingIngredients: emptyIfNil(req.MissingIngredients),
		Steps:              emptyIfNil(req.Steps),
		Tips:               req.Tips,
	}

	return s.repo.Create(recipe)
}

// List returns the owner's saved recipes.
func (s *recipeService) List(userID string) ([]*entities.SavedRecipe, error) {
	return s.repo.GetByUserID(userID)
}

// Remove deletes one of the owner's recipes; unknown ids are a no-op.
func (s *recipeService) Remove(userID, recipeID string) error {
	return s.repo.Delete(recipeID, userID)
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
