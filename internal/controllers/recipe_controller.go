package controllers

import (
	"net/http"

	"cartly-be/internal/middleware"
	"cartly-be/internal/models"
	"cartly-be/internal/service"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipeService service.RecipeService
}

func NewRecipeController(recipeService service.RecipeService) *RecipeController {
	return &RecipeController{
		recipeService: recipeService,
	}
}

// List handles GET /saved-recipes
func (rc *RecipeController) List(c *gin.Context) {
	recipes, err := rc.recipeService.List(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Save handles POST /saved-recipes
func (rc *RecipeController) Save(c *gin.Context) {
	var req models.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	recipe, err := rc.recipeService.Save(middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// Remove handles DELETE /saved-recipes/:id (idempotent)
func (rc *RecipeController) Remove(c *gin.Context) {
	if err := rc.recipeService.Remove(middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
