package controllers

import (
	"net/http"

	"cartly-be/internal/middleware"
	"cartly-be/internal/models"
	"cartly-be/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	recService service.RecommendationService
}

func NewRecommendationController(recService service.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recService: recService,
	}
}

// Generate handles GET /recommendations and POST /recommendations/regenerate.
// Both run the same path through the engine; there is no recommendation
// caching, so "regenerate" is simply a fresh call.
func (rc *RecommendationController) Generate(c *gin.Context) {
	response, err := rc.recService.GenerateRecipes(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Audit handles POST /shopping-list/audit
func (rc *RecommendationController) Audit(c *gin.Context) {
	var req models.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	report, err := rc.recService.AuditShoppingList(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
