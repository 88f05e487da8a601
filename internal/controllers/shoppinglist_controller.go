package controllers

import (
	"net/http"

	"cartly-be/internal/middleware"
	"cartly-be/internal/models"
	"cartly-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ShoppingListController struct {
	listService service.ShoppingListService
}

func NewShoppingListController(listService service.ShoppingListService) *ShoppingListController {
	return &ShoppingListController{
		listService: listService,
	}
}

// GetItems handles GET /shopping-list
func (sc *ShoppingListController) GetItems(c *gin.Context) {
	items, err := sc.listService.GetItems(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddItem handles POST /shopping-list
func (sc *ShoppingListController) AddItem(c *gin.Context) {
	var req models.AddListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := sc.listService.AddItem(middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateQuantity handles PATCH /shopping-list/:id
func (sc *ShoppingListController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := sc.listService.UpdateQuantity(middleware.UserID(c), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// RemoveItem handles DELETE /shopping-list/:id. Removal is idempotent: a
// nonexistent or foreign id still returns success with no effect.
func (sc *ShoppingListController) RemoveItem(c *gin.Context) {
	if err := sc.listService.RemoveItem(middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
