package controllers

import (
	"net/http"

	"cartly-be/internal/repository"
	"cartly-be/internal/service"

	"github.com/gin-gonic/gin"
)

type PriceController struct {
	priceService service.PriceService
}

func NewPriceController(priceService service.PriceService) *PriceController {
	return &PriceController{
		priceService: priceService,
	}
}

// ListPrices handles GET /prices?store&category&on_sale&search
func (pc *PriceController) ListPrices(c *gin.Context) {
	filter := repository.PriceFilter{
		Store:    c.Query("store"),
		Category: c.Query("category"),
		OnSale:   c.Query("on_sale"),
		Search:   c.Query("search"),
	}

	entries, err := pc.priceService.ListPrices(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListStores handles GET /stores
func (pc *PriceController) ListStores(c *gin.Context) {
	stores, err := pc.priceService.ListStores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

// ListCategories handles GET /categories
func (pc *PriceController) ListCategories(c *gin.Context) {
	categories, err := pc.priceService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// FilterOptions handles GET /filters
func (pc *PriceController) FilterOptions(c *gin.Context) {
	opts, err := pc.priceService.FilterOptions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opts)
}
