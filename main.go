package main

import (
	"context"
	"log"
	"time"

	"cartly-be/internal/cache"
	"cartly-be/internal/config"
	"cartly-be/internal/controllers"
	"cartly-be/internal/database"
	"cartly-be/internal/jwt"
	"cartly-be/internal/llm"
	"cartly-be/internal/middleware"
	"cartly-be/internal/repository"
	"cartly-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize the AI collaborator client
	textGen, err := newTextGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}
	if closer, ok := textGen.(llm.Closer); ok {
		defer closer.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	listRepo := repository.NewShoppingListRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	priceService := service.NewPriceService(priceRepo, cacheClient)
	listService := service.NewShoppingListService(listRepo)
	recipeService := service.NewRecipeService(recipeRepo)
	recService := service.NewRecommendationService(listRepo, textGen)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	priceController := controllers.NewPriceController(priceService)
	listController := controllers.NewShoppingListController(listService)
	recipeController := controllers.NewRecipeController(recipeService)
	recController := controllers.NewRecommendationController(recService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	aiRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAIRPS), cfg.RateLimitAIBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(generalRateLimiter.LimitMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public catalog routes
	router.GET("/prices", priceController.ListPrices)
	router.GET("/stores", priceController.ListStores)
	router.GET("/categories", priceController.ListCategories)
	router.GET("/filters", priceController.FilterOptions)

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// Protected routes - require JWT authentication
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/auth/me", authController.Me)

		protected.GET("/shopping-list", listController.GetItems)
		protected.POST("/shopping-list", listController.AddItem)
		protected.PATCH("/shopping-list/:id", listController.UpdateQuantity)
		protected.DELETE("/shopping-list/:id", listController.RemoveItem)

		protected.GET("/saved-recipes", recipeController.List)
		protected.POST("/saved-recipes", recipeController.Save)
		protected.DELETE("/saved-recipes/:id", recipeController.Remove)

		// AI-backed routes with the strictest rate limiting
		protected.GET("/recommendations", aiRateLimiter.LimitMiddleware(), recController.Generate)
		protected.POST("/recommendations/regenerate", aiRateLimiter.LimitMiddleware(), recController.Generate)
		protected.POST("/shopping-list/audit", aiRateLimiter.LimitMiddleware(), recController.Audit)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}

// newTextGenerator picks the collaborator client from config.
func newTextGenerator(cfg *config.Config) (llm.TextGenerator, error) {
	if cfg.LLMProvider == "groq" {
		return llm.NewGroqClient(cfg.GroqAPIKey), nil
	}
	return llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
}
