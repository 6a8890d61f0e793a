package routes

import (
	"brainstorm-api/internal/auth"
	"brainstorm-api/internal/handlers"
	"brainstorm-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Cards  *handlers.CardHandler
	Auth   *handlers.AuthHandler
	AI     *handlers.AIHandler
	WS     *handlers.WSHandler
	Tokens *auth.Manager
}

func SetupRoutes(deps Deps) *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Brainstorm board API is running",
		})
	})

	// Public routes: the board has no ownership model, so card routes
	// take no authentication
	api := ginRouter.Group("/api")
	{
		api.GET("/cards", deps.Cards.List)
		api.POST("/cards", deps.Cards.Create)
		api.PUT("/cards/:id", deps.Cards.Move)
		api.DELETE("/cards/:id", deps.Cards.Delete)

		api.POST("/register", deps.Auth.Register)
		api.POST("/login", deps.Auth.Login)

		api.POST("/ai", deps.AI.Generate)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuth(deps.Tokens))
	{
		protectedRoutes.GET("/me", handlers.Me)
	}

	// Live board event feed
	ginRouter.GET("/ws/board", deps.WS.BoardEvents)

	return ginRouter
}
