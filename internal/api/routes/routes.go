package routes

import (
	"deal-tracker-backend/internal/api/handlers"
	"deal-tracker-backend/internal/api/middleware"
	"deal-tracker-backend/internal/config"
	"deal-tracker-backend/internal/repository"
	"deal-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	keywordRepo := repository.NewKeywordRepository(db)
	subredditRepo := repository.NewSubredditRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Initialize services
	keywordService := service.NewKeywordService(keywordRepo, validator)
	subredditService := service.NewSubredditService(subredditRepo, validator)
	postService := service.NewPostService(postRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	keywordHandler := handlers.NewKeywordHandler(keywordService)
	subredditHandler := handlers.NewSubredditHandler(subredditService)
	postHandler := handlers.NewPostHandler(postService)

	// Health check
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		keywords := v1.Group("/keywords")
		{
			keywords.POST("", keywordHandler.CreateKeyword)
			keywords.GET("", keywordHandler.ListKeywords)
			keywords.GET("/search", keywordHandler.SearchKeywords)
			keywords.GET("/statistics", keywordHandler.GetStatistics)
			keywords.GET("/:id", keywordHandler.GetKeyword)
			keywords.PUT("/:id", keywordHandler.UpdateKeyword)
			keywords.DELETE("/:id", keywordHandler.DeleteKeyword)
		}

		subreddits := v1.Group("/subreddits")
		{
			subreddits.POST("", subredditHandler.CreateSubreddit)
			subreddits.GET("", subredditHandler.ListSubreddits)
			subreddits.GET("/search", subredditHandler.SearchSubreddits)
			subreddits.GET("/statistics", subredditHandler.GetStatistics)
			subreddits.GET("/by-name/:name", subredditHandler.GetSubredditByName)
			subreddits.GET("/:id", subredditHandler.GetSubreddit)
			subreddits.PUT("/:id", subredditHandler.UpdateSubreddit)
			subreddits.DELETE("/:id", subredditHandler.DeleteSubreddit)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.ListPosts)
			posts.GET("/search", postHandler.SearchPosts)
			posts.GET("/statistics", postHandler.GetStatistics)
			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
		}
	}

	return router
}
