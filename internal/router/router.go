// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modgarage/garage-backend/internal/config"
	"github.com/modgarage/garage-backend/internal/handlers"
	"github.com/modgarage/garage-backend/internal/middleware"
	"github.com/modgarage/garage-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	catalogService, err := services.NewCatalogService(db)
	if err != nil {
		return nil, err
	}

	localRepo := services.NewProjectRepository(db)

	var repo services.ProjectRepository = localRepo
	if cfg.ProjectStore.Mode == config.ProjectStoreRemote {
		repo = services.NewRemoteProjectStore(cfg.ProjectStore.BaseURL)
	}

	projectService := services.NewProjectService(repo)
	saveQueue := services.NewSaveQueue(projectService)
	sessionManager := services.NewSessionManager()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	sessionHandler := handlers.NewSessionHandler(sessionManager, catalogService, projectService, saveQueue)
	projectHandler := handlers.NewProjectHandler(localRepo)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes (read-only reference data)
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/items", catalogHandler.GetItems)
			catalog.GET("/items/popular", catalogHandler.GetPopularItems)
			catalog.GET("/items/:id", catalogHandler.GetItem)
			catalog.GET("/vehicles", catalogHandler.GetVehicles)
			catalog.GET("/categories", catalogHandler.GetCategories)
		}

		// Configuration session routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.PUT("/:id/vehicle", sessionHandler.SelectVehicle)
			sessions.PUT("/:id/appearance", sessionHandler.SetAppearance)
			sessions.PUT("/:id/context", sessionHandler.SetBrowseContext)

			sessions.POST("/:id/cart/items", sessionHandler.AddCartItem)
			sessions.DELETE("/:id/cart/items/:itemId", sessionHandler.RemoveCartItem)
			sessions.POST("/:id/cart/items/:itemId/like", sessionHandler.ToggleLike)

			sessions.GET("/:id/quote", sessionHandler.GetQuote)
			sessions.GET("/:id/customizations", sessionHandler.GetCustomizations)

			sessions.POST("/:id/wizard/next", sessionHandler.WizardNext)
			sessions.POST("/:id/wizard/previous", sessionHandler.WizardPrevious)

			sessions.POST("/:id/save", middleware.SaveRateLimit(), sessionHandler.SaveProject)
			sessions.POST("/:id/resume", sessionHandler.ResumeProject)
			sessions.POST("/:id/share", sessionHandler.Share)
			sessions.POST("/:id/events", sessionHandler.RecordEvent)
		}

		// Saved projects (resume picker)
		v1.GET("/projects", sessionHandler.ListSavedProjects)
	}

	// Customization-projects collaborator contract (bare JSON responses)
	api := r.Group("/api")
	{
		projects := api.Group("/customization-projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
		}
	}

	return r, nil
}
