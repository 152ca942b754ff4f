package routes

import (
	"talentboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
	}
}
