package routes

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.QuoteHandler.RegisterRoutes(api)
		appHandlers.InvoiceHandler.RegisterRoutes(api)
		appHandlers.ReservationHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.ServiceHandler.RegisterRoutes(api)
		appHandlers.ChatHandler.RegisterRoutes(api)
	}
}
