package handlers

import (
	"net/http"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the public workshop catalog. No auth: the
// mobile app shows the price list before sign-up.
type ServiceHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewServiceHandler(base *BaseHandler, catalogService services.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListServices())
}
