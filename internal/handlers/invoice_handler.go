package handlers

import (
	"net/http"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	*BaseHandler
	invoiceService services.InvoiceService
	authService    services.AuthService
}

func NewInvoiceHandler(base *BaseHandler, invoiceService services.InvoiceService, authService services.AuthService) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    base,
		invoiceService: invoiceService,
		authService:    authService,
	}
}

func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware(h.authService))
	{
		invoices.GET("", h.GetUserInvoices)
	}
}

func (h *InvoiceHandler) GetUserInvoices(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.GetUserInvoices(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}
