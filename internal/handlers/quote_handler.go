package handlers

import (
	"net/http"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	*BaseHandler
	quoteService services.QuoteService
	authService  services.AuthService
}

func NewQuoteHandler(base *BaseHandler, quoteService services.QuoteService, authService services.AuthService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler:  base,
		quoteService: quoteService,
		authService:  authService,
	}
}

func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.Use(middleware.AuthMiddleware(h.authService))
	{
		quotes.GET("", h.GetUserQuotes)
		quotes.POST("", h.CreateQuote)
	}
}

func (h *QuoteHandler) GetUserQuotes(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.GetUserQuotes(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateQuoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.CreateQuote(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
