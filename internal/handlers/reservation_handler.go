package handlers

import (
	"net/http"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	*BaseHandler
	reservationService services.ReservationService
	authService        services.AuthService
}

func NewReservationHandler(base *BaseHandler, reservationService services.ReservationService, authService services.AuthService) *ReservationHandler {
	return &ReservationHandler{
		BaseHandler:        base,
		reservationService: reservationService,
		authService:        authService,
	}
}

func (h *ReservationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reservations := rg.Group("/reservations")
	reservations.Use(middleware.AuthMiddleware(h.authService))
	{
		reservations.GET("", h.GetUserReservations)
		reservations.POST("", h.CreateReservation)
	}
}

func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.GetUserReservations(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	reservation, err := h.reservationService.CreateReservation(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}
