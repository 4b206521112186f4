package handlers

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/logger"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/validator"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Requête invalide"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewBadRequestError(vErr.Message()))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error onto the HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode >= 500 {
			logger.CtxWithError(ctx, "internal server error", appErr, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "service error", "error", appErr.Message, "path", c.Request.URL.Path)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// CurrentUser returns the identity attached by the auth middleware,
// rejecting the request when it is missing (misrouted handler).
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "no identity in context", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
		return nil, false
	}
	return user, true
}
