package middleware

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/logger"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/remoteauth"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RemoteAuthMiddleware authenticates the caller against the external
// backend instead of the local session store. A remote failure is logged
// but surfaces as plain 401, matching what the external backend's own
// clients see.
func RemoteAuthMiddleware(client *remoteauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := client.Authenticate(c.Request.Context(), c.GetHeader("Cookie"))
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "remote auth check failed", err, "path", c.Request.URL.Path)
		}
		if identity == nil {
			abortWithError(c, apperrors.ErrNotAuthenticated)
			return
		}

		c.Set(currentUserKey, &models.User{
			BaseModel: models.BaseModel{ID: identity.ID},
			Role:      models.UserRole(identity.Role),
		})
		c.Next()
	}
}
