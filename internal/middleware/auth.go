package middleware

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/logger"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the session cookie the mobile and web clients carry.
const AuthCookieName = "auth_token"

const currentUserKey = "currentUser"

// AuthMiddleware gates protected routes. A missing cookie is rejected
// without touching storage; an unknown or expired token is 401, and a
// storage failure is 500. Clients can rely on the distinction.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			abortWithError(c, apperrors.ErrNotAuthenticated)
			return
		}

		user, err := authService.ResolveSession(token)
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "session resolution failed", err, "path", c.Request.URL.Path)
			abortWithError(c, apperrors.InternalError(err))
			return
		}
		if user == nil {
			abortWithError(c, apperrors.ErrSessionExpired)
			return
		}

		c.Set(currentUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// RequireRoles allows only the listed roles past. Must run after an auth
// middleware that resolved the caller.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !roleSet[user.Role] {
			abortWithError(c, apperrors.ErrAccessDenied)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := val.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// SetCurrentUser places an externally resolved identity in the context.
// Used by the remote-auth variant of the chat routes.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Message: err.Message})
}
