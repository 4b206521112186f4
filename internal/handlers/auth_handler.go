package handlers

import (
	"net/http"
	"strings"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge mirrors the session TTL.
const sessionCookieMaxAge = 30 * 24 * 60 * 60

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	secureCookies bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/oauth", h.OAuth)
		auth.GET("/user", h.GetCurrentUser)
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.ErrEmailPasswordRequired)
		return
	}
	if req.Email == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.ErrEmailPasswordRequired)
		return
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user.Public())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.ErrEmailPasswordRequired)
		return
	}
	if req.Email == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.ErrEmailPasswordRequired)
		return
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user.Public())
}

func (h *AuthHandler) OAuth(c *gin.Context) {
	var req dto.OAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.ErrOAuthDataMissing)
		return
	}
	if req.Provider == "" || req.ProviderID == "" || req.Email == "" {
		apperrors.HandleError(c, apperrors.ErrOAuthDataMissing)
		return
	}

	user, token, err := h.authService.OAuth(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user.Public())
}

// GetCurrentUser resolves its own token instead of using the auth
// middleware: this endpoint additionally accepts a Bearer header for
// clients without cookie support.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	token := h.extractToken(c)
	if token == "" {
		apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
		return
	}

	user, err := h.authService.ResolveSession(token)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrSessionExpired)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// Logout always succeeds: revoking an already-dead token is a no-op, and
// the cookie is cleared either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.AuthCookieName); err == nil && token != "" {
		if err := h.authService.Logout(token); err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

func (h *AuthHandler) extractToken(c *gin.Context) string {
	if token, err := c.Cookie(middleware.AuthCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, sessionCookieMaxAge, "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookies, true)
}
