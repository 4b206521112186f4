package handlers

import (
	"net/http"
	"testing"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_SetsCookieAndReturnsPublicUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "nouveau@test.fr",
		"password": "motdepasse123",
		"name":     "Nouveau",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "register must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	body := decodeBody(t, rec)
	assert.Equal(t, "nouveau@test.fr", body["email"])
	assert.Equal(t, "client", body["role"])
	assert.NotContains(t, rec.Body.String(), "motdepasse123")
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	for _, body := range []map[string]string{
		{},
		{"email": "seul@test.fr"},
		{"password": "motdepasse123"},
	} {
		rec := env.doJSON(t, "POST", "/api/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email et mot de passe requis", decodeBody(t, rec)["message"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.authService.addUser("client@test.fr", "motdepasse123", models.UserRoleClient)

	rec := env.doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "client@test.fr",
		"password": "faux",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Email ou mot de passe incorrect", decodeBody(t, rec)["message"])
	assert.Nil(t, sessionCookie(rec))
}

func TestOAuth_MissingData(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.doJSON(t, "POST", "/api/auth/oauth", "", map[string]string{
		"provider": "apple",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Données OAuth manquantes", decodeBody(t, rec)["message"])
}

func TestGetCurrentUser_CookieAndBearer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.authService.addUser("client@test.fr", "motdepasse123", models.UserRoleClient)
	token := env.authService.openSession(user)

	t.Run("cookie", func(t *testing.T) {
		rec := env.doJSON(t, "GET", "/api/auth/user", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, decodeBody(t, rec)["id"])
	})

	t.Run("bearer header", func(t *testing.T) {
		rec := env.doJSON(t, "GET", "/api/auth/user", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req := env.newBearerRequest(t, "GET", "/api/auth/user", token)
		rec2 := env.serve(req)
		require.Equal(t, http.StatusOK, rec2.Code)
		assert.Equal(t, user.ID, decodeBody(t, rec2)["id"])
	})

	t.Run("dead token", func(t *testing.T) {
		rec := env.doJSON(t, "GET", "/api/auth/user", "token-mort", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Session expirée", decodeBody(t, rec)["message"])
	})

	t.Run("no credentials", func(t *testing.T) {
		rec := env.doJSON(t, "GET", "/api/auth/user", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Non authentifié", decodeBody(t, rec)["message"])
	})
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.authService.addUser("client@test.fr", "motdepasse123", models.UserRoleClient)
	token := env.authService.openSession(user)

	rec := env.doJSON(t, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Déconnecté", decodeBody(t, rec)["message"])

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	// The revoked token no longer resolves.
	rec = env.doJSON(t, "GET", "/api/auth/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_WithoutCookieStillSucceeds(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.doJSON(t, "POST", "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Déconnecté", decodeBody(t, rec)["message"])
}
