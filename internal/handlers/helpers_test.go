package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/validator"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthService keeps accounts and sessions in memory, reproducing the
// real service's error contract.
type fakeAuthService struct {
	users     map[string]*models.User // by email
	passwords map[string]string       // by email
	sessions  map[string]*models.User // by token
	seq       int
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		users:     make(map[string]*models.User),
		passwords: make(map[string]string),
		sessions:  make(map[string]*models.User),
	}
}

func (s *fakeAuthService) addUser(email, password string, role models.UserRole) *models.User {
	s.seq++
	user := &models.User{
		BaseModel:    models.BaseModel{ID: fmt.Sprintf("user-%d", s.seq)},
		Email:        email,
		PasswordHash: "hash:" + password,
		Name:         "Testeur",
		AuthProvider: models.AuthProviderEmail,
		Role:         role,
	}
	s.users[email] = user
	s.passwords[email] = password
	return user
}

func (s *fakeAuthService) openSession(user *models.User) string {
	s.seq++
	token := fmt.Sprintf("token-%d", s.seq)
	s.sessions[token] = user
	return token
}

func (s *fakeAuthService) Register(req *dto.RegisterRequest) (*models.User, string, error) {
	if _, exists := s.users[req.Email]; exists {
		return nil, "", apperrors.ErrEmailTaken
	}
	user := s.addUser(req.Email, req.Password, models.UserRoleClient)
	if req.Name != "" {
		user.Name = req.Name
	}
	return user, s.openSession(user), nil
}

func (s *fakeAuthService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	user, exists := s.users[req.Email]
	if !exists || s.passwords[req.Email] != req.Password {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	return user, s.openSession(user), nil
}

func (s *fakeAuthService) OAuth(req *dto.OAuthRequest) (*models.User, string, error) {
	user, exists := s.users[req.Email]
	if !exists {
		s.seq++
		user = &models.User{
			BaseModel:    models.BaseModel{ID: fmt.Sprintf("user-%d", s.seq)},
			Email:        req.Email,
			Name:         req.Name,
			AuthProvider: models.AuthProvider(req.Provider),
			ProviderID:   req.ProviderID,
			Role:         models.UserRoleClient,
		}
		s.users[req.Email] = user
	}
	return user, s.openSession(user), nil
}

func (s *fakeAuthService) Logout(token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *fakeAuthService) ResolveSession(token string) (*models.User, error) {
	return s.sessions[token], nil
}

type testEnv struct {
	router      *gin.Engine
	authService *fakeAuthService
}

// newTestEnv wires a router the way the app does, over fake storage.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	authService := newFakeAuthService()
	base := NewBaseHandler(validator.New())

	router := gin.New()
	api := router.Group("/api")
	NewAuthHandler(base, authService, false).RegisterRoutes(api)
	NewQuoteHandler(base, &fakeQuoteService{}, authService).RegisterRoutes(api)
	NewChatHandler(base, &fakeChatService{}, middleware.AuthMiddleware(authService)).RegisterRoutes(api)

	return &testEnv{router: router, authService: authService}
}

// doJSON performs a request with an optional session cookie and JSON body.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) newBearerRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// sessionCookie extracts the auth_token Set-Cookie from a response.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			return c
		}
	}
	return nil
}
