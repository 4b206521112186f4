package services

import (
	"strings"
	"time"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/auth"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/email"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/logger"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"
)

// SessionTTL is the lifetime of a session token.
const SessionTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, string, error)
	Login(req *dto.LoginRequest) (*models.User, string, error)
	OAuth(req *dto.OAuthRequest) (*models.User, string, error)
	Logout(token string) error

	// ResolveSession returns (nil, nil) for an unknown or expired token.
	// A non-nil error always means storage failure, never "not found".
	ResolveSession(token string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	sessionRepo   repositories.SessionRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		emailProvider: emailProvider,
	}
}

// Register creates an email/password account and opens a session.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, string, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         defaultName(req.Name, req.Email),
		AuthProvider: models.AuthProviderEmail,
		Role:         models.UserRoleClient,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, "", apperrors.ErrEmailTaken
		}
		return nil, "", apperrors.InternalError(err)
	}

	token, err := s.createSession(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	// Best effort: the welcome email never delays or fails the
	// registration response.
	go func() {
		if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
			logger.Warn("failed to send welcome email", "email", user.Email, "error", err.Error())
		}
	}()

	return user, token, nil
}

// Login authenticates an email/password account. Unknown email, an
// OAuth-only account, and a wrong password all return the same error so
// accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !user.HasPassword() {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.createSession(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return user, token, nil
}

// OAuth signs in with a native provider identity. Resolution order:
// provider id, then email (which silently links the OAuth identity onto
// an existing password account), then a fresh password-less account.
func (s *AuthServiceImpl) OAuth(req *dto.OAuthRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByProviderID(req.ProviderID)
	if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, "", apperrors.InternalError(err)
	}

	if user == nil {
		user, err = s.findOrCreateByEmail(req)
		if err != nil {
			return nil, "", err
		}
	}

	token, err := s.createSession(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return user, token, nil
}

func (s *AuthServiceImpl) findOrCreateByEmail(req *dto.OAuthRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		// Account linking: the pre-existing account gains the OAuth
		// identity without a confirmation step.
		linked, err := s.userRepo.LinkProvider(existing.ID, models.AuthProvider(req.Provider), req.ProviderID, req.ProfileImage)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return linked, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         defaultName(req.Name, req.Email),
		ProfileImage: req.ProfileImage,
		AuthProvider: models.AuthProvider(req.Provider),
		ProviderID:   req.ProviderID,
		Role:         models.UserRoleClient,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Logout revokes the session. Revoking an unknown token succeeds.
func (s *AuthServiceImpl) Logout(token string) error {
	if err := s.sessionRepo.DeleteByToken(token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResolveSession(token string) (*models.User, error) {
	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Expired sessions are invalid but not deleted here; resolution is a
	// read-only check.
	if session.Expired(time.Now()) {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(session.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthServiceImpl) createSession(userID string) (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	session := &models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", err
	}

	return token, nil
}

// defaultName falls back to the email local part, matching the mobile
// client's expectation for accounts created without a display name.
func defaultName(name, email string) string {
	if name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
