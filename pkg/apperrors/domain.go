package apperrors

import "net/http"

// Shared error catalog. Messages are the exact strings the mobile client
// displays; login failures deliberately reuse one message for unknown
// email and wrong password so accounts cannot be enumerated.
var (
	// auth
	ErrEmailPasswordRequired = New(CodeValidationFailed, "auth", "Email et mot de passe requis", http.StatusBadRequest)
	ErrEmailTaken            = New(CodeAlreadyExists, "auth", "Cet email est déjà utilisé", http.StatusBadRequest)
	ErrInvalidCredentials    = New(CodeInvalidCredentials, "auth", "Email ou mot de passe incorrect", http.StatusUnauthorized)
	ErrOAuthDataMissing      = New(CodeValidationFailed, "auth", "Données OAuth manquantes", http.StatusBadRequest)
	ErrNotAuthenticated      = New(CodeUnauthorized, "auth", "Non authentifié", http.StatusUnauthorized)
	ErrSessionExpired        = New(CodeSessionExpired, "auth", "Session expirée", http.StatusUnauthorized)
	ErrAccessDenied          = New(CodeForbidden, "auth", "Accès refusé", http.StatusForbidden)

	// chat
	ErrParticipantRequired  = New(CodeValidationFailed, "chat", "participantId requis", http.StatusBadRequest)
	ErrContentRequired      = New(CodeValidationFailed, "chat", "Contenu requis", http.StatusBadRequest)
	ErrConversationNotFound = New(CodeNotFound, "chat", "Conversation non trouvée", http.StatusNotFound)

	// resources
	ErrNotificationNotFound = New(CodeNotFound, "notifications", "Notification non trouvée", http.StatusNotFound)
	ErrInvalidDate          = New(CodeValidationFailed, "reservations", "Date invalide", http.StatusBadRequest)
)
