package dto

// Auth requests are bound without struct validation: the endpoints
// answer with the exact messages the mobile client matches on, so
// presence checks live in the handler.

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OAuthRequest carries the identity the client obtained from the native
// provider sign-in. Google and Facebook are accepted by the schema but
// only Apple is wired in the mobile client today.
type OAuthRequest struct {
	Provider     string `json:"provider"`
	ProviderID   string `json:"providerId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}
