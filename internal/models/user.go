package models

type User struct {
	BaseModel
	Email        string       `gorm:"uniqueIndex;not null"`
	PasswordHash string       // empty for OAuth-only accounts
	Name         string
	ProfileImage string
	AuthProvider AuthProvider `gorm:"type:varchar(20);not null;default:'email'"`
	ProviderID   string       `gorm:"index"`
	Role         UserRole     `gorm:"type:varchar(20);not null;default:'client'"`

	Sessions []Session `gorm:"foreignKey:UserID"`
}

// HasPassword reports whether the account can log in with a password.
// OAuth-only accounts have no hash and must never pass password login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// PublicUser is the only user shape ever serialized to clients. The
// password hash and provider id stay server-side.
type PublicUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
	Role         string `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
		Role:         string(u.Role),
	}
}
