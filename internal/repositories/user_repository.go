package repositories

import (
	"errors"
	"time"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByProviderID(providerID string) (*models.User, error)
	Create(user *models.User) error
	LinkProvider(userID string, provider models.AuthProvider, providerID, profileImage string) (*models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByProviderID(providerID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "provider_id = ?", providerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	err := r.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	// A lookup failure must not fall through to the insert: only a
	// confirmed "no such row" does.
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(user).Error
}

// LinkProvider attaches an OAuth identity to an existing account and
// returns the updated row.
func (r *UserRepositoryImpl) LinkProvider(userID string, provider models.AuthProvider, providerID, profileImage string) (*models.User, error) {
	updates := map[string]interface{}{
		"auth_provider": provider,
		"provider_id":   providerID,
		"updated_at":    time.Now(),
	}
	if profileImage != "" {
		updates["profile_image"] = profileImage
	}

	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.FindByID(userID)
}
