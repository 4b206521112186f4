package repositories

import (
	"errors"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(session *models.Session) error
	FindByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteByToken removes the session row. Deleting a token that does not
// exist is a no-op, not an error.
func (r *SessionRepositoryImpl) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
