package repositories

import (
	"errors"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"gorm.io/gorm"
)

var ErrQuoteNotFound = errors.New("quote not found")

type QuoteRepository interface {
	Create(quote *models.Quote) error
	FindByID(id string) (*models.Quote, error)
	FindByUser(userID string) ([]models.Quote, error)
}

type QuoteRepositoryImpl struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &QuoteRepositoryImpl{db: db}
}

func (r *QuoteRepositoryImpl) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

func (r *QuoteRepositoryImpl) FindByID(id string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.First(&quote, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepositoryImpl) FindByUser(userID string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}
