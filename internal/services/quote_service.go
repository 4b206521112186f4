package services

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"
)

type QuoteService interface {
	CreateQuote(userID string, req *dto.CreateQuoteRequest) (*models.Quote, error)
	GetUserQuotes(userID string) ([]models.Quote, error)
}

type QuoteServiceImpl struct {
	quoteRepo repositories.QuoteRepository
}

func NewQuoteService(quoteRepo repositories.QuoteRepository) QuoteService {
	return &QuoteServiceImpl{quoteRepo: quoteRepo}
}

// CreateQuote stores a quote request owned by userID. The owner always
// comes from the resolved identity, never from the request body.
func (s *QuoteServiceImpl) CreateQuote(userID string, req *dto.CreateQuoteRequest) (*models.Quote, error) {
	quote := &models.Quote{
		UserID:       userID,
		VehicleBrand: req.VehicleBrand,
		VehicleModel: req.VehicleModel,
		VehicleYear:  req.VehicleYear,
		WheelSize:    req.WheelSize,
		ServiceType:  req.ServiceType,
		Description:  req.Description,
		Status:       models.StatusPending,
	}

	if err := s.quoteRepo.Create(quote); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return quote, nil
}

func (s *QuoteServiceImpl) GetUserQuotes(userID string) ([]models.Quote, error) {
	quotes, err := s.quoteRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return quotes, nil
}
