package services

import (
	"time"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"
)

type ReservationService interface {
	CreateReservation(userID string, req *dto.CreateReservationRequest) (*models.Reservation, error)
	GetUserReservations(userID string) ([]models.Reservation, error)
}

type ReservationServiceImpl struct {
	reservationRepo repositories.ReservationRepository
}

func NewReservationService(reservationRepo repositories.ReservationRepository) ReservationService {
	return &ReservationServiceImpl{reservationRepo: reservationRepo}
}

func (s *ReservationServiceImpl) CreateReservation(userID string, req *dto.CreateReservationRequest) (*models.Reservation, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	reservation := &models.Reservation{
		UserID:      userID,
		ServiceType: req.ServiceType,
		Date:        date,
		Time:        req.Time,
		Status:      models.StatusPending,
		Notes:       req.Notes,
	}

	if err := s.reservationRepo.Create(reservation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return reservation, nil
}

func (s *ReservationServiceImpl) GetUserReservations(userID string) ([]models.Reservation, error) {
	reservations, err := s.reservationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reservations, nil
}
