package repositories

import (
	"errors"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("reservation not found")

type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	FindByID(id string) (*models.Reservation, error)
	FindByUser(userID string) ([]models.Reservation, error)
}

type ReservationRepositoryImpl struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &ReservationRepositoryImpl{db: db}
}

func (r *ReservationRepositoryImpl) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *ReservationRepositoryImpl) FindByID(id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepositoryImpl) FindByUser(userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reservations).Error
	return reservations, err
}
