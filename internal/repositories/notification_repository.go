package repositories

import (
	"errors"
	"time"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification types
const (
	NotificationTypeInfo        = "info"
	NotificationTypeQuote       = "quote"
	NotificationTypeInvoice     = "invoice"
	NotificationTypeReservation = "reservation"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByUser(userID string) ([]models.Notification, error)
	MarkAsRead(notificationID string) (*models.Notification, error)
	GetUnreadCount(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// MarkAsRead flips the read flag by id and returns the updated row.
func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) (*models.Notification, error) {
	result := r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Updates(map[string]interface{}{
		"read":       true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotificationNotFound
	}

	var notification models.Notification
	if err := r.db.First(&notification, "id = ?", notificationID).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}
