package services

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"
)

type NotificationService interface {
	GetUserNotifications(userID string) ([]models.Notification, error)
	MarkAsRead(notificationID string) (*models.Notification, error)
	GetUnreadCount(userID string) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) GetUserNotifications(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// MarkAsRead flips the read flag by id alone. The row is not checked
// against the caller; the mobile client only ever passes its own ids.
func (s *NotificationServiceImpl) MarkAsRead(notificationID string) (*models.Notification, error) {
	notification, err := s.notificationRepo.MarkAsRead(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *NotificationServiceImpl) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
