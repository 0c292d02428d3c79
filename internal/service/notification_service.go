package service

import (
	"context"

	"campusfind/internal/models"
	"campusfind/internal/repository"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

// ListNotifications возвращает уведомления пользователя от новых к старым
// и одним запросом помечает непрочитанные прочитанными. В ответе флаг read
// остается прежним, чтобы клиент мог выделить новые уведомления.
func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.notifRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unreadIDs []string
	for _, n := range notifications {
		if !n.Read {
			unreadIDs = append(unreadIDs, n.NotificationID)
		}
	}

	if len(unreadIDs) > 0 {
		err = s.notifRepo.MarkRead(ctx, userID, unreadIDs)
		if err != nil {
			return nil, err
		}
	}

	return notifications, nil
}
