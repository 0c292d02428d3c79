package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"campusfind/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	query := `SELECT * FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`

	var notifications []models.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении уведомлений: %w", err)
	}

	return notifications, nil
}

// MarkRead помечает прочитанными все уведомления из набора одним запросом.
// Запрос дополнительно ограничен владельцем, чужие уведомления не
// затрагиваются даже по валидным ID. Обратного перехода read -> unread
// нигде нет.
func (r *notificationRepository) MarkRead(ctx context.Context, userID string, notificationIDs []string) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET read = true WHERE user_id = ? AND notification_id IN (?)`, userID, notificationIDs)
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса: %w", err)
	}

	query = r.db.Rebind(query)

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении уведомлений: %w", err)
	}

	return nil
}

func (r *notificationRepository) DeleteByItemID(ctx context.Context, itemID string) error {
	query := `DELETE FROM notifications WHERE item_id = $1`

	_, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении уведомлений вещи: %w", err)
	}

	return nil
}
