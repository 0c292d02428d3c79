package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campusfind/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO messages (message_id, sender_id, receiver_id, item_id, content, is_anonymous, created_at)
		VALUES (:message_id, :sender_id, :receiver_id, :item_id, :content, :is_anonymous, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, message)
	if err != nil {
		return fmt.Errorf("ошибка при создании сообщения: %w", err)
	}

	return nil
}

// GetByItemID возвращает переписку по вещи от старых сообщений к новым
func (r *messageRepository) GetByItemID(ctx context.Context, itemID string) ([]models.MessageWithSender, error) {
	query := `
		SELECT m.*, u.full_name AS sender_name
		FROM messages m
		JOIN users u ON u.user_id = m.sender_id
		WHERE m.item_id = $1
		ORDER BY m.created_at ASC
	`

	var messages []models.MessageWithSender
	err := r.db.SelectContext(ctx, &messages, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сообщений: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) DeleteByItemID(ctx context.Context, itemID string) error {
	query := `DELETE FROM messages WHERE item_id = $1`

	_, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении сообщений вещи: %w", err)
	}

	return nil
}
