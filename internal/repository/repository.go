package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"campusfind/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

// ItemFilter - фильтры списка вещей, пустое значение означает "все"
type ItemFilter struct {
	Status   string
	Type     string
	Category string
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, itemID string) (*models.Item, error)
	GetByIDWithOwner(ctx context.Context, itemID string) (*models.ItemWithOwner, error)
	GetByFilter(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Item, error)
	UpdateStatus(ctx context.Context, itemID, userID, status string) error
	Delete(ctx context.Context, itemID, userID string) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByItemID(ctx context.Context, itemID string) ([]models.MessageWithSender, error)
	DeleteByItemID(ctx context.Context, itemID string) error
}

type NotificationRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID string, notificationIDs []string) error
	DeleteByItemID(ctx context.Context, itemID string) error
}

type Repository struct {
	User         UserRepository
	Item         ItemRepository
	Message      MessageRepository
	Notification NotificationRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Item:         NewItemRepository(db),
		Message:      NewMessageRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
