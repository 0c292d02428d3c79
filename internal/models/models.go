package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	FullName               string    `json:"fullName" db:"full_name"`
	PhoneNumber            *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	EmailVerified          bool      `json:"emailVerified" db:"email_verified"`
	AvatarURL              *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Item struct {
	ItemID      string    `json:"itemId" db:"item_id"`
	Type        string    `json:"type" db:"type"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	Status      string    `json:"status" db:"status"`
	UserID      string    `json:"userId" db:"user_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ItemWithOwner - карточка вещи вместе с профилем владельца для страницы детали
type ItemWithOwner struct {
	Item
	OwnerName  string `json:"ownerName" db:"owner_name"`
	OwnerEmail string `json:"ownerEmail" db:"owner_email"`
	// ImageError заполняется, если не удалось получить подписанную ссылку
	ImageError string `json:"imageError,omitempty" db:"-"`
}

type Message struct {
	MessageID   string    `json:"messageId" db:"message_id"`
	SenderID    string    `json:"senderId" db:"sender_id"`
	ReceiverID  string    `json:"receiverId" db:"receiver_id"`
	ItemID      string    `json:"itemId" db:"item_id"`
	Content     string    `json:"content" db:"content"`
	IsAnonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type MessageWithSender struct {
	Message
	SenderName string `json:"senderName" db:"sender_name"`
}

type Notification struct {
	NotificationID string    `json:"notificationId" db:"notification_id"`
	UserID         string    `json:"userId" db:"user_id"`
	ItemID         string    `json:"itemId" db:"item_id"`
	Type           string    `json:"type" db:"type"`
	Read           bool      `json:"read" db:"read"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// Categories - фиксированный список категорий вещей
var Categories = []string{
	"Electronics",
	"Books",
	"Accessories",
	"IDs",
	"Keys",
	"Clothing",
	"Other",
}

// ItemStatuses - допустимые статусы вещи
var ItemStatuses = []string{"open", "in_progress", "returned", "archived"}
