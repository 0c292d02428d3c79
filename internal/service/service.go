package service

import (
	"campusfind/internal/config"
	"campusfind/internal/repository"
	"campusfind/internal/storage"
)

type Service struct {
	Auth         AuthService
	Item         ItemService
	Message      MessageService
	Notification NotificationService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:         NewAuthService(rep.User, cfg),
		Item:         NewItemService(rep.Item, rep.Message, rep.Notification, storage, cfg),
		Message:      NewMessageService(rep.Message, rep.Item),
		Notification: NewNotificationService(rep.Notification),
	}
}
