package handlers

import (
	"github.com/go-playground/validator/v10"

	"campusfind/internal/config"
	"campusfind/internal/database"
	"campusfind/internal/repository"
	"campusfind/internal/service"
)

type Handlers struct {
	AuthService         service.AuthService
	ItemService         service.ItemService
	MessageService      service.MessageService
	NotificationService service.NotificationService
	UserRepo            repository.UserRepository
	ItemRepo            repository.ItemRepository
	DB                  *database.DB
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         service.Auth,
		ItemService:         service.Item,
		MessageService:      service.Message,
		NotificationService: service.Notification,
		UserRepo:            repo.User,
		ItemRepo:            repo.Item,
		DB:                  db,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}
