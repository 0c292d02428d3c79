package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"campusfind/internal/config"
	"campusfind/internal/models"
	"campusfind/internal/repository"
	"campusfind/internal/storage"
)

type ItemService interface {
	ListItems(ctx context.Context, filter repository.ItemFilter, search string) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string) (*models.ItemWithOwner, error)
	CreateItem(ctx context.Context, req repository.CreateItemRequest, fileName string, file io.Reader, size int64) (*models.Item, error)
	UpdateStatus(ctx context.Context, itemID, userID, status string) error
	DeleteItem(ctx context.Context, itemID, userID string) error
	DeleteItemCascade(ctx context.Context, itemID, userID string) error
}

type itemService struct {
	itemRepo    repository.ItemRepository
	messageRepo repository.MessageRepository
	notifRepo   repository.NotificationRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewItemService(
	itemRepo repository.ItemRepository,
	messageRepo repository.MessageRepository,
	notifRepo repository.NotificationRepository,
	storage storage.Storage,
	cfg *config.Config,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		messageRepo: messageRepo,
		notifRepo:   notifRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

// ListItems отдает вещи по фильтрам статус/тип/категория, сначала новые.
// Точные фильтры применяются в БД, текстовый поиск - уже по выбранному
// набору: вещь подходит, если строка поиска входит в название, описание
// или место без учета регистра. Пустой поиск возвращает весь набор.
func (s *itemService) ListItems(ctx context.Context, filter repository.ItemFilter, search string) ([]models.Item, error) {
	if filter.Status == "" {
		filter.Status = "open"
	}

	items, err := s.itemRepo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return items, nil
	}

	term := strings.ToLower(search)
	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if matchesSearch(item, term) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

func matchesSearch(item models.Item, term string) bool {
	return strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Location), term)
}

// GetItem возвращает вещь вместе с профилем владельца. Если у вещи есть
// картинка, путь в хранилище подменяется подписанной ссылкой. Неудача при
// подписании не валит запрос, а помечается в ImageError.
func (s *itemService) GetItem(ctx context.Context, itemID string) (*models.ItemWithOwner, error) {
	item, err := s.itemRepo.GetByIDWithOwner(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.ImageURL != nil && *item.ImageURL != "" {
		signedURL, err := s.storage.GetImageURL(ctx, *item.ImageURL)
		if err != nil {
			log.Printf("Не удалось получить подписанную ссылку для %s: %v", *item.ImageURL, err)
			item.ImageURL = nil
			item.ImageError = "не удалось получить ссылку на изображение"
		} else {
			item.ImageURL = &signedURL
		}
	}

	return item, nil
}

// CreateItem создает вещь со статусом open. Если приложен файл, сначала
// загружаем его в хранилище: при неудачной загрузке запись в БД не
// создается вообще.
func (s *itemService) CreateItem(ctx context.Context, req repository.CreateItemRequest, fileName string, file io.Reader, size int64) (*models.Item, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты: %w", err)
	}

	var imageURL *string
	if file != nil {
		objectName, err := s.storage.UploadImage(ctx, req.UserID, fileName, file, size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
		imageURL = &objectName
	}

	item := &models.Item{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		Location:    req.Location,
		ImageURL:    imageURL,
		Status:      "open",
		UserID:      req.UserID,
	}

	err = s.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *itemService) UpdateStatus(ctx context.Context, itemID, userID, status string) error {
	return s.itemRepo.UpdateStatus(ctx, itemID, userID, status)
}

// DeleteItem - простое удаление записи владельцем без зачистки зависимостей
func (s *itemService) DeleteItem(ctx context.Context, itemID, userID string) error {
	return s.itemRepo.Delete(ctx, itemID, userID)
}

// DeleteItemCascade удаляет вещь со всем, что на нее ссылается:
// сообщения -> уведомления -> файл в хранилище -> запись вещи.
// Неудавшийся шаг прерывает остальные, уже выполненные не откатываются.
func (s *itemService) DeleteItemCascade(ctx context.Context, itemID, userID string) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if item.UserID != userID {
		return fmt.Errorf("вещь не найдена или у вас нет прав на ее удаление")
	}

	if err := s.messageRepo.DeleteByItemID(ctx, itemID); err != nil {
		return err
	}

	if err := s.notifRepo.DeleteByItemID(ctx, itemID); err != nil {
		return err
	}

	if item.ImageURL != nil && *item.ImageURL != "" {
		if err := s.storage.DeleteImage(ctx, *item.ImageURL); err != nil {
			return err
		}
	}

	return s.itemRepo.Delete(ctx, itemID, userID)
}
