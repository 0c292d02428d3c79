package service

import (
	"context"
	"errors"
	"strings"

	"campusfind/internal/models"
	"campusfind/internal/repository"
)

// ErrSelfMessage возвращается при попытке написать самому себе,
// до какого-либо обращения к БД
var ErrSelfMessage = errors.New("нельзя отправить сообщение самому себе")

// ErrEmptyMessage возвращается при пустом тексте сообщения
var ErrEmptyMessage = errors.New("текст сообщения не может быть пустым")

type MessageService interface {
	SendMessage(ctx context.Context, itemID, senderID, content string, isAnonymous bool) (*models.Message, error)
	GetThread(ctx context.Context, itemID, viewerID string) ([]models.MessageWithSender, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	itemRepo    repository.ItemRepository
}

func NewMessageService(messageRepo repository.MessageRepository, itemRepo repository.ItemRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		itemRepo:    itemRepo,
	}
}

// SendMessage создает сообщение о вещи. Получатель - владелец вещи,
// владельцу писать самому себе нельзя.
func (s *messageService) SendMessage(ctx context.Context, itemID, senderID, content string, isAnonymous bool) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.UserID == senderID {
		return nil, ErrSelfMessage
	}

	message := &models.Message{
		SenderID:    senderID,
		ReceiverID:  item.UserID,
		ItemID:      itemID,
		Content:     content,
		IsAnonymous: isAnonymous,
	}

	err = s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	return message, nil
}

// GetThread возвращает переписку по вещи от старых к новым. Имя отправителя
// анонимного сообщения скрывается для всех, кроме самого отправителя -
// в БД отправитель при этом сохранен.
func (s *messageService) GetThread(ctx context.Context, itemID, viewerID string) ([]models.MessageWithSender, error) {
	messages, err := s.messageRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	for i := range messages {
		if messages[i].IsAnonymous && messages[i].SenderID != viewerID {
			messages[i].SenderName = "Anonymous"
		}
	}

	return messages, nil
}
