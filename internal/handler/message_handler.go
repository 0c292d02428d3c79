package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"campusfind/internal/service"
)

type SendMessageRequest struct {
	Content     string `json:"content" validate:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
}

func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Текст сообщения не может быть пустым", http.StatusBadRequest)
		return
	}

	message, err := h.MessageService.SendMessage(r.Context(), itemID, senderID, req.Content, req.IsAnonymous)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfMessage):
			WriteError(w, "Нельзя отправить сообщение самому себе", http.StatusForbidden)
		case errors.Is(err, service.ErrEmptyMessage):
			WriteError(w, "Текст сообщения не может быть пустым", http.StatusBadRequest)
		case strings.Contains(err.Error(), "не найдена"):
			WriteError(w, "Вещь не найдена", http.StatusNotFound)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, message, http.StatusCreated)
}

// GetMessages - переписка по вещи, от старых сообщений к новым
func (h *Handlers) GetMessages(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]

	messages, err := h.MessageService.GetThread(r.Context(), itemID, viewerID)
	if err != nil {
		WriteError(w, "Ошибка при получении сообщений", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, messages, http.StatusOK)
}
