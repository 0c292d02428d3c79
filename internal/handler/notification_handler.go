package handlers

import (
	"net/http"

	"campusfind/internal/models"
)

type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
}

// GetNotifications - уведомления пользователя от новых к старым.
// Просмотр списка помечает все непрочитанные прочитанными.
func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	notifications, err := h.NotificationService.ListNotifications(r.Context(), userID)
	if err != nil {
		WriteError(w, "Ошибка при получении уведомлений", http.StatusInternalServerError)
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	WriteSuccess(w, NotificationsResponse{Notifications: notifications}, http.StatusOK)
}
