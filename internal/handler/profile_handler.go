package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"campusfind/internal/models"
)

// GetMyItems - вещи текущего пользователя, сначала новые
func (h *Handlers) GetMyItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	items, err := h.ItemRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		WriteError(w, "Ошибка при получении вещей", http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	WriteSuccess(w, ItemsGetResponse{Items: items}, http.StatusOK)
}

// DeleteMyItem - удаление вещи из профиля со всеми зависимостями:
// сообщения, уведомления, файл в хранилище и только потом сама запись
func (h *Handlers) DeleteMyItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]

	if err := h.ItemService.DeleteItemCascade(r.Context(), itemID, userID); err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Вещь не найдена или у вас нет прав на ее удаление", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Вещь успешно удалена"}, http.StatusOK)
}
