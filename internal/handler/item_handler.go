package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"campusfind/internal/models"
	"campusfind/internal/repository"
)

type ItemsGetResponse struct {
	Items []models.Item `json:"items"`
}

type ItemDetailResponse struct {
	Item     *models.ItemWithOwner      `json:"item"`
	Messages []models.MessageWithSender `json:"messages,omitempty"`
}

// GetItems - список вещей с фильтрами и поиском.
// Строка поиска приходит query-параметром, чтобы переживала навигацию.
func (h *Handlers) GetItems(w http.ResponseWriter, r *http.Request) {
	filter := repository.ItemFilter{
		Status:   r.URL.Query().Get("status"),
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
	}
	search := r.URL.Query().Get("search")

	if filter.Status != "" && !slices.Contains(models.ItemStatuses, filter.Status) {
		WriteError(w, "Неверное значение статуса", http.StatusBadRequest)
		return
	}

	items, err := h.ItemService.ListItems(r.Context(), filter, search)
	if err != nil {
		log.Printf("Ошибка при получении списка вещей: %v", err)
		WriteError(w, "Ошибка при получении списка вещей", http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	WriteSuccess(w, ItemsGetResponse{Items: items}, http.StatusOK)
}

// GetItem - страница вещи: карточка с владельцем и, для вошедшего
// пользователя, переписка по этой вещи
func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	item, err := h.ItemService.GetItem(r.Context(), itemID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Вещь не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	response := ItemDetailResponse{Item: item}

	// переписку видит только вошедший пользователь
	viewerID, ok := r.Context().Value("userID").(string)
	if ok && viewerID != "" {
		messages, err := h.MessageService.GetThread(r.Context(), itemID, viewerID)
		if err != nil {
			WriteError(w, "Ошибка при получении сообщений", http.StatusInternalServerError)
			return
		}
		response.Messages = messages
	}

	WriteSuccess(w, response, http.StatusOK)
}

// allowed image formats
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		}
		return
	}

	req := repository.CreateItemRequest{
		Type:        r.FormValue("type"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		UserID:      userID,
	}

	// все поля формы обязательные
	if req.Type != "lost" && req.Type != "found" {
		WriteError(w, "Тип должен быть lost или found", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Description == "" || req.Date == "" || req.Location == "" {
		WriteError(w, "Заполнены не все обязательные поля", http.StatusBadRequest)
		return
	}
	if !slices.Contains(models.Categories, req.Category) {
		WriteError(w, "Неверная категория", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		WriteError(w, "Неверный формат даты, ожидается YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// картинка опциональная
	var (
		imageFile io.Reader
		fileName  string
		fileSize  int64
	)
	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		contentType := fileHeader.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
			return
		}

		imageFile = file
		fileName = fileHeader.Filename
		fileSize = fileHeader.Size
	} else if err != http.ErrMissingFile {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.CreateItem(r.Context(), req, fileName, imageFile, fileSize)
	if err != nil {
		if strings.Contains(err.Error(), "ошибка загрузки изображения") {
			WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status" validate:"required,oneof=open in_progress returned archived"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверное значение статуса", http.StatusBadRequest)
		return
	}

	if err := h.ItemService.UpdateStatus(r.Context(), itemID, userID, req.Status); err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Вещь не найдена или у вас нет прав на ее изменение", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Статус вещи обновлен"}, http.StatusOK)
}

// DeleteItem - удаление вещи владельцем со страницы детали
func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]

	if err := h.ItemService.DeleteItem(r.Context(), itemID, userID); err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Вещь не найдена или у вас нет прав на ее удаление", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Вещь успешно удалена"}, http.StatusOK)
}
