package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campusfind/internal/models"
)

type itemRepository struct {
	db *sqlx.DB
}

type CreateItemRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	UserID      string `json:"userId"`
}

func NewItemRepository(db *sqlx.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `
		INSERT INTO items (item_id, type, name, description, category, date, location, image_url, status, user_id, created_at, updated_at)
		VALUES (:item_id, :type, :name, :description, :category, :date, :location, :image_url, :status, :user_id, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("ошибка при создании вещи: %w", err)
	}

	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, itemID string) (*models.Item, error) {
	query := `SELECT * FROM items WHERE item_id = $1`

	var item models.Item
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("вещь с ID %s не найдена", itemID)
		}
		return nil, fmt.Errorf("ошибка при получении вещи: %w", err)
	}

	return &item, nil
}

func (r *itemRepository) GetByIDWithOwner(ctx context.Context, itemID string) (*models.ItemWithOwner, error) {
	query := `
		SELECT i.*, u.full_name AS owner_name, u.email AS owner_email
		FROM items i
		JOIN users u ON u.user_id = i.user_id
		WHERE i.item_id = $1
	`

	var item models.ItemWithOwner
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("вещь с ID %s не найдена", itemID)
		}
		return nil, fmt.Errorf("ошибка при получении вещи: %w", err)
	}

	return &item, nil
}

// GetByFilter возвращает вещи по точным фильтрам, сначала самые новые.
// Пустое поле фильтра пропускается. Текстовый поиск сюда не входит,
// он выполняется уже после выборки на уровне сервиса.
// Открытые вещи сортируются по дате создания, а закрытые (returned,
// archived) - по дате последнего изменения: там важен момент возврата
// или архивации, а не когда вещь завели.
func (r *itemRepository) GetByFilter(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	query := `SELECT * FROM items WHERE status = $1`
	args := []interface{}{filter.Status}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if filter.Status == "returned" || filter.Status == "archived" {
		query += " ORDER BY updated_at DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка вещей: %w", err)
	}

	return items, nil
}

func (r *itemRepository) GetByUserID(ctx context.Context, userID string) ([]models.Item, error) {
	query := `SELECT * FROM items WHERE user_id = $1 ORDER BY created_at DESC`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении вещей пользователя: %w", err)
	}

	return items, nil
}

func (r *itemRepository) UpdateStatus(ctx context.Context, itemID, userID, status string) error {
	query := `
		UPDATE items SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE item_id = $2 AND user_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, itemID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса вещи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("вещь не найдена или у вас нет прав на ее изменение")
	}

	return nil
}

// Delete удаляет вещь строго по паре item_id + user_id,
// чужую вещь удалить нельзя даже по валидному ID.
func (r *itemRepository) Delete(ctx context.Context, itemID, userID string) error {
	query := `DELETE FROM items WHERE item_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, itemID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении вещи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("вещь не найдена или у вас нет прав на ее удаление")
	}

	return nil
}
