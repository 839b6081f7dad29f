package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// OrderStorage описывает методы для создания заказов.
type OrderStorage interface {
	// CreateOrder атомарно создает заказ вместе со всеми позициями: функция БД
	// записывает заголовок и позиции в одной транзакции и возвращает сгенерированный
	// номер заказа либо NULL, если заказ создать не удалось (например,
	// нарушение ограничения). Ошибка возвращается только при сбое самого вызова.
	CreateOrder(ctx context.Context, payload *models.CheckoutPayload) (bool, string, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт новый репозиторий заказов.
func NewOrderRepository(db *sql.DB) OrderStorage {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, payload *models.CheckoutPayload) (bool, string, error) {
	// Позиции передаются одним jsonb-параметром, чтобы заголовок и позиции
	// записывались одним вызовом функции
	items, err := json.Marshal(payload.Items)
	if err != nil {
		return false, "", fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := fmt.Sprintf("SELECT %s($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)", procOrderCreate)
	var orderNumber sql.NullString
	err = r.db.QueryRowContext(ctx, query,
		payload.CustomerName,
		payload.CustomerEmail,
		payload.ShippingAddress,
		payload.PaymentMethodID,
		payload.DeliveryOptionID,
		payload.Subtotal,
		payload.DeliveryFee,
		payload.ProcessingFee,
		payload.Total,
		items,
	).Scan(&orderNumber)
	if err != nil {
		return false, "", fmt.Errorf("failed to create order: %w", err)
	}

	// Пустой номер означает, что функция не создала заказ
	if !orderNumber.Valid || orderNumber.String == "" {
		return false, "", nil
	}
	return true, orderNumber.String, nil
}
