package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// DeliveryOptionStorage описывает методы для работы со способами доставки.
type DeliveryOptionStorage interface {
	// GetDeliveryOptions возвращает все способы доставки, включая неактивные.
	GetDeliveryOptions(ctx context.Context) ([]*models.DeliveryOption, error)
	// UpsertDeliveryOption создает или обновляет способ доставки.
	UpsertDeliveryOption(ctx context.Context, option *models.DeliveryOption) error
}

type deliveryOptionRepository struct {
	db *sql.DB
}

// NewDeliveryOptionRepository создаёт новый репозиторий способов доставки.
func NewDeliveryOptionRepository(db *sql.DB) DeliveryOptionStorage {
	return &deliveryOptionRepository{db: db}
}

func (r *deliveryOptionRepository) GetDeliveryOptions(ctx context.Context) ([]*models.DeliveryOption, error) {
	query := fmt.Sprintf("SELECT id, name, description, fee, estimated_days, is_active FROM %s()", procDeliveryOptionsGetAll)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery options: %w", err)
	}
	defer rows.Close()

	var options []*models.DeliveryOption
	for rows.Next() {
		option := &models.DeliveryOption{}
		if err := rows.Scan(
			&option.ID,
			&option.Name,
			&option.Description,
			&option.Fee,
			&option.EstimatedDays,
			&option.IsActive,
		); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *deliveryOptionRepository) UpsertDeliveryOption(ctx context.Context, option *models.DeliveryOption) error {
	query := fmt.Sprintf("SELECT %s($1, $2, $3, $4, $5, $6)", procDeliveryOptionUpsert)
	_, err := r.db.ExecContext(ctx, query,
		option.ID,
		option.Name,
		option.Description,
		option.Fee,
		option.EstimatedDays,
		option.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert delivery option: %w", err)
	}
	return nil
}
