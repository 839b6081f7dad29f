package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// PaymentMethodStorage описывает методы для работы со способами оплаты.
type PaymentMethodStorage interface {
	// GetPaymentMethods возвращает все способы оплаты, включая неактивные.
	GetPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error)
	// UpsertPaymentMethod создает или обновляет способ оплаты.
	UpsertPaymentMethod(ctx context.Context, method *models.PaymentMethod) error
}

type paymentMethodRepository struct {
	db *sql.DB
}

// NewPaymentMethodRepository создаёт новый репозиторий способов оплаты.
func NewPaymentMethodRepository(db *sql.DB) PaymentMethodStorage {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) GetPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	query := fmt.Sprintf("SELECT id, name, provider, processing_fee, supports_installments, is_active FROM %s()", procPaymentMethodsGetAll)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*models.PaymentMethod
	for rows.Next() {
		method := &models.PaymentMethod{}
		if err := rows.Scan(
			&method.ID,
			&method.Name,
			&method.Provider,
			&method.ProcessingFee,
			&method.SupportsInstallments,
			&method.IsActive,
		); err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *paymentMethodRepository) UpsertPaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	query := fmt.Sprintf("SELECT %s($1, $2, $3, $4, $5, $6)", procPaymentMethodUpsert)
	_, err := r.db.ExecContext(ctx, query,
		method.ID,
		method.Name,
		method.Provider,
		method.ProcessingFee,
		method.SupportsInstallments,
		method.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert payment method: %w", err)
	}
	return nil
}
