package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// StatsStorage описывает методы для получения сводных показателей админки.
type StatsStorage interface {
	// GetDashboardStats возвращает сводные показатели. Для пустой БД
	// возвращаются нулевые значения, ошибки не возникает.
	GetDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error)
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository создаёт новый репозиторий статистики.
func NewStatsRepository(db *sql.DB) StatsStorage {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error) {
	stats := &models.AdminDashboardStats{}
	query := fmt.Sprintf(`SELECT active_products, active_payment_methods, active_delivery_options,
		today_revenue, pending_orders FROM %s()`, procAdminDashboardStats)
	row := r.db.QueryRowContext(ctx, query)
	if err := row.Scan(
		&stats.ActiveProducts,
		&stats.ActivePaymentMethods,
		&stats.ActiveDeliveryOptions,
		&stats.TodayRevenue,
		&stats.PendingOrders,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.AdminDashboardStats{}, nil
		}
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}
	return stats, nil
}
