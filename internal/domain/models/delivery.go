package models

import "github.com/shopspring/decimal"

// DeliveryOption представляет способ доставки с фиксированной стоимостью.
// Покупателю доступны только активные способы.
type DeliveryOption struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Fee           decimal.Decimal `json:"fee"`
	EstimatedDays int             `json:"estimatedDays"`
	IsActive      bool            `json:"isActive"`
}
