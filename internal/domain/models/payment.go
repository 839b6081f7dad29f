package models

import "github.com/shopspring/decimal"

// PaymentMethod представляет способ оплаты с фиксированной комиссией.
// Покупателю доступны только активные способы.
type PaymentMethod struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Provider             string          `json:"provider"`
	ProcessingFee        decimal.Decimal `json:"processingFee"`
	SupportsInstallments bool            `json:"supportsInstallments"`
	IsActive             bool            `json:"isActive"`
}
