package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem — позиция заказа. Цена за единицу всегда вычисляется на сервере
// в момент оформления и никогда не берется из клиентского ввода.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CheckoutPayload — авторитетные данные заказа для записи в БД,
// все суммы пересчитаны на сервере по текущему каталогу
type CheckoutPayload struct {
	CustomerName     string
	CustomerEmail    string
	ShippingAddress  string
	PaymentMethodID  int64
	DeliveryOptionID int64
	Subtotal         decimal.Decimal
	DeliveryFee      decimal.Decimal
	ProcessingFee    decimal.Decimal
	Total            decimal.Decimal
	Items            []OrderItem
}

// Order представляет сохраненный заказ. Номер заказа генерируется на стороне БД
// при создании; после создания заказ приложением не изменяется.
type Order struct {
	ID               int64           `json:"id"`
	OrderNumber      string          `json:"order_number"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	ShippingAddress  string          `json:"shipping_address"`
	PaymentMethodID  int64           `json:"payment_method_id"`
	DeliveryOptionID int64           `json:"delivery_option_id"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee"`
	ProcessingFee    decimal.Decimal `json:"processing_fee"`
	Total            decimal.Decimal `json:"total"`
	Items            []OrderItem     `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
}
