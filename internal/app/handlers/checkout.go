package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/perfume-store/internal/service"
)

var validate = validator.New()

// CheckoutLineRequest — строка корзины в запросе оформления
type CheckoutLineRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1,max=99"`
}

// PlaceOrderRequest представляет структуру запроса оформления заказа с тегами валидации
type PlaceOrderRequest struct {
	CustomerName     string                `json:"customerName" validate:"required,max=80"`
	CustomerEmail    string                `json:"customerEmail" validate:"required,email"`
	ShippingAddress  string                `json:"shippingAddress" validate:"required,max=260"`
	PaymentMethodID  int64                 `json:"paymentMethodId" validate:"required"`
	DeliveryOptionID int64                 `json:"deliveryOptionId" validate:"required"`
	Items            []CheckoutLineRequest `json:"items" validate:"dive"`
}

// CheckoutPageHandler обрабатывает запрос GET /checkout
func CheckoutPageHandler(log *slog.Logger, checkoutService service.CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CheckoutPageHandler"
		logger := log.With(slog.String("op", op))

		view, err := checkoutService.BuildCheckout(r.Context())
		if err != nil {
			logger.Error("failed to build checkout page", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, view)
	}
}

// PlaceOrderHandler обрабатывает запрос POST /checkout/place-order.
// Отказ в оформлении (недоступный способ оплаты, пустая корзина, отказ БД)
// возвращается со статусом 200 и isSuccess=false: это результат для
// отображения покупателю, а не транспортная ошибка.
func PlaceOrderHandler(log *slog.Logger, checkoutService service.CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.PlaceOrderHandler"
		logger := log.With(slog.String("op", op))

		var req PlaceOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// Валидация структуры запроса с использованием validator
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		items := make([]service.CheckoutLine, 0, len(req.Items))
		for _, line := range req.Items {
			items = append(items, service.CheckoutLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}

		result, err := checkoutService.PlaceOrder(r.Context(), &service.CheckoutRequest{
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			ShippingAddress:  req.ShippingAddress,
			PaymentMethodID:  req.PaymentMethodID,
			DeliveryOptionID: req.DeliveryOptionID,
			Items:            items,
		})
		if err != nil {
			logger.Error("failed to place order", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, result)
	}
}

// writeJSON сериализует ответ; при ошибке кодирования возвращает 500
func writeJSON(w http.ResponseWriter, logger *slog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
