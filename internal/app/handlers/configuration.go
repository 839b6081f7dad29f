package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/perfume-store/internal/storage"
)

// PaymentMethodsAPIHandler обрабатывает запрос GET /api/configuration/payment-methods
func PaymentMethodsAPIHandler(log *slog.Logger, paymentRepo storage.PaymentMethodStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.PaymentMethodsAPIHandler"
		logger := log.With(slog.String("op", op))

		methods, err := paymentRepo.GetPaymentMethods(r.Context())
		if err != nil {
			logger.Error("failed to get payment methods", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, methods)
	}
}

// DeliveryOptionsAPIHandler обрабатывает запрос GET /api/configuration/delivery-options
func DeliveryOptionsAPIHandler(log *slog.Logger, deliveryRepo storage.DeliveryOptionStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeliveryOptionsAPIHandler"
		logger := log.With(slog.String("op", op))

		options, err := deliveryRepo.GetDeliveryOptions(r.Context())
		if err != nil {
			logger.Error("failed to get delivery options", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, options)
	}
}
