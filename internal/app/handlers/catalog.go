package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/perfume-store/internal/service"
)

// CatalogHandler обрабатывает запрос GET /catalog?category=...&q=...
func CatalogHandler(log *slog.Logger, catalogService service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CatalogHandler"
		logger := log.With(slog.String("op", op))

		category := r.URL.Query().Get("category")
		query := r.URL.Query().Get("q")

		view, err := catalogService.Search(r.Context(), category, query)
		if err != nil {
			logger.Error("failed to search catalog", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, view)
	}
}

// ProductsAPIHandler обрабатывает запрос GET /api/products?category=...&q=...
// Отдает только список товаров, без списка категорий.
func ProductsAPIHandler(log *slog.Logger, catalogService service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ProductsAPIHandler"
		logger := log.With(slog.String("op", op))

		view, err := catalogService.Search(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("q"))
		if err != nil {
			logger.Error("failed to search catalog", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, view.Products)
	}
}
