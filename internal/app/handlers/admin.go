package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/perfume-store/internal/domain/models"
	"github.com/linemk/perfume-store/internal/lib/upload"
	"github.com/linemk/perfume-store/internal/service"
	"github.com/shopspring/decimal"
)

// maxHeroImageSize ограничивает размер multipart-формы hero-блока
const maxHeroImageSize = 10 << 20

// AdminMessageResponse — структура ответа админских операций сохранения
type AdminMessageResponse struct {
	Message string `json:"message"`
}

// ProductInput представляет структуру запроса сохранения товара
type ProductInput struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name" validate:"required,max=120"`
	Description   string              `json:"description" validate:"required"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discountPrice"`
	ImageURL      string              `json:"imageUrl"`
	IsFeatured    bool                `json:"isFeatured"`
	IsTrending    bool                `json:"isTrending"`
	CategoryID    int64               `json:"categoryId" validate:"required"`
	StockQuantity int                 `json:"stockQuantity" validate:"min=0"`
}

// PaymentMethodInput представляет структуру запроса сохранения способа оплаты
type PaymentMethodInput struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name" validate:"required,max=80"`
	Provider             string          `json:"provider" validate:"required,max=80"`
	ProcessingFee        decimal.Decimal `json:"processingFee"`
	SupportsInstallments bool            `json:"supportsInstallments"`
	IsActive             bool            `json:"isActive"`
}

// DeliveryOptionInput представляет структуру запроса сохранения способа доставки
type DeliveryOptionInput struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name" validate:"required,max=80"`
	Description   string          `json:"description" validate:"required,max=200"`
	Fee           decimal.Decimal `json:"fee"`
	EstimatedDays int             `json:"estimatedDays" validate:"required,min=1,max=60"`
	IsActive      bool            `json:"isActive"`
}

// DashboardHandler обрабатывает запрос GET /admin
func DashboardHandler(log *slog.Logger, adminService service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DashboardHandler"
		logger := log.With(slog.String("op", op))

		view, err := adminService.BuildDashboard(r.Context())
		if err != nil {
			logger.Error("failed to build dashboard", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, view)
	}
}

// SaveHeroHandler обрабатывает запрос POST /admin/hero (multipart-форма).
// Если приложен файл backgroundImage, он сохраняется на диск под уникальным
// именем, и в БД уходит его публичный URL вместо присланного в поле формы.
func SaveHeroHandler(log *slog.Logger, adminService service.AdminService, heroUploadDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SaveHeroHandler"
		logger := log.With(slog.String("op", op))

		if err := r.ParseMultipartForm(maxHeroImageSize); err != nil {
			logger.Error("invalid request: multipart parsing error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		hero := &models.HeroContent{
			Title:              r.FormValue("title"),
			Subtitle:           r.FormValue("subtitle"),
			BackgroundImageURL: r.FormValue("backgroundImageUrl"),
			PrimaryCTAText:     r.FormValue("primaryCtaText"),
			PrimaryCTALink:     r.FormValue("primaryCtaLink"),
			SecondaryCTAText:   r.FormValue("secondaryCtaText"),
			SecondaryCTALink:   r.FormValue("secondaryCtaLink"),
		}
		if hero.Title == "" || hero.Subtitle == "" {
			logger.Error("invalid request: title and subtitle are required")
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("backgroundImage")
		if err == nil {
			defer file.Close()
			imageURL, saveErr := upload.SaveHeroImage(heroUploadDir, header.Filename, file)
			if saveErr != nil {
				logger.Error("failed to save hero image", slog.Any("error", saveErr))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			hero.BackgroundImageURL = imageURL
		} else if err != http.ErrMissingFile {
			logger.Error("invalid request: file error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := adminService.SaveHero(r.Context(), hero); err != nil {
			logger.Error("failed to save hero content", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, AdminMessageResponse{Message: "Hero section updated."})
	}
}

// SaveProductHandler обрабатывает запрос POST /admin/products
func SaveProductHandler(log *slog.Logger, adminService service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SaveProductHandler"
		logger := log.With(slog.String("op", op))

		var input ProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		product := &models.Product{
			ID:            input.ID,
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			DiscountPrice: input.DiscountPrice,
			ImageURL:      input.ImageURL,
			IsFeatured:    input.IsFeatured,
			IsTrending:    input.IsTrending,
			CategoryID:    input.CategoryID,
			StockQuantity: input.StockQuantity,
		}
		if err := adminService.SaveProduct(r.Context(), product); err != nil {
			logger.Error("failed to save product", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, AdminMessageResponse{Message: "Product saved."})
	}
}

// SavePaymentMethodHandler обрабатывает запрос POST /admin/payments
func SavePaymentMethodHandler(log *slog.Logger, adminService service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SavePaymentMethodHandler"
		logger := log.With(slog.String("op", op))

		var input PaymentMethodInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		method := &models.PaymentMethod{
			ID:                   input.ID,
			Name:                 input.Name,
			Provider:             input.Provider,
			ProcessingFee:        input.ProcessingFee,
			SupportsInstallments: input.SupportsInstallments,
			IsActive:             input.IsActive,
		}
		if err := adminService.SavePaymentMethod(r.Context(), method); err != nil {
			logger.Error("failed to save payment method", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, AdminMessageResponse{Message: "Payment method saved."})
	}
}

// SaveDeliveryOptionHandler обрабатывает запрос POST /admin/delivery
func SaveDeliveryOptionHandler(log *slog.Logger, adminService service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SaveDeliveryOptionHandler"
		logger := log.With(slog.String("op", op))

		var input DeliveryOptionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		option := &models.DeliveryOption{
			ID:            input.ID,
			Name:          input.Name,
			Description:   input.Description,
			Fee:           input.Fee,
			EstimatedDays: input.EstimatedDays,
			IsActive:      input.IsActive,
		}
		if err := adminService.SaveDeliveryOption(r.Context(), option); err != nil {
			logger.Error("failed to save delivery option", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, AdminMessageResponse{Message: "Delivery option saved."})
	}
}
