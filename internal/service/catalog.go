package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/linemk/perfume-store/internal/domain/models"
	"github.com/linemk/perfume-store/internal/storage"
	"github.com/shopspring/decimal"
)

// ProductCard — карточка товара для страниц каталога, главной и оформления
type ProductCard struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	ImageURL      string              `json:"imageUrl"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discountPrice"`
	IsNewArrival  bool                `json:"isNewArrival"`
}

func toProductCard(product *models.Product) ProductCard {
	return ProductCard{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Category:      product.CategoryName,
		ImageURL:      product.ImageURL,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		IsNewArrival:  product.IsFeatured,
	}
}

// CatalogView — результат поиска по каталогу
type CatalogView struct {
	Products   []ProductCard `json:"products"`
	Categories []string      `json:"categories"`
}

// CatalogService определяет интерфейс поиска по каталогу.
type CatalogService interface {
	Search(ctx context.Context, category, query string) (*CatalogView, error)
}

type catalogService struct {
	log         *slog.Logger
	productRepo storage.ProductStorage
}

func NewCatalogService(log *slog.Logger, productRepo storage.ProductStorage) CatalogService {
	return &catalogService{log: log, productRepo: productRepo}
}

// Search фильтрует каталог по категории и подстроке в названии или описании.
// Категория "all" (или пустая) означает отсутствие фильтра. Сравнения
// регистронезависимые. Список категорий собирается по всему каталогу.
func (s *catalogService) Search(ctx context.Context, category, query string) (*CatalogView, error) {
	const op = "service.CatalogService.Search"

	allProducts, err := s.productRepo.GetAllProducts(ctx)
	if err != nil {
		s.log.Error("failed to load products", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filterByCategory := strings.TrimSpace(category) != "" && !strings.EqualFold(category, "all")
	queryLower := strings.ToLower(strings.TrimSpace(query))

	products := make([]ProductCard, 0, len(allProducts))
	for _, product := range allProducts {
		if filterByCategory && !strings.EqualFold(product.CategoryName, category) {
			continue
		}
		if queryLower != "" &&
			!strings.Contains(strings.ToLower(product.Name), queryLower) &&
			!strings.Contains(strings.ToLower(product.Description), queryLower) {
			continue
		}
		products = append(products, toProductCard(product))
	}

	// Список категорий без дублей (без учета регистра), отсортирован по имени
	seen := make(map[string]struct{}, len(allProducts))
	categories := make([]string, 0, len(allProducts))
	for _, product := range allProducts {
		key := strings.ToLower(product.CategoryName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, product.CategoryName)
	}
	sort.Strings(categories)

	return &CatalogView{Products: products, Categories: categories}, nil
}
