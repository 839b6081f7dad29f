package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// ProductStorage описывает методы для работы с каталогом товаров.
type ProductStorage interface {
	// GetAllProducts возвращает полный каталог товаров.
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	// GetFeaturedProducts возвращает товары, отмеченные как featured.
	GetFeaturedProducts(ctx context.Context) ([]*models.Product, error)
	// GetTrendingProducts возвращает товары, отмеченные как trending.
	GetTrendingProducts(ctx context.Context) ([]*models.Product, error)
	// UpsertProduct создает или обновляет товар.
	UpsertProduct(ctx context.Context, product *models.Product) error
}

// productRepository — конкретная реализация ProductStorage.
type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт новый репозиторий товаров.
func NewProductRepository(db *sql.DB) ProductStorage {
	return &productRepository{db: db}
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, procProductsGetAll)
}

func (r *productRepository) GetFeaturedProducts(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, procProductsGetFeatured)
}

func (r *productRepository) GetTrendingProducts(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, procProductsGetTrending)
}

// queryProducts вызывает функцию БД, возвращающую набор товаров.
// Все три функции каталога возвращают одинаковый набор колонок.
func (r *productRepository) queryProducts(ctx context.Context, proc string) ([]*models.Product, error) {
	query := fmt.Sprintf(`SELECT id, name, description, price, discount_price, image_url,
		is_featured, is_trending, category_id, category_name, stock_quantity FROM %s()`, proc)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", proc, err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.DiscountPrice,
			&product.ImageURL,
			&product.IsFeatured,
			&product.IsTrending,
			&product.CategoryID,
			&product.CategoryName,
			&product.StockQuantity,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpsertProduct(ctx context.Context, product *models.Product) error {
	query := fmt.Sprintf("SELECT %s($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)", procProductUpsert)
	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.DiscountPrice,
		product.ImageURL,
		product.IsFeatured,
		product.IsTrending,
		product.CategoryID,
		product.StockQuantity,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}
