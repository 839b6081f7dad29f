package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// CategoryStorage описывает методы для работы с категориями.
type CategoryStorage interface {
	GetCategories(ctx context.Context) ([]*models.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository создаёт новый репозиторий категорий.
func NewCategoryRepository(db *sql.DB) CategoryStorage {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*models.Category, error) {
	query := fmt.Sprintf("SELECT id, name, description, is_active FROM %s()", procCategoriesGetAll)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
