package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linemk/perfume-store/internal/domain/models"
)

// HeroStorage описывает методы для работы с hero-контентом главной страницы.
type HeroStorage interface {
	// GetHeroContent возвращает текущий hero-контент. Если в БД его еще нет,
	// возвращается встроенный контент по умолчанию, ошибки не возникает.
	GetHeroContent(ctx context.Context) (*models.HeroContent, error)
	// UpsertHeroContent сохраняет hero-контент.
	UpsertHeroContent(ctx context.Context, hero *models.HeroContent) error
}

type heroRepository struct {
	db *sql.DB
}

// NewHeroRepository создаёт новый репозиторий hero-контента.
func NewHeroRepository(db *sql.DB) HeroStorage {
	return &heroRepository{db: db}
}

// defaultHeroContent — контент по умолчанию для пустой БД
func defaultHeroContent() *models.HeroContent {
	return &models.HeroContent{
		Title:              "Signature scents, delivered fast.",
		Subtitle:           "Craft bespoke fragrance rituals with curated capsule collections.",
		BackgroundImageURL: "/images/hero-default.jpg",
		PrimaryCTAText:     "Explore Catalog",
		PrimaryCTALink:     "/catalog",
		SecondaryCTAText:   "Book Consultation",
		SecondaryCTALink:   "/admin",
	}
}

func (r *heroRepository) GetHeroContent(ctx context.Context) (*models.HeroContent, error) {
	hero := &models.HeroContent{}
	query := fmt.Sprintf(`SELECT title, subtitle, background_image_url, primary_cta_text,
		primary_cta_link, secondary_cta_text, secondary_cta_link FROM %s()`, procHeroContentGet)
	row := r.db.QueryRowContext(ctx, query)
	if err := row.Scan(
		&hero.Title,
		&hero.Subtitle,
		&hero.BackgroundImageURL,
		&hero.PrimaryCTAText,
		&hero.PrimaryCTALink,
		&hero.SecondaryCTAText,
		&hero.SecondaryCTALink,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultHeroContent(), nil
		}
		return nil, fmt.Errorf("failed to query hero content: %w", err)
	}
	return hero, nil
}

func (r *heroRepository) UpsertHeroContent(ctx context.Context, hero *models.HeroContent) error {
	query := fmt.Sprintf("SELECT %s($1, $2, $3, $4, $5, $6, $7)", procHeroContentUpsert)
	_, err := r.db.ExecContext(ctx, query,
		hero.Title,
		hero.Subtitle,
		hero.BackgroundImageURL,
		hero.PrimaryCTAText,
		hero.PrimaryCTALink,
		hero.SecondaryCTAText,
		hero.SecondaryCTALink,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hero content: %w", err)
	}
	return nil
}
