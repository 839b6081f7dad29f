package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/perfume-store/internal/domain/models"
	"github.com/linemk/perfume-store/internal/storage"
)

// defaultHighlights — статичные преимущества магазина для главной страницы
var defaultHighlights = []string{
	"Carbon-neutral fulfillment within 48h in most metros.",
	"Complimentary gift wrapping and handwritten note.",
	"All fragrances vegan, cruelty free, IFRA certified.",
}

// HeroSectionView — hero-блок главной страницы
type HeroSectionView struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
	PrimaryCTAText     string `json:"primaryCtaText"`
	PrimaryCTALink     string `json:"primaryCtaLink"`
	SecondaryCTAText   string `json:"secondaryCtaText"`
	SecondaryCTALink   string `json:"secondaryCtaLink"`
}

// DeliveryBadge — бейдж доставки на главной странице
type DeliveryBadge struct {
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Icon    string `json:"icon"`
}

// LandingPageView — полная модель главной страницы
type LandingPageView struct {
	Hero               HeroSectionView `json:"hero"`
	Featured           []ProductCard   `json:"featured"`
	Trending           []ProductCard   `json:"trending"`
	CustomerHighlights []string        `json:"customerHighlights"`
	FulfillmentBadges  []DeliveryBadge `json:"fulfillmentBadges"`
}

// LandingService определяет интерфейс сборки главной страницы.
type LandingService interface {
	BuildLandingPage(ctx context.Context) (*LandingPageView, error)
}

type landingService struct {
	log          *slog.Logger
	productRepo  storage.ProductStorage
	heroRepo     storage.HeroStorage
	deliveryRepo storage.DeliveryOptionStorage
}

func NewLandingService(
	log *slog.Logger,
	productRepo storage.ProductStorage,
	heroRepo storage.HeroStorage,
	deliveryRepo storage.DeliveryOptionStorage,
) LandingService {
	return &landingService{
		log:          log,
		productRepo:  productRepo,
		heroRepo:     heroRepo,
		deliveryRepo: deliveryRepo,
	}
}

// BuildLandingPage собирает модель главной страницы: hero-контент,
// featured- и trending-подборки и бейджи активных способов доставки.
func (s *landingService) BuildLandingPage(ctx context.Context) (*LandingPageView, error) {
	const op = "service.LandingService.BuildLandingPage"

	hero, err := s.heroRepo.GetHeroContent(ctx)
	if err != nil {
		s.log.Error("failed to load hero content", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	featured, err := s.productRepo.GetFeaturedProducts(ctx)
	if err != nil {
		s.log.Error("failed to load featured products", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	trending, err := s.productRepo.GetTrendingProducts(ctx)
	if err != nil {
		s.log.Error("failed to load trending products", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	deliveryOptions, err := s.deliveryRepo.GetDeliveryOptions(ctx)
	if err != nil {
		s.log.Error("failed to load delivery options", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	badges := make([]DeliveryBadge, 0, len(deliveryOptions))
	for _, option := range deliveryOptions {
		if !option.IsActive {
			continue
		}
		icon := "bi-truck"
		if option.EstimatedDays <= 2 {
			icon = "bi-lightning-charge"
		}
		badges = append(badges, DeliveryBadge{
			Title:   option.Name,
			Caption: fmt.Sprintf("%s · %d day(s)", option.Description, option.EstimatedDays),
			Icon:    icon,
		})
	}

	return &LandingPageView{
		Hero: HeroSectionView{
			Title:              hero.Title,
			Subtitle:           hero.Subtitle,
			BackgroundImageURL: hero.BackgroundImageURL,
			PrimaryCTAText:     hero.PrimaryCTAText,
			PrimaryCTALink:     hero.PrimaryCTALink,
			SecondaryCTAText:   hero.SecondaryCTAText,
			SecondaryCTALink:   hero.SecondaryCTALink,
		},
		Featured:           toLandingCards(featured),
		Trending:           toLandingCards(trending),
		CustomerHighlights: defaultHighlights,
		FulfillmentBadges:  badges,
	}, nil
}

// toLandingCards помечает карточку как новинку, только если товар
// одновременно featured и trending
func toLandingCards(products []*models.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, product := range products {
		card := toProductCard(product)
		card.IsNewArrival = product.IsFeatured && product.IsTrending
		cards = append(cards, card)
	}
	return cards
}
