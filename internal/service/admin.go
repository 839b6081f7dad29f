package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/perfume-store/internal/domain/models"
	"github.com/linemk/perfume-store/internal/storage"
	"golang.org/x/sync/errgroup"
)

// AdminDashboardView — полная модель дашборда админки
type AdminDashboardView struct {
	Stats           *models.AdminDashboardStats `json:"stats"`
	Products        []*models.Product           `json:"products"`
	Categories      []*models.Category          `json:"categories"`
	PaymentMethods  []*models.PaymentMethod     `json:"paymentMethods"`
	DeliveryOptions []*models.DeliveryOption    `json:"deliveryOptions"`
	Hero            *models.HeroContent         `json:"hero"`
}

// AdminService определяет операции админки: сборку дашборда и сохранение
// товаров, способов оплаты и доставки и hero-контента.
type AdminService interface {
	BuildDashboard(ctx context.Context) (*AdminDashboardView, error)
	SaveHero(ctx context.Context, hero *models.HeroContent) error
	SaveProduct(ctx context.Context, product *models.Product) error
	SavePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	SaveDeliveryOption(ctx context.Context, option *models.DeliveryOption) error
}

type adminService struct {
	log          *slog.Logger
	statsRepo    storage.StatsStorage
	productRepo  storage.ProductStorage
	categoryRepo storage.CategoryStorage
	paymentRepo  storage.PaymentMethodStorage
	deliveryRepo storage.DeliveryOptionStorage
	heroRepo     storage.HeroStorage
}

func NewAdminService(
	log *slog.Logger,
	statsRepo storage.StatsStorage,
	productRepo storage.ProductStorage,
	categoryRepo storage.CategoryStorage,
	paymentRepo storage.PaymentMethodStorage,
	deliveryRepo storage.DeliveryOptionStorage,
	heroRepo storage.HeroStorage,
) AdminService {
	return &adminService{
		log:          log,
		statsRepo:    statsRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		paymentRepo:  paymentRepo,
		deliveryRepo: deliveryRepo,
		heroRepo:     heroRepo,
	}
}

// BuildDashboard собирает дашборд из шести независимых чтений,
// выполняемых параллельно.
func (s *adminService) BuildDashboard(ctx context.Context) (*AdminDashboardView, error) {
	const op = "service.AdminService.BuildDashboard"

	view := &AdminDashboardView{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Stats, err = s.statsRepo.GetDashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		view.Products, err = s.productRepo.GetAllProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		view.Categories, err = s.categoryRepo.GetCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		view.PaymentMethods, err = s.paymentRepo.GetPaymentMethods(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		view.DeliveryOptions, err = s.deliveryRepo.GetDeliveryOptions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		view.Hero, err = s.heroRepo.GetHeroContent(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to build dashboard", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return view, nil
}

func (s *adminService) SaveHero(ctx context.Context, hero *models.HeroContent) error {
	const op = "service.AdminService.SaveHero"
	if err := s.heroRepo.UpsertHeroContent(ctx, hero); err != nil {
		s.log.Error("failed to save hero content", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("hero content saved", slog.String("op", op))
	return nil
}

// SaveProduct сохраняет товар, предварительно разрешая денормализованное имя
// категории по её идентификатору. Неизвестная категория не считается ошибкой,
// товар попадает в "Uncategorized".
func (s *adminService) SaveProduct(ctx context.Context, product *models.Product) error {
	const op = "service.AdminService.SaveProduct"
	logger := s.log.With(slog.String("op", op), slog.Int64("productID", product.ID))

	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		logger.Error("failed to load categories", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	product.CategoryName = "Uncategorized"
	for _, category := range categories {
		if category.ID == product.CategoryID {
			product.CategoryName = category.Name
			break
		}
	}

	if err := s.productRepo.UpsertProduct(ctx, product); err != nil {
		logger.Error("failed to save product", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("product saved")
	return nil
}

func (s *adminService) SavePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	const op = "service.AdminService.SavePaymentMethod"
	if err := s.paymentRepo.UpsertPaymentMethod(ctx, method); err != nil {
		s.log.Error("failed to save payment method", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("payment method saved", slog.String("op", op), slog.Int64("id", method.ID))
	return nil
}

func (s *adminService) SaveDeliveryOption(ctx context.Context, option *models.DeliveryOption) error {
	const op = "service.AdminService.SaveDeliveryOption"
	if err := s.deliveryRepo.UpsertDeliveryOption(ctx, option); err != nil {
		s.log.Error("failed to save delivery option", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("delivery option saved", slog.String("op", op), slog.Int64("id", option.ID))
	return nil
}
