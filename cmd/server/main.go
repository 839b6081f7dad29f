package main

import (
	"context"

	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linemk/perfume-store/internal/app"
	"github.com/linemk/perfume-store/internal/app/handlers"
	"github.com/linemk/perfume-store/internal/config"
	"github.com/linemk/perfume-store/internal/lib/logger"
	"github.com/linemk/perfume-store/internal/lib/logger/handlers/urllog"
	"github.com/linemk/perfume-store/internal/service"
	"github.com/linemk/perfume-store/internal/storage"
	"github.com/pkg/errors"
)

func main() {
	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	// загружаем объект приложения, конфигом и подключением к БД
	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}
	defer application.DB.Close()

	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// реализация слоев по работе с БД по каждому направлению
	productRepo := storage.NewProductRepository(application.DB)
	categoryRepo := storage.NewCategoryRepository(application.DB)
	paymentRepo := storage.NewPaymentMethodRepository(application.DB)
	deliveryRepo := storage.NewDeliveryOptionRepository(application.DB)
	heroRepo := storage.NewHeroRepository(application.DB)
	statsRepo := storage.NewStatsRepository(application.DB)
	orderRepo := storage.NewOrderRepository(application.DB)

	landingService := service.NewLandingService(application.Logger, productRepo, heroRepo, deliveryRepo)
	catalogService := service.NewCatalogService(application.Logger, productRepo)
	checkoutService := service.NewCheckoutService(application.Logger, productRepo, paymentRepo, deliveryRepo, orderRepo)
	adminService := service.NewAdminService(application.Logger, statsRepo, productRepo, categoryRepo, paymentRepo, deliveryRepo, heroRepo)

	// публичные страницы магазина
	router.Get("/", handlers.LandingHandler(application.Logger, landingService))
	router.Get("/healthz", handlers.HealthHandler(application.Logger, application.DB))
	router.Get("/catalog", handlers.CatalogHandler(application.Logger, catalogService))

	// оформление заказа
	router.Route("/checkout", func(r chi.Router) {
		r.Get("/", handlers.CheckoutPageHandler(application.Logger, checkoutService))
		r.Post("/place-order", handlers.PlaceOrderHandler(application.Logger, checkoutService))
	})

	// админка: дашборд и сохранение контента
	router.Route("/admin", func(r chi.Router) {
		r.Get("/", handlers.DashboardHandler(application.Logger, adminService))
		r.Post("/hero", handlers.SaveHeroHandler(application.Logger, adminService, cfg.Uploads.HeroDir))
		r.Post("/products", handlers.SaveProductHandler(application.Logger, adminService))
		r.Post("/payments", handlers.SavePaymentMethodHandler(application.Logger, adminService))
		r.Post("/delivery", handlers.SaveDeliveryOptionHandler(application.Logger, adminService))
	})

	// JSON API для фронтенда
	router.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.ProductsAPIHandler(application.Logger, catalogService))
		r.Get("/configuration/payment-methods", handlers.PaymentMethodsAPIHandler(application.Logger, paymentRepo))
		r.Get("/configuration/delivery-options", handlers.DeliveryOptionsAPIHandler(application.Logger, deliveryRepo))
	})

	// раздача загруженных файлов (изображения hero-блока)
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
