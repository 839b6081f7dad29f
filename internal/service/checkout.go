package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/perfume-store/internal/domain/models"
	"github.com/linemk/perfume-store/internal/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Сообщения, которые видит покупатель в результате оформления заказа
const (
	MsgOrderConfirmed     = "Thank you! Your order is confirmed."
	MsgOptionUnavailable  = "Selected payment or delivery option is no longer available."
	MsgNoValidProducts    = "No valid products were found in the cart."
	MsgOrderCreateFailure = "Something went wrong while creating the order."
)

// CheckoutLine — строка корзины, присланная клиентом. Цена здесь отсутствует
// намеренно: клиентским ценам доверять нельзя.
type CheckoutLine struct {
	ProductID int64
	Quantity  int
}

// CheckoutRequest — данные оформления заказа на время одного запроса
type CheckoutRequest struct {
	CustomerName     string
	CustomerEmail    string
	ShippingAddress  string
	PaymentMethodID  int64
	DeliveryOptionID int64
	Items            []CheckoutLine
}

// CheckoutResult — итог оформления заказа для слоя представления.
// Отказ в оформлении — это не ошибка, а терминальный результат запроса.
type CheckoutResult struct {
	IsSuccess   bool   `json:"isSuccess"`
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

// CheckoutPageView — данные страницы оформления заказа
type CheckoutPageView struct {
	CartProducts    []ProductCard            `json:"cartProducts"`
	PaymentMethods  []*models.PaymentMethod  `json:"paymentMethods"`
	DeliveryOptions []*models.DeliveryOption `json:"deliveryOptions"`
	Subtotal        decimal.Decimal          `json:"subtotal"`
	EstimatedTotal  decimal.Decimal          `json:"estimatedTotal"`
}

// CheckoutService определяет интерфейс оформления заказа.
type CheckoutService interface {
	BuildCheckout(ctx context.Context) (*CheckoutPageView, error)
	PlaceOrder(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, error)
}

type checkoutService struct {
	log          *slog.Logger
	productRepo  storage.ProductStorage
	paymentRepo  storage.PaymentMethodStorage
	deliveryRepo storage.DeliveryOptionStorage
	orderRepo    storage.OrderStorage
}

func NewCheckoutService(
	log *slog.Logger,
	productRepo storage.ProductStorage,
	paymentRepo storage.PaymentMethodStorage,
	deliveryRepo storage.DeliveryOptionStorage,
	orderRepo storage.OrderStorage,
) CheckoutService {
	return &checkoutService{
		log:          log,
		productRepo:  productRepo,
		paymentRepo:  paymentRepo,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
	}
}

// BuildCheckout собирает данные страницы оформления: примерную корзину из
// featured-товаров (до трех штук), активные способы оплаты и доставки и
// предварительные суммы. Только чтение, побочных эффектов нет.
func (s *checkoutService) BuildCheckout(ctx context.Context) (*CheckoutPageView, error) {
	const op = "service.CheckoutService.BuildCheckout"

	// Три независимых чтения выполняются параллельно
	var (
		featured []*models.Product
		payments []*models.PaymentMethod
		delivery []*models.DeliveryOption
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		featured, err = s.productRepo.GetFeaturedProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.GetPaymentMethods(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		delivery, err = s.deliveryRepo.GetDeliveryOptions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to load checkout data", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cart := featured
	if len(cart) > 3 {
		cart = cart[:3]
	}

	cartProducts := make([]ProductCard, 0, len(cart))
	subtotal := decimal.Zero
	for _, product := range cart {
		cartProducts = append(cartProducts, toProductCard(product))
		subtotal = subtotal.Add(product.EffectivePrice())
	}

	// Предварительный итог считается по первому активному способу доставки;
	// если активных способов нет, остается только subtotal
	estimatedTotal := subtotal
	activeDelivery := filterActiveDelivery(delivery)
	if len(activeDelivery) > 0 {
		estimatedTotal = subtotal.Add(activeDelivery[0].Fee)
	}

	return &CheckoutPageView{
		CartProducts:    cartProducts,
		PaymentMethods:  filterActivePayments(payments),
		DeliveryOptions: activeDelivery,
		Subtotal:        subtotal,
		EstimatedTotal:  estimatedTotal,
	}, nil
}

// PlaceOrder превращает непроверенные данные оформления в подтвержденный заказ
// либо в отказ с причиной. Все денежные значения пересчитываются по текущему
// каталогу, активность способов оплаты и доставки перепроверяется в момент
// оформления: между показом страницы и отправкой формы они могли измениться.
func (s *checkoutService) PlaceOrder(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, error) {
	const op = "service.CheckoutService.PlaceOrder"
	logger := s.log.With(slog.String("op", op), slog.String("email", req.CustomerEmail))
	logger.Info("placing order", slog.Int("lines", len(req.Items)))

	var (
		products []*models.Product
		payments []*models.PaymentMethod
		delivery []*models.DeliveryOption
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.GetAllProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.GetPaymentMethods(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		delivery, err = s.deliveryRepo.GetDeliveryOptions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("failed to load catalog data", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	paymentMethod := findActivePayment(payments, req.PaymentMethodID)
	deliveryOption := findActiveDelivery(delivery, req.DeliveryOptionID)
	if paymentMethod == nil || deliveryOption == nil {
		logger.Warn("payment or delivery option unavailable",
			slog.Int64("paymentMethodID", req.PaymentMethodID),
			slog.Int64("deliveryOptionID", req.DeliveryOptionID))
		return &CheckoutResult{IsSuccess: false, Message: MsgOptionUnavailable}, nil
	}

	productsByID := make(map[int64]*models.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	// Строки с неизвестным товаром молча отбрасываются: удаленный товар
	// исчезает из корзины, а не срывает оформление целиком
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, ok := productsByID[line.ProductID]
		if !ok {
			logger.Info("dropping unknown product line", slog.Int64("productID", line.ProductID))
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.EffectivePrice(),
		})
	}

	if len(items) == 0 {
		logger.Warn("no valid products left in cart")
		return &CheckoutResult{IsSuccess: false, Message: MsgNoValidProducts}, nil
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	total := subtotal.Add(deliveryOption.Fee).Add(paymentMethod.ProcessingFee)

	payload := &models.CheckoutPayload{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		ShippingAddress:  req.ShippingAddress,
		PaymentMethodID:  paymentMethod.ID,
		DeliveryOptionID: deliveryOption.ID,
		Subtotal:         subtotal,
		DeliveryFee:      deliveryOption.Fee,
		ProcessingFee:    paymentMethod.ProcessingFee,
		Total:            total,
		Items:            items,
	}

	success, orderNumber, err := s.orderRepo.CreateOrder(ctx, payload)
	if err != nil {
		logger.Error("failed to create order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !success {
		logger.Warn("order creation rejected by store")
		return &CheckoutResult{IsSuccess: false, Message: MsgOrderCreateFailure}, nil
	}

	logger.Info("order confirmed", slog.String("orderNumber", orderNumber), slog.String("total", total.String()))
	return &CheckoutResult{
		IsSuccess:   true,
		Message:     MsgOrderConfirmed,
		OrderNumber: orderNumber,
	}, nil
}

func findActivePayment(methods []*models.PaymentMethod, id int64) *models.PaymentMethod {
	for _, method := range methods {
		if method.ID == id && method.IsActive {
			return method
		}
	}
	return nil
}

func findActiveDelivery(options []*models.DeliveryOption, id int64) *models.DeliveryOption {
	for _, option := range options {
		if option.ID == id && option.IsActive {
			return option
		}
	}
	return nil
}

func filterActivePayments(methods []*models.PaymentMethod) []*models.PaymentMethod {
	active := make([]*models.PaymentMethod, 0, len(methods))
	for _, method := range methods {
		if method.IsActive {
			active = append(active, method)
		}
	}
	return active
}

func filterActiveDelivery(options []*models.DeliveryOption) []*models.DeliveryOption {
	active := make([]*models.DeliveryOption, 0, len(options))
	for _, option := range options {
		if option.IsActive {
			active = append(active, option)
		}
	}
	return active
}
