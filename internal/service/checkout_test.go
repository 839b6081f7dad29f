package service_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/linemk/perfume-store/internal/domain/models"
	"github.com/linemk/perfume-store/internal/service"
	"github.com/linemk/perfume-store/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

type fakeProductRepo struct {
	all      []*models.Product
	featured []*models.Product
	trending []*models.Product
	upserted []*models.Product
	err      error
}

var _ storage.ProductStorage = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	return f.all, f.err
}

func (f *fakeProductRepo) GetFeaturedProducts(ctx context.Context) ([]*models.Product, error) {
	return f.featured, f.err
}

func (f *fakeProductRepo) GetTrendingProducts(ctx context.Context) ([]*models.Product, error) {
	return f.trending, f.err
}

func (f *fakeProductRepo) UpsertProduct(ctx context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, product)
	return nil
}

type fakePaymentRepo struct {
	methods []*models.PaymentMethod
	err     error
}

var _ storage.PaymentMethodStorage = (*fakePaymentRepo)(nil)

func (f *fakePaymentRepo) GetPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	return f.methods, f.err
}

func (f *fakePaymentRepo) UpsertPaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	return f.err
}

type fakeDeliveryRepo struct {
	options []*models.DeliveryOption
	err     error
}

var _ storage.DeliveryOptionStorage = (*fakeDeliveryRepo)(nil)

func (f *fakeDeliveryRepo) GetDeliveryOptions(ctx context.Context) ([]*models.DeliveryOption, error) {
	return f.options, f.err
}

func (f *fakeDeliveryRepo) UpsertDeliveryOption(ctx context.Context, option *models.DeliveryOption) error {
	return f.err
}

// fakeOrderRepo записывает все вызовы CreateOrder и генерирует
// последовательные номера заказов, как это делает функция БД
type fakeOrderRepo struct {
	calls []*models.CheckoutPayload
	seq   int
	fail  bool
	err   error
}

var _ storage.OrderStorage = (*fakeOrderRepo)(nil)

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, payload *models.CheckoutPayload) (bool, string, error) {
	if f.err != nil {
		return false, "", f.err
	}
	f.calls = append(f.calls, payload)
	if f.fail {
		return false, "", nil
	}
	f.seq++
	return true, fmt.Sprintf("PS-20250101-%06d", f.seq), nil
}

// тестовый каталог: P1 без скидки, P2 со скидкой 80 -> 60
func testProducts() []*models.Product {
	return []*models.Product{
		{ID: 1, Name: "Amber Noir", Price: dec("50"), CategoryName: "Eau de Parfum"},
		{ID: 2, Name: "Citrus Veil", Price: dec("80"), DiscountPrice: nullDec("60"), CategoryName: "Eau de Toilette"},
	}
}

func testPayments() []*models.PaymentMethod {
	return []*models.PaymentMethod{
		{ID: 10, Name: "Card", ProcessingFee: dec("2"), IsActive: true},
		{ID: 11, Name: "Legacy Wallet", ProcessingFee: dec("4"), IsActive: false},
	}
}

func testDelivery() []*models.DeliveryOption {
	return []*models.DeliveryOption{
		{ID: 20, Name: "Courier", Fee: dec("5"), EstimatedDays: 2, IsActive: true},
		{ID: 21, Name: "Drone", Fee: dec("15"), EstimatedDays: 1, IsActive: false},
	}
}

func newCheckoutService(products *fakeProductRepo, payments *fakePaymentRepo, delivery *fakeDeliveryRepo, orders *fakeOrderRepo) service.CheckoutService {
	return service.NewCheckoutService(testLogger(), products, payments, delivery, orders)
}

func validRequest() *service.CheckoutRequest {
	return &service.CheckoutRequest{
		CustomerName:     "Jane Doe",
		CustomerEmail:    "jane@example.com",
		ShippingAddress:  "1 Rose Street",
		PaymentMethodID:  10,
		DeliveryOptionID: 20,
		Items: []service.CheckoutLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	result, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.True(t, result.IsSuccess)
	assert.Equal(t, service.MsgOrderConfirmed, result.Message)
	assert.NotEmpty(t, result.OrderNumber)

	// subtotal = 50*2 + 60*1 = 160, total = 160 + 5 + 2 = 167
	assert.Len(t, orders.calls, 1)
	payload := orders.calls[0]
	assert.True(t, payload.Subtotal.Equal(dec("160")), "subtotal should be 160, got %s", payload.Subtotal)
	assert.True(t, payload.DeliveryFee.Equal(dec("5")))
	assert.True(t, payload.ProcessingFee.Equal(dec("2")))
	assert.True(t, payload.Total.Equal(dec("167")), "total should be 167, got %s", payload.Total)
	assert.Len(t, payload.Items, 2)
	// цена за единицу — всегда действующая цена из каталога
	assert.True(t, payload.Items[0].UnitPrice.Equal(dec("50")))
	assert.True(t, payload.Items[1].UnitPrice.Equal(dec("60")))
	assert.Equal(t, "Jane Doe", payload.CustomerName)
}

func TestPlaceOrder_DropsUnknownProductLines(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	req := validRequest()
	// строка с несуществующим товаром должна молча исчезнуть из заказа
	req.Items = []service.CheckoutLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 999, Quantity: 5},
	}

	result, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.True(t, result.IsSuccess)

	assert.Len(t, orders.calls, 1)
	payload := orders.calls[0]
	assert.Len(t, payload.Items, 1)
	assert.Equal(t, int64(1), payload.Items[0].ProductID)
	// отброшенная строка не влияет на суммы: 50*2 + 5 + 2 = 107
	assert.True(t, payload.Subtotal.Equal(dec("100")))
	assert.True(t, payload.Total.Equal(dec("107")))
}

func TestPlaceOrder_AllLinesUnknown(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	req := validRequest()
	req.Items = []service.CheckoutLine{{ProductID: 999, Quantity: 1}}

	result, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, service.MsgNoValidProducts, result.Message)
	assert.Empty(t, result.OrderNumber)
	// запись в хранилище не должна происходить
	assert.Empty(t, orders.calls)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	req := validRequest()
	req.Items = nil

	// пустая корзина и корзина, опустевшая после фильтрации, дают один и тот же отказ
	result, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, service.MsgNoValidProducts, result.Message)
	assert.Empty(t, orders.calls)
}

func TestPlaceOrder_PaymentMethodNotFound(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	req := validRequest()
	req.PaymentMethodID = 777

	result, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, service.MsgOptionUnavailable, result.Message)
	assert.Empty(t, orders.calls)
}

func TestPlaceOrder_PaymentMethodInactive(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	req := validRequest()
	// способ оплаты существует, но выключен
	req.PaymentMethodID = 11

	result, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, service.MsgOptionUnavailable, result.Message)
	assert.Empty(t, orders.calls)
}

func TestPlaceOrder_DeliveryOptionInactive(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	req := validRequest()
	// способ доставки существует, но выключен
	req.DeliveryOptionID = 21

	result, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, service.MsgOptionUnavailable, result.Message)
	assert.Empty(t, orders.calls)
}

func TestPlaceOrder_StoreReportsFailure(t *testing.T) {
	orders := &fakeOrderRepo{fail: true}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	result, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.Equal(t, service.MsgOrderCreateFailure, result.Message)
	assert.Empty(t, result.OrderNumber)
}

func TestPlaceOrder_StoreError(t *testing.T) {
	orders := &fakeOrderRepo{err: errors.New("connection refused")}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	// транспортные ошибки хранилища не превращаются в отказ, а пробрасываются выше
	result, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestPlaceOrder_ReadError(t *testing.T) {
	svc := newCheckoutService(
		&fakeProductRepo{err: errors.New("db error")},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		&fakeOrderRepo{},
	)

	result, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestPlaceOrder_NotIdempotent(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newCheckoutService(
		&fakeProductRepo{all: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		orders,
	)

	// повторная отправка того же запроса создает второй заказ с другим номером
	first, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.NoError(t, err)
	second, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.NoError(t, err)

	assert.True(t, first.IsSuccess)
	assert.True(t, second.IsSuccess)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
	assert.Len(t, orders.calls, 2)
}

func TestBuildCheckout_Success(t *testing.T) {
	featured := []*models.Product{
		{ID: 1, Name: "Amber Noir", Price: dec("50"), IsFeatured: true, CategoryName: "Eau de Parfum"},
		{ID: 2, Name: "Citrus Veil", Price: dec("80"), DiscountPrice: nullDec("60"), IsFeatured: true, CategoryName: "Eau de Toilette"},
		{ID: 3, Name: "Oud Royale", Price: dec("120"), IsFeatured: true, CategoryName: "Eau de Parfum"},
		{ID: 4, Name: "Vetiver Sky", Price: dec("90"), IsFeatured: true, CategoryName: "Eau de Parfum"},
	}
	svc := newCheckoutService(
		&fakeProductRepo{featured: featured},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		&fakeOrderRepo{},
	)

	view, err := svc.BuildCheckout(context.Background())
	assert.NoError(t, err)

	// примерная корзина ограничена тремя товарами
	assert.Len(t, view.CartProducts, 3)
	// subtotal = 50 + 60 + 120 по действующим ценам
	assert.True(t, view.Subtotal.Equal(dec("230")), "subtotal should be 230, got %s", view.Subtotal)
	// estimated total = subtotal + стоимость первого активного способа доставки
	assert.True(t, view.EstimatedTotal.Equal(dec("235")), "estimated total should be 235, got %s", view.EstimatedTotal)

	// на странице видны только активные способы оплаты и доставки
	assert.Len(t, view.PaymentMethods, 1)
	assert.Equal(t, int64(10), view.PaymentMethods[0].ID)
	assert.Len(t, view.DeliveryOptions, 1)
	assert.Equal(t, int64(20), view.DeliveryOptions[0].ID)
}

func TestBuildCheckout_NoActiveDelivery(t *testing.T) {
	svc := newCheckoutService(
		&fakeProductRepo{featured: testProducts()},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: []*models.DeliveryOption{
			{ID: 21, Name: "Drone", Fee: dec("15"), IsActive: false},
		}},
		&fakeOrderRepo{},
	)

	view, err := svc.BuildCheckout(context.Background())
	assert.NoError(t, err)
	// без активной доставки предварительный итог равен subtotal
	assert.True(t, view.EstimatedTotal.Equal(view.Subtotal))
	assert.Empty(t, view.DeliveryOptions)
}

func TestBuildCheckout_ReadError(t *testing.T) {
	svc := newCheckoutService(
		&fakeProductRepo{err: errors.New("db error")},
		&fakePaymentRepo{methods: testPayments()},
		&fakeDeliveryRepo{options: testDelivery()},
		&fakeOrderRepo{},
	)

	view, err := svc.BuildCheckout(context.Background())
	assert.Error(t, err)
	assert.Nil(t, view)
}
