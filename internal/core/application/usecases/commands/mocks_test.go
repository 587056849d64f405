package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/domain/model/tracking"
	"fastfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// makePendingOrder builds a Pending order whose payment window expires at
// expiresAt.
func makePendingOrder(t *testing.T, expiresAt time.Time) *order.Order {
	t.Helper()
	return makeOrderInStatus(t, order.Pending, expiresAt)
}

func makeOrderInStatus(t *testing.T, status order.Status, expiresAt time.Time) *order.Order {
	t.Helper()

	receiver, err := order.NewReceiver("Nguyen Van A", "", "0900000001")
	require.NoError(t, err)
	address, err := order.NewAddress("12 Ly Thuong Kiet", "Ward 7", "Ho Chi Minh City")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Burger", 2, 50000)
	require.NoError(t, err)

	created := expiresAt.Add(-order.PaymentWindow)
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		RestaurantID:     kernel.NewUUID(),
		Receiver:         receiver,
		Address:          address,
		Items:            []order.Item{item},
		ShippingFee:      order.DefaultShippingFee,
		Status:           status,
		CreatedAt:        created,
		UpdatedAt:        created,
		PaymentExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllExpiredPending(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByTxnRef(ctx context.Context, txnRef string) (*payment.Payment, error) {
	args := m.Called(ctx, txnRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetAllPendingByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllByDrone(ctx context.Context, droneID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, droneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, sample tracking.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetLatestByDrone(ctx context.Context, droneID kernel.UUID) (tracking.Sample, error) {
	args := m.Called(ctx, droneID)
	return args.Get(0).(tracking.Sample), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentUoW struct{ mock.Mock }

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockTrackingUoW struct{ mock.Mock }

func (m *MockTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.User), args.Error(1)
}

func (m *MockCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Restaurant), args.Error(1)
}

func (m *MockCatalog) SetRestaurantCoordinate(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) error {
	args := m.Called(ctx, id, point)
	return args.Error(0)
}

func (m *MockCatalog) GetMenuItem(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.MenuItem), args.Error(1)
}

func (m *MockCatalog) GetDrone(ctx context.Context, id kernel.UUID) (ports.Drone, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Drone), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) BuildAuthorizationURL(req ports.AuthorizationRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) VerifyCallback(params map[string]string) (ports.CallbackResult, error) {
	args := m.Called(params)
	return args.Get(0).(ports.CallbackResult), args.Error(1)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

type MockLocationCache struct{ mock.Mock }

func (m *MockLocationCache) Set(droneID kernel.UUID, sample tracking.Sample) {
	m.Called(droneID, sample)
}

func (m *MockLocationCache) Get(droneID kernel.UUID) (tracking.Sample, bool) {
	args := m.Called(droneID)
	return args.Get(0).(tracking.Sample), args.Bool(1)
}

type MockLocationPublisher struct{ mock.Mock }

func (m *MockLocationPublisher) PublishLocation(ctx context.Context, sample tracking.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

type MockDeliveryDispatcher struct{ mock.Mock }

func (m *MockDeliveryDispatcher) DispatchForOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
