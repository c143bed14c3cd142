package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByTrip(ctx context.Context, tripID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

type MockDepotRepository struct{ mock.Mock }

func (m *MockDepotRepository) Add(ctx context.Context, d *depot.Depot) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepotRepository) Get(ctx context.Context, id kernel.UUID) (*depot.Depot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*depot.Depot), args.Error(1)
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

func (m *MockDeliveryRepository) GetPendingByTrip(ctx context.Context, tripID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockUoW) DepotRepository() ports.DepotRepository {
	args := m.Called()
	return args.Get(0).(ports.DepotRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRoutePlanner struct{ mock.Mock }

func (m *MockRoutePlanner) PlanRoute(ctx context.Context, origin kernel.Address, stops []kernel.Address) (services.RoutePlan, error) {
	args := m.Called(ctx, origin, stops)
	return args.Get(0).(services.RoutePlan), args.Error(1)
}

// uowFixture wires a unit of work whose repositories are all mocks.
type uowFixture struct {
	factory    *MockUoWFactory
	uow        *MockUoW
	orders     *MockOrderRepository
	trips      *MockTripRepository
	trucks     *MockTruckRepository
	depots     *MockDepotRepository
	deliveries *MockDeliveryRepository
}

func newUoWFixture() *uowFixture {
	f := &uowFixture{
		factory:    &MockUoWFactory{},
		uow:        &MockUoW{},
		orders:     &MockOrderRepository{},
		trips:      &MockTripRepository{},
		trucks:     &MockTruckRepository{},
		depots:     &MockDepotRepository{},
		deliveries: &MockDeliveryRepository{},
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("TripRepository").Return(f.trips).Maybe()
	f.uow.On("TruckRepository").Return(f.trucks).Maybe()
	f.uow.On("DepotRepository").Return(f.depots).Maybe()
	f.uow.On("DeliveryRepository").Return(f.deliveries).Maybe()
	return f
}

func (f *uowFixture) expectCommit() {
	f.uow.On("Commit", mock.Anything).Return(nil).Once()
}

func (f *uowFixture) assertNotCommitted(t *testing.T) {
	t.Helper()
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func address(t *testing.T, street, city, state string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(street, "100", "", "Centro", city, state, "", "")
	require.NoError(t, err)
	return a
}

func newDepot(t *testing.T) *depot.Depot {
	t.Helper()
	d, err := depot.NewDepot(kernel.NewUUID(), "Central", address(t, "Av. Paulista", "São Paulo", "SP"))
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T, destination kernel.Address, sizes ...order.Size) *order.Order {
	t.Helper()
	boxes := make([]*order.Box, 0, len(sizes))
	for _, s := range sizes {
		b, err := order.NewBox(kernel.NewUUID(), s)
		require.NoError(t, err)
		boxes = append(boxes, b)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), destination, boxes)
	require.NoError(t, err)
	return o
}

func scheduledOrder(t *testing.T, tripID kernel.UUID) *order.Order {
	t.Helper()
	o := newOrder(t, address(t, "Rua Augusta", "São Paulo", "SP"), order.SizeSmall)
	require.NoError(t, o.Schedule(tripID))
	return o
}

func shippedOrder(t *testing.T, tripID kernel.UUID) *order.Order {
	t.Helper()
	o := scheduledOrder(t, tripID)
	require.NoError(t, o.Ship())
	return o
}

func plannedTrip(t *testing.T, depotID kernel.UUID, weightKg, volumeM3 float64) *trip.Trip {
	t.Helper()
	tp, err := trip.NewTrip(kernel.NewUUID(), depotID, weightKg, volumeM3, 100)
	require.NoError(t, err)
	return tp
}

func newTruck(t *testing.T, maxPayloadKg, volumeM3 float64, euro int) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "TRK0001", maxPayloadKg, volumeM3, 1, 1, euro)
	require.NoError(t, err)
	return tr
}
