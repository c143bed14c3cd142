package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func endTrip(t *testing.T, f *uowFixture, tripID, depotID kernel.UUID) error {
	t.Helper()
	handler, err := commands.NewEndTripCommandHandler(f.factory)
	require.NoError(t, err)
	cmd, err := commands.NewEndTripCommand(tripID, depotID)
	require.NoError(t, err)
	return handler.Handle(t.Context(), cmd)
}

func cancelTrip(t *testing.T, f *uowFixture, tripID, depotID kernel.UUID) error {
	t.Helper()
	handler, err := commands.NewCancelTripCommandHandler(f.factory)
	require.NoError(t, err)
	cmd, err := commands.NewCancelTripCommand(tripID, depotID)
	require.NoError(t, err)
	return handler.Handle(t.Context(), cmd)
}

func deleteTrip(t *testing.T, f *uowFixture, tripID kernel.UUID) error {
	t.Helper()
	handler, err := commands.NewDeleteTripCommandHandler(f.factory)
	require.NoError(t, err)
	cmd, err := commands.NewDeleteTripCommand(tripID)
	require.NoError(t, err)
	return handler.Handle(t.Context(), cmd)
}

func TestTripDepotCommands_RequireIDs(t *testing.T) {
	_, err := commands.NewEndTripCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCancelTripCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewDeleteTripCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.EndTripCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrEndTripCommandIsNotConstructed)
}

func TestEndTripCommandHandler_Handle(t *testing.T) {
	t.Run("should list unconfirmed deliveries", func(t *testing.T) {
		f := newUoWFixture()
		depotID := kernel.NewUUID()
		tr := newTruck(t, 100, 1, 6)
		require.NoError(t, tr.Reserve())
		tp := inTransitTrip(t, depotID, tr)
		confirmed := deliveryFor(t, tp.ID(), shippedOrder(t, tp.ID()))
		confirmed.Confirm(time.Now())
		pending := deliveryFor(t, tp.ID(), shippedOrder(t, tp.ID()))

		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)
		f.deliveries.On("GetPendingByTrip", mock.Anything, tp.ID()).Return([]*delivery.Delivery{pending}, nil)

		err := endTrip(t, f, tp.ID(), depotID)

		var remaining *errs.RemainingDeliveriesError
		require.ErrorAs(t, err, &remaining)
		assert.Equal(t, []string{pending.ID().String()}, remaining.DeliveryIDs)
		assert.Equal(t, trip.InTransit, tp.Status())
		assert.True(t, tr.IsActive())
		f.assertNotCommitted(t)
	})

	t.Run("should complete trip, sweep orders and release truck", func(t *testing.T) {
		f := newUoWFixture()
		depotID := kernel.NewUUID()
		tr := newTruck(t, 100, 1, 6)
		require.NoError(t, tr.Reserve())
		tp := inTransitTrip(t, depotID, tr)
		confirmedOrder := shippedOrder(t, tp.ID())
		require.NoError(t, confirmedOrder.MarkDelivered())
		loadedOrder := shippedOrder(t, tp.ID())

		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)
		f.deliveries.On("GetPendingByTrip", mock.Anything, tp.ID()).Return([]*delivery.Delivery{}, nil)
		f.orders.On("GetAllByTrip", mock.Anything, tp.ID()).
			Return([]*order.Order{confirmedOrder, loadedOrder}, nil)
		f.orders.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()
		f.trips.On("Update", mock.Anything, tp).Return(nil)
		f.trucks.On("Get", mock.Anything, tr.ID()).Return(tr, nil)
		f.trucks.On("Update", mock.Anything, tr).Return(nil)
		f.expectCommit()

		err := endTrip(t, f, tp.ID(), depotID)

		require.NoError(t, err)
		assert.Equal(t, trip.Completed, tp.Status())
		assert.NotNil(t, tp.ArrivalAt())
		assert.False(t, tr.IsActive())
		assert.Equal(t, 1, tr.TotalTrips())
		for _, o := range []*order.Order{confirmedOrder, loadedOrder} {
			assert.Equal(t, order.Delivered, o.Status())
			for _, b := range o.Boxes() {
				assert.True(t, b.WasDelivered())
			}
		}
		f.uow.AssertExpectations(t)
	})

	t.Run("depot ownership is checked before status", func(t *testing.T) {
		f := newUoWFixture()
		tp := plannedTrip(t, kernel.NewUUID(), 10, 0.1)
		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

		err := endTrip(t, f, tp.ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrBelong)
	})

	t.Run("should reject planned trip", func(t *testing.T) {
		f := newUoWFixture()
		depotID := kernel.NewUUID()
		tp := plannedTrip(t, depotID, 10, 0.1)
		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

		err := endTrip(t, f, tp.ID(), depotID)

		require.ErrorIs(t, err, errs.ErrStatus)
		f.deliveries.AssertNotCalled(t, "GetPendingByTrip", mock.Anything, mock.Anything)
	})
}

func TestCancelTripCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel planned trip and free its orders", func(t *testing.T) {
		f := newUoWFixture()
		depotID := kernel.NewUUID()
		tp := plannedTrip(t, depotID, 10, 0.1)
		o1, o2 := scheduledOrder(t, tp.ID()), scheduledOrder(t, tp.ID())

		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)
		f.orders.On("GetAllByTrip", mock.Anything, tp.ID()).Return([]*order.Order{o1, o2}, nil)
		f.orders.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()
		f.trips.On("Update", mock.Anything, tp).Return(nil)
		f.expectCommit()

		err := cancelTrip(t, f, tp.ID(), depotID)

		require.NoError(t, err)
		assert.Equal(t, trip.Cancelled, tp.Status())
		for _, o := range []*order.Order{o1, o2} {
			assert.Equal(t, order.Pending, o.Status())
			assert.Nil(t, o.Trip())
		}
		f.uow.AssertExpectations(t)
	})

	t.Run("should reject in transit trip", func(t *testing.T) {
		f := newUoWFixture()
		depotID := kernel.NewUUID()
		tp := inTransitTrip(t, depotID, newTruck(t, 100, 1, 6))
		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

		err := cancelTrip(t, f, tp.ID(), depotID)

		require.ErrorIs(t, err, errs.ErrStatus)
		assert.Equal(t, trip.InTransit, tp.Status())
		f.orders.AssertNotCalled(t, "GetAllByTrip", mock.Anything, mock.Anything)
		f.assertNotCommitted(t)
	})

	t.Run("should reject trip of another depot", func(t *testing.T) {
		f := newUoWFixture()
		tp := plannedTrip(t, kernel.NewUUID(), 10, 0.1)
		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

		err := cancelTrip(t, f, tp.ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrBelong)
		assert.Equal(t, trip.Planned, tp.Status())
	})

	t.Run("should not commit when an order update fails", func(t *testing.T) {
		f := newUoWFixture()
		depotID := kernel.NewUUID()
		tp := plannedTrip(t, depotID, 10, 0.1)
		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)
		f.orders.On("GetAllByTrip", mock.Anything, tp.ID()).
			Return([]*order.Order{scheduledOrder(t, tp.ID())}, nil)
		f.orders.On("Update", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		err := cancelTrip(t, f, tp.ID(), depotID)

		require.EqualError(t, err, "connection reset")
		f.trips.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.assertNotCommitted(t)
	})
}

func TestDeleteTripCommandHandler_Handle(t *testing.T) {
	t.Run("should revert orders and delete planned trip", func(t *testing.T) {
		f := newUoWFixture()
		tp := plannedTrip(t, kernel.NewUUID(), 10, 0.1)
		o := scheduledOrder(t, tp.ID())

		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)
		f.orders.On("GetAllByTrip", mock.Anything, tp.ID()).Return([]*order.Order{o}, nil)
		f.orders.On("Update", mock.Anything, o).Return(nil)
		f.trips.On("Delete", mock.Anything, tp.ID()).Return(nil)
		f.expectCommit()

		err := deleteTrip(t, f, tp.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		f.uow.AssertExpectations(t)
	})

	t.Run("should delete cancelled trip", func(t *testing.T) {
		f := newUoWFixture()
		tp := plannedTrip(t, kernel.NewUUID(), 10, 0.1)
		require.NoError(t, tp.Cancel())

		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)
		f.orders.On("GetAllByTrip", mock.Anything, tp.ID()).Return([]*order.Order{}, nil)
		f.trips.On("Delete", mock.Anything, tp.ID()).Return(nil)
		f.expectCommit()

		require.NoError(t, deleteTrip(t, f, tp.ID()))
	})

	t.Run("should keep started trips", func(t *testing.T) {
		f := newUoWFixture()
		tp := inTransitTrip(t, kernel.NewUUID(), newTruck(t, 100, 1, 6))
		f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

		err := deleteTrip(t, f, tp.ID())

		require.ErrorIs(t, err, errs.ErrStatus)
		f.trips.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTerminalTripsRejectTransitions(t *testing.T) {
	depotID := kernel.NewUUID()
	terminal := map[string]func(t *testing.T) *trip.Trip{
		"completed": func(t *testing.T) *trip.Trip {
			tp := inTransitTrip(t, depotID, newTruck(t, 100, 1, 6))
			require.NoError(t, tp.Complete(time.Now()))
			return tp
		},
		"cancelled": func(t *testing.T) *trip.Trip {
			tp := plannedTrip(t, depotID, 10, 0.1)
			require.NoError(t, tp.Cancel())
			return tp
		},
	}

	for name, build := range terminal {
		t.Run(name+" trip cannot be started", func(t *testing.T) {
			f := newUoWFixture()
			tp := build(t)
			tr := newTruck(t, 100, 1, 6)
			f.trucks.On("GetForUpdate", mock.Anything, tr.ID()).Return(tr, nil)
			f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

			require.ErrorIs(t, startTrip(t, f, tr.ID(), tp.ID(), depotID), errs.ErrStatus)
		})

		t.Run(name+" trip fails on status before truck, cargo and depot checks", func(t *testing.T) {
			f := newUoWFixture()
			tp := build(t)
			tr := newTruck(t, 1, 0.001, 6)
			require.NoError(t, tr.Reserve())
			f.trucks.On("GetForUpdate", mock.Anything, tr.ID()).Return(tr, nil)
			f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

			err := startTrip(t, f, tr.ID(), tp.ID(), kernel.NewUUID())

			var statusErr *errs.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, "trip", statusErr.Subject)
			assert.NotErrorIs(t, err, errs.ErrCapacity)
			assert.NotErrorIs(t, err, errs.ErrBelong)
			f.assertNotCommitted(t)
		})

		t.Run(name+" trip cannot be cancelled", func(t *testing.T) {
			f := newUoWFixture()
			tp := build(t)
			f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

			require.ErrorIs(t, cancelTrip(t, f, tp.ID(), depotID), errs.ErrStatus)
		})

		t.Run(name+" trip cannot be ended", func(t *testing.T) {
			f := newUoWFixture()
			tp := build(t)
			f.trips.On("GetForUpdate", mock.Anything, tp.ID()).Return(tp, nil)

			require.ErrorIs(t, endTrip(t, f, tp.ID(), depotID), errs.ErrStatus)
		})
	}
}
