package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("Rua Augusta", "500", "", "Consolação", "São Paulo", "SP", "01305-000", "Brasil")
	require.NoError(t, err)
	return a
}

func newBoxes(t *testing.T, sizes ...order.Size) []*order.Box {
	t.Helper()
	boxes := make([]*order.Box, 0, len(sizes))
	for _, s := range sizes {
		b, err := order.NewBox(kernel.NewUUID(), s)
		require.NoError(t, err)
		boxes = append(boxes, b)
	}
	return boxes
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), storeAddress(t), newBoxes(t, order.SizeSmall, order.SizeLarge))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with totals from boxes", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, kernel.NewUUID(), storeAddress(t), newBoxes(t, order.SizeSmall, order.SizeLarge))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Trip())
		assert.Equal(t, 2, o.TotalBoxes())
		assert.InDelta(t, 40.0, o.TotalWeightKg(), 1e-9)
		assert.InDelta(t, 0.024+0.768, o.TotalVolumeM3(), 1e-9)
	})

	t.Run("should fail with invalid identifiers and address", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, kernel.Address{}, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: storeID")
		assert.Contains(t, err.Error(), "address must be created")
	})

	t.Run("should reject a zero value box", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), storeAddress(t), []*order.Box{{}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boxes[0]")
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reject scheduled order without trip", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), storeAddress(t), 1, 1, order.Scheduled, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Scheduled is not a valid status to have no trip")
	})

	t.Run("should keep stored totals", func(t *testing.T) {
		tripID := kernel.NewUUID()
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), storeAddress(t), 12.5, 0.3, order.Shipped, &tripID, nil)

		require.NoError(t, err)
		assert.InDelta(t, 12.5, o.TotalWeightKg(), 1e-9)
		assert.True(t, o.Trip().IsEqual(tripID))
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should go from pending to delivered", func(t *testing.T) {
		o := newPendingOrder(t)
		tripID := kernel.NewUUID()

		require.NoError(t, o.Schedule(tripID))
		assert.Equal(t, order.Scheduled, o.Status())
		assert.True(t, o.Trip().IsEqual(tripID))

		require.NoError(t, o.Ship())
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
		for _, b := range o.Boxes() {
			assert.True(t, b.WasDelivered())
		}
	})

	t.Run("mark delivered is idempotent", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Schedule(kernel.NewUUID()))
		require.NoError(t, o.Ship())
		require.NoError(t, o.MarkDelivered())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject scheduling a non pending order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Schedule(kernel.NewUUID()))

		err := o.Schedule(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStatus)
		assert.Contains(t, err.Error(), "Scheduled order cannot be scheduled")
	})

	t.Run("should unschedule and clear trip", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Schedule(kernel.NewUUID()))

		require.NoError(t, o.Unschedule())

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Trip())
	})

	t.Run("should not deliver a scheduled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Schedule(kernel.NewUUID()))

		require.ErrorIs(t, o.MarkDelivered(), errs.ErrStatus)
		assert.Equal(t, order.Scheduled, o.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		assert.True(t, o.Status().IsTerminal())
		require.ErrorIs(t, o.Schedule(kernel.NewUUID()), errs.ErrStatus)
	})
}

func TestBox(t *testing.T) {
	t.Run("standard preset", func(t *testing.T) {
		b, err := order.NewBox(kernel.NewUUID(), order.SizeMedium)

		require.NoError(t, err)
		assert.InDelta(t, 15.0, b.PayloadKg(), 1e-9)
		assert.InDelta(t, 0.096, b.VolumeM3(), 1e-9)
		assert.False(t, b.WasDelivered())
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := order.NewBox(kernel.NewUUID(), order.SizeCustom)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("custom box", func(t *testing.T) {
		b, err := order.NewCustomBox(kernel.NewUUID(), 1, 2, 0.5, 40)

		require.NoError(t, err)
		assert.Equal(t, order.SizeCustom, b.Size())
		assert.InDelta(t, 1.0, b.VolumeM3(), 1e-9)
	})

	t.Run("custom box with bad dimensions", func(t *testing.T) {
		_, err := order.NewCustomBox(kernel.NewUUID(), 0, 2, 0.5, 40)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must all be greater than 0")
	})
}
