package truck_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTruck(t *testing.T, maxPayloadKg float64, euro int) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "abc1d23", maxPayloadKg, 1, 1, 1, euro)
	require.NoError(t, err)
	return tr
}

func TestNewTruck(t *testing.T) {
	t.Run("should create idle truck with derived volume", func(t *testing.T) {
		tr, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "abc1d23", 1000, 4, 2, 2.5, 6)

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.Equal(t, "ABC1D23", tr.Plate())
		assert.InDelta(t, 20.0, tr.CargoVolumeM3(), 1e-9)
		assert.False(t, tr.IsActive())
		assert.Equal(t, 0, tr.TotalTrips())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		_, err := truck.NewTruck(kernel.UUID{}, kernel.UUID{}, "TOOLONG12", 0, 0, 1, 1, 9)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "carrierID")
		assert.Contains(t, err.Error(), "plate length")
		assert.Contains(t, err.Error(), "max payload is invalid")
		assert.Contains(t, err.Error(), "9 is euro")
	})
}

func TestTruck_Reserve(t *testing.T) {
	tr := newTruck(t, 100, 5)

	require.NoError(t, tr.Reserve())
	assert.True(t, tr.IsActive())
	assert.Equal(t, 1, tr.TotalTrips())

	err := tr.Reserve()
	require.ErrorIs(t, err, errs.ErrStatus)
	assert.Contains(t, err.Error(), "already being used")
	assert.Equal(t, 1, tr.TotalTrips())

	tr.Release()
	assert.False(t, tr.IsActive())
}

func TestTruck_CanCarry(t *testing.T) {
	tr := newTruck(t, 100, 5)

	t.Run("fits exactly", func(t *testing.T) {
		require.NoError(t, tr.CanCarry(100, 1.0))
	})

	t.Run("weight alone exceeds", func(t *testing.T) {
		err := tr.CanCarry(150, 0.5)

		var capacityErr *errs.CapacityError
		require.ErrorAs(t, err, &capacityErr)
		assert.InDelta(t, 50.0, capacityErr.WeightExcessKg, 1e-9)
		assert.Zero(t, capacityErr.VolumeExcessM3)
		assert.Contains(t, err.Error(), "50.00 kg")
	})

	t.Run("volume alone exceeds", func(t *testing.T) {
		err := tr.CanCarry(10, 1.5)

		var capacityErr *errs.CapacityError
		require.ErrorAs(t, err, &capacityErr)
		assert.InDelta(t, 0.5, capacityErr.VolumeExcessM3, 1e-9)
	})
}

func TestTruck_Carbon(t *testing.T) {
	testCases := []struct {
		euro     int
		distance float64
		expected float64
	}{
		{5, 100, 83},
		{6, 100, 75},
		{6, 12.4, 9.3},
	}

	for _, tc := range testCases {
		carbon, err := newTruck(t, 100, tc.euro).CarbonFor(tc.distance)
		require.NoError(t, err)
		assert.InDelta(t, tc.expected, carbon, 1e-9)
	}

	t.Run("unmapped euro class fails explicitly", func(t *testing.T) {
		_, err := newTruck(t, 100, 3).CarbonFor(100)

		require.ErrorIs(t, err, errs.ErrStatus)
		assert.Contains(t, err.Error(), "euro 3 has no emission factor")
	})

	t.Run("should expose the unknown emission factor as cause", func(t *testing.T) {
		_, err := newTruck(t, 100, 3).EmissionFactor()

		assert.ErrorIs(t, err, truck.ErrEmissionFactorUnknown)
	})
}
