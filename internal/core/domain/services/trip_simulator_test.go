package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulationFixtures(t *testing.T, distanceKm float64, euro int) (*trip.Trip, *truck.Truck) {
	t.Helper()
	tp, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), 100, 1, distanceKm)
	require.NoError(t, err)
	tr, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "SIM2024", 1000, 2, 2, 2, euro)
	require.NoError(t, err)
	return tp, tr
}

func TestParseTraffic(t *testing.T) {
	for _, in := range []string{"light", "medium", "heavy"} {
		traffic, err := services.ParseTraffic(in)
		require.NoError(t, err, in)
		assert.Equal(t, services.Traffic(in), traffic)
	}

	for _, in := range []string{"jammed", "HEAVY", "Medium", " light", ""} {
		_, err := services.ParseTraffic(in)
		require.ErrorIs(t, err, errs.ErrStatus, in)
		assert.Contains(t, err.Error(), "Traffic Status must be: light, medium or heavy.")
	}
}

func TestTripSimulator_Simulate(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	simulator := services.NewTripSimulator()

	t.Run("120 km in medium traffic takes exactly 3 hours", func(t *testing.T) {
		tp, tr := simulationFixtures(t, 120, 6)

		sim, err := simulator.Simulate(tp, tr, services.TrafficMedium, now)

		require.NoError(t, err)
		assert.Equal(t, 0, sim.Days)
		assert.Equal(t, 3, sim.Hours)
		assert.Equal(t, 0, sim.Minutes)
		assert.Equal(t, now.Add(3*time.Hour), sim.ArrivalAt)
		assert.Equal(t, now, sim.DepartureAt)
		assert.InDelta(t, 90.0, sim.CarbonKgCO2, 1e-9)
		assert.Equal(t, "SIM2024", sim.TruckPlate)
		assert.Equal(t, tp.ID().String(), sim.TripID)
	})

	t.Run("long trip spans days", func(t *testing.T) {
		tp, tr := simulationFixtures(t, 1530, 5)

		sim, err := simulator.Simulate(tp, tr, services.TrafficLight, now)

		require.NoError(t, err)
		// 25.5 hours
		assert.Equal(t, 1, sim.Days)
		assert.Equal(t, 1, sim.Hours)
		assert.Equal(t, 30, sim.Minutes)
		assert.Equal(t, now.Add(25*time.Hour+30*time.Minute), sim.ArrivalAt)
	})

	t.Run("rounded minutes carry into the hour", func(t *testing.T) {
		// 39.995 km / 20 km/h = 1.99975 h, 59.985 minutes round to 60
		tp, tr := simulationFixtures(t, 39.995, 6)

		sim, err := simulator.Simulate(tp, tr, services.TrafficHeavy, now)

		require.NoError(t, err)
		assert.Equal(t, 2, sim.Hours)
		assert.Equal(t, 0, sim.Minutes)
	})

	t.Run("unknown traffic fails", func(t *testing.T) {
		tp, tr := simulationFixtures(t, 10, 6)

		_, err := simulator.Simulate(tp, tr, services.Traffic("jammed"), now)

		require.ErrorIs(t, err, errs.ErrStatus)
	})

	t.Run("unmapped euro class fails", func(t *testing.T) {
		tp, tr := simulationFixtures(t, 10, 4)

		_, err := simulator.Simulate(tp, tr, services.TrafficLight, now)

		require.ErrorIs(t, err, errs.ErrStatus)
		assert.ErrorContains(t, err, "euro 4")
	})
}
