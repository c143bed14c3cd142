package services

import (
	"math"
	"time"

	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"
)

// Traffic is the road condition a simulation assumes.
type Traffic string

const (
	TrafficLight  Traffic = "light"
	TrafficMedium Traffic = "medium"
	TrafficHeavy  Traffic = "heavy"
)

// getAverageSpeeds maps traffic conditions to average speeds in km/h.
func getAverageSpeeds() map[Traffic]float64 {
	return map[Traffic]float64{
		TrafficLight:  60,
		TrafficMedium: 40,
		TrafficHeavy:  20,
	}
}

// ParseTraffic accepts exactly light, medium or heavy.
func ParseTraffic(s string) (Traffic, error) {
	t := Traffic(s)
	if _, ok := getAverageSpeeds()[t]; !ok {
		return "", errs.NewStatusError("traffic", "Traffic Status must be: light, medium or heavy.")
	}
	return t, nil
}

// Simulation is a what-if estimate of a trip run. It commits to nothing.
type Simulation struct {
	TripID      string
	TruckPlate  string
	DistanceKm  float64
	Traffic     Traffic
	DepartureAt time.Time
	ArrivalAt   time.Time
	Days        int
	Hours       int
	Minutes     int
	CarbonKgCO2 float64
}

type TripSimulator struct{}

func NewTripSimulator() TripSimulator {
	return TripSimulator{}
}

// Simulate estimates a departure at now for the trip driven by tr.
// Travel time is the trip distance over the traffic's average speed, split into
// whole days, whole hours and rounded minutes; 60 rounded minutes carry into
// the hour.
func (TripSimulator) Simulate(t *trip.Trip, tr *truck.Truck, traffic Traffic, now time.Time) (Simulation, error) {
	speed, ok := getAverageSpeeds()[traffic]
	if !ok {
		return Simulation{}, errs.NewStatusError("traffic", "Traffic Status must be: light, medium or heavy.")
	}
	if err := t.Validate(); err != nil {
		return Simulation{}, err
	}
	if err := tr.Validate(); err != nil {
		return Simulation{}, err
	}

	carbon, err := tr.CarbonFor(t.DistanceKm())
	if err != nil {
		return Simulation{}, err
	}

	days, hours, minutes := splitHours(t.DistanceKm() / speed)
	travel := time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute

	return Simulation{
		TripID:      t.ID().String(),
		TruckPlate:  tr.Plate(),
		DistanceKm:  t.DistanceKm(),
		Traffic:     traffic,
		DepartureAt: now,
		ArrivalAt:   now.Add(travel),
		Days:        days,
		Hours:       hours,
		Minutes:     minutes,
		CarbonKgCO2: carbon,
	}, nil
}

func splitHours(h float64) (days, hours, minutes int) {
	days = int(math.Floor(h / 24))
	hours = int(h - float64(days)*24)
	_, frac := math.Modf(h)
	minutes = int(math.Round(frac * 60))
	if minutes == 60 {
		minutes = 0
		hours++
	}
	if hours == 24 {
		hours = 0
		days++
	}
	return days, hours, minutes
}
