package domain

import (
	"fmt"
	"log"
	"time"
)

type FlightType string

const (
	FlightTypeBudget     FlightType = "BUDGET"
	FlightTypeCommercial FlightType = "COMMERCIAL"
)

func (t FlightType) Valid() bool {
	return t == FlightTypeBudget || t == FlightTypeCommercial
}

// Flight owns the seat inventory for one scheduled departure: total
// capacity, the per-class allocation and the per-class occupied counters.
// Budget flights offer Economy only at full capacity.
type Flight struct {
	ID              int64
	FlightNumber    string
	Origin          string
	Destination     string
	DepartureDate   time.Time
	Type            FlightType
	EconomyPrice    float64
	TotalCapacity   int
	ClassCapacities map[CabinClass]int
	OccupiedSeats   map[CabinClass]int
	Deleted         bool
}

// NewFlight validates the inputs and builds the per-class allocation. For
// Budget flights classCapacities is ignored and Economy takes the full
// capacity; Commercial allocations must cover every class they list and sum
// to the total capacity.
func NewFlight(number, origin, destination string, departure time.Time, flightType FlightType, economyPrice float64, totalCapacity int, classCapacities map[CabinClass]int) (*Flight, error) {
	if number == "" {
		return nil, fmt.Errorf("flight number is required: %w", ErrValidation)
	}
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("origin and destination are required: %w", ErrValidation)
	}
	if !flightType.Valid() {
		return nil, fmt.Errorf("unknown flight type %q: %w", flightType, ErrValidation)
	}
	if economyPrice < 0 {
		return nil, fmt.Errorf("economy price must not be negative: %w", ErrValidation)
	}
	if totalCapacity <= 0 {
		return nil, fmt.Errorf("total capacity must be positive: %w", ErrValidation)
	}

	capacities := make(map[CabinClass]int)
	if flightType == FlightTypeBudget {
		capacities[ClassEconomy] = totalCapacity
	} else {
		sum := 0
		for class, capacity := range classCapacities {
			if !class.Valid() {
				return nil, fmt.Errorf("unknown cabin class %q: %w", class, ErrValidation)
			}
			if capacity < 0 {
				return nil, fmt.Errorf("capacity for %s must not be negative: %w", class.Label(), ErrValidation)
			}
			capacities[class] = capacity
			sum += capacity
		}
		if sum != totalCapacity {
			return nil, fmt.Errorf("class capacities sum to %d, expected %d: %w", sum, totalCapacity, ErrValidation)
		}
	}

	return &Flight{
		FlightNumber:    number,
		Origin:          origin,
		Destination:     destination,
		DepartureDate:   departure,
		Type:            flightType,
		EconomyPrice:    economyPrice,
		TotalCapacity:   totalCapacity,
		ClassCapacities: capacities,
		OccupiedSeats:   make(map[CabinClass]int),
	}, nil
}

// OffersClass reports whether the flight sells seats in the class at all.
func (f *Flight) OffersClass(class CabinClass) bool {
	if !class.Valid() {
		return false
	}
	if f.Type == FlightTypeBudget {
		return class == ClassEconomy
	}
	return f.ClassCapacities[class] > 0
}

// CapacityForClass returns the allocated seats for the class; zero for a
// class the flight does not offer.
func (f *Flight) CapacityForClass(class CabinClass) int {
	return f.ClassCapacities[class]
}

func (f *Flight) RemainingSeatsForClass(class CabinClass) int {
	return f.ClassCapacities[class] - f.OccupiedSeats[class]
}

func (f *Flight) IsClassAvailable(class CabinClass) bool {
	return f.RemainingSeatsForClass(class) > 0
}

func (f *Flight) HasAnySeatsLeft() bool {
	for class := range f.ClassCapacities {
		if f.IsClassAvailable(class) {
			return true
		}
	}
	return false
}

// ReserveSeat increments the occupied counter for the class. It never lets
// occupancy exceed the class allocation.
func (f *Flight) ReserveSeat(class CabinClass) error {
	if !f.OffersClass(class) {
		return fmt.Errorf("flight %s does not offer %s: %w", f.FlightNumber, class, ErrInvalidClass)
	}
	if f.RemainingSeatsForClass(class) <= 0 {
		return fmt.Errorf("no %s seats left on flight %s: %w", class.Label(), f.FlightNumber, ErrCapacityExceeded)
	}
	f.OccupiedSeats[class]++
	return nil
}

// ReleaseSeat decrements the occupied counter for the class, floored at
// zero. Releasing with nothing occupied is a no-op; the anomaly is logged.
func (f *Flight) ReleaseSeat(class CabinClass) {
	if f.OccupiedSeats[class] <= 0 {
		log.Printf("WARNING: release with no occupied %s seats on flight %s", class, f.FlightNumber)
		return
	}
	f.OccupiedSeats[class]--
}

// PriceForClass prices a seat as of the given date: base economy price x
// class multiplier x urgency multiplier, rounded to 2 decimals.
func (f *Flight) PriceForClass(class CabinClass, asOf time.Time, policy PricingPolicy) (float64, error) {
	if !f.OffersClass(class) {
		return 0, fmt.Errorf("flight %s does not offer %s: %w", f.FlightNumber, class, ErrInvalidClass)
	}
	urgency := policy.UrgencyMultiplier(DaysUntil(f.DepartureDate, asOf))
	return RoundMoney(f.EconomyPrice * class.Multiplier() * urgency), nil
}

func (f *Flight) HasDeparted(asOf time.Time) bool {
	return !f.DepartureDate.After(asOf)
}

// Clone deep-copies the flight, including the capacity and occupancy maps.
func (f *Flight) Clone() *Flight {
	out := *f
	out.ClassCapacities = make(map[CabinClass]int, len(f.ClassCapacities))
	for class, capacity := range f.ClassCapacities {
		out.ClassCapacities[class] = capacity
	}
	out.OccupiedSeats = make(map[CabinClass]int, len(f.OccupiedSeats))
	for class, occupied := range f.OccupiedSeats {
		out.OccupiedSeats[class] = occupied
	}
	return &out
}
