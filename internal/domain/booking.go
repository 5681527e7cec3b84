package domain

import (
	"fmt"
	"time"
)

// Booking links a customer to one or two flight legs with a fare snapshot
// taken at creation time. Prices are never recomputed, even when the
// flight's dynamic price later changes. The only transition is
// active -> cancelled.
type Booking struct {
	ID               int64
	Reference        string
	CustomerID       int64
	OutboundFlightID int64
	ReturnFlightID   int64 // zero for one-way
	Class            CabinClass
	OutboundPrice    float64
	ReturnPrice      float64 // zero for one-way
	MealID           int64   // zero when no meal was added
	MealPrice        float64
	BookingDate      time.Time
	CancellationFee  float64
	RebookFee        float64
	Cancelled        bool
}

func (b *Booking) HasReturn() bool {
	return b.ReturnFlightID != 0
}

func (b *Booking) HasMeal() bool {
	return b.MealID != 0
}

// ReferencesFlight reports whether the flight is the outbound or return leg.
// The zero ReturnFlightID of a one-way booking never matches.
func (b *Booking) ReferencesFlight(flightID int64) bool {
	return b.OutboundFlightID == flightID || (b.HasReturn() && b.ReturnFlightID == flightID)
}

// TotalPrice sums the fare snapshots and the meal price, rounded half-up to
// 2 decimal places.
func (b *Booking) TotalPrice() float64 {
	return RoundMoney(b.OutboundPrice + b.ReturnPrice + b.MealPrice)
}

// Cancel records the fee and marks the booking cancelled. Seat release on
// the legs is the ledger's job since bookings hold flight ids only.
func (b *Booking) Cancel(fee float64) error {
	if b.Cancelled {
		return fmt.Errorf("booking %d is already cancelled: %w", b.ID, ErrInvalidState)
	}
	b.CancellationFee = fee
	b.Cancelled = true
	return nil
}
