package domain

import (
	"fmt"
	"log"
)

// Customer holds identity details and the ids of the bookings it owns. The
// ledger owns the booking records themselves; lookups go through a resolver.
type Customer struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	Age           int
	Gender        string
	PreferredMeal MealCategory
	Deleted       bool
	BookingIDs    []int64
}

func NewCustomer(name, email, phone string, age int, gender string, preferredMeal MealCategory) (*Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrValidation)
	}
	if age <= 0 {
		return nil, fmt.Errorf("customer age must be positive: %w", ErrValidation)
	}
	if preferredMeal != "" && !preferredMeal.Valid() {
		return nil, fmt.Errorf("unknown meal category %q: %w", preferredMeal, ErrValidation)
	}
	return &Customer{Name: name, Email: email, Phone: phone, Age: age, Gender: gender, PreferredMeal: preferredMeal}, nil
}

// AddBooking appends an owned booking id. Uniqueness per flight is enforced
// by the ledger before construction, not here.
func (c *Customer) AddBooking(bookingID int64) {
	c.BookingIDs = append(c.BookingIDs, bookingID)
}

// ActiveBookingForFlight returns the customer's non-cancelled booking whose
// outbound or return leg matches flightID, or nil. Multiple matches violate
// the uniqueness invariant; the first wins and the anomaly is logged.
func (c *Customer) ActiveBookingForFlight(flightID int64, resolve func(int64) *Booking) *Booking {
	var found *Booking
	for _, id := range c.BookingIDs {
		b := resolve(id)
		if b == nil || b.Cancelled || !b.ReferencesFlight(flightID) {
			continue
		}
		if found != nil {
			log.Printf("WARNING: customer %d has multiple active bookings for flight %d, using booking %d", c.ID, flightID, found.ID)
			break
		}
		found = b
	}
	return found
}

func (c *Customer) HasActiveBookingForFlight(flightID int64, resolve func(int64) *Booking) bool {
	return c.ActiveBookingForFlight(flightID, resolve) != nil
}

// Clone deep-copies the customer including the owned booking id list.
func (c *Customer) Clone() *Customer {
	out := *c
	out.BookingIDs = append([]int64(nil), c.BookingIDs...)
	return &out
}
