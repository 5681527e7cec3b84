package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_ActiveBookingForFlight(t *testing.T) {
	bookings := map[int64]*Booking{
		1: {ID: 1, OutboundFlightID: 10, ReturnFlightID: 11},
		2: {ID: 2, OutboundFlightID: 12, Cancelled: true},
		3: {ID: 3, OutboundFlightID: 12},
	}
	resolve := func(id int64) *Booking { return bookings[id] }

	c := &Customer{ID: 7}
	c.AddBooking(1)
	c.AddBooking(2)
	c.AddBooking(3)

	assert.True(t, c.HasActiveBookingForFlight(10, resolve))
	// return leg counts too
	assert.True(t, c.HasActiveBookingForFlight(11, resolve))
	assert.False(t, c.HasActiveBookingForFlight(99, resolve))

	// the cancelled booking on flight 12 is skipped, the active one found
	found := c.ActiveBookingForFlight(12, resolve)
	assert.NotNil(t, found)
	assert.Equal(t, int64(3), found.ID)
}

func TestNewCustomer_Validation(t *testing.T) {
	_, err := NewCustomer("", "a@b.c", "123", 30, "F", MealVegetarian)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCustomer("Dana", "a@b.c", "123", 0, "F", MealVegetarian)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCustomer("Dana", "a@b.c", "123", 30, "F", MealCategory("SPICY"))
	assert.ErrorIs(t, err, ErrValidation)

	c, err := NewCustomer("Dana", "a@b.c", "123", 30, "F", "")
	assert.NoError(t, err)
	assert.Equal(t, "Dana", c.Name)
}
