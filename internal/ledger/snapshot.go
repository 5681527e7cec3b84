package ledger

import (
	"fmt"

	"github.com/openfare/fareledger/internal/domain"
)

// Snapshot is a full copy of every registry, soft-deleted entities
// included. It is the contract with the persistence collaborator: Restore
// consumes entities in dependency order, Export reads the complete current
// state back for durable encoding.
type Snapshot struct {
	Flights   []domain.Flight
	Customers []domain.Customer
	Meals     []domain.Meal
	Bookings  []domain.Booking
}

// Export deep-copies every registry, ordered by id.
func (l *Ledger) Export() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := &Snapshot{
		Flights:   make([]domain.Flight, 0, len(l.flights)),
		Customers: make([]domain.Customer, 0, len(l.customers)),
		Meals:     make([]domain.Meal, 0, len(l.meals)),
		Bookings:  make([]domain.Booking, 0, len(l.bookings)),
	}
	for _, f := range l.flights {
		s.Flights = append(s.Flights, *f.Clone())
	}
	for _, c := range l.customers {
		s.Customers = append(s.Customers, *c.Clone())
	}
	for _, m := range l.meals {
		s.Meals = append(s.Meals, *m)
	}
	for _, b := range l.bookings {
		s.Bookings = append(s.Bookings, *b)
	}
	sortFlights(s.Flights)
	sortCustomers(s.Customers)
	sortMeals(s.Meals)
	sortBookings(s.Bookings)
	return s
}

// Restore replaces the ledger state with the snapshot. Meals, customers and
// flights load first; a booking referencing an unknown flight, customer or
// meal id is rejected and nothing is applied. Customer booking lists are
// rebuilt from the booking records rather than trusted.
func (l *Ledger) Restore(s *Snapshot) error {
	staged := New(l.pricing, l.fees)

	for i := range s.Meals {
		m := s.Meals[i]
		if err := staged.addMealLocked(&m); err != nil {
			return err
		}
	}
	for i := range s.Customers {
		c := *s.Customers[i].Clone()
		c.BookingIDs = nil
		if err := staged.addCustomerLocked(&c); err != nil {
			return err
		}
	}
	for i := range s.Flights {
		f := s.Flights[i].Clone()
		if err := validateInventory(f); err != nil {
			return err
		}
		if err := staged.addFlightLocked(f); err != nil {
			return err
		}
	}
	for i := range s.Bookings {
		b := s.Bookings[i]
		if err := staged.restoreBooking(&b); err != nil {
			return err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.flights = staged.flights
	l.customers = staged.customers
	l.meals = staged.meals
	l.bookings = staged.bookings
	l.nextFlightID = staged.nextFlightID
	l.nextCustomerID = staged.nextCustomerID
	l.nextMealID = staged.nextMealID
	l.nextBookingID = staged.nextBookingID
	return nil
}

func (l *Ledger) restoreBooking(b *domain.Booking) error {
	if b.ID <= 0 {
		return fmt.Errorf("booking id must be positive: %w", domain.ErrValidation)
	}
	if _, ok := l.bookings[b.ID]; ok {
		return fmt.Errorf("booking %d already registered: %w", b.ID, domain.ErrDuplicateEntity)
	}
	customer, ok := l.customers[b.CustomerID]
	if !ok {
		return fmt.Errorf("booking %d references unknown customer %d: %w", b.ID, b.CustomerID, domain.ErrNotFound)
	}
	if _, ok := l.flights[b.OutboundFlightID]; !ok {
		return fmt.Errorf("booking %d references unknown flight %d: %w", b.ID, b.OutboundFlightID, domain.ErrNotFound)
	}
	if b.HasReturn() {
		if _, ok := l.flights[b.ReturnFlightID]; !ok {
			return fmt.Errorf("booking %d references unknown flight %d: %w", b.ID, b.ReturnFlightID, domain.ErrNotFound)
		}
	}
	if b.HasMeal() {
		if _, ok := l.meals[b.MealID]; !ok {
			return fmt.Errorf("booking %d references unknown meal %d: %w", b.ID, b.MealID, domain.ErrNotFound)
		}
	}
	l.bookings[b.ID] = b
	customer.AddBooking(b.ID)
	if b.ID >= l.nextBookingID {
		l.nextBookingID = b.ID + 1
	}
	return nil
}

func validateInventory(f *domain.Flight) error {
	sum := 0
	for class, occupied := range f.OccupiedSeats {
		if occupied < 0 {
			return fmt.Errorf("flight %d has negative occupancy for %s: %w", f.ID, class, domain.ErrValidation)
		}
		if occupied > f.ClassCapacities[class] {
			return fmt.Errorf("flight %d occupancy for %s exceeds capacity: %w", f.ID, class, domain.ErrValidation)
		}
		sum += occupied
	}
	if sum > f.TotalCapacity {
		return fmt.Errorf("flight %d total occupancy exceeds capacity: %w", f.ID, domain.ErrValidation)
	}
	return nil
}
