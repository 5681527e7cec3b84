package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openfare/fareledger/internal/domain"
)

// Ledger exclusively owns every entity, keyed by id. All other components
// hold ids only and resolve them here. A single RWMutex serializes
// mutations, so cross-entity workflows (two-leg booking, rebook) can never
// interleave and double-book a seat.
type Ledger struct {
	mu sync.RWMutex

	flights   map[int64]*domain.Flight
	customers map[int64]*domain.Customer
	meals     map[int64]*domain.Meal
	bookings  map[int64]*domain.Booking

	nextFlightID   int64
	nextCustomerID int64
	nextMealID     int64
	nextBookingID  int64

	pricing domain.PricingPolicy
	fees    domain.FeePolicy
}

func New(pricing domain.PricingPolicy, fees domain.FeePolicy) *Ledger {
	return &Ledger{
		flights:        make(map[int64]*domain.Flight),
		customers:      make(map[int64]*domain.Customer),
		meals:          make(map[int64]*domain.Meal),
		bookings:       make(map[int64]*domain.Booking),
		nextFlightID:   1,
		nextCustomerID: 1,
		nextMealID:     1,
		nextBookingID:  1,
		pricing:        pricing,
		fees:           fees,
	}
}

// BookingRequest carries the pre-validated, typed arguments for Book.
// ReturnFlightID and MealID are optional; zero means absent.
type BookingRequest struct {
	CustomerID       int64
	OutboundFlightID int64
	ReturnFlightID   int64
	Class            domain.CabinClass
	MealID           int64
}

// ---- flights ----

// CreateFlight validates the inputs, allocates the next flight id and
// registers the flight. A (flightNumber, departureDate) pair already present
// among non-deleted flights is rejected as a duplicate.
func (l *Ledger) CreateFlight(number, origin, destination string, departure time.Time, flightType domain.FlightType, economyPrice float64, totalCapacity int, classCapacities map[domain.CabinClass]int) (*domain.Flight, error) {
	f, err := domain.NewFlight(number, origin, destination, departure, flightType, economyPrice, totalCapacity, classCapacities)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkFlightScheduleFree(f.FlightNumber, f.DepartureDate); err != nil {
		return nil, err
	}
	f.ID = l.nextFlightID
	l.nextFlightID++
	l.flights[f.ID] = f
	return f.Clone(), nil
}

// AddFlight registers an already-identified flight, used by the snapshot
// load path. A duplicate id is a programmer error and panics; a duplicate
// (flightNumber, departureDate) pair is a business rule violation.
func (l *Ledger) AddFlight(f *domain.Flight) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addFlightLocked(f)
}

func (l *Ledger) addFlightLocked(f *domain.Flight) error {
	if f.ID <= 0 {
		return fmt.Errorf("flight id must be positive: %w", domain.ErrValidation)
	}
	if _, ok := l.flights[f.ID]; ok {
		panic(fmt.Sprintf("ledger: duplicate flight id %d", f.ID))
	}
	if !f.Deleted {
		if err := l.checkFlightScheduleFree(f.FlightNumber, f.DepartureDate); err != nil {
			return err
		}
	}
	l.flights[f.ID] = f
	if f.ID >= l.nextFlightID {
		l.nextFlightID = f.ID + 1
	}
	return nil
}

func (l *Ledger) checkFlightScheduleFree(number string, departure time.Time) error {
	for _, existing := range l.flights {
		if !existing.Deleted && existing.FlightNumber == number && existing.DepartureDate.Equal(departure) {
			return fmt.Errorf("flight %s already scheduled on %s: %w", number, departure.Format("2006-01-02"), domain.ErrDuplicateEntity)
		}
	}
	return nil
}

// GetFlight resolves a non-deleted flight by id.
func (l *Ledger) GetFlight(id int64) (*domain.Flight, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.flights[id]
	if !ok || f.Deleted {
		return nil, fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	return f.Clone(), nil
}

// GetFlightIncludingDeleted resolves a flight regardless of the deleted
// flag, so booking history stays resolvable after removal.
func (l *Ledger) GetFlightIncludingDeleted(id int64) (*domain.Flight, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.flights[id]
	if !ok {
		return nil, fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	return f.Clone(), nil
}

// ListActiveFlights returns non-deleted flights that have not departed as of
// the given date, ordered by id.
func (l *Ledger) ListActiveFlights(asOf time.Time) []domain.Flight {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Flight, 0, len(l.flights))
	for _, f := range l.flights {
		if !f.Deleted && !f.HasDeparted(asOf) {
			out = append(out, *f.Clone())
		}
	}
	sortFlights(out)
	return out
}

// ListAllFlights returns every flight ever registered, deleted included.
func (l *Ledger) ListAllFlights() []domain.Flight {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Flight, 0, len(l.flights))
	for _, f := range l.flights {
		out = append(out, *f.Clone())
	}
	sortFlights(out)
	return out
}

// QuotePrice prices a seat in the class on a non-deleted flight as of the
// given date, without reserving anything.
func (l *Ledger) QuotePrice(flightID int64, class domain.CabinClass, asOf time.Time) (float64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.flights[flightID]
	if !ok || f.Deleted {
		return 0, fmt.Errorf("flight %d: %w", flightID, domain.ErrNotFound)
	}
	return f.PriceForClass(class, asOf, l.pricing)
}

// RemoveFlight soft-deletes a flight. The record is retained for booking
// history; it only disappears from active listings.
func (l *Ledger) RemoveFlight(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.flights[id]
	if !ok || f.Deleted {
		return fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	f.Deleted = true
	return nil
}

// ---- customers ----

func (l *Ledger) CreateCustomer(name, email, phone string, age int, gender string, preferredMeal domain.MealCategory) (*domain.Customer, error) {
	c, err := domain.NewCustomer(name, email, phone, age, gender, preferredMeal)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	c.ID = l.nextCustomerID
	l.nextCustomerID++
	l.customers[c.ID] = c
	return c.Clone(), nil
}

func (l *Ledger) AddCustomer(c *domain.Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addCustomerLocked(c)
}

func (l *Ledger) addCustomerLocked(c *domain.Customer) error {
	if c.ID <= 0 {
		return fmt.Errorf("customer id must be positive: %w", domain.ErrValidation)
	}
	if _, ok := l.customers[c.ID]; ok {
		return fmt.Errorf("customer %d already registered: %w", c.ID, domain.ErrDuplicateEntity)
	}
	l.customers[c.ID] = c
	if c.ID >= l.nextCustomerID {
		l.nextCustomerID = c.ID + 1
	}
	return nil
}

func (l *Ledger) GetCustomer(id int64) (*domain.Customer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.customers[id]
	if !ok || c.Deleted {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

func (l *Ledger) GetCustomerIncludingDeleted(id int64) (*domain.Customer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

func (l *Ledger) ListActiveCustomers() []domain.Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Customer, 0, len(l.customers))
	for _, c := range l.customers {
		if !c.Deleted {
			out = append(out, *c.Clone())
		}
	}
	sortCustomers(out)
	return out
}

func (l *Ledger) ListAllCustomers() []domain.Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Customer, 0, len(l.customers))
	for _, c := range l.customers {
		out = append(out, *c.Clone())
	}
	sortCustomers(out)
	return out
}

// RemoveCustomer soft-deletes a customer. Owned bookings stay untouched and
// remain valid history.
func (l *Ledger) RemoveCustomer(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.customers[id]
	if !ok || c.Deleted {
		return fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	c.Deleted = true
	return nil
}

// ---- meals ----

func (l *Ledger) CreateMeal(name, description string, price float64, category domain.MealCategory) (*domain.Meal, error) {
	m, err := domain.NewMeal(name, description, price, category)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	m.ID = l.nextMealID
	l.nextMealID++
	l.meals[m.ID] = m
	out := *m
	return &out, nil
}

func (l *Ledger) AddMeal(m *domain.Meal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addMealLocked(m)
}

func (l *Ledger) addMealLocked(m *domain.Meal) error {
	if m.ID <= 0 {
		return fmt.Errorf("meal id must be positive: %w", domain.ErrValidation)
	}
	if _, ok := l.meals[m.ID]; ok {
		return fmt.Errorf("meal %d already registered: %w", m.ID, domain.ErrDuplicateEntity)
	}
	l.meals[m.ID] = m
	if m.ID >= l.nextMealID {
		l.nextMealID = m.ID + 1
	}
	return nil
}

func (l *Ledger) GetMeal(id int64) (*domain.Meal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.meals[id]
	if !ok || m.Deleted {
		return nil, fmt.Errorf("meal %d: %w", id, domain.ErrNotFound)
	}
	out := *m
	return &out, nil
}

func (l *Ledger) GetMealIncludingDeleted(id int64) (*domain.Meal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.meals[id]
	if !ok {
		return nil, fmt.Errorf("meal %d: %w", id, domain.ErrNotFound)
	}
	out := *m
	return &out, nil
}

func (l *Ledger) ListActiveMeals() []domain.Meal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Meal, 0, len(l.meals))
	for _, m := range l.meals {
		if !m.Deleted {
			out = append(out, *m)
		}
	}
	sortMeals(out)
	return out
}

func (l *Ledger) ListAllMeals() []domain.Meal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Meal, 0, len(l.meals))
	for _, m := range l.meals {
		out = append(out, *m)
	}
	sortMeals(out)
	return out
}

func (l *Ledger) RemoveMeal(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.meals[id]
	if !ok || m.Deleted {
		return fmt.Errorf("meal %d: %w", id, domain.ErrNotFound)
	}
	m.Deleted = true
	return nil
}

// ---- bookings ----

func (l *Ledger) GetBooking(id int64) (*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	out := *b
	return &out, nil
}

// ListBookings returns every booking, cancelled included, ordered by id.
func (l *Ledger) ListBookings() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, *b)
	}
	sortBookings(out)
	return out
}

// ListCustomerBookings returns the customer's bookings, cancelled included,
// in the order they were made.
func (l *Ledger) ListCustomerBookings(customerID int64) ([]domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
	}
	out := make([]domain.Booking, 0, len(c.BookingIDs))
	for _, id := range c.BookingIDs {
		if b, ok := l.bookings[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

// Book runs the full booking workflow: resolves and validates every
// reference, snapshots the fare per leg as of asOf, reserves the seats
// (rolling back the outbound reservation when the return leg fails) and
// registers the booking under a fresh id.
func (l *Ledger) Book(req BookingRequest, asOf time.Time) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	customer, ok := l.customers[req.CustomerID]
	if !ok || customer.Deleted {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, domain.ErrNotFound)
	}
	if !req.Class.Valid() {
		return nil, fmt.Errorf("unknown cabin class %q: %w", req.Class, domain.ErrValidation)
	}
	if req.ReturnFlightID != 0 && req.ReturnFlightID == req.OutboundFlightID {
		return nil, fmt.Errorf("return flight must differ from outbound flight %d: %w", req.OutboundFlightID, domain.ErrValidation)
	}

	outbound, err := l.bookableFlightLocked(req.OutboundFlightID, asOf)
	if err != nil {
		return nil, err
	}

	legs := []*domain.Flight{outbound}
	if req.ReturnFlightID != 0 {
		ret, err := l.bookableFlightLocked(req.ReturnFlightID, asOf)
		if err != nil {
			return nil, err
		}
		legs = append(legs, ret)
	}

	resolve := func(id int64) *domain.Booking { return l.bookings[id] }
	for _, leg := range legs {
		if !leg.OffersClass(req.Class) {
			return nil, fmt.Errorf("flight %s does not offer %s: %w", leg.FlightNumber, req.Class, domain.ErrInvalidClass)
		}
		if !leg.IsClassAvailable(req.Class) {
			return nil, fmt.Errorf("no %s seats left on flight %s: %w", req.Class.Label(), leg.FlightNumber, domain.ErrCapacityExceeded)
		}
		if customer.HasActiveBookingForFlight(leg.ID, resolve) {
			return nil, fmt.Errorf("customer %d already holds an active booking on flight %s: %w", customer.ID, leg.FlightNumber, domain.ErrDuplicateEntity)
		}
	}

	var meal *domain.Meal
	if req.MealID != 0 {
		m, ok := l.meals[req.MealID]
		if !ok || m.Deleted {
			return nil, fmt.Errorf("meal %d: %w", req.MealID, domain.ErrNotFound)
		}
		meal = m
	}

	outboundPrice, err := outbound.PriceForClass(req.Class, asOf, l.pricing)
	if err != nil {
		return nil, err
	}
	var returnPrice float64
	if len(legs) == 2 {
		returnPrice, err = legs[1].PriceForClass(req.Class, asOf, l.pricing)
		if err != nil {
			return nil, err
		}
	}

	if err := outbound.ReserveSeat(req.Class); err != nil {
		return nil, err
	}
	if len(legs) == 2 {
		if err := legs[1].ReserveSeat(req.Class); err != nil {
			outbound.ReleaseSeat(req.Class)
			return nil, err
		}
	}

	b := &domain.Booking{
		ID:               l.nextBookingID,
		Reference:        uuid.NewString(),
		CustomerID:       customer.ID,
		OutboundFlightID: outbound.ID,
		Class:            req.Class,
		OutboundPrice:    outboundPrice,
		ReturnPrice:      returnPrice,
		BookingDate:      asOf,
	}
	if len(legs) == 2 {
		b.ReturnFlightID = legs[1].ID
	}
	if meal != nil {
		b.MealID = meal.ID
		b.MealPrice = meal.Price
	}
	l.nextBookingID++
	l.bookings[b.ID] = b
	customer.AddBooking(b.ID)

	out := *b
	return &out, nil
}

func (l *Ledger) bookableFlightLocked(id int64, asOf time.Time) (*domain.Flight, error) {
	f, ok := l.flights[id]
	if !ok {
		return nil, fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	if f.Deleted {
		return nil, fmt.Errorf("flight %s is removed from sale: %w", f.FlightNumber, domain.ErrInvalidState)
	}
	if f.HasDeparted(asOf) {
		return nil, fmt.Errorf("flight %s has already departed: %w", f.FlightNumber, domain.ErrInvalidState)
	}
	return f, nil
}

// CancelBooking locates the customer's active booking referencing flightID
// as outbound or return, charges the cancellation fee and releases the
// seats on every leg. Removed or departed flights can still be cancelled.
func (l *Ledger) CancelBooking(customerID, flightID int64, asOf time.Time) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancelBookingLocked(customerID, flightID, asOf)
}

func (l *Ledger) cancelBookingLocked(customerID, flightID int64, asOf time.Time) (*domain.Booking, error) {
	customer, ok := l.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
	}
	// Resolve including deleted so a removed flight's booking stays cancellable.
	flight, ok := l.flights[flightID]
	if !ok {
		return nil, fmt.Errorf("flight %d: %w", flightID, domain.ErrNotFound)
	}

	resolve := func(id int64) *domain.Booking { return l.bookings[id] }
	booking := customer.ActiveBookingForFlight(flight.ID, resolve)
	if booking == nil {
		return nil, fmt.Errorf("customer %d has no active booking on flight %s: %w", customerID, flight.FlightNumber, domain.ErrNotFound)
	}

	fee := l.fees.CancellationFee(domain.DaysUntil(flight.DepartureDate, asOf), booking.TotalPrice())
	if err := booking.Cancel(fee); err != nil {
		return nil, err
	}
	l.releaseLegsLocked(booking)

	out := *booking
	return &out, nil
}

func (l *Ledger) releaseLegsLocked(b *domain.Booking) {
	if f, ok := l.flights[b.OutboundFlightID]; ok {
		f.ReleaseSeat(b.Class)
	}
	if b.HasReturn() {
		if f, ok := l.flights[b.ReturnFlightID]; ok {
			f.ReleaseSeat(b.Class)
		}
	}
}

// RebookQuote computes the fee for moving the customer's active booking on
// oldFlightID to newFlightID in newClass. Pure: identical inputs yield
// identical fees and nothing is mutated.
func (l *Ledger) RebookQuote(customerID, oldFlightID, newFlightID int64, newClass domain.CabinClass, asOf time.Time) (float64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, _, fee, err := l.rebookFeeLocked(customerID, oldFlightID, newFlightID, newClass, asOf)
	return fee, err
}

func (l *Ledger) rebookFeeLocked(customerID, oldFlightID, newFlightID int64, newClass domain.CabinClass, asOf time.Time) (*domain.Booking, *domain.Flight, float64, error) {
	customer, ok := l.customers[customerID]
	if !ok {
		return nil, nil, 0, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
	}
	oldFlight, ok := l.flights[oldFlightID]
	if !ok {
		return nil, nil, 0, fmt.Errorf("flight %d: %w", oldFlightID, domain.ErrNotFound)
	}
	newFlight, err := l.bookableFlightLocked(newFlightID, asOf)
	if err != nil {
		return nil, nil, 0, err
	}

	resolve := func(id int64) *domain.Booking { return l.bookings[id] }
	booking := customer.ActiveBookingForFlight(oldFlight.ID, resolve)
	if booking == nil {
		return nil, nil, 0, fmt.Errorf("customer %d has no active booking on flight %s: %w", customerID, oldFlight.FlightNumber, domain.ErrNotFound)
	}

	newFare, err := newFlight.PriceForClass(newClass, asOf, l.pricing)
	if err != nil {
		return nil, nil, 0, err
	}
	fee := l.fees.RebookFee(booking.OutboundPrice, booking.TotalPrice(), newFare, domain.DaysUntil(oldFlight.DepartureDate, asOf))
	return booking, newFlight, fee, nil
}

// Rebook moves the customer's active booking on oldFlightID to newFlightID
// in newClass: cancel-old plus book-new. It returns the new booking and the
// fee charged on the old one. It is not one atomic state transition;
// instead every precondition of the new leg is validated before the old
// booking is touched, and both steps run under the same ledger lock, so
// the book-new step cannot fail once cancellation has happened.
func (l *Ledger) Rebook(customerID, oldFlightID, newFlightID int64, newClass domain.CabinClass, asOf time.Time) (*domain.Booking, float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	oldBooking, newFlight, fee, err := l.rebookFeeLocked(customerID, oldFlightID, newFlightID, newClass, asOf)
	if err != nil {
		return nil, 0, err
	}

	// Validate the new leg up front: class offered, seat available, no
	// duplicate active booking on the new flight. When the rebook stays in
	// the same seat class on the same flight, cancellation frees the seat
	// the new booking takes, so a full class is not a conflict.
	customer := l.customers[customerID]
	resolve := func(id int64) *domain.Booking { return l.bookings[id] }
	sameSeat := newFlightID == oldFlightID && newClass == oldBooking.Class
	if !newFlight.OffersClass(newClass) {
		return nil, 0, fmt.Errorf("flight %s does not offer %s: %w", newFlight.FlightNumber, newClass, domain.ErrInvalidClass)
	}
	if !sameSeat && !newFlight.IsClassAvailable(newClass) {
		return nil, 0, fmt.Errorf("no %s seats left on flight %s: %w", newClass.Label(), newFlight.FlightNumber, domain.ErrCapacityExceeded)
	}
	if newFlightID != oldFlightID && customer.HasActiveBookingForFlight(newFlight.ID, resolve) {
		return nil, 0, fmt.Errorf("customer %d already holds an active booking on flight %s: %w", customerID, newFlight.FlightNumber, domain.ErrDuplicateEntity)
	}

	// The rebook fee replaces the cancellation fee on the old booking.
	stored := l.bookings[oldBooking.ID]
	if err := stored.Cancel(0); err != nil {
		return nil, 0, err
	}
	stored.RebookFee = fee
	l.releaseLegsLocked(stored)

	newFare, err := newFlight.PriceForClass(newClass, asOf, l.pricing)
	if err != nil {
		return nil, 0, err
	}
	if err := newFlight.ReserveSeat(newClass); err != nil {
		return nil, 0, err
	}

	b := &domain.Booking{
		ID:               l.nextBookingID,
		Reference:        uuid.NewString(),
		CustomerID:       customerID,
		OutboundFlightID: newFlight.ID,
		Class:            newClass,
		OutboundPrice:    newFare,
		MealID:           stored.MealID,
		MealPrice:        stored.MealPrice,
		BookingDate:      asOf,
	}
	l.nextBookingID++
	l.bookings[b.ID] = b
	customer.AddBooking(b.ID)

	out := *b
	return &out, fee, nil
}

// ---- ordering helpers ----

func sortFlights(fs []domain.Flight) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].ID < fs[j].ID })
}

func sortCustomers(cs []domain.Customer) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
}

func sortMeals(ms []domain.Meal) {
	sort.Slice(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID })
}

func sortBookings(bs []domain.Booking) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].ID < bs[j].ID })
}
