package booking

import (
	"context"
	"log"
	"time"

	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/kafka"
	"github.com/openfare/fareledger/internal/ledger"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*BookingResult, error)
	Cancel(ctx context.Context, customerID, flightID int64) (*BookingResult, error)
	Rebook(ctx context.Context, input RebookInput) (*BookingResult, error)
	RebookQuote(ctx context.Context, input RebookInput) (float64, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID int64) ([]domain.Booking, error)
}

// Store persists full ledger snapshots.
type Store interface {
	Save(ctx context.Context, s *ledger.Snapshot) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type BookInput struct {
	CustomerID       int64             `json:"customer_id"`
	OutboundFlightID int64             `json:"outbound_flight_id"`
	ReturnFlightID   int64             `json:"return_flight_id"`
	Class            domain.CabinClass `json:"class"`
	MealID           int64             `json:"meal_id"`
}

type RebookInput struct {
	CustomerID  int64             `json:"customer_id"`
	OldFlightID int64             `json:"old_flight_id"`
	NewFlightID int64             `json:"new_flight_id"`
	NewClass    domain.CabinClass `json:"new_class"`
}

// BookingResult carries the applied booking plus durability. A store
// failure never rolls back the applied in-memory state; Durable=false with
// StoreError tells the caller the change is applied but not yet durable.
type BookingResult struct {
	Booking    *domain.Booking `json:"booking"`
	Durable    bool            `json:"durable"`
	StoreError string          `json:"store_error,omitempty"`
}

type BookingService struct {
	ledger             *ledger.Ledger
	store              Store
	producer           Producer
	cache              Cache
	eventsTopic        string
	notificationsTopic string
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the system clock; every time-sensitive ledger call
// receives its asOf from here, never from process-wide state.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(l *ledger.Ledger, store Store, producer Producer, cache Cache, eventsTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		ledger:      l,
		store:       store,
		producer:    producer,
		cache:       cache,
		eventsTopic: eventsTopic,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Book(ctx context.Context, input BookInput) (*BookingResult, error) {
	asOf := s.now()
	b, err := s.ledger.Book(ledger.BookingRequest{
		CustomerID:       input.CustomerID,
		OutboundFlightID: input.OutboundFlightID,
		ReturnFlightID:   input.ReturnFlightID,
		Class:            input.Class,
		MealID:           input.MealID,
	}, asOf)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", b, 0, asOf)
	return s.finish(ctx, b), nil
}

func (s *BookingService) Cancel(ctx context.Context, customerID, flightID int64) (*BookingResult, error) {
	asOf := s.now()
	b, err := s.ledger.CancelBooking(customerID, flightID, asOf)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", b, b.CancellationFee, asOf)
	return s.finish(ctx, b), nil
}

func (s *BookingService) Rebook(ctx context.Context, input RebookInput) (*BookingResult, error) {
	asOf := s.now()
	b, fee, err := s.ledger.Rebook(input.CustomerID, input.OldFlightID, input.NewFlightID, input.NewClass, asOf)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_rebooked", b, fee, asOf)
	return s.finish(ctx, b), nil
}

func (s *BookingService) RebookQuote(ctx context.Context, input RebookInput) (float64, error) {
	return s.ledger.RebookQuote(input.CustomerID, input.OldFlightID, input.NewFlightID, input.NewClass, s.now())
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.ledger.GetBooking(id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.ledger.ListBookings(), nil
}

func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.ledger.ListCustomerBookings(customerID)
}

// finish invalidates the flight cache and persists the snapshot. The
// operation stays logically complete when the store fails; the result just
// records that it is not durable yet.
func (s *BookingService) finish(ctx context.Context, b *domain.Booking) *BookingResult {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flight cache: %v", err)
		}
	}

	result := &BookingResult{Booking: b, Durable: true}
	if s.store == nil {
		return result
	}
	if err := s.store.Save(ctx, s.ledger.Export()); err != nil {
		log.Printf("WARNING: booking %s applied but snapshot store failed: %v", b.Reference, err)
		result.Durable = false
		result.StoreError = err.Error()
	}
	return result
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking, fee float64, asOf time.Time) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		Reference:      b.Reference,
		BookingID:      b.ID,
		CustomerID:     b.CustomerID,
		FlightID:       b.OutboundFlightID,
		ReturnFlightID: b.ReturnFlightID,
		Class:          string(b.Class),
		TotalPrice:     b.TotalPrice(),
		Fee:            fee,
		OccurredAt:     asOf,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, b.Reference, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, b.Reference, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.Reference, event); err != nil {
			log.Printf("WARNING: failed to publish notification for booking %s: %v", b.Reference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
