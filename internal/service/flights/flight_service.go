package flights

import (
	"context"
	"log"
	"time"

	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/ledger"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	ListAll(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Availability(ctx context.Context, id int64, class domain.CabinClass) (int, error)
	Quote(ctx context.Context, id int64, class domain.CabinClass) (float64, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	Remove(ctx context.Context, id int64) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// Store persists full ledger snapshots after catalog mutations.
type Store interface {
	Save(ctx context.Context, s *ledger.Snapshot) error
}

type CreateFlightInput struct {
	FlightNumber    string                    `json:"flight_number"`
	Origin          string                    `json:"origin"`
	Destination     string                    `json:"destination"`
	DepartureDate   time.Time                 `json:"departure_date"`
	Type            domain.FlightType         `json:"type"`
	EconomyPrice    float64                   `json:"economy_price"`
	TotalCapacity   int                       `json:"total_capacity"`
	ClassCapacities map[domain.CabinClass]int `json:"class_capacities"`
}

type FlightService struct {
	ledger *ledger.Ledger
	store  Store
	cache  FlightCache
	now    func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

func NewFlightService(l *ledger.Ledger, store Store, cache FlightCache, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{ledger: l, store: store, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// List returns non-deleted, non-departed flights, served from the cache
// when it is warm.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.ledger.ListActiveFlights(s.now())
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			log.Printf("WARNING: failed to cache flights: %v", err)
		}
	}
	return flights, nil
}

// ListAll includes soft-deleted and departed flights, for audit views.
func (s *FlightService) ListAll(ctx context.Context) ([]domain.Flight, error) {
	return s.ledger.ListAllFlights(), nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.ledger.GetFlightIncludingDeleted(id)
}

func (s *FlightService) Availability(ctx context.Context, id int64, class domain.CabinClass) (int, error) {
	f, err := s.ledger.GetFlight(id)
	if err != nil {
		return 0, err
	}
	return f.RemainingSeatsForClass(class), nil
}

// Quote prices a seat on the flight as of now, without reserving anything.
func (s *FlightService) Quote(ctx context.Context, id int64, class domain.CabinClass) (float64, error) {
	return s.ledger.QuotePrice(id, class, s.now())
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	f, err := s.ledger.CreateFlight(input.FlightNumber, input.Origin, input.Destination, input.DepartureDate, input.Type, input.EconomyPrice, input.TotalCapacity, input.ClassCapacities)
	if err != nil {
		return nil, err
	}
	s.finish(ctx)
	return f, nil
}

func (s *FlightService) Remove(ctx context.Context, id int64) error {
	if err := s.ledger.RemoveFlight(id); err != nil {
		return err
	}
	s.finish(ctx)
	return nil
}

func (s *FlightService) finish(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flight cache: %v", err)
		}
	}
	if s.store != nil {
		if err := s.store.Save(ctx, s.ledger.Export()); err != nil {
			log.Printf("WARNING: flight change applied but snapshot store failed: %v", err)
		}
	}
}

var _ FlightUseCase = (*FlightService)(nil)
