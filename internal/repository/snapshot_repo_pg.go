package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/ledger"
)

// SnapshotRepository stores and loads full ledger snapshots. The core is
// agnostic to the encoding; this implementation rewrites the whole snapshot
// in one transaction so the durable state is always a consistent cut.
type SnapshotRepository interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, s *ledger.Snapshot) error
	Load(ctx context.Context) (*ledger.Snapshot, error)
	ArchiveDepartedFlights(ctx context.Context, departedBefore time.Time) (int64, error)
}

type PGSnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) SnapshotRepository {
	return &PGSnapshotRepository{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGINT PRIMARY KEY,
		flight_number TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_date TIMESTAMPTZ NOT NULL,
		flight_type TEXT NOT NULL,
		economy_price DOUBLE PRECISION NOT NULL,
		total_capacity INT NOT NULL,
		class_capacities JSONB NOT NULL,
		occupied_seats JSONB NOT NULL,
		deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		age INT NOT NULL,
		gender TEXT NOT NULL,
		preferred_meal TEXT NOT NULL,
		deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS meals (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT PRIMARY KEY,
		reference TEXT NOT NULL,
		customer_id BIGINT NOT NULL,
		outbound_flight_id BIGINT NOT NULL,
		return_flight_id BIGINT NOT NULL,
		class TEXT NOT NULL,
		outbound_price DOUBLE PRECISION NOT NULL,
		return_price DOUBLE PRECISION NOT NULL,
		meal_id BIGINT NOT NULL,
		meal_price DOUBLE PRECISION NOT NULL,
		booking_date TIMESTAMPTZ NOT NULL,
		cancellation_fee DOUBLE PRECISION NOT NULL,
		rebook_fee DOUBLE PRECISION NOT NULL,
		cancelled BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

func (r *PGSnapshotRepository) Init(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func (r *PGSnapshotRepository) Save(ctx context.Context, s *ledger.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"bookings", "flights", "customers", "meals"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, f := range s.Flights {
		capacities, err := json.Marshal(f.ClassCapacities)
		if err != nil {
			return err
		}
		occupied, err := json.Marshal(f.OccupiedSeats)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO flights (id, flight_number, origin, destination, departure_date, flight_type, economy_price, total_capacity, class_capacities, occupied_seats, deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			f.ID, f.FlightNumber, f.Origin, f.Destination, f.DepartureDate, f.Type, f.EconomyPrice, f.TotalCapacity, capacities, occupied, f.Deleted); err != nil {
			return err
		}
	}
	for _, c := range s.Customers {
		if _, err := tx.Exec(ctx, `INSERT INTO customers (id, name, email, phone, age, gender, preferred_meal, deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID, c.Name, c.Email, c.Phone, c.Age, c.Gender, c.PreferredMeal, c.Deleted); err != nil {
			return err
		}
	}
	for _, m := range s.Meals {
		if _, err := tx.Exec(ctx, `INSERT INTO meals (id, name, description, price, category, deleted)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, m.Name, m.Description, m.Price, m.Category, m.Deleted); err != nil {
			return err
		}
	}
	for _, b := range s.Bookings {
		if _, err := tx.Exec(ctx, `INSERT INTO bookings (id, reference, customer_id, outbound_flight_id, return_flight_id, class, outbound_price, return_price, meal_id, meal_price, booking_date, cancellation_fee, rebook_fee, cancelled)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			b.ID, b.Reference, b.CustomerID, b.OutboundFlightID, b.ReturnFlightID, b.Class, b.OutboundPrice, b.ReturnPrice, b.MealID, b.MealPrice, b.BookingDate, b.CancellationFee, b.RebookFee, b.Cancelled); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGSnapshotRepository) Load(ctx context.Context) (*ledger.Snapshot, error) {
	s := &ledger.Snapshot{}

	rows, err := r.db.Query(ctx, `SELECT id, flight_number, origin, destination, departure_date, flight_type, economy_price, total_capacity, class_capacities, occupied_seats, deleted FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var f domain.Flight
		var capacities, occupied []byte
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.Origin, &f.Destination, &f.DepartureDate, &f.Type, &f.EconomyPrice, &f.TotalCapacity, &capacities, &occupied, &f.Deleted); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(capacities, &f.ClassCapacities); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(occupied, &f.OccupiedSeats); err != nil {
			return nil, err
		}
		if f.OccupiedSeats == nil {
			f.OccupiedSeats = make(map[domain.CabinClass]int)
		}
		s.Flights = append(s.Flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `SELECT id, name, email, phone, age, gender, preferred_meal, deleted FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Age, &c.Gender, &c.PreferredMeal, &c.Deleted); err != nil {
			return nil, err
		}
		s.Customers = append(s.Customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `SELECT id, name, description, price, category, deleted FROM meals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Deleted); err != nil {
			return nil, err
		}
		s.Meals = append(s.Meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `SELECT id, reference, customer_id, outbound_flight_id, return_flight_id, class, outbound_price, return_price, meal_id, meal_price, booking_date, cancellation_fee, rebook_fee, cancelled FROM bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.OutboundFlightID, &b.ReturnFlightID, &b.Class, &b.OutboundPrice, &b.ReturnPrice, &b.MealID, &b.MealPrice, &b.BookingDate, &b.CancellationFee, &b.RebookFee, &b.Cancelled); err != nil {
			return nil, err
		}
		s.Bookings = append(s.Bookings, b)
	}
	return s, rows.Err()
}

// ArchiveDepartedFlights marks flights that departed before the cutoff as
// deleted in the durable snapshot. Used by the worker's archival sweep.
func (r *PGSnapshotRepository) ArchiveDepartedFlights(ctx context.Context, departedBefore time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE flights SET deleted = TRUE WHERE deleted = FALSE AND departure_date < $1`, departedBefore)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

var _ SnapshotRepository = (*PGSnapshotRepository)(nil)
