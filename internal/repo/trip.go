// Package repo contains all database access logic for the OD Survey API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
//
// Trips are stored as one row per trip with the nested value objects
// (origin, destination, segments, weights, extended attributes) in jsonb
// columns: the trip value object is the unit of storage and the nested
// objects are never updated independently, so normalizing them buys nothing.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/odtrace/survey-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated created_at and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by created_at descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListPaged returns one page of trips ordered by created_at descending,
	// plus the total trip count for the pagination envelope.
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if the trip does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, origin, destination, segments, weights, extended, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
// The ID is supplied by the caller (the service generates one when absent)
// because trip identity is assigned at interview time, not insert time.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (id, origin, destination, segments, weights, extended)
		VALUES (@id, @origin, @destination, @segments, @weights, @extended)
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by created_at descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListPaged returns one page of trips plus the total count.
func (r *pgTripRepo) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	return trips, total, nil
}

// Update overwrites the payload columns of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET origin      = @origin,
		    destination = @destination,
		    segments    = @segments,
		    weights     = @weights,
		    extended    = @extended,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs builds the NamedArgs for Create and Update, marshalling the
// nested value objects into their jsonb columns. Absent optional fields
// become SQL NULL rather than a JSON null literal.
func tripArgs(trip domain.Trip) (pgx.NamedArgs, error) {
	segments := trip.Segments
	if segments == nil {
		segments = []*domain.Segment{}
	}
	segJSON, err := json.Marshal(segments)
	if err != nil {
		return nil, fmt.Errorf("marshal segments: %w", err)
	}

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"origin":      nil,
		"destination": nil,
		"segments":    segJSON,
		"weights":     nil,
		"extended":    nil,
	}

	if trip.Origin != nil {
		if args["origin"], err = json.Marshal(trip.Origin); err != nil {
			return nil, fmt.Errorf("marshal origin: %w", err)
		}
	}
	if trip.Destination != nil {
		if args["destination"], err = json.Marshal(trip.Destination); err != nil {
			return nil, fmt.Errorf("marshal destination: %w", err)
		}
	}
	if len(trip.Weights) > 0 {
		if args["weights"], err = json.Marshal(trip.Weights); err != nil {
			return nil, fmt.Errorf("marshal weights: %w", err)
		}
	}
	if len(trip.Extended) > 0 {
		if args["extended"], err = json.Marshal(trip.Extended); err != nil {
			return nil, fmt.Errorf("marshal extended: %w", err)
		}
	}

	return args, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip, unmarshalling the
// jsonb payload columns. NULL payloads scan as nil byte slices and leave the
// corresponding field absent.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t           domain.Trip
		id          pgtype.UUID
		origin      []byte
		destination []byte
		segments    []byte
		weights     []byte
		extended    []byte
	)

	err := s.Scan(&id, &origin, &destination, &segments, &weights, &extended, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)

	if origin != nil {
		if err := json.Unmarshal(origin, &t.Origin); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal origin: %w", err)
		}
	}
	if destination != nil {
		if err := json.Unmarshal(destination, &t.Destination); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal destination: %w", err)
		}
	}
	t.Segments = []*domain.Segment{}
	if segments != nil {
		if err := json.Unmarshal(segments, &t.Segments); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal segments: %w", err)
		}
	}
	if weights != nil {
		if err := json.Unmarshal(weights, &t.Weights); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal weights: %w", err)
		}
	}
	if extended != nil {
		if err := json.Unmarshal(extended, &t.Extended); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal extended: %w", err)
		}
	}

	return t, nil
}

// collectTrips drains rows into a slice, surfacing both scan and iteration errors.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}
