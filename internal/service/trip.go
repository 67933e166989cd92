// Package service contains the business logic for the OD Survey API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/odtrace/survey-api/internal/domain"
	"github.com/odtrace/survey-api/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create persists a new trip. A zero ID is replaced with a freshly
// generated one — interview tooling usually assigns ids itself, but ad hoc
// API clients are allowed not to. Returns domain.ErrValidation when the
// trip violates business rules (see validateTrip).
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// ValidateParams runs the structural trip validator over an untrusted
// attribute bag and returns the messages as strings, ready for the HTTP
// response. The returned slice is always non-nil so it serializes as a JSON
// array, never null. No exception channel exists here: malformed input is
// reported, not thrown.
func (s *TripService) ValidateParams(params domain.Params) []string {
	errs := domain.ValidateTripParams(params)
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return msgs
}

// validateTrip enforces business rules common to both Create and Update.
//   - The ID must be set (Create generates one before calling this).
//   - The segment sequence must be present with no nil entries.
//   - Every weight entry must reference a weight method.
//
// Nested value objects are otherwise stored as given; structural screening
// of untrusted input happens earlier, through ValidateParams.
func validateTrip(trip domain.Trip) error {
	if trip.ID == uuid.Nil {
		return fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if trip.Segments == nil {
		return fmt.Errorf("%w: segments are required", domain.ErrValidation)
	}
	for i, seg := range trip.Segments {
		if seg == nil {
			return fmt.Errorf("%w: segment at index %d is null", domain.ErrValidation, i)
		}
	}
	for _, w := range trip.Weights {
		if w.Method == nil {
			return fmt.Errorf("%w: weight method is required", domain.ErrValidation)
		}
	}
	return nil
}
