package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/odtrace/survey-api/internal/domain"
	"github.com/odtrace/survey-api/internal/repo"
)

// WeightMethodService implements business logic for WeightMethod operations.
type WeightMethodService struct {
	repo repo.WeightMethodRepo
}

// NewWeightMethodService constructs a WeightMethodService backed by the
// provided WeightMethodRepo.
func NewWeightMethodService(r repo.WeightMethodRepo) *WeightMethodService {
	return &WeightMethodService{repo: r}
}

// Create validates and persists a new weight method.
// Returns domain.ErrValidation if input violates business rules.
func (s *WeightMethodService) Create(ctx context.Context, method domain.WeightMethod) (domain.WeightMethod, error) {
	if err := validateWeightMethod(method); err != nil {
		return domain.WeightMethod{}, err
	}
	result, err := s.repo.Create(ctx, method)
	if err != nil {
		return domain.WeightMethod{}, fmt.Errorf("service.WeightMethodService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single weight method by ID.
// Returns domain.ErrNotFound if no method with that ID exists.
func (s *WeightMethodService) GetByID(ctx context.Context, id uuid.UUID) (domain.WeightMethod, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.WeightMethod{}, fmt.Errorf("service.WeightMethodService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all weight methods ordered by short name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *WeightMethodService) List(ctx context.Context) ([]domain.WeightMethod, error) {
	methods, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WeightMethodService.List: %w", err)
	}
	if methods == nil {
		methods = []domain.WeightMethod{}
	}
	return methods, nil
}

// validateWeightMethod enforces business rules for Create.
//   - ShortName must be non-empty (whitespace-only is rejected).
//   - Name must be non-empty.
func validateWeightMethod(method domain.WeightMethod) error {
	if strings.TrimSpace(method.ShortName) == "" {
		return fmt.Errorf("%w: short_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(method.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}
