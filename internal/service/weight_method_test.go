package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odtrace/survey-api/internal/domain"
	"github.com/odtrace/survey-api/internal/repo"
	"github.com/odtrace/survey-api/internal/service"
)

// mockWeightMethodRepo is a hand-written test double for repo.WeightMethodRepo.
type mockWeightMethodRepo struct {
	create  func(ctx context.Context, method domain.WeightMethod) (domain.WeightMethod, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.WeightMethod, error)
	list    func(ctx context.Context) ([]domain.WeightMethod, error)
}

func (m *mockWeightMethodRepo) Create(ctx context.Context, method domain.WeightMethod) (domain.WeightMethod, error) {
	return m.create(ctx, method)
}
func (m *mockWeightMethodRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.WeightMethod, error) {
	return m.getByID(ctx, id)
}
func (m *mockWeightMethodRepo) List(ctx context.Context) ([]domain.WeightMethod, error) {
	return m.list(ctx)
}

// compile-time check: mockWeightMethodRepo must satisfy repo.WeightMethodRepo.
var _ repo.WeightMethodRepo = (*mockWeightMethodRepo)(nil)

func methodFixture() domain.WeightMethod {
	return domain.WeightMethod{
		ShortName:   "greg",
		Name:        "GREG estimation",
		Description: "Generalized regression estimation on census margins.",
	}
}

// ---- Create tests ----------------------------------------------------------

func TestWeightMethodService_Create_Valid(t *testing.T) {
	r := &mockWeightMethodRepo{
		create: func(_ context.Context, m domain.WeightMethod) (domain.WeightMethod, error) {
			m.ID = uuid.New()
			return m, nil
		},
	}
	svc := service.NewWeightMethodService(r)

	got, err := svc.Create(context.Background(), methodFixture())

	require.NoError(t, err)
	assert.Equal(t, "greg", got.ShortName)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestWeightMethodService_Create_MissingShortName(t *testing.T) {
	svc := service.NewWeightMethodService(&mockWeightMethodRepo{})

	method := methodFixture()
	method.ShortName = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), method)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWeightMethodService_Create_MissingName(t *testing.T) {
	svc := service.NewWeightMethodService(&mockWeightMethodRepo{})

	method := methodFixture()
	method.Name = ""

	_, err := svc.Create(context.Background(), method)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- GetByID / List tests --------------------------------------------------

func TestWeightMethodService_GetByID_NotFound(t *testing.T) {
	r := &mockWeightMethodRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.WeightMethod, error) {
			return domain.WeightMethod{}, domain.ErrNotFound
		},
	}
	svc := service.NewWeightMethodService(r)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWeightMethodService_List_Empty(t *testing.T) {
	r := &mockWeightMethodRepo{
		list: func(_ context.Context) ([]domain.WeightMethod, error) { return nil, nil },
	}
	svc := service.NewWeightMethodService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
