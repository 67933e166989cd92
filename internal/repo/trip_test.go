package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odtrace/survey-api/internal/domain"
	"github.com/odtrace/survey-api/internal/repo"
	"github.com/odtrace/survey-api/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// TripRepo backed by it. The transaction is rolled back when the test
// finishes, giving free per-test isolation with no cleanup SQL.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx)
}

// tripFixture returns a fully populated domain.Trip for round-trip tests.
// Callers override fields after calling this.
func tripFixture() domain.Trip {
	departed := time.Date(2026, 3, 12, 8, 5, 0, 0, time.UTC)
	arrived := time.Date(2026, 3, 12, 8, 43, 0, 0, time.UTC)
	distance := 6200.0

	method := &domain.WeightMethod{
		ID:        uuid.New(),
		ShortName: "hh-exp",
		Name:      "Household expansion",
	}

	return domain.Trip{
		ID: uuid.New(),
		Origin: &domain.VisitedPlace{
			ID:         uuid.New(),
			Name:       "Home",
			Activity:   "home",
			Geography:  &domain.Geography{Longitude: -73.57, Latitude: 45.5},
			DepartedAt: &departed,
		},
		Destination: &domain.VisitedPlace{
			ID:        uuid.New(),
			Name:      "Office",
			Activity:  "workUsual",
			ArrivedAt: &arrived,
		},
		Segments: []*domain.Segment{
			{ID: uuid.New(), Mode: domain.ModeWalking},
			{ID: uuid.New(), Mode: domain.ModeTransit, DistanceMeters: &distance},
		},
		Weights: []domain.Weight{
			{Weight: 1.4, Method: method},
		},
		Extended: map[string]any{"surveyWave": "2026-spring"},
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.ID, got.ID, "ID is caller-assigned, not DB-generated")
	require.NotNil(t, got.Origin)
	assert.Equal(t, input.Origin.Name, got.Origin.Name)
	require.NotNil(t, got.Origin.Geography)
	assert.Equal(t, input.Origin.Geography.Latitude, got.Origin.Geography.Latitude)
	require.NotNil(t, got.Destination)
	assert.Equal(t, input.Destination.Activity, got.Destination.Activity)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, domain.ModeWalking, got.Segments[0].Mode)
	require.NotNil(t, got.Segments[1].DistanceMeters)
	assert.Equal(t, *input.Segments[1].DistanceMeters, *got.Segments[1].DistanceMeters)
	require.Len(t, got.Weights, 1)
	assert.Equal(t, input.Weights[0].Weight, got.Weights[0].Weight)
	require.NotNil(t, got.Weights[0].Method)
	assert.Equal(t, "hh-exp", got.Weights[0].Method.ShortName)
	assert.Equal(t, "2026-spring", got.Extended["surveyWave"])
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_MinimalTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := domain.Trip{ID: uuid.New(), Segments: []*domain.Segment{}}

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.Origin, "absent origin should stay absent")
	assert.Nil(t, got.Destination, "absent destination should stay absent")
	assert.NotNil(t, got.Segments, "segments should scan as an empty slice, not nil")
	assert.Empty(t, got.Segments)
	assert.Empty(t, got.Weights)
	assert.Empty(t, got.Extended)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, created.Segments[1].ID, got.Segments[1].ID)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	t1, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)
	t2, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := []uuid.UUID{got[0].ID, got[1].ID}
	assert.Contains(t, ids, t1.ID)
	assert.Contains(t, ids, t2.ID)
}

func TestTripRepo_ListPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, tripFixture())
		require.NoError(t, err)
	}

	page, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(3), total)

	rest, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Equal(t, int64(3), total)
}

func TestTripRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	created.Destination = nil
	created.Segments = created.Segments[:1]
	created.Extended = map[string]any{"flag": "reviewed"}

	got, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Nil(t, got.Destination, "cleared destination should persist as absent")
	assert.Len(t, got.Segments, 1)
	assert.Equal(t, "reviewed", got.Extended["flag"])
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture() // never inserted

	_, err := r.Update(ctx, input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
