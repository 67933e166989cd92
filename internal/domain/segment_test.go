package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odtrace/survey-api/internal/domain"
)

func TestValidateSegmentParams_EmptyBag(t *testing.T) {
	errs := domain.ValidateSegmentParams(domain.Params{})

	assert.Empty(t, errs)
}

func TestValidateSegmentParams_Valid(t *testing.T) {
	errs := domain.ValidateSegmentParams(domain.Params{
		"id":             validUUIDStr,
		"mode":           "transit",
		"distanceMeters": 420.5,
	})

	assert.Empty(t, errs)
}

// TestValidateSegmentParams_IntDistance verifies that in-process bags may
// carry integer distances; JSON decodes always produce float64 but Go
// callers rarely bother.
func TestValidateSegmentParams_IntDistance(t *testing.T) {
	errs := domain.ValidateSegmentParams(domain.Params{"distanceMeters": 1200})

	assert.Empty(t, errs)
}

func TestValidateSegmentParams_AllInvalid(t *testing.T) {
	errs := domain.ValidateSegmentParams(domain.Params{
		"id":             "nope",
		"mode":           7,
		"distanceMeters": -1.0,
	})

	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], "Uuidable validateParams: invalid uuid")
	assert.EqualError(t, errs[1], "BaseSegment validateParams: mode should be a string")
	assert.EqualError(t, errs[2], "BaseSegment validateParams: distanceMeters should be a non-negative number")
}

func TestValidateVisitedPlaceParams_Valid(t *testing.T) {
	errs := domain.ValidateVisitedPlaceParams(domain.Params{
		"id":        validUUIDStr,
		"name":      "home",
		"activity":  "home",
		"geography": map[string]any{"longitude": -73.57, "latitude": 45.5},
	})

	assert.Empty(t, errs)
}

func TestValidateVisitedPlaceParams_AllInvalid(t *testing.T) {
	errs := domain.ValidateVisitedPlaceParams(domain.Params{
		"name":      42,
		"activity":  []string{"work"},
		"geography": "45.5,-73.57",
	})

	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], "BaseVisitedPlace validateParams: name should be a string")
	assert.EqualError(t, errs[1], "BaseVisitedPlace validateParams: activity should be a string")
	assert.EqualError(t, errs[2], "BaseVisitedPlace validateParams: geography should be an object")
}
