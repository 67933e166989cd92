package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VisitedPlace records one visit to a place during the surveyed day.
// A trip references at most two visited places (origin and destination)
// but never owns them — the same place visit can anchor several trips.
type VisitedPlace struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name,omitempty"`
	Activity   string     `json:"activity,omitempty"`
	Geography  *Geography `json:"geography,omitempty"`
	ArrivedAt  *time.Time `json:"arrivedAt,omitempty"`
	DepartedAt *time.Time `json:"departedAt,omitempty"`
}

// Geography is a WGS84 point.
type Geography struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// ValidateVisitedPlaceParams inspects an untrusted visited-place attribute
// bag in the same accumulating, never-throwing style as ValidateTripParams.
// All keys are optional; present keys must have the right shallow shape.
func ValidateVisitedPlaceParams(params Params) []error {
	errs := ValidateUUIDParams(params)

	if v, ok := params["name"]; ok && !isString(v) {
		errs = append(errs, errors.New("BaseVisitedPlace validateParams: name should be a string"))
	}
	if v, ok := params["activity"]; ok && !isString(v) {
		errs = append(errs, errors.New("BaseVisitedPlace validateParams: activity should be a string"))
	}
	if v, ok := params["geography"]; ok && !isObject(v) {
		errs = append(errs, errors.New("BaseVisitedPlace validateParams: geography should be an object"))
	}

	return errs
}
