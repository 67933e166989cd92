package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Mode identifies how a segment was travelled, using the answer codes of
// the survey questionnaire.
type Mode string

const (
	ModeWalking      Mode = "walking"
	ModeCycling      Mode = "cycling"
	ModeCarDriver    Mode = "carDriver"
	ModeCarPassenger Mode = "carPassenger"
	ModeTransit      Mode = "transit"
	ModeOther        Mode = "other"
)

// Segment is one sub-leg of a trip: a single mode used between the trip's
// origin and destination. A walk-bus-walk trip has three segments.
type Segment struct {
	ID             uuid.UUID  `json:"id"`
	Mode           Mode       `json:"mode,omitempty"`
	DistanceMeters *float64   `json:"distanceMeters,omitempty"`
	DepartedAt     *time.Time `json:"departedAt,omitempty"`
	ArrivedAt      *time.Time `json:"arrivedAt,omitempty"`
}

// ValidateSegmentParams inspects an untrusted segment attribute bag in the
// same accumulating, never-throwing style as ValidateTripParams. All keys
// are optional; present keys must have the right shallow shape.
func ValidateSegmentParams(params Params) []error {
	errs := ValidateUUIDParams(params)

	if v, ok := params["mode"]; ok && !isString(v) {
		errs = append(errs, errors.New("BaseSegment validateParams: mode should be a string"))
	}
	if v, ok := params["distanceMeters"]; ok {
		if n, isNum := asNumber(v); !isNum || n < 0 {
			errs = append(errs, errors.New("BaseSegment validateParams: distanceMeters should be a non-negative number"))
		}
	}

	return errs
}
