// Package domain contains the core value objects for the OD Survey API:
// trips, visited places, segments, and statistical weights as declared by
// survey respondents. This package is imported by every other internal
// package (repo, service, handler) and depends only on uuid.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trip links an origin and a destination VisitedPlace through an ordered
// sequence of Segments. It is a plain value object: construction never
// validates and never fails. Well-formedness is reported separately, either
// by Validate on a constructed instance or by ValidateTripParams on an
// untrusted attribute bag.
//
// Trip holds references to its places and segments; it does not own their
// lifecycle. Weight entries share their WeightMethod references — many
// trips typically point at the same method.
type Trip struct {
	ID          uuid.UUID      `json:"id"`
	Weights     []Weight       `json:"weights,omitempty"`
	Origin      *VisitedPlace  `json:"origin,omitempty"`
	Destination *VisitedPlace  `json:"destination,omitempty"`
	Segments    []*Segment     `json:"segments"`
	Extended    map[string]any `json:"extended,omitempty"`

	// CreatedAt and UpdatedAt are populated by the database on persisted
	// trips. They are zero on freshly assembled value objects.
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	// valid caches the result of the last Validate call.
	// nil means Validate has never run.
	valid *bool
}

// TripAttributes is the typed attribute bag accepted by NewTrip. Recognized
// keys live as struct fields; anything else belongs in Extended, which is
// stored as given and never validated. This keeps the attribute schema open
// for survey-specific extensions without giving up static typing on the
// base fields.
type TripAttributes struct {
	ID          uuid.UUID
	Weights     []Weight
	Origin      *VisitedPlace
	Destination *VisitedPlace
	Segments    []*Segment
	Extended    map[string]any
}

// NewTrip assembles a Trip from attrs. This is a pure assembly step: no
// validation happens here and no input can make it fail. Optional fields
// stay nil when absent. A nil Segments becomes an empty slice so callers
// can always range over it.
func NewTrip(attrs TripAttributes) *Trip {
	segments := attrs.Segments
	if segments == nil {
		segments = []*Segment{}
	}
	return &Trip{
		ID:          attrs.ID,
		Weights:     attrs.Weights,
		Origin:      attrs.Origin,
		Destination: attrs.Destination,
		Segments:    segments,
		Extended:    attrs.Extended,
	}
}

// Validate checks that the trip is structurally well formed and caches the
// result for IsValid: the ID must be set and the segment sequence must be
// present with no nil entries. Nested places and segments are taken at face
// value — they were either constructed in-process or already screened by
// the params validators.
func (t *Trip) Validate() bool {
	valid := t.ID != uuid.Nil && t.Segments != nil
	for _, s := range t.Segments {
		if s == nil {
			valid = false
		}
	}
	t.valid = &valid
	return valid
}

// IsValid reports the cached tri-state validity: nil until Validate has run
// at least once, then the result of the most recent call. It never
// recomputes and has no side effects.
func (t *Trip) IsValid() *bool {
	if t.valid == nil {
		return nil
	}
	v := *t.valid
	return &v
}

// ValidateTripParams inspects an untrusted attribute bag and returns one
// error per structural problem found. It never panics and never rejects the
// bag wholesale: absent keys contribute nothing, an empty bag yields no
// errors, and every violation present is reported. Checks run in a fixed
// order — identity, origin, destination, then segments element by element —
// and the returned slice preserves that order.
//
// Checks are deliberately shallow. An origin only has to be object-shaped,
// not an actual VisitedPlace, and nested objects are never validated
// recursively. Callers wanting deeper guarantees run the per-type
// validators (ValidateVisitedPlaceParams, ValidateSegmentParams) on the
// nested bags themselves.
//
// The error strings carry the field names of the survey exchange format
// (baseOrigin, baseSegments, ...) and are matched verbatim by import audit
// tooling. Do not reword them.
func ValidateTripParams(params Params) []error {
	errs := ValidateUUIDParams(params)

	if v, ok := params["origin"]; ok && !isObject(v) {
		errs = append(errs, errors.New("BaseTrip validateParams: baseOrigin should be an object"))
	}
	if v, ok := params["destination"]; ok && !isObject(v) {
		errs = append(errs, errors.New("BaseTrip validateParams: baseDestination should be an object"))
	}
	if v, ok := params["segments"]; ok {
		elems, isSeq := sequenceOf(v)
		if !isSeq {
			errs = append(errs, errors.New("BaseTrip validateParams: baseSegments should be an array"))
		} else {
			for i, e := range elems {
				if _, isSegment := e.(*Segment); !isSegment {
					errs = append(errs, fmt.Errorf(
						"BaseTrip validateParams: baseSegments at index %d should be an instance of BaseSegment", i))
				}
			}
		}
	}

	return errs
}
