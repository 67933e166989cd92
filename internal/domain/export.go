package domain

import "github.com/google/uuid"

// ExportRow is one line of the flat survey export: one row per segment,
// with the trip and place context repeated on every row so the output loads
// straight into analysis tools. Trips without segments still contribute a
// single row (with no segment fields) so they are not silently dropped.
type ExportRow struct {
	TripID          uuid.UUID `json:"tripId"`
	OriginName      string    `json:"originName,omitempty"`
	DestinationName string    `json:"destinationName,omitempty"`
	SegmentIndex    *int      `json:"segmentIndex,omitempty"`
	Mode            Mode      `json:"mode,omitempty"`
	DistanceMeters  *float64  `json:"distanceMeters,omitempty"`
}
