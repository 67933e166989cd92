package service

import (
	"context"
	"fmt"

	"github.com/odtrace/survey-api/internal/domain"
	"github.com/odtrace/survey-api/internal/repo"
)

// ExportService assembles a flat export of all trips, one row per segment.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per segment across all trips, in trip order
// then segment order. Trips with no segments contribute one row with empty
// segment fields so every surveyed trip appears in the output.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		base := domain.ExportRow{TripID: trip.ID}
		if trip.Origin != nil {
			base.OriginName = trip.Origin.Name
		}
		if trip.Destination != nil {
			base.DestinationName = trip.Destination.Name
		}

		if len(trip.Segments) == 0 {
			rows = append(rows, base)
			continue
		}
		for i, seg := range trip.Segments {
			row := base
			idx := i
			row.SegmentIndex = &idx
			if seg != nil {
				row.Mode = seg.Mode
				row.DistanceMeters = seg.DistanceMeters
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}
