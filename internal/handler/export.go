package handler

import (
	"net/http"

	"github.com/odtrace/survey-api/internal/domain"
)

// ExportTrips handles GET /export, returning the flat one-row-per-segment
// export of every trip in the survey.
func (s *Server) ExportTrips(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exportResponse{Data: rows})
}

// exportResponse wraps the export rows.
type exportResponse struct {
	Data []domain.ExportRow `json:"data"`
}
