package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/odtrace/survey-api/internal/domain"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is not valid JSON")
		return
	}

	created, err := s.trips.Create(r.Context(), req.toTrip(uuid.Nil))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is not valid JSON")
		return
	}

	updated, err := s.trips.Update(r.Context(), req.toTrip(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ValidateTrip handles POST /trips/validate: a dry-run structural check of
// an arbitrary trip attribute bag. Shape problems are data here, not
// failures — the response is always 200 with the error list, empty when
// the bag is clean. Only unparseable JSON earns a 400.
func (s *Server) ValidateTrip(w http.ResponseWriter, r *http.Request) {
	var params domain.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeBadRequest(w, "request body is not a JSON object")
		return
	}

	reviveSegments(params)

	writeJSON(w, http.StatusOK, validateResponse{Errors: s.trips.ValidateParams(params)})
}

// --- request/response types -------------------------------------------------

// tripRequest is the body of POST /trips and PUT /trips/{id}. Nested value
// objects reuse the domain types directly; unrecognized top-level keys are
// not accepted loose here — clients put them under "extended".
type tripRequest struct {
	ID          *openapi_types.UUID   `json:"id,omitempty"`
	Weights     []domain.Weight       `json:"weights,omitempty"`
	Origin      *domain.VisitedPlace  `json:"origin,omitempty"`
	Destination *domain.VisitedPlace  `json:"destination,omitempty"`
	Segments    []*domain.Segment     `json:"segments"`
	Extended    map[string]any        `json:"extended,omitempty"`
}

// toTrip assembles the domain value object. pathID wins over a body id so
// PUT /trips/{id} cannot re-identify a trip; uuid.Nil means "no path id"
// (POST), in which case the body id, if any, is used.
func (req tripRequest) toTrip(pathID uuid.UUID) domain.Trip {
	attrs := domain.TripAttributes{
		Weights:     req.Weights,
		Origin:      req.Origin,
		Destination: req.Destination,
		Segments:    req.Segments,
		Extended:    req.Extended,
	}
	switch {
	case pathID != uuid.Nil:
		attrs.ID = pathID
	case req.ID != nil:
		attrs.ID = *req.ID
	}
	return *domain.NewTrip(attrs)
}

// tripResponse is the wire form of a persisted trip.
type tripResponse struct {
	ID          openapi_types.UUID   `json:"id"`
	Weights     []domain.Weight      `json:"weights,omitempty"`
	Origin      *domain.VisitedPlace `json:"origin,omitempty"`
	Destination *domain.VisitedPlace `json:"destination,omitempty"`
	Segments    []*domain.Segment    `json:"segments"`
	Extended    map[string]any       `json:"extended,omitempty"`
	CreatedAt   string               `json:"createdAt"`
	UpdatedAt   string               `json:"updatedAt"`
}

func tripToResponse(t domain.Trip) tripResponse {
	segments := t.Segments
	if segments == nil {
		segments = []*domain.Segment{}
	}
	return tripResponse{
		ID:          t.ID,
		Weights:     t.Weights,
		Origin:      t.Origin,
		Destination: t.Destination,
		Segments:    segments,
		Extended:    t.Extended,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// tripListResponse is the paged envelope of GET /trips.
type tripListResponse struct {
	Data       []tripResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// validateResponse is the body of POST /trips/validate.
type validateResponse struct {
	Errors []string `json:"errors"`
}

// --- helpers ----------------------------------------------------------------

// pathUUID parses the {id} path parameter, writing a 404 when it is not a
// UUID: an unparseable id can never name an existing trip, and exposing a
// different status would leak routing details.
func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, "trip not found")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns the named query parameter as *int, or nil when absent
// or not a number. Pagination treats nil as "use the default".
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// reviveSegments replaces JSON-object elements of the segments array with
// real Segment instances when they pass the per-segment structural checks.
// JSON cannot carry instances, so without this step every element arriving
// over HTTP would fail the instance check and the endpoint would be
// useless. Elements that are not objects, or whose own params are
// malformed, are left raw for the trip validator to report.
func reviveSegments(params domain.Params) {
	raw, ok := params["segments"].([]any)
	if !ok {
		return
	}
	for i, e := range raw {
		obj, isObj := e.(map[string]any)
		if !isObj {
			continue
		}
		if len(domain.ValidateSegmentParams(domain.Params(obj))) > 0 {
			continue
		}
		seg, err := segmentFromObject(obj)
		if err != nil {
			continue
		}
		raw[i] = seg
	}
}

// segmentFromObject round-trips a decoded JSON object into a Segment.
func segmentFromObject(obj map[string]any) (*domain.Segment, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var seg domain.Segment
	if err := json.Unmarshal(b, &seg); err != nil {
		return nil, err
	}
	return &seg, nil
}
