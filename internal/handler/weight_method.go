package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/odtrace/survey-api/internal/domain"
)

// CreateWeightMethod handles POST /weight-methods.
func (s *Server) CreateWeightMethod(w http.ResponseWriter, r *http.Request) {
	var req weightMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is not valid JSON")
		return
	}

	created, err := s.methods.Create(r.Context(), domain.WeightMethod{
		ShortName:   req.ShortName,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListWeightMethods handles GET /weight-methods.
func (s *Server) ListWeightMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := s.methods.List(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, weightMethodListResponse{Data: methods})
}

// GetWeightMethod handles GET /weight-methods/{id}.
func (s *Server) GetWeightMethod(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, "weight method not found")
		return
	}

	method, err := s.methods.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "weight method not found")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, method)
}

// weightMethodRequest is the body of POST /weight-methods.
type weightMethodRequest struct {
	ShortName   string `json:"shortName"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// weightMethodListResponse wraps the method list so the envelope can grow
// (pagination, filters) without breaking clients.
type weightMethodListResponse struct {
	Data []domain.WeightMethod `json:"data"`
}
