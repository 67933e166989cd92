// Package handler implements the HTTP handlers for the OD Survey API.
// All handlers are methods on Server. Methods are split into resource
// files (health.go, trip.go, weight_method.go, export.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/odtrace/survey-api/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ValidateParams(params domain.Params) []string
}

// WeightMethodServicer defines the business operations the weight-method
// handlers depend on.
type WeightMethodServicer interface {
	Create(ctx context.Context, method domain.WeightMethod) (domain.WeightMethod, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.WeightMethod, error)
	List(ctx context.Context) ([]domain.WeightMethod, error)
}

// Exporter defines the flat-export operation the export handler depends on.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server implements all API endpoints. Wire it in main.go via Routes().
type Server struct {
	trips   TripServicer
	methods WeightMethodServicer
	export  Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, methods WeightMethodServicer, export Exporter) *Server {
	return &Server{trips: trips, methods: methods, export: export}
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request ID, logging, CORS, body limits) is
// applied by main.go around this router, not here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Post("/validate", s.ValidateTrip)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
		})
	})

	r.Route("/weight-methods", func(r chi.Router) {
		r.Post("/", s.CreateWeightMethod)
		r.Get("/", s.ListWeightMethods)
		r.Get("/{id}", s.GetWeightMethod)
	})

	r.Get("/export", s.ExportTrips)

	return r
}
