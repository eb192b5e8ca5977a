// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	service "github.com/okian/olympus/internal/app"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
	"github.com/okian/olympus/pkg/logger"
)

const defaultMaxTableLimit = 250

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	FilterOptions(ctx context.Context) (model.FilterOptions, error)
	Overview(ctx context.Context) (types.Overview, error)
	MedalTable(ctx context.Context, q types.MedalTableQuery) (types.MedalTable, error)
	YearSummary(ctx context.Context, year int) (types.YearSummary, error)
	CountryProfile(ctx context.Context, noc string) (types.CountryProfile, error)
	SportProfile(ctx context.Context, sport string) (types.SportProfile, error)
	Compare(ctx context.Context, a, b string) (types.Comparison, error)
	HostAnalysis(ctx context.Context) (types.HostAnalysis, error)
	HDIAnalysis(ctx context.Context, year int, sport string) (types.HDIAnalysis, error)
}

// Entry mirrors the row shape of medal tables.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	medalsHandler *MedalsHandler
	pagesHandler  *PagesHandler
}

// Option configures a Server.
type Option func(*options)

type options struct {
	maxLimit int
}

// WithMaxTableLimit caps the limit parameter of medal table requests.
func WithMaxTableLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLimit = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := options{maxLimit: defaultMaxTableLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		medalsHandler: NewMedalsHandler(deps, o.maxLimit),
		pagesHandler:  NewPagesHandler(deps),
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	r.Use(RequestIDMiddleware)

	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	r.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/filters", MetricsMiddleware(s.medalsHandler.HandleFilters, "filters")).Methods(http.MethodGet)
	v1.HandleFunc("/overview", MetricsMiddleware(s.medalsHandler.HandleOverview, "overview")).Methods(http.MethodGet)
	v1.HandleFunc("/medals/export.xlsx", MetricsMiddleware(s.medalsHandler.HandleExport, "medals_export")).Methods(http.MethodGet)
	v1.HandleFunc("/medals", MetricsMiddleware(s.medalsHandler.HandleMedalTable, "medals")).Methods(http.MethodGet)
	v1.HandleFunc("/years/{year:[0-9]+}", MetricsMiddleware(s.pagesHandler.HandleYear, "year")).Methods(http.MethodGet)
	v1.HandleFunc("/countries/{noc}", MetricsMiddleware(s.pagesHandler.HandleCountry, "country")).Methods(http.MethodGet)
	v1.HandleFunc("/sports/{sport}", MetricsMiddleware(s.pagesHandler.HandleSport, "sport")).Methods(http.MethodGet)
	v1.HandleFunc("/compare", MetricsMiddleware(s.pagesHandler.HandleCompare, "compare")).Methods(http.MethodGet)
	v1.HandleFunc("/hosts", MetricsMiddleware(s.pagesHandler.HandleHosts, "hosts")).Methods(http.MethodGet)
	v1.HandleFunc("/hdi", MetricsMiddleware(s.pagesHandler.HandleHDI, "hdi")).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", nil)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	})
	// mux does not inherit these into subrouters.
	for _, router := range []*mux.Router{r, v1} {
		router.NotFoundHandler = notFound
		router.MethodNotAllowedHandler = methodNotAllowed
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service sentinels to HTTP statuses and logs the
// failure under the request id.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, ErrBadRequest):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrNotStarted):
		status, code = http.StatusServiceUnavailable, "unavailable"
	}

	fields := []logger.Field{
		logger.String("request_id", RequestID(r.Context())),
		logger.String("path", r.URL.Path),
		logger.Int("status", status),
		logger.Error(err),
	}
	log := logger.Get().Named("api")
	if status >= http.StatusInternalServerError {
		log.Error(r.Context(), "request failed", fields...)
	} else {
		log.Debug(r.Context(), "request rejected", fields...)
	}
	writeError(w, status, code, err)
}
