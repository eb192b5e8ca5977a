package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/olympus/internal/adapters/export"
	"github.com/okian/olympus/internal/domain/medals"
	"github.com/okian/olympus/internal/domain/model"
	"github.com/okian/olympus/internal/domain/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MedalsHandler serves the filter options, the overview and medal tables.
type MedalsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewMedalsHandler creates a new medals handler. maxLimit caps the limit parameter.
func NewMedalsHandler(deps Dependencies, maxLimit int) *MedalsHandler {
	return &MedalsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleFilters handles GET /api/v1/filters.
func (h *MedalsHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.deps.FilterOptions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// HandleOverview handles GET /api/v1/overview.
func (h *MedalsHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.deps.Overview(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

// HandleMedalTable handles GET /api/v1/medals?year=&season=&sport=&by=&limit=.
func (h *MedalsHandler) HandleMedalTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// HandleExport handles GET /api/v1/medals/export.xlsx with the same filters as
// HandleMedalTable and returns the table as a workbook.
func (h *MedalsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteMedalTable(&buf, table); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="medal-table.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// table parses the query and runs it, writing the error response on failure.
func (h *MedalsHandler) table(w http.ResponseWriter, r *http.Request) (types.MedalTable, bool) {
	q, err := h.parseQuery(r.URL.Query())
	if err != nil {
		code := "bad_request"
		if errors.Is(err, ErrLimitExceeded) {
			code = "limit_exceeded"
		}
		writeError(w, http.StatusBadRequest, code, err)
		return types.MedalTable{}, false
	}
	table, err := h.deps.MedalTable(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err)
		return types.MedalTable{}, false
	}
	return table, true
}

func (h *MedalsHandler) parseQuery(v url.Values) (types.MedalTableQuery, error) {
	var q types.MedalTableQuery
	var err error

	if q.Year, err = intParam(v, "year"); err != nil {
		return q, err
	}
	if q.Limit, err = intParam(v, "limit"); err != nil {
		return q, err
	}
	if q.Limit > h.maxLimit {
		return q, fmt.Errorf("%w: limit %d is above %d", ErrLimitExceeded, q.Limit, h.maxLimit)
	}
	if raw := strings.TrimSpace(v.Get("season")); raw != "" {
		if q.Season = model.ParseSeason(raw); q.Season == model.SeasonUnknown {
			return q, fmt.Errorf("%w: season %q", ErrBadRequest, raw)
		}
	}
	if raw := strings.TrimSpace(v.Get("by")); raw != "" {
		if q.Unit, err = medals.ParseUnit(raw); err != nil {
			return q, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
	}
	q.Sport = strings.TrimSpace(v.Get("sport"))
	return q, nil
}

// intParam parses a non-negative integer parameter; absent means 0.
func intParam(v url.Values, name string) (int, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrBadRequest, name)
	}
	return n, nil
}
