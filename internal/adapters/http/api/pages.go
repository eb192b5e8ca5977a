package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// PagesHandler serves the year, country, sport, comparison, host and HDI pages.
type PagesHandler struct {
	deps Dependencies
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(deps Dependencies) *PagesHandler {
	return &PagesHandler{deps: deps}
}

// HandleYear handles GET /api/v1/years/{year}.
func (h *PagesHandler) HandleYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: year", ErrBadRequest))
		return
	}
	sum, err := h.deps.YearSummary(r.Context(), year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// HandleCountry handles GET /api/v1/countries/{noc}. NOC codes are matched upper-cased.
func (h *PagesHandler) HandleCountry(w http.ResponseWriter, r *http.Request) {
	noc := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["noc"]))
	p, err := h.deps.CountryProfile(r.Context(), noc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleSport handles GET /api/v1/sports/{sport}.
func (h *PagesHandler) HandleSport(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.SportProfile(r.Context(), strings.TrimSpace(mux.Vars(r)["sport"]))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleCompare handles GET /api/v1/compare?a=&b=.
func (h *PagesHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a := strings.ToUpper(strings.TrimSpace(q.Get("a")))
	b := strings.ToUpper(strings.TrimSpace(q.Get("b")))
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: a and b are required", ErrBadRequest))
		return
	}
	cmp, err := h.deps.Compare(r.Context(), a, b)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// HandleHosts handles GET /api/v1/hosts.
func (h *PagesHandler) HandleHosts(w http.ResponseWriter, r *http.Request) {
	ha, err := h.deps.HostAnalysis(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ha)
}

// HandleHDI handles GET /api/v1/hdi?year=&sport=.
func (h *PagesHandler) HandleHDI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := intParam(q, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	an, err := h.deps.HDIAnalysis(r.Context(), year, strings.TrimSpace(q.Get("sport")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, an)
}
