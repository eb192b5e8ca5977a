// Package site serves the embedded single-page dashboard.
package site

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// Register attaches the dashboard at / to r. It is a catch-all, so it must be
// registered after every other route.
func Register(_ context.Context, r *mux.Router) {
	if r == nil {
		panic("router is nil")
	}

	files := http.FileServer(FS())
	r.PathPrefix("/").Handler(files).Methods(http.MethodGet, http.MethodHead)
}
