package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ahertta/readyday/internal/advisor"
	"github.com/ahertta/readyday/internal/errors"
)

// maxRequestBodyBytes bounds JSON request bodies.
const maxRequestBodyBytes = 1 << 20

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError,
		map[string]string{"error": http.StatusText(http.StatusInternalServerError)})
}

// clientError answers a 4xx with a JSON error body.
func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, map[string]string{"error": message})
}

// domainError maps known domain errors to status codes and everything else to
// a 500.
func (app *application) domainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, advisor.ErrInvalidInput):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, advisor.ErrNotFound):
		app.clientError(w, r, http.StatusNotFound, "not found")
	default:
		app.serverError(w, r, err)
	}
}

// readJSON decodes the request body into dst. Returns false after answering
// a 400 when the body is not valid JSON for dst.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "write response", errors.SlogError(err))
	}
}

// parseLimitParam parses the optional "limit" query parameter. Zero means
// the caller did not ask for a specific limit.
func parseLimitParam(r *http.Request) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0
	}
	return limit
}
