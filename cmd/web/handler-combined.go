package main

import (
	"net/http"

	"github.com/ahertta/readyday/internal/advisor"
)

// combinedRequest is the flat union of the proxy and environment fields.
type combinedRequest struct {
	advisor.Proxy
	advisor.EnvironmentInput
}

// combinedReadinessPOST merges a readiness assessment with environmental
// pressure and persists both records.
func (app *application) combinedReadinessPOST(w http.ResponseWriter, r *http.Request) {
	var req combinedRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	combined, err := app.advisorService.AssessCombined(r.Context(), req.Proxy, req.EnvironmentInput)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, combined)
}

// historyGET returns both record streams in one payload.
func (app *application) historyGET(w http.ResponseWriter, r *http.Request) {
	history, err := app.advisorService.FullHistory(r.Context(), parseLimitParam(r))
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, history)
}
