package main

import (
	"net/http"

	"github.com/ahertta/readyday/internal/advisor"
)

// environmentInputPOST evaluates environmental conditions, persists the
// record, and returns the derived constraints.
func (app *application) environmentInputPOST(w http.ResponseWriter, r *http.Request) {
	var input advisor.EnvironmentInput
	if !app.readJSON(w, r, &input) {
		return
	}

	record, err := app.advisorService.RecordEnvironment(r.Context(), input)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, record.Impact)
}

// environmentHistoryGET lists the session user's environment records, newest
// first.
func (app *application) environmentHistoryGET(w http.ResponseWriter, r *http.Request) {
	records, err := app.advisorService.EnvironmentHistory(r.Context(), parseLimitParam(r))
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, records)
}

// environmentImpactGET recomputes the impact from the most recent stored
// environment inputs.
func (app *application) environmentImpactGET(w http.ResponseWriter, r *http.Request) {
	impact, err := app.advisorService.LatestEnvironmentImpact(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, impact)
}
