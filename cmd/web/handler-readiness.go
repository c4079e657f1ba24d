package main

import (
	"net/http"

	"github.com/ahertta/readyday/internal/advisor"
)

// readinessPOST assesses readiness from raw proxy values and persists the
// assessment for the session user.
func (app *application) readinessPOST(w http.ResponseWriter, r *http.Request) {
	var proxy advisor.Proxy
	if !app.readJSON(w, r, &proxy) {
		return
	}

	record, err := app.advisorService.Assess(r.Context(), proxy)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, record)
}

// checkInPOST assesses readiness from a 1-5 check-in.
func (app *application) checkInPOST(w http.ResponseWriter, r *http.Request) {
	var checkIn advisor.CheckIn
	if !app.readJSON(w, r, &checkIn) {
		return
	}

	record, err := app.advisorService.AssessCheckIn(r.Context(), checkIn)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, record)
}

// readinessHistoryGET lists the session user's assessments, newest first.
func (app *application) readinessHistoryGET(w http.ResponseWriter, r *http.Request) {
	records, err := app.advisorService.AssessmentHistory(r.Context(), parseLimitParam(r))
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, records)
}
