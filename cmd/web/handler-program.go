package main

import (
	"net/http"

	"github.com/ahertta/readyday/internal/advisor"
)

// programRecommendationRequest carries a decision and the constraints to pick
// a program under.
type programRecommendationRequest struct {
	Decision    advisor.Decision    `json:"decision"`
	Constraints advisor.Constraints `json:"constraints"`
}

// programRecommendationPOST selects the training program that fits the given
// decision and constraints. Stateless, nothing is persisted.
func (app *application) programRecommendationPOST(w http.ResponseWriter, r *http.Request) {
	var req programRecommendationRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	program := advisor.RecommendProgram(req.Decision, req.Constraints)
	app.writeJSON(w, r, http.StatusOK, program)
}

// programsGET lists the catalog programs for a decision.
func (app *application) programsGET(w http.ResponseWriter, r *http.Request) {
	decision, err := advisor.ParseDecision(r.PathValue("decision"))
	if err != nil {
		app.clientError(w, r, http.StatusNotFound, "unknown decision")
		return
	}

	app.writeJSON(w, r, http.StatusOK, advisor.ProgramsFor(decision))
}
