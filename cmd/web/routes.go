package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(commonContext(next)))
		}
		session = func(next http.Handler) http.Handler {
			return base(noCache(app.sessionManager.LoadAndSave(app.sessionUser(next))))
		}
	)

	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	mux.Handle("POST /api/readiness", session(http.HandlerFunc(app.readinessPOST)))
	mux.Handle("POST /api/readiness/check-in", session(http.HandlerFunc(app.checkInPOST)))
	mux.Handle("GET /api/readiness/history", session(http.HandlerFunc(app.readinessHistoryGET)))

	mux.Handle("POST /api/environment-input", session(http.HandlerFunc(app.environmentInputPOST)))
	mux.Handle("GET /api/environment-history", session(http.HandlerFunc(app.environmentHistoryGET)))
	mux.Handle("GET /api/environment-impact", session(http.HandlerFunc(app.environmentImpactGET)))

	mux.Handle("POST /api/combined-readiness", session(http.HandlerFunc(app.combinedReadinessPOST)))
	mux.Handle("GET /api/history", session(http.HandlerFunc(app.historyGET)))

	mux.Handle("POST /api/program-recommendation", base(http.HandlerFunc(app.programRecommendationPOST)))
	mux.Handle("GET /api/programs/{decision}", base(http.HandlerFunc(app.programsGET)))

	// The API serves browser frontends on other origins.
	return cors.AllowAll().Handler(mux)
}
