package main

import (
	"testing"

	"github.com/ahertta/readyday/internal/e2etest"
	"github.com/ahertta/readyday/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "READYDAY_SQLITE_URL":
		return ":memory:", true
	case "READYDAY_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func Test_application_healthy(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	var body struct {
		Status string `json:"status"`
	}
	status, err := server.Client().GetJSON(ctx, "/api/healthy", &body)
	if err != nil {
		t.Fatalf("GET /api/healthy: %v", err)
	}
	if status != 200 {
		t.Errorf("status = %d, want 200", status)
	}
	if body.Status != "ok" {
		t.Errorf("status field = %q, want ok", body.Status)
	}
}
