package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dsouzarc/incast/internal/models"
)

func TestPredict_SendsContractRequest(t *testing.T) {
	var gotPath, gotMethod, gotContentType string
	var gotBody models.PredictionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PredictionResult{
			Date:            gotBody.Date,
			AssignmentGroup: gotBody.AssignmentGroup,
			Predictions:     map[string]float64{"P1": 10, "P2": 20, "P3": 5, "P4": 1},
		})
	}))
	defer server.Close()

	c := New(server.URL, 5*time.Second)
	result, err := c.Predict(context.Background(), models.PredictionRequest{
		Date:            "2024-01-01",
		AssignmentGroup: "NETWORK",
	})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotPath != "/predict" {
		t.Errorf("Expected path /predict, got %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", gotContentType)
	}
	if gotBody.Date != "2024-01-01" || gotBody.AssignmentGroup != "NETWORK" {
		t.Errorf("Unexpected request body: %+v", gotBody)
	}

	if result.AssignmentGroup != "NETWORK" {
		t.Errorf("Expected assignment group NETWORK, got %s", result.AssignmentGroup)
	}
	if len(result.Predictions) != 4 {
		t.Errorf("Expected 4 predictions, got %d", len(result.Predictions))
	}
	if result.Predictions["P2"] != 20 {
		t.Errorf("Expected P2=20, got %v", result.Predictions["P2"])
	}
}

func TestPredict_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid assignment group"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	c := New(server.URL, 5*time.Second)
	_, err := c.Predict(context.Background(), models.PredictionRequest{Date: "2024-01-01", AssignmentGroup: "NOPE"})
	if err == nil {
		t.Fatal("Expected an error for a 400 response")
	}
	if !strings.Contains(err.Error(), "status 400") {
		t.Errorf("Expected the status in the error, got %v", err)
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "definitely not json"},
		{"missing predictions", `{"date":"2024-01-01","assignment_group":"NETWORK"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c := New(server.URL, 5*time.Second)
			_, err := c.Predict(context.Background(), models.PredictionRequest{Date: "2024-01-01", AssignmentGroup: "NETWORK"})
			if err == nil {
				t.Fatal("Expected an error for a malformed 2xx body")
			}
		})
	}
}

func TestPredict_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := New(server.URL, time.Second)
	_, err := c.Predict(context.Background(), models.PredictionRequest{Date: "2024-01-01", AssignmentGroup: "NETWORK"})
	if err == nil {
		t.Fatal("Expected an error when the service is unreachable")
	}
}

func TestPing(t *testing.T) {
	// Any HTTP response means reachable, even a 404.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	c := New(server.URL, time.Second)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Expected Ping to succeed against a live server: %v", err)
	}

	server.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Error("Expected Ping to fail against a closed server")
	}
}
