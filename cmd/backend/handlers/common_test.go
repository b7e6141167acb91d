package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
	"github.com/relaymark/crm-backend/testutil"
	"github.com/relaymark/crm-backend/validation"
)

// setupRouter builds the API router over an in-memory database, mirroring the
// wiring in the serve command.
func setupRouter(t *testing.T) *mux.Router {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &contact.Contact{}, &project.Project{})

	log := logger.NewTestLogger()
	contactStore := contact.NewMySQLStore(db, log)
	projectStore := project.NewMySQLStore(db, log)
	validate := validation.New()

	router := mux.NewRouter()
	router.HandleFunc("/health", HealthHandler).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(NewLoggingMiddleware(log).Handler)

	contactHandler := NewContactHandler(contactStore, validate, log)
	apiRouter.HandleFunc("/contacts", contactHandler.List).Methods("GET")
	apiRouter.HandleFunc("/contacts", contactHandler.Create).Methods("POST")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.Update).Methods("PUT")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.Delete).Methods("DELETE")

	projectHandler := NewProjectHandler(projectStore, contactStore, validate, log)
	apiRouter.HandleFunc("/projects", projectHandler.List).Methods("GET")
	apiRouter.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	apiRouter.HandleFunc("/projects/contact/{contactId}", projectHandler.ListByContact).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.Update).Methods("PUT")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.Delete).Methods("DELETE")

	return router
}

// doRequest performs a request against the router and records the response.
func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorded response body into dest.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	if err := json.NewDecoder(rec.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "healthy" {
		t.Errorf("expected healthy status, got %q", resp.Status)
	}
}
