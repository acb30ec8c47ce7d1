package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
)

func setupAirportRouter(t *testing.T) (*chi.Mux, *repositories.AirportRepository) {
	db := setupTestDB(t)
	repo := repositories.NewAirportRepository(db)
	cache := common.NewCacheService(60, 120)

	r := chi.NewRouter()
	r.Get("/airports", ListAirportsHandler(repo, cache, time.Minute))
	r.Get("/airports/{id}", GetAirportHandler(repo))
	r.Post("/airports", CreateAirportHandler(repo, cache))
	r.Put("/airports/{id}", UpdateAirportHandler(repo, cache))
	r.Delete("/airports/{id}", DeleteAirportHandler(repo, cache))
	return r, repo
}

func TestAirportHandlers_CreateAndFetch(t *testing.T) {
	r, _ := setupAirportRouter(t)

	body, _ := json.Marshal(dtos.AirportRequest{Name: "JFK", ClosestBigCity: "New York"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/airports", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airports/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected airport payload, got %T", resp.Data)
	}
	if data["closest_big_city"] != "New York" {
		t.Errorf("Expected New York, got %v", data["closest_big_city"])
	}
}

func TestAirportHandlers_GetUnknownID(t *testing.T) {
	r, _ := setupAirportRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airports/999", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgNotFound {
		t.Errorf("Expected %q, got %q", constants.MsgNotFound, resp.Message)
	}
}

func TestAirportHandlers_CreateRejectsEmptyName(t *testing.T) {
	r, _ := setupAirportRouter(t)

	body, _ := json.Marshal(dtos.AirportRequest{Name: "", ClosestBigCity: "New York"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/airports", bytes.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestAirportHandlers_ListSeesWritesAfterInvalidation(t *testing.T) {
	r, repo := setupAirportRouter(t)

	// Prime the list cache while it is empty.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airports", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	body, _ := json.Marshal(dtos.AirportRequest{Name: "LAX", ClosestBigCity: "Los Angeles"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/airports", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	// The write invalidated the cached list, so the new airport shows up.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airports", nil))
	resp := decodeAPIResponse(t, rec)
	list, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("Expected list payload, got %T", resp.Data)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 airport, got %d", len(list))
	}

	airports, err := repo.List(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	if err != nil {
		t.Fatalf("Failed to list airports: %v", err)
	}
	if len(airports) != 1 {
		t.Errorf("Expected 1 stored airport, got %d", len(airports))
	}
}

func TestAirportHandlers_UpdateAndDelete(t *testing.T) {
	r, _ := setupAirportRouter(t)

	body, _ := json.Marshal(dtos.AirportRequest{Name: "JFK", ClosestBigCity: "New York"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/airports", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	body, _ = json.Marshal(dtos.AirportRequest{Name: "JFK International", ClosestBigCity: "New York"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/airports/1", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/airports/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airports/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", rec.Code)
	}
}
