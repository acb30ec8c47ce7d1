package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/models/entities"
	gormModels "skyharbor/booking/internal/models/gorm"
	"skyharbor/booking/internal/services"
)

// Mock order store; the flight side uses a real repository over sqlite.
type mockOrderStore struct {
	createFunc func(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error)
	listFunc   func(ctx context.Context, userID int64, page, pageSize int) ([]entities.Order, int64, error)
}

func (m *mockOrderStore) CreateWithTickets(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error) {
	return m.createFunc(ctx, userID, specs)
}

func (m *mockOrderStore) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]entities.Order, int64, error) {
	return m.listFunc(ctx, userID, page, pageSize)
}

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Airport{},
		&gormModels.AirplaneType{},
		&gormModels.Airplane{},
		&gormModels.Crew{},
		&gormModels.Route{},
		&gormModels.Flight{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

// seedFlight creates one flight on a 10x6 seat grid and returns its id.
func seedFlight(t *testing.T, db *gormlib.DB) int64 {
	jfk := gormModels.Airport{Name: "JFK", ClosestBigCity: "New York"}
	lax := gormModels.Airport{Name: "LAX", ClosestBigCity: "Los Angeles"}
	for _, a := range []*gormModels.Airport{&jfk, &lax} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("Failed to seed airport: %v", err)
		}
	}

	route := gormModels.Route{SourceID: jfk.ID, DestinationID: lax.ID, Distance: 3983}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("Failed to seed route: %v", err)
	}

	jet := gormModels.AirplaneType{Name: "Jet"}
	if err := db.Create(&jet).Error; err != nil {
		t.Fatalf("Failed to seed airplane type: %v", err)
	}
	airplane := gormModels.Airplane{Name: "Boeing 737", Rows: 10, SeatsInRow: 6, TypeID: jet.ID}
	if err := db.Create(&airplane).Error; err != nil {
		t.Fatalf("Failed to seed airplane: %v", err)
	}

	flight := gormModels.Flight{
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
		DepartureTime: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&flight).Error; err != nil {
		t.Fatalf("Failed to seed flight: %v", err)
	}
	return flight.ID
}

func authedRequest(method, target string, body []byte, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	claims := &auth.JWTClaims{UserIDValue: userID, EmailValue: "pilot@example.com", RoleValue: constants.RolePassenger}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse {
	var resp dtos.APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestCreateOrderHandler_Success(t *testing.T) {
	db := setupTestDB(t)
	flightID := seedFlight(t, db)
	flightRepo := repositories.NewFlightRepository(db)

	orders := &mockOrderStore{
		createFunc: func(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error) {
			order := &entities.Order{ID: 1, UserID: userID, CreatedAt: time.Now()}
			for i, spec := range specs {
				order.Tickets = append(order.Tickets, entities.Ticket{
					ID: int64(i + 1), Row: spec.Row, Seat: spec.Seat, FlightID: spec.Flight, OrderID: 1,
				})
			}
			return order, nil
		},
	}
	admission := services.NewAdmissionService(flightRepo, orders, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	body, _ := json.Marshal(dtos.CreateOrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 2, Seat: 3, Flight: flightID}},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body, 5))

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Status != string(constants.APIStatusOk) {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
}

func TestCreateOrderHandler_Unauthenticated(t *testing.T) {
	db := setupTestDB(t)
	flightRepo := repositories.NewFlightRepository(db)
	admission := services.NewAdmissionService(flightRepo, &mockOrderStore{}, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
}

func TestCreateOrderHandler_EmptyTickets(t *testing.T) {
	db := setupTestDB(t)
	flightRepo := repositories.NewFlightRepository(db)
	admission := services.NewAdmissionService(flightRepo, &mockOrderStore{}, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	body, _ := json.Marshal(dtos.CreateOrderRequest{})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body, 5))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgEmptyTickets {
		t.Errorf("Expected %q, got %q", constants.MsgEmptyTickets, resp.Message)
	}
}

func TestCreateOrderHandler_DuplicateTicket(t *testing.T) {
	db := setupTestDB(t)
	flightID := seedFlight(t, db)
	flightRepo := repositories.NewFlightRepository(db)
	admission := services.NewAdmissionService(flightRepo, &mockOrderStore{}, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	body, _ := json.Marshal(dtos.CreateOrderRequest{
		Tickets: []dtos.TicketSpec{
			{Row: 2, Seat: 3, Flight: flightID},
			{Row: 2, Seat: 3, Flight: flightID},
		},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body, 5))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgDuplicateTicket {
		t.Errorf("Expected %q, got %q", constants.MsgDuplicateTicket, resp.Message)
	}
}

func TestCreateOrderHandler_SeatOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	flightID := seedFlight(t, db)
	flightRepo := repositories.NewFlightRepository(db)
	admission := services.NewAdmissionService(flightRepo, &mockOrderStore{}, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	body, _ := json.Marshal(dtos.CreateOrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 11, Seat: 1, Flight: flightID}},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body, 5))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	want := "row number must be in available range: (1, rows): (1, 10)"
	if resp.Message != want {
		t.Errorf("Expected %q, got %q", want, resp.Message)
	}
}

func TestCreateOrderHandler_FlightNotFound(t *testing.T) {
	db := setupTestDB(t)
	flightRepo := repositories.NewFlightRepository(db)
	admission := services.NewAdmissionService(flightRepo, &mockOrderStore{}, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	body, _ := json.Marshal(dtos.CreateOrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 1, Seat: 1, Flight: 999}},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body, 5))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgFlightNotFound {
		t.Errorf("Expected %q, got %q", constants.MsgFlightNotFound, resp.Message)
	}
}

func TestCreateOrderHandler_SeatTaken(t *testing.T) {
	db := setupTestDB(t)
	flightID := seedFlight(t, db)
	flightRepo := repositories.NewFlightRepository(db)

	orders := &mockOrderStore{
		createFunc: func(ctx context.Context, userID int64, specs []dtos.TicketSpec) (*entities.Order, error) {
			return nil, repositories.ErrSeatTaken
		},
	}
	admission := services.NewAdmissionService(flightRepo, orders, nil)
	handler := CreateOrderHandler(admission, flightRepo)

	body, _ := json.Marshal(dtos.CreateOrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 2, Seat: 3, Flight: flightID}},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/orders", body, 5))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgSeatTaken {
		t.Errorf("Expected %q, got %q", constants.MsgSeatTaken, resp.Message)
	}
}

func TestListOrdersHandler_ScopedToCaller(t *testing.T) {
	db := setupTestDB(t)
	flightID := seedFlight(t, db)
	flightRepo := repositories.NewFlightRepository(db)

	var askedUserID int64
	orders := &mockOrderStore{
		listFunc: func(ctx context.Context, userID int64, page, pageSize int) ([]entities.Order, int64, error) {
			askedUserID = userID
			return []entities.Order{
				{
					ID:        1,
					UserID:    userID,
					CreatedAt: time.Now(),
					Tickets: []entities.Ticket{
						{ID: 1, Row: 2, Seat: 3, FlightID: flightID, OrderID: 1},
					},
				},
			}, 1, nil
		},
	}
	admission := services.NewAdmissionService(flightRepo, orders, nil)
	handler := ListOrdersHandler(admission, flightRepo)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/orders", nil, 9))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if askedUserID != 9 {
		t.Errorf("Expected listing scoped to user 9, got %d", askedUserID)
	}
}
