package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/services"
)

func setupAuthService(t *testing.T) *services.AuthService {
	db := setupTestDB(t)
	users := repositories.NewUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 60)
	// Minimum bcrypt cost keeps the tests fast.
	return services.NewAuthService(users, tokens, 4)
}

func registerUser(t *testing.T, svc *services.AuthService, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(dtos.RegisterUserRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	RegisterUserHandler(svc).ServeHTTP(rec, req)
	return rec
}

func TestRegisterUserHandler_Success(t *testing.T) {
	svc := setupAuthService(t)

	rec := registerUser(t, svc, "pilot@example.com", "long-enough-password")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeAPIResponse(t, rec)
	if resp.Status != string(constants.APIStatusOk) {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
}

func TestRegisterUserHandler_RejectsShortPassword(t *testing.T) {
	svc := setupAuthService(t)

	rec := registerUser(t, svc, "pilot@example.com", "short")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestRegisterUserHandler_RejectsBadEmail(t *testing.T) {
	svc := setupAuthService(t)

	rec := registerUser(t, svc, "not-an-email", "long-enough-password")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestRegisterUserHandler_RejectsDuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)

	if rec := registerUser(t, svc, "pilot@example.com", "long-enough-password"); rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	rec := registerUser(t, svc, "pilot@example.com", "another-long-password")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgEmailTaken {
		t.Errorf("Expected %q, got %q", constants.MsgEmailTaken, resp.Message)
	}
}

func TestLoginHandler_Success(t *testing.T) {
	svc := setupAuthService(t)
	registerUser(t, svc, "pilot@example.com", "long-enough-password")

	body, _ := json.Marshal(dtos.LoginRequest{Email: "pilot@example.com", Password: "long-enough-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	LoginHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeAPIResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected token payload, got %T", resp.Data)
	}
	if data["access_token"] == "" {
		t.Error("Expected a non-empty access token")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	svc := setupAuthService(t)
	registerUser(t, svc, "pilot@example.com", "long-enough-password")

	body, _ := json.Marshal(dtos.LoginRequest{Email: "pilot@example.com", Password: "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	LoginHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Message != constants.MsgBadCredentials {
		t.Errorf("Expected %q, got %q", constants.MsgBadCredentials, resp.Message)
	}
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	svc := setupAuthService(t)

	body, _ := json.Marshal(dtos.LoginRequest{Email: "nobody@example.com", Password: "whatever-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	LoginHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
}

func TestMeHandler_ReturnsProfile(t *testing.T) {
	svc := setupAuthService(t)
	registerUser(t, svc, "pilot@example.com", "long-enough-password")

	rec := httptest.NewRecorder()
	MeHandler(svc).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/users/me", nil, 1))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeAPIResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected user payload, got %T", resp.Data)
	}
	if data["email"] != "pilot@example.com" {
		t.Errorf("Expected pilot@example.com, got %v", data["email"])
	}
}
