package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/models/dtos"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse {
	var resp dtos.APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)
	handler := AuthMiddleware(tokens)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != constants.MsgMissingToken {
		t.Errorf("Expected %q, got %q", constants.MsgMissingToken, resp.Message)
	}
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)
	handler := AuthMiddleware(tokens)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != constants.MsgInvalidToken {
		t.Errorf("Expected %q, got %q", constants.MsgInvalidToken, resp.Message)
	}
}

func TestAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)

	var gotClaims auth.UserClaims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = auth.GetUserClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(tokens)(inner)

	token, _, err := tokens.Issue(7, "pilot@example.com", constants.RolePassenger)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotClaims == nil {
		t.Fatal("Expected claims on context")
	}
	if gotClaims.UserID() != 7 {
		t.Errorf("Expected user 7, got %d", gotClaims.UserID())
	}
}

func TestIsStaffMiddleware_RejectsPassenger(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)
	handler := AuthMiddleware(tokens)(IsStaffMiddleware()(okHandler()))

	token, _, err := tokens.Issue(7, "pilot@example.com", constants.RolePassenger)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/airports", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != constants.MsgStaffOnly {
		t.Errorf("Expected %q, got %q", constants.MsgStaffOnly, resp.Message)
	}
}

func TestIsStaffMiddleware_AllowsStaff(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)
	handler := AuthMiddleware(tokens)(IsStaffMiddleware()(okHandler()))

	token, _, err := tokens.Issue(1, "ops@example.com", constants.RoleStaff)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/airports", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}

func TestIsStaffMiddleware_NoClaims(t *testing.T) {
	handler := IsStaffMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/airports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}
}
