package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAuthServiceLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "test@test.com" || req.Password != "123" {
			t.Fatalf("unexpected credentials: %+v", req)
		}
		json.NewEncoder(w).Encode(SessionInformation{
			Token:     "tok",
			Type:      "Bearer",
			ID:        "id-1",
			Username:  "test@test.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Admin:     false,
		})
	}))
	defer server.Close()

	state := NewSessionState()
	c := New(server.URL, state)
	authSvc := NewAuthService(c)

	info, err := authSvc.Login(context.Background(), LoginRequest{Email: "test@test.com", Password: "123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if info.Token != "tok" || info.Type != "Bearer" || info.Username != "test@test.com" {
		t.Fatalf("unexpected session information: %+v", info)
	}

	// El flujo de la vista: con la respuesta en mano, se publica el login.
	state.LogIn(info)
	if got, logged := state.Snapshot(); !logged || got.Token != "tok" {
		t.Fatalf("expected logged-in state, got %+v logged=%t", got, logged)
	}
}

func TestAuthServiceLogin_MapsErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer server.Close()

	authSvc := NewAuthService(New(server.URL, nil))

	_, err := authSvc.Login(context.Background(), LoginRequest{Email: "test@test.com", Password: "bad"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "invalid credentials" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestAuthServiceRegister_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "email already taken"})
	}))
	defer server.Close()

	authSvc := NewAuthService(New(server.URL, nil))

	err := authSvc.Register(context.Background(), RegisterRequest{
		Email:     "taken@test.com",
		Password:  "secret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusConflict {
		t.Fatalf("expected conflict APIError, got %v", err)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Session{})
	}))
	defer server.Close()

	state := NewSessionState()
	c := New(server.URL, state)
	sessionAPI := NewSessionAPI(c)

	// Sin login no va header de autorización.
	if _, err := sessionAPI.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}

	state.LogIn(SessionInformation{Token: "tok-123", Type: "Bearer"})
	if _, err := sessionAPI.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestSessionAPIParticipate_Paths(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sessionAPI := NewSessionAPI(New(server.URL, nil))

	if err := sessionAPI.Participate(context.Background(), "s1", "u1"); err != nil {
		t.Fatalf("participate: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/session/s1/participate/u1" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}

	if err := sessionAPI.Unparticipate(context.Background(), "s1", "u1"); err != nil {
		t.Fatalf("unparticipate: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/session/s1/participate/u1" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestUserAPI_GetAndDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/user/u1":
			json.NewEncoder(w).Encode(User{
				ID:        "u1",
				Email:     "test@test.com",
				FirstName: "Ada",
				LastName:  "Lovelace",
				CreatedAt: time.Now().UTC(),
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/user/u1":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	userAPI := NewUserAPI(New(server.URL, nil))

	user, err := userAPI.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Email != "test@test.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := userAPI.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err = userAPI.Delete(context.Background(), "u2")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}
