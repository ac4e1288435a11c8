package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds types.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "editor@x.com" {
			t.Errorf("email = %s", creds.Email)
		}
		writeEnvelope(w, http.StatusOK, types.AuthPayload{
			Token: "tok-123",
			User:  types.Session{UserID: "u1", Email: creds.Email, Role: types.RoleEditor},
		})
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	payload, err := Login(context.Background(), c, types.Credentials{Email: "editor@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if payload.Token != "tok-123" || payload.User.Role != types.RoleEditor {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "invalid email or password")
	}))
	defer srv.Close()
	c, rec := newTestCaller(srv)

	_, err := Login(context.Background(), c, types.Credentials{Email: "x", Password: "y"})
	if err == nil {
		t.Fatal("expected error")
	}
	if n := rec.all(); len(n) != 1 || n[0].Message != "invalid email or password" {
		t.Fatalf("notices = %+v", n)
	}
}

func TestGetProfile_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/profile" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, types.Session{UserID: "u1", Role: types.RoleAdmin})
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	s, err := GetProfile(context.Background(), c)
	if err != nil || s.Role != types.RoleAdmin {
		t.Fatalf("GetProfile: %+v %v", s, err)
	}
}

func TestChangePassword_ErrorPassthrough(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnprocessableEntity, "password too short")
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	err := ChangePassword(context.Background(), c, types.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"})
	if err == nil {
		t.Fatal("expected error")
	}
}
