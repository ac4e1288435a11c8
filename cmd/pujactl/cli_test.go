package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func envelope(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func TestCLI_LoginListDashboard(t *testing.T) {
	// Stub backend
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope(map[string]any{
			"token": "tok-abc",
			"user": map[string]string{
				"userId":   "u1",
				"fullName": "Stub Admin",
				"email":    "admin@example.com",
				"role":     "admin",
			},
		}))
	})
	mux.HandleFunc("/puja/propositions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "missing token"})
			return
		}
		_ = json.NewEncoder(w).Encode(envelope(map[string]any{
			"propositions": []map[string]any{{
				"id":     "p1",
				"date":   "2026-09-10",
				"deity":  "Ganesha",
				"status": "pending_review",
			}},
			"total": 1,
		}))
	})
	for _, path := range []string{"/analytics/stats", "/analytics/performance-metrics"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(envelope(map[string]any{"totalPropositions": 4}))
		})
	}
	mux.HandleFunc("/analytics/recent-activity", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope(map[string]any{"activity": []any{}}))
	})
	mux.HandleFunc("/analytics/upcoming-pujas", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope(map[string]any{"pujas": []any{}}))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ksPath := t.TempDir() + "/keystore.json"

	// login
	root := NewRootCmd()
	root.SetArgs([]string{"login",
		"--service-url", srv.URL,
		"--keystore", ksPath,
		"--email", "admin@example.com",
		"--password", "secret",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("login cmd failed: %v", err)
	}

	// list-propositions reuses the persisted token
	rootList := NewRootCmd()
	rootList.SetArgs([]string{"list-propositions",
		"--service-url", srv.URL,
		"--keystore", ksPath,
		"--month", "9", "--year", "2026",
	})
	if err := rootList.Execute(); err != nil {
		t.Fatalf("list-propositions cmd failed: %v", err)
	}

	// dashboard
	rootDash := NewRootCmd()
	rootDash.SetArgs([]string{"dashboard",
		"--service-url", srv.URL,
		"--keystore", ksPath,
		"--month", "9", "--year", "2026",
	})
	if err := rootDash.Execute(); err != nil {
		t.Fatalf("dashboard cmd failed: %v", err)
	}
}

func TestCLI_DemoLoginAndWhoami(t *testing.T) {
	ksPath := t.TempDir() + "/keystore.json"

	root := NewRootCmd()
	root.SetArgs([]string{"login",
		"--service-url", "http://127.0.0.1:1",
		"--keystore", ksPath,
		"--email", "admin@pujadesk.io",
		"--demo",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("demo login cmd failed: %v", err)
	}

	// whoami resolves offline from the minted token because the
	// backend address is unreachable.
	rootWho := NewRootCmd()
	rootWho.SetArgs([]string{"whoami",
		"--service-url", "http://127.0.0.1:1",
		"--keystore", ksPath,
	})
	if err := rootWho.Execute(); err != nil {
		t.Fatalf("whoami cmd failed: %v", err)
	}
}

func TestCLI_HonorsHTTPTimeoutFromEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope(map[string]any{
			"token": "tok-abc",
			"user":  map[string]string{"userId": "u1", "fullName": "A", "email": "a@x", "role": "admin"},
		}))
	}))
	defer srv.Close()

	t.Setenv("PUJADESK_HTTP_TIMEOUT", "1ns")

	root := NewRootCmd()
	root.SetArgs([]string{"login",
		"--service-url", srv.URL,
		"--keystore", t.TempDir() + "/keystore.json",
		"--email", "a@x", "--password", "pw",
	})
	if err := root.Execute(); err == nil {
		t.Fatal("expected login to fail under a 1ns HTTP timeout")
	}
}

func TestCLI_GenerateRejectsInvalidMonth(t *testing.T) {
	ksPath := t.TempDir() + "/keystore.json"

	root := NewRootCmd()
	root.SetArgs([]string{"generate",
		"--service-url", "http://127.0.0.1:1",
		"--keystore", ksPath,
		"--month", "13", "--year", "2026",
		"--date", "2026-13-01",
	})
	if err := root.Execute(); err == nil {
		t.Fatal("expected generate to fail for month 13")
	}
}
