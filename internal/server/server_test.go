package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/karatcalc/internal/digit"
	"github.com/agbru/karatcalc/internal/sysmon"
)

func newTestServer() *Server {
	return &Server{
		security: DefaultSecurityConfig(),
		factory:  digit.NewDefaultFactory(),
		metrics:  NewMetrics(),
		logger:   newTestLogger(),
	}
}

func postMultiply(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/multiply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handleMultiply(rec, req)
	return rec
}

func TestServer_handleMultiply(t *testing.T) {
	t.Run("Valid request returns product", func(t *testing.T) {
		s := newTestServer()
		rec := postMultiply(t, s, `{"lhs":[1,3,3,7],"rhs":[1,0,0,0],"base":10}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp MultiplyResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		want := []uint64{1, 3, 3, 7, 0, 0, 0}
		if len(resp.Product) != len(want) {
			t.Fatalf("product = %v, want %v", resp.Product, want)
		}
		for i := range want {
			if resp.Product[i] != want[i] {
				t.Fatalf("product = %v, want %v", resp.Product, want)
			}
		}
		if resp.Digits != 7 {
			t.Errorf("digits = %d, want 7", resp.Digits)
		}
	})

	t.Run("Explicit algorithm selection", func(t *testing.T) {
		s := newTestServer()
		rec := postMultiply(t, s, `{"lhs":[7],"rhs":[8],"base":10,"algo":"schoolbook"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
		}
		var resp MultiplyResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Product) != 2 || resp.Product[0] != 5 || resp.Product[1] != 6 {
			t.Errorf("product = %v, want [5 6]", resp.Product)
		}
		if !strings.Contains(resp.Algorithm, "Schoolbook") {
			t.Errorf("algorithm = %q, want a Schoolbook name", resp.Algorithm)
		}
	})

	t.Run("GET returns method not allowed", func(t *testing.T) {
		s := newTestServer()
		req := httptest.NewRequest("GET", "/multiply", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleMultiply(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})

	t.Run("Malformed JSON returns bad request", func(t *testing.T) {
		s := newTestServer()
		rec := postMultiply(t, s, `{"lhs":[1,2`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("Invalid base returns bad request", func(t *testing.T) {
		s := newTestServer()
		rec := postMultiply(t, s, `{"lhs":[1],"rhs":[1],"base":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		var resp ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if !strings.Contains(resp.Error, "base") {
			t.Errorf("error = %q, want a base validation message", resp.Error)
		}
	})

	t.Run("Digit out of range returns bad request", func(t *testing.T) {
		s := newTestServer()
		rec := postMultiply(t, s, `{"lhs":[12],"rhs":[1],"base":10}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("Unknown algorithm returns bad request", func(t *testing.T) {
		s := newTestServer()
		rec := postMultiply(t, s, `{"lhs":[1],"rhs":[1],"base":10,"algo":"toomcook"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("Oversized operand returns bad request", func(t *testing.T) {
		s := newTestServer()
		s.security.MaxOperandDigits = 3
		rec := postMultiply(t, s, `{"lhs":[1,2,3,4],"rhs":[1],"base":10}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestServer_handleHealth(t *testing.T) {
	t.Run("GET returns ok status", func(t *testing.T) {
		s := newTestServer()
		// An unstarted monitor serves zero-valued stats, which is fine here.
		s.monitor = sysmon.NewMonitor(0)

		req := httptest.NewRequest("GET", "/healthz", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleHealth(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var resp HealthResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Status != "ok" {
			t.Errorf("status = %q, want %q", resp.Status, "ok")
		}
	})

	t.Run("POST returns method not allowed", func(t *testing.T) {
		s := newTestServer()
		s.monitor = sysmon.NewMonitor(0)

		req := httptest.NewRequest("POST", "/healthz", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleHealth(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}
