package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/ots-portal/pkg/handlers"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantBody string
	}{
		{"ok with map", http.StatusOK, map[string]string{"message": "hello"}, `{"message":"hello"}`},
		{"created with struct", http.StatusCreated, struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}{1, "test"}, `{"id":1,"name":"test"}`},
		{"ok with slice", http.StatusOK, []int{1, 2, 3}, `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondJSON(w, tt.status, tt.data)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{"bad request", http.StatusBadRequest, errors.New("invalid input"), "invalid input"},
		{"not found", http.StatusNotFound, errors.New("route not found: /missing"), "route not found: /missing"},
		{"internal error", http.StatusInternalServerError, errors.New(`pq: relation "users" does not exist`), "Internal Server Error"},
		{"unavailable", http.StatusServiceUnavailable, errors.New("dial tcp 10.0.0.5:5432: refused"), "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondError(w, discard, tt.status, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var result map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("body is not valid JSON: %v", err)
			}
			if result["error"] != tt.want {
				t.Errorf("error = %q, want %q", result["error"], tt.want)
			}
		})
	}
}

func TestRespondNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondNoContent(w)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

type payload struct {
	Email string `json:"email"`
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.c"}`))

	got, err := handlers.DecodeJSON[payload](req)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if got.Email != "a@b.c" {
		t.Errorf("Email = %q, want a@b.c", got.Email)
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	bodies := []string{`{`, `{"unknown":1}`, ``}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

			_, err := handlers.DecodeJSON[payload](req)
			if !errors.Is(err, handlers.ErrInvalidBody) {
				t.Errorf("DecodeJSON() error = %v, want ErrInvalidBody", err)
			}
			if handlers.DecodeStatus(err) != http.StatusBadRequest {
				t.Errorf("DecodeStatus() = %d, want 400", handlers.DecodeStatus(err))
			}
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"`+strings.Repeat("a", 64)+`"}`))
	req.Body = http.MaxBytesReader(w, req.Body, 16)

	_, err := handlers.DecodeJSON[payload](req)
	if err == nil {
		t.Fatal("DecodeJSON() should fail on oversized body")
	}
	if handlers.DecodeStatus(err) != http.StatusRequestEntityTooLarge {
		t.Errorf("DecodeStatus() = %d, want 413", handlers.DecodeStatus(err))
	}
}
