package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
)

// captureLogs routes the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/billsplit.v1.FormService/GetForm", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if called {
			t.Error("preflight must not reach the wrapped handler")
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
			t.Errorf("Allow-Headers = %q, want Authorization included", got)
		}
	})

	t.Run("other methods pass through", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/billsplit.v1.FormService/GetForm", nil))

		if !called || rec.Code != http.StatusTeapot {
			t.Errorf("called = %v, status = %d; want wrapped handler with 418", called, rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("CORS headers missing on pass-through response")
		}
	})
}

func TestHTTPLoggingRecordsStatus(t *testing.T) {
	logs := captureLogs(t)

	handler := HTTPLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	out := logs.String()
	if !strings.Contains(out, `"status":404`) || !strings.Contains(out, `"path":"/metrics"`) {
		t.Errorf("request log missing status or path: %s", out)
	}
}

func TestHTTPLoggingDefaultsToOK(t *testing.T) {
	logs := captureLogs(t)

	handler := HTTPLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !strings.Contains(logs.String(), `"status":200`) {
		t.Errorf("expected status 200 logged: %s", logs.String())
	}
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantText  string
	}{
		{"success", nil, `"level":"INFO"`, "RPC ok"},
		{"client error", connect.NewError(connect.CodeNotFound, errors.New("record not found")), `"level":"WARN"`, `"error":"record not found"`},
		{"internal error", connect.NewError(connect.CodeInternal, errors.New("disk full")), `"level":"ERROR"`, "disk full"},
		{"plain error", errors.New("boom"), `"level":"ERROR"`, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				return nil, tt.err
			}

			ctx := WithUser(context.Background(), "user-1", "a@example.com")
			_, err := LoggingInterceptor()(next)(ctx, connect.NewRequest(&struct{}{}))
			if err != tt.err {
				t.Errorf("err = %v, want %v passed through", err, tt.err)
			}

			out := logs.String()
			if !strings.Contains(out, tt.wantLevel) || !strings.Contains(out, tt.wantText) {
				t.Errorf("log %q missing %s / %s", out, tt.wantLevel, tt.wantText)
			}
			if !strings.Contains(out, `"user_id":"user-1"`) {
				t.Errorf("log missing caller: %s", out)
			}
		})
	}
}
