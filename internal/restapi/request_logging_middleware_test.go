package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.must.dev/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("test response"))
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		req := httptest.NewRequest("GET", "/api/greet.json?key=test", nil)
		req.Header.Set("User-Agent", "test-client/1.0")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/greet.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"duration_ms":`)
		assert.Contains(t, output, `"component":"http_server"`)
	})

	t.Run("logs different HTTP methods and status codes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == "POST" {
				w.WriteHeader(http.StatusCreated)
			} else {
				w.WriteHeader(http.StatusNotFound)
			}
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		req := httptest.NewRequest("POST", "/invoke/greet", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		output := buf.String()
		assert.Contains(t, output, `"method":"POST"`)
		assert.Contains(t, output, `"status":201`)

		buf.Reset()

		req = httptest.NewRequest("GET", "/api/nonexistent", nil)
		recorder = httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		output = buf.String()
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"status":404`)
	})

	t.Run("records the first status code only", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			w.WriteHeader(http.StatusOK)
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/test", nil))

		assert.Contains(t, buf.String(), `"status":418`)
	})

	t.Run("handles requests without User-Agent header", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		req := httptest.NewRequest("GET", "/test", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Contains(t, buf.String(), `"user_agent":""`)
	})

	t.Run("strips query parameters from logged path", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		req := httptest.NewRequest("GET", "/api/greet.json?key=secret&name=Ana", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		output := buf.String()
		assert.Contains(t, output, `"path":"/api/greet.json"`)
		assert.NotContains(t, output, "secret")
		assert.NotContains(t, output, "name=Ana")
	})
}

func TestRequestLoggingIntegration(t *testing.T) {
	t.Run("logs a successful invocation with its request ID", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		api := createTestApiWithLogger(t, logger)
		handler := api.Handler(api.Routes())

		req := httptest.NewRequest("POST", "/invoke/greet?key=TEST", strings.NewReader(`{"name":"Ana"}`))
		req.Header.Set("User-Agent", "test-client")
		req.Header.Set(RequestIDHeader, "3f1c8b8e-4b0a-4d2e-9a57-0d6f5f0a7c11")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"code":200`)

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"POST"`)
		assert.Contains(t, output, `"path":"/invoke/greet"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"msg":"command_invoked"`)
		assert.Contains(t, output, `"command":"greet"`)
		assert.Contains(t, output, `"request_id":"3f1c8b8e-4b0a-4d2e-9a57-0d6f5f0a7c11"`)
	})

	t.Run("logs error responses correctly", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		api := createTestApiWithLogger(t, logger)
		handler := api.Handler(api.Routes())

		req := httptest.NewRequest("GET", "/api/dashboard/kpis.json", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		output := buf.String()
		assert.Contains(t, output, `"status":401`)
		assert.Contains(t, output, `"path":"/api/dashboard/kpis.json"`)
	})
}

func TestRequestLoggingWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger := logging.FromContext(r.Context())
		require.NotNil(t, ctxLogger)

		ctxLogger.Info("handler called", slog.String("test", "value"))
		w.WriteHeader(http.StatusOK)
	})

	handler := RequestIDMiddleware(NewRequestLoggingMiddleware(logger)(testHandler))

	req := httptest.NewRequest("GET", "/test", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], `"msg":"handler called"`)
	assert.Contains(t, lines[0], `"test":"value"`)
	assert.Contains(t, lines[0], `"request_id":"`+recorder.Header().Get(RequestIDHeader)+`"`)
	assert.Contains(t, lines[1], `"msg":"http_request"`)
}
