package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidon-io/bidon-proxy/config"
)

func echoConfig() *config.Configuration {
	return &config.Configuration{
		Port:             8000,
		AdminPort:        6060,
		DefaultTimeoutMS: 5000,
		MaxRequestSize:   1024 * 256,
		Upstream:         config.Upstream{Echo: true},
		CORS:             config.CORS{Enabled: true, AllowCredentials: true},
	}
}

func TestNewRouterRoutes(t *testing.T) {
	r, err := New(echoConfig(), "abc123")
	require.NoError(t, err)
	defer r.Shutdown()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"revision":"abc123"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonsense", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSupportCORS(t *testing.T) {
	handler := SupportCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), config.CORS{Enabled: true, AllowCredentials: true})

	r := httptest.NewRequest(http.MethodOptions, "/v2/auction/banner", nil)
	r.Header.Set("Origin", "https://publisher.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "https://publisher.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSupportCORSDisabled(t *testing.T) {
	called := false
	handler := SupportCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}), config.CORS{Enabled: false})

	r := httptest.NewRequest(http.MethodGet, "/status", nil)
	r.Header.Set("Origin", "https://publisher.example.com")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.True(t, called)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNoCache(t *testing.T) {
	handler := NoCache{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}
