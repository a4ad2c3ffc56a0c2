package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionEndpoint(t *testing.T) {
	testCases := []struct {
		description string
		revision    string
		expected    string
	}{
		{
			description: "revision set",
			revision:    "d6cd1e2bd19e03a81132a23b2025920577f84e37",
			expected:    `{"revision":"d6cd1e2bd19e03a81132a23b2025920577f84e37"}`,
		},
		{
			description: "revision not set",
			revision:    "",
			expected:    `{"revision":"not-set"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			handler := NewVersionEndpoint(tc.revision)
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, "/version", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.expected, w.Body.String())
		})
	}
}

func TestStatusEndpoint(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewStatusEndpoint("")(w, httptest.NewRequest(http.MethodGet, "/status", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("custom response", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewStatusEndpoint("ready")(w, httptest.NewRequest(http.MethodGet, "/status", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ready", w.Body.String())
	})
}
