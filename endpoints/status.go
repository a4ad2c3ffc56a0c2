package endpoints

import "net/http"

// NewStatusEndpoint answers liveness probes. With no custom response
// configured it replies 204, which still means "alive and well".
func NewStatusEndpoint(response string) http.HandlerFunc {
	if response == "" {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}
	}

	responseBytes := []byte(response)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write(responseBytes)
	}
}
