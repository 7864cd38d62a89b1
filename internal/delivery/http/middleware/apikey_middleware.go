package middleware

import (
	"crypto/subtle"
	"net/http"

	"vet-calendar-api/pkg/response"
)

const apiKeyHeader = "X-Api-Key"

type APIKeyMiddleware struct {
	apiKey string
}

func NewAPIKeyMiddleware(apiKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKey: apiKey}
}

// Authenticate rejects requests whose X-Api-Key header does not match the
// configured key.
func (m *APIKeyMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			response.Unauthorized(w, "API Key is missing or invalid.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
