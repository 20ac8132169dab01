package middleware

import (
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/docs"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

// DocsKeyRequired guards the documentation micro-site with an API key
// passed in the X-API-Key header.
func DocsKeyRequired(docsService docs.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				response.Unauthorized(w, "API key required")
				return
			}
			if err := docsService.ValidateAPIKey(r.Context(), key); err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
