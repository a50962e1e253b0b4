package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/auth"
	"github.com/availboard/availboard-backend-go/internal/handler/http/response"
)

// AdminOnly is a fast-path claim check; the services still verify the
// effective admin flag against the store.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
