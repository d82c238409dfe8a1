package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/elia-nu/geo-sub002/internal/handler/http/response"
)

type contextKey string

// EmployeeIDKey carries the authenticated employee id extracted from the
// access token.
const EmployeeIDKey contextKey = "employee_id"

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), EmployeeIDKey, employeeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeID returns the authenticated employee id, or empty when the
// request passed through no auth middleware.
func EmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(EmployeeIDKey).(string)
	return id
}
