package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"parcelbook/models"
	"parcelbook/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware accepts a bearer token or a "token" cookie and stores its claims on the request.
func AuthMiddleware(issuer *utils.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie("token"); err == nil {
				token = c.Value
			}
			if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					deny(w, http.StatusUnauthorized, "Invalid Authorization header format")
					return
				}
				token = parts[1]
			}
			if token == "" {
				deny(w, http.StatusUnauthorized, "Authorization token not provided")
				return
			}

			claims, err := issuer.ValidateToken(token)
			if err != nil {
				deny(w, http.StatusUnauthorized, "Invalid authorization token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireRole rejects requests whose token does not carry one of roles. Use after AuthMiddleware.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, "Authorization token not provided")
				return
			}
			for _, role := range roles {
				if claims.Role == string(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			deny(w, http.StatusForbidden, "Insufficient role")
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*utils.JWTClaim, bool) {
	claims, ok := ctx.Value(claimsKey).(*utils.JWTClaim)
	return claims, ok
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": msg})
}
