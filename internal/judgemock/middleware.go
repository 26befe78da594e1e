package judgemock

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"createathon/internal/common"
)

type contextKey string

const userIDCtxKey contextKey = "userID"

// Authenticator rejects requests whose bearer token is missing, invalid, or
// not an access token. The jwtauth.Verifier middleware has already parsed
// whatever token was present into the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		if kind, _ := claims["typ"].(string); kind != "access" {
			common.RespondWithError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok
}
