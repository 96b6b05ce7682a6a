package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"todo-backend/pkg/auth"
	"todo-backend/pkg/common"
)

// Identity resolves the caller's owner identifier and stores it in the
// request context. The resolver is injected: Cognito claim extraction in
// deployed configurations, a fixed id in explicit mock mode.
func Identity(resolver auth.IdentityResolver, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolver.Resolve(r)
			if err != nil {
				logger.Warn("Failed to resolve caller identity",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
				return
			}

			ctx := common.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
