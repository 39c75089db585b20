package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/response"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/util"
)

type contextKey string

const viewerContextKey contextKey = "viewer"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, http.StatusUnauthorized, "Missing Authorization header", "user not logged in")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(w, http.StatusUnauthorized, "Invalid token format", "")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := util.ValidateJWT(tokenStr)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token", "")
			return
		}

		ctx := withViewer(r.Context(), &Viewer{
			ID:              claims.ViewerID,
			MembershipLevel: claims.MembershipLevel,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attaches viewer identity when a valid token is
// present and lets anonymous requests through. A malformed token is treated
// as anonymous rather than rejected; the feed endpoint serves both.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := util.ValidateJWT(tokenStr); err == nil {
				ctx := withViewer(r.Context(), &Viewer{
					ID:              claims.ViewerID,
					MembershipLevel: claims.MembershipLevel,
				})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func withViewer(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey, v)
}

// GetViewerFromContext returns the authenticated viewer, or false for
// anonymous requests.
func GetViewerFromContext(r *http.Request) (*Viewer, bool) {
	v, ok := r.Context().Value(viewerContextKey).(*Viewer)
	return v, ok
}
