package middleware

import (
	"context"
	"net/http"
	"strings"

	"earnmedia/database"
	"earnmedia/ledger"
	"earnmedia/models"
	"earnmedia/utils"
)

// AuthMiddleware authenticates the bearer token and resolves the caller's
// role set once for the whole request. Handlers read identity and roles from
// the request context, never from a global.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

		claims, err := utils.ValidateAccessToken(tokenStr)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Session expired, please log in again"})
				return
			}
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		var userID uint
		switch v := claims["id"].(type) {
		case float64:
			userID = uint(v)
		case int:
			userID = uint(v)
		}
		if userID == 0 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		roles, err := ledger.NewService(database.DB).RolesOf(userID)
		if err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDKey, userID)
		ctx = context.WithValue(ctx, utils.UserRolesKey, roles)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler on one of the listed roles. It assumes
// AuthMiddleware already ran: a missing identity is 401, an identity without
// the role is 403, and in both cases the handler never executes.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserID(r); !ok {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
				return
			}
			for _, role := range roles {
				if utils.HasRole(r, role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Forbidden: insufficient role"})
		})
	}
}

// RequireAdmin gates on the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin)(next)
}

// RequireModerator gates on moderator or admin (admins can moderate).
func RequireModerator(next http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin, models.RoleModerator)(next)
}
