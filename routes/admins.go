package routes

import (
	"net/http"

	"earnmedia/controllers/admins"
	"earnmedia/middleware"

	"github.com/gorilla/mux"
)

// SetAdminRoutes registers the admin panel routes. All of them require a valid
// token; moderation endpoints accept moderators, the rest are admin-only.
func SetAdminRoutes(api *mux.Router) {
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AuthMiddleware)

	// Moderation queue: admins and moderators
	adminRouter.Handle("/submissions", middleware.RequireModerator(http.HandlerFunc(admins.ListSubmissionsHandler))).Methods(http.MethodGet)
	adminRouter.Handle("/submissions/{id}/approve", middleware.RequireModerator(http.HandlerFunc(admins.ApproveSubmissionHandler))).Methods(http.MethodPut)
	adminRouter.Handle("/submissions/{id}/reject", middleware.RequireModerator(http.HandlerFunc(admins.RejectSubmissionHandler))).Methods(http.MethodPut)

	// User management: admin only
	adminRouter.Handle("/users", middleware.RequireAdmin(http.HandlerFunc(admins.ListUsersHandler))).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(admins.UpdateUserHandler))).Methods(http.MethodPut)
	adminRouter.Handle("/users/{id:[0-9]+}/bonus", middleware.RequireAdmin(http.HandlerFunc(admins.AddBonusHandler))).Methods(http.MethodPost)
	adminRouter.Handle("/users/{id:[0-9]+}/reset-balance", middleware.RequireAdmin(http.HandlerFunc(admins.ResetBalanceHandler))).Methods(http.MethodPost)
	adminRouter.Handle("/users/{id:[0-9]+}/roles", middleware.RequireAdmin(http.HandlerFunc(admins.GrantRoleHandler))).Methods(http.MethodPost)
	adminRouter.Handle("/users/{id:[0-9]+}/roles", middleware.RequireAdmin(http.HandlerFunc(admins.RevokeRoleHandler))).Methods(http.MethodDelete)

	// Dashboard stats
	adminRouter.Handle("/stats", middleware.RequireAdmin(http.HandlerFunc(admins.StatsHandler))).Methods(http.MethodGet)
}
