package routes

import (
	"net/http"
	"time"

	"earnmedia/controllers/auth"
	"earnmedia/controllers/users"
	"earnmedia/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers all user-facing routes on the given subrouter.
func UsersRoutes(api *mux.Router) {
	// Rate limiter login/register: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// General per-IP limiter for authenticated traffic
	userLimiter := middleware.NewIPRateLimiter(300, time.Minute)

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)

	// Profile
	api.Handle("/users/info", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.InfoHandler)))).Methods(http.MethodGet)
	api.Handle("/users/is-admin", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.IsAdminHandler)))).Methods(http.MethodGet)

	// Task catalog and completion
	api.Handle("/users/tasks", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TaskListHandler)))).Methods(http.MethodGet)
	api.Handle("/users/tasks/complete", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TaskCompleteHandler)))).Methods(http.MethodPost)

	// Video submissions
	api.Handle("/users/submissions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.SubmitHandler)))).Methods(http.MethodPost)
	api.Handle("/users/submissions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.OwnSubmissionsHandler)))).Methods(http.MethodGet)

	// Referral dashboard
	api.Handle("/users/referrals", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ReferralHandler)))).Methods(http.MethodGet)

	// VIP tiers
	api.Handle("/users/vip", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.VipTiersHandler)))).Methods(http.MethodGet)
	api.Handle("/users/vip", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.VipBuyHandler)))).Methods(http.MethodPost)

	// Withdrawal request and history
	api.Handle("/users/withdrawal", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.WithdrawalHandler)))).Methods(http.MethodPost)
	api.Handle("/users/withdrawal", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.WithdrawalListHandler)))).Methods(http.MethodGet)

	// Transaction history
	api.Handle("/users/transactions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TransactionListHandler)))).Methods(http.MethodGet)
}
