package routes

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Lightahhh/Mccookies/config"
	"github.com/Lightahhh/Mccookies/controllers"
	"github.com/Lightahhh/Mccookies/controllers/auth"
	"github.com/Lightahhh/Mccookies/controllers/users"
	"github.com/Lightahhh/Mccookies/middleware"
)

func InitRouter(cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(func(next http.Handler) http.Handler {
			return handlers.CORS(
				handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
				handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
				handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "X-Request-ID"}),
				handlers.AllowCredentials(),
			)(next)
		})
	}

	r.HandleFunc("/health", controllers.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/", controllers.IndexHandler).Methods(http.MethodGet)

	// /register is a legacy alias for /signup; one canonical handler set.
	r.HandleFunc("/signup", auth.SignupPageHandler).Methods(http.MethodGet)
	r.HandleFunc("/signup", auth.SignupHandler).Methods(http.MethodPost)
	r.HandleFunc("/register", auth.SignupPageHandler).Methods(http.MethodGet)
	r.HandleFunc("/register", auth.SignupHandler).Methods(http.MethodPost)
	r.HandleFunc("/login", auth.LoginPageHandler).Methods(http.MethodGet)
	r.HandleFunc("/login", auth.LoginHandler).Methods(http.MethodPost)
	r.HandleFunc("/logout", auth.LogoutHandler).Methods(http.MethodGet)

	r.Handle("/dashboard", middleware.RequireUserPage(http.HandlerFunc(users.DashboardHandler))).Methods(http.MethodGet)
	r.Handle("/complete_task", middleware.RequireUserAPI(http.HandlerFunc(users.CompleteTaskHandler))).Methods(http.MethodPost)
	r.Handle("/user_stats", middleware.RequireUserAPI(http.HandlerFunc(users.UserStatsHandler))).Methods(http.MethodGet)

	return r
}
