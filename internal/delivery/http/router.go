package http

import (
	"net/http"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/http/handler"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	familyHandler       *handler.FamilyHandler
	profileHandler      *handler.ProfileHandler
	professionalHandler *handler.ProfessionalHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	familyHandler *handler.FamilyHandler,
	profileHandler *handler.ProfileHandler,
	professionalHandler *handler.ProfessionalHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		familyHandler:       familyHandler,
		profileHandler:      profileHandler,
		professionalHandler: professionalHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/cadastro", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/profissional/cadastro", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.router.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes (protected)
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.authMiddleware.Authenticate)

	api.Handle("/familia", middleware.RequirePatient(http.HandlerFunc(r.familyHandler.CreateFamily))).Methods(http.MethodPost)
	api.Handle("/familia/membros", middleware.RequirePatient(http.HandlerFunc(r.familyHandler.EnrollMember))).Methods(http.MethodPost)
	api.Handle("/minha-familia", middleware.RequirePatient(http.HandlerFunc(r.familyHandler.GetMyFamily))).Methods(http.MethodGet)
	api.Handle("/familia/sair", middleware.RequirePatient(http.HandlerFunc(r.familyHandler.LeaveFamily))).Methods(http.MethodDelete)
	api.Handle("/perfil", middleware.RequirePatient(http.HandlerFunc(r.profileHandler.GetProfile))).Methods(http.MethodGet)
	api.Handle("/perfil", middleware.RequirePatient(http.HandlerFunc(r.profileHandler.UpdateProfile))).Methods(http.MethodPut)

	// Professional routes (protected, professional only)
	api.Handle("/profissional/familias", middleware.RequireProfessional(http.HandlerFunc(r.professionalHandler.ListFamilies))).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
