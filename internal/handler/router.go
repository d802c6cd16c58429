package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	authHandler *AuthHandler,
	documentHandler *DocumentHandler,
	translateHandler *TranslateHandler,
	authMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pdf-translator"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/languages", translateHandler.ListLanguages).Methods(http.MethodGet)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	protected.HandleFunc("/documents", documentHandler.UploadDocument).Methods(http.MethodPost)
	protected.HandleFunc("/documents/{filename}/text", documentHandler.GetText).Methods(http.MethodGet)
	protected.HandleFunc("/documents/{filename}/translation", documentHandler.GetTranslation).Methods(http.MethodGet)

	protected.HandleFunc("/translate", translateHandler.Translate).Methods(http.MethodGet)

	uploads := router.PathPrefix("/uploads").Subrouter()
	uploads.Use(authMiddleware)
	uploads.HandleFunc("/{filename}", documentHandler.ServeUpload).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler(router)
}
