package routes

import (
	"net/http"

	"boardapi/app/controllers"
	"boardapi/app/middleware"
	"boardapi/app/repositories"
	"boardapi/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the API routes onto a router, using the provided
// badger instance as the post store.
func SetupRoutes(db *badger.DB, corsOrigins []string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	if len(corsOrigins) > 0 {
		router.Use(middleware.CORS(corsOrigins))
	}

	postRepo := repositories.NewBadgerPostRepository(db)
	postService := services.NewPostService(postRepo)
	postController := controllers.NewPostController(postService)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", postController.Health).Methods("GET")

	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Preflight requests never match the method-restricted routes above.
	if len(corsOrigins) > 0 {
		router.PathPrefix("/api").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	}

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
