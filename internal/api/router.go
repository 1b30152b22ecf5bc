package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avelaro/bookstore-be/internal/api/handlers"
	"github.com/avelaro/bookstore-be/internal/auth"
	"github.com/avelaro/bookstore-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(authenticator *auth.Authenticator, userService services.UserServiceProvider, bookService services.BookServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, authenticator)
	bookHandler := handlers.NewBookHandler(bookService)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Welcome to the Bookstore API!"))
	})

	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)

	r.Route("/books", func(r chi.Router) {
		// Genre search is public; everything else requires a bearer token.
		r.Get("/search", bookHandler.Search)

		r.Group(func(r chi.Router) {
			r.Use(authenticator.Middleware())
			r.Get("/", bookHandler.GetAll)
			r.Post("/", bookHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", bookHandler.Get)
				r.Put("/", bookHandler.Update)
				r.Delete("/", bookHandler.Delete)
			})
		})
	})

	notFound := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Route not found"}`))
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
