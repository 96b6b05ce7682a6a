// Package rest wires the chi router: middleware chain, CORS, the /todos
// routes and the canonical fallback responses.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"todo-backend/application/services"
	"todo-backend/interfaces/http/rest/handlers"
	"todo-backend/interfaces/http/rest/middleware"
	"todo-backend/pkg/auth"
	"todo-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	todos    *services.TodoService
	identity auth.IdentityResolver
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	todos *services.TodoService,
	identity auth.IdentityResolver,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		todos:    todos,
		identity: identity,
		metrics:  metrics,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	// CORS, mirroring what the API Gateway preflight configuration allows
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Amz-Date",
			"X-Api-Key",
			"X-Amz-Security-Token",
		},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)

	// Todo endpoints. Exactly one handler per (method, path) pair; anything
	// unmatched gets the canonical 404 below.
	router.Route("/todos", func(r chi.Router) {
		r.Use(middleware.Identity(rt.identity, rt.logger))

		todoHandler := handlers.NewTodoHandler(rt.todos, rt.logger)
		r.Get("/", todoHandler.ListTodos)
		r.Post("/", todoHandler.CreateTodo)
		r.Delete("/{id}", todoHandler.DeleteTodo)
		r.Patch("/{id}", todoHandler.UpdateTodo)
	})

	router.NotFound(rt.methodNotFound)
	router.MethodNotAllowed(rt.methodNotFound)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// methodNotFound answers every unmatched method/path pair
func (rt *Router) methodNotFound(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "Method not found"})
}
