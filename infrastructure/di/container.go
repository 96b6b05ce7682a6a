// Package di wires the application's dependencies with google/wire.
package di

import (
	"go.uber.org/zap"

	"todo-backend/application/ports"
	"todo-backend/application/services"
	"todo-backend/infrastructure/config"
	"todo-backend/pkg/auth"
	"todo-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	TodoRepo         ports.TodoRepository
	EventPublisher   ports.EventPublisher
	Metrics          *observability.Metrics
	IdentityResolver auth.IdentityResolver
	TodoService      *services.TodoService
}
