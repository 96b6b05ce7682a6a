// Package ports declares the interfaces the application layer depends on.
// Infrastructure packages implement them; tests substitute doubles.
package ports

import (
	"context"

	"todo-backend/domain/todo"
)

// TodoRepository is the durable store for TODO items. The backing table uses
// a composite primary key (userId, createdAt) plus a secondary index keyed by
// todoId, so deletion by todoId always resolves the primary key first.
type TodoRepository interface {
	// ListByOwner returns every item belonging to ownerID in the store's
	// native sort-key order. Zero items is a valid result, not an error.
	ListByOwner(ctx context.Context, ownerID string) ([]todo.Item, error)

	// Save persists an item under its primary key.
	Save(ctx context.Context, item todo.Item) error

	// FindByTodoID resolves a todoId through the secondary index, returning
	// the first match. Returns a not-found error on zero matches.
	FindByTodoID(ctx context.Context, todoID string) (todo.Item, error)

	// DeleteByKey removes the item addressed by the composite primary key.
	DeleteByKey(ctx context.Context, key todo.Key) error

	// Update applies a partial update to the item addressed by key and
	// returns the new state. Fails if the item does not exist.
	Update(ctx context.Context, key todo.Key, patch todo.Patch) (todo.Item, error)
}

// Detail types for published TODO lifecycle events.
const (
	EventTodoCreated = "TodoCreated"
	EventTodoDeleted = "TodoDeleted"
)

// EventPublisher emits domain notifications to the event bus. Publishing is
// best-effort; callers must not fail a request on a publish error.
type EventPublisher interface {
	Publish(ctx context.Context, detailType string, detail interface{}) error
}
