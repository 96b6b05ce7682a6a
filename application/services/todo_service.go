// Package services implements the TODO list use cases on top of the
// repository and event publisher ports.
package services

import (
	"context"

	"go.uber.org/zap"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
	apperrors "todo-backend/pkg/errors"
)

// TodoService orchestrates the list, create, delete and update operations.
// Every invocation is stateless; the store calls within one operation are
// sequential and there is no cross-request coordination.
type TodoService struct {
	repo   ports.TodoRepository
	events ports.EventPublisher
	logger *zap.Logger
}

// NewTodoService creates a new TodoService
func NewTodoService(repo ports.TodoRepository, events ports.EventPublisher, logger *zap.Logger) *TodoService {
	return &TodoService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// List returns all items belonging to ownerID. Zero items yields an empty
// slice with no error; emptiness is not a failure.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]todo.Item, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner id is required")
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Listed todos",
		zap.String("userId", ownerID),
		zap.Int("count", len(items)),
	)
	return items, nil
}

// Create builds a new item for ownerID and persists it. The full item,
// including the server-assigned todoId and createdAt, is returned.
func (s *TodoService) Create(ctx context.Context, ownerID, title string) (todo.Item, error) {
	item, err := todo.NewItem(ownerID, title)
	if err != nil {
		return todo.Item{}, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return todo.Item{}, err
	}

	s.logger.Info("Created todo",
		zap.String("todoId", item.TodoID),
		zap.String("userId", item.UserID),
	)
	s.publish(ctx, ports.EventTodoCreated, item)

	return item, nil
}

// Delete resolves todoID through the secondary index, then deletes the item
// by its primary key. The key of the deleted item is returned as
// confirmation. An unknown todoID is a not-found error.
func (s *TodoService) Delete(ctx context.Context, todoID string) (todo.Key, error) {
	if todoID == "" {
		return todo.Key{}, apperrors.NewValidationError("todo id is required")
	}

	item, err := s.repo.FindByTodoID(ctx, todoID)
	if err != nil {
		return todo.Key{}, err
	}

	key := item.PrimaryKey()
	if err := s.repo.DeleteByKey(ctx, key); err != nil {
		return todo.Key{}, err
	}

	s.logger.Info("Deleted todo",
		zap.String("todoId", todoID),
		zap.String("userId", key.UserID),
	)
	s.publish(ctx, ports.EventTodoDeleted, key)

	return key, nil
}

// Update resolves todoID and applies a partial update. Not reachable over
// HTTP yet: PATCH answers 501 until its semantics are decided. The store
// path exists so wiring the route later needs no data-model change.
func (s *TodoService) Update(ctx context.Context, todoID string, patch todo.Patch) (todo.Item, error) {
	if todoID == "" {
		return todo.Item{}, apperrors.NewValidationError("todo id is required")
	}
	if patch.IsEmpty() {
		return todo.Item{}, apperrors.NewValidationError("patch must change at least one field")
	}

	item, err := s.repo.FindByTodoID(ctx, todoID)
	if err != nil {
		return todo.Item{}, err
	}

	return s.repo.Update(ctx, item.PrimaryKey(), patch)
}

// publish emits an event without ever failing the request.
func (s *TodoService) publish(ctx context.Context, detailType string, detail interface{}) {
	if err := s.events.Publish(ctx, detailType, detail); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("detailType", detailType),
			zap.Error(err),
		)
	}
}
