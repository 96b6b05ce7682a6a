package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
	apperrors "todo-backend/pkg/errors"
)

type mockTodoRepository struct {
	mock.Mock
}

func (m *mockTodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]todo.Item, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]todo.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepository) Save(ctx context.Context, item todo.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockTodoRepository) FindByTodoID(ctx context.Context, todoID string) (todo.Item, error) {
	args := m.Called(ctx, todoID)
	return args.Get(0).(todo.Item), args.Error(1)
}

func (m *mockTodoRepository) DeleteByKey(ctx context.Context, key todo.Key) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockTodoRepository) Update(ctx context.Context, key todo.Key, patch todo.Patch) (todo.Item, error) {
	args := m.Called(ctx, key, patch)
	return args.Get(0).(todo.Item), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, detailType string, detail interface{}) error {
	args := m.Called(ctx, detailType, detail)
	return args.Error(0)
}

func newTestService(repo *mockTodoRepository, events *mockEventPublisher) *TodoService {
	return NewTodoService(repo, events, zap.NewNop())
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	stored := []todo.Item{
		{UserID: "user-1", CreatedAt: "1", TodoID: "a", Title: "first"},
		{UserID: "user-1", CreatedAt: "2", TodoID: "b", Title: "second"},
	}
	repo.On("ListByOwner", ctx, "user-1").Return(stored, nil)

	items, err := newTestService(repo, events).List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, items)
	repo.AssertExpectations(t)
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	repo.On("ListByOwner", ctx, "user-1").Return([]todo.Item{}, nil)

	items, err := newTestService(repo, events).List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestList_MissingOwner(t *testing.T) {
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	_, err := newTestService(repo, events).List(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "ListByOwner")
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	repo.On("Save", ctx, mock.MatchedBy(func(item todo.Item) bool {
		return item.UserID == "user-1" && item.Title == "Buy milk" && !item.Completed &&
			item.TodoID != "" && item.CreatedAt != ""
	})).Return(nil)
	events.On("Publish", ctx, ports.EventTodoCreated, mock.Anything).Return(nil)

	item, err := newTestService(repo, events).Create(ctx, "user-1", "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", item.Title)
	assert.False(t, item.Completed)
	assert.NotEmpty(t, item.TodoID)

	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreate_EmptyTitle(t *testing.T) {
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	_, err := newTestService(repo, events).Create(context.Background(), "user-1", "")
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "Save")
	events.AssertNotCalled(t, "Publish")
}

func TestCreate_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	repo.On("Save", ctx, mock.Anything).Return(nil)
	events.On("Publish", ctx, ports.EventTodoCreated, mock.Anything).
		Return(errors.New("bus unavailable"))

	_, err := newTestService(repo, events).Create(ctx, "user-1", "Buy milk")
	assert.NoError(t, err)
}

func TestCreate_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	repo.On("Save", ctx, mock.Anything).Return(apperrors.NewDatabaseError("put failed"))

	_, err := newTestService(repo, events).Create(ctx, "user-1", "Buy milk")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDatabase))
	events.AssertNotCalled(t, "Publish")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	stored := todo.Item{UserID: "user-1", CreatedAt: "1700000000000", TodoID: "abc", Title: "Buy milk"}
	repo.On("FindByTodoID", ctx, "abc").Return(stored, nil)
	repo.On("DeleteByKey", ctx, stored.PrimaryKey()).Return(nil)
	events.On("Publish", ctx, ports.EventTodoDeleted, stored.PrimaryKey()).Return(nil)

	key, err := newTestService(repo, events).Delete(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, stored.PrimaryKey(), key)

	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	repo.On("FindByTodoID", ctx, "missing").Return(todo.Item{}, apperrors.NewNotFoundError("todo"))

	_, err := newTestService(repo, events).Delete(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "DeleteByKey")
	events.AssertNotCalled(t, "Publish")
}

func TestDelete_MissingID(t *testing.T) {
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	_, err := newTestService(repo, events).Delete(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "FindByTodoID")
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	stored := todo.Item{UserID: "user-1", CreatedAt: "1", TodoID: "abc", Title: "old"}
	title := "new"
	patch := todo.Patch{Title: &title}
	updated := stored
	updated.Title = "new"

	repo.On("FindByTodoID", ctx, "abc").Return(stored, nil)
	repo.On("Update", ctx, stored.PrimaryKey(), patch).Return(updated, nil)

	item, err := newTestService(repo, events).Update(ctx, "abc", patch)
	require.NoError(t, err)
	assert.Equal(t, "new", item.Title)
	repo.AssertExpectations(t)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo := new(mockTodoRepository)
	events := new(mockEventPublisher)

	_, err := newTestService(repo, events).Update(context.Background(), "abc", todo.Patch{})
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "FindByTodoID")
}
