// Package dynamodb implements the TODO item store against a single DynamoDB
// table keyed by (userId, createdAt) with a GSI on todoId.
package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"
	apperrors "todo-backend/pkg/errors"
)

// DynamoDBAPI is the subset of the DynamoDB client the repository uses.
// Narrowing the dependency keeps the repository testable with fakes.
type DynamoDBAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// TodoRepository implements ports.TodoRepository using DynamoDB
type TodoRepository struct {
	client    DynamoDBAPI
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(client DynamoDBAPI, tableName, indexName string, logger *zap.Logger) ports.TodoRepository {
	return &TodoRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// todoItem is the DynamoDB item structure for a TODO entry
type todoItem struct {
	UserID    string `dynamodbav:"userId"`
	CreatedAt string `dynamodbav:"createdAt"`
	TodoID    string `dynamodbav:"todoId"`
	Title     string `dynamodbav:"title"`
	Completed bool   `dynamodbav:"completed"`
}

// todoKey is the composite primary key structure
type todoKey struct {
	UserID    string `dynamodbav:"userId"`
	CreatedAt string `dynamodbav:"createdAt"`
}

func toDomain(it todoItem) todo.Item {
	return todo.Item{
		UserID:    it.UserID,
		CreatedAt: it.CreatedAt,
		TodoID:    it.TodoID,
		Title:     it.Title,
		Completed: it.Completed,
	}
}

// ListByOwner queries all items whose partition key equals ownerID.
// An empty result set is returned as an empty slice, never as an error.
func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]todo.Item, error) {
	keyEx := expression.Key("userId").Equal(expression.Value(ownerID))

	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	items := make([]todo.Item, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			r.logger.Error("Failed to query todos",
				zap.Error(err),
				zap.String("userId", ownerID),
			)
			return nil, apperrors.NewDatabaseError("failed to query todos").WithCause(err)
		}

		var page []todoItem
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal todos").WithCause(err)
		}
		for _, it := range page {
			items = append(items, toDomain(it))
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return items, nil
}

// Save persists an item under its composite primary key
func (r *TodoRepository) Save(ctx context.Context, item todo.Item) error {
	av, err := attributevalue.MarshalMap(todoItem{
		UserID:    item.UserID,
		CreatedAt: item.CreatedAt,
		TodoID:    item.TodoID,
		Title:     item.Title,
		Completed: item.Completed,
	})
	if err != nil {
		return apperrors.NewInternalError("failed to marshal todo").WithCause(err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save todo",
			zap.Error(err),
			zap.String("todoId", item.TodoID),
			zap.String("userId", item.UserID),
		)
		return apperrors.NewDatabaseError("failed to save todo").WithCause(err)
	}

	return nil
}

// FindByTodoID queries the GSI for the first item matching todoID. The index
// is keyed by todoId alone; ids are globally unique, so the first match wins.
func (r *TodoRepository) FindByTodoID(ctx context.Context, todoID string) (todo.Item, error) {
	keyEx := expression.Key("todoId").Equal(expression.Value(todoID))

	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return todo.Item{}, fmt.Errorf("failed to build expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		r.logger.Error("Failed to query todo by id",
			zap.Error(err),
			zap.String("todoId", todoID),
		)
		return todo.Item{}, apperrors.NewDatabaseError("failed to query todo by id").WithCause(err)
	}

	if len(result.Items) == 0 {
		return todo.Item{}, apperrors.NewNotFoundError("todo")
	}

	var it todoItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &it); err != nil {
		return todo.Item{}, apperrors.NewInternalError("failed to unmarshal todo").WithCause(err)
	}

	return toDomain(it), nil
}

// DeleteByKey removes the item addressed by the composite primary key
func (r *TodoRepository) DeleteByKey(ctx context.Context, key todo.Key) error {
	av, err := attributevalue.MarshalMap(todoKey{
		UserID:    key.UserID,
		CreatedAt: key.CreatedAt,
	})
	if err != nil {
		return apperrors.NewInternalError("failed to marshal key").WithCause(err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       av,
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("Failed to delete todo",
			zap.Error(err),
			zap.String("userId", key.UserID),
			zap.String("createdAt", key.CreatedAt),
		)
		return apperrors.NewDatabaseError("failed to delete todo").WithCause(err)
	}

	return nil
}

// Update applies a partial update to an existing item and returns the new
// state. The condition expression makes a missing item a not-found error
// instead of an upsert.
func (r *TodoRepository) Update(ctx context.Context, key todo.Key, patch todo.Patch) (todo.Item, error) {
	if patch.IsEmpty() {
		return todo.Item{}, apperrors.NewValidationError("patch must change at least one field")
	}

	var update expression.UpdateBuilder
	if patch.Title != nil {
		update = update.Set(expression.Name("title"), expression.Value(*patch.Title))
	}
	if patch.Completed != nil {
		update = update.Set(expression.Name("completed"), expression.Value(*patch.Completed))
	}

	cond := expression.AttributeExists(expression.Name("userId"))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return todo.Item{}, fmt.Errorf("failed to build expression: %w", err)
	}

	av, err := attributevalue.MarshalMap(todoKey{
		UserID:    key.UserID,
		CreatedAt: key.CreatedAt,
	})
	if err != nil {
		return todo.Item{}, apperrors.NewInternalError("failed to marshal key").WithCause(err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       av,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := r.client.UpdateItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return todo.Item{}, apperrors.NewNotFoundError("todo")
		}
		r.logger.Error("Failed to update todo",
			zap.Error(err),
			zap.String("userId", key.UserID),
			zap.String("createdAt", key.CreatedAt),
		)
		return todo.Item{}, apperrors.NewDatabaseError("failed to update todo").WithCause(err)
	}

	var it todoItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &it); err != nil {
		return todo.Item{}, apperrors.NewInternalError("failed to unmarshal todo").WithCause(err)
	}

	return toDomain(it), nil
}
