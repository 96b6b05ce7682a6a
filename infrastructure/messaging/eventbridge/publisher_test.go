package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"todo-backend/application/ports"
)

type fakeEventBridgeClient struct {
	putFn   func(*eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error)
	lastPut *eventbridge.PutEventsInput
}

func (f *fakeEventBridgeClient) PutEvents(_ context.Context, params *eventbridge.PutEventsInput, _ ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.lastPut = params
	return f.putFn(params)
}

func TestPublish(t *testing.T) {
	client := &fakeEventBridgeClient{
		putFn: func(*eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error) {
			return &eventbridge.PutEventsOutput{}, nil
		},
	}
	p := NewPublisher(client, "todo-events", zap.NewNop())

	detail := map[string]string{"todoId": "abc"}
	require.NoError(t, p.Publish(context.Background(), ports.EventTodoCreated, detail))

	require.NotNil(t, client.lastPut)
	require.Len(t, client.lastPut.Entries, 1)

	entry := client.lastPut.Entries[0]
	assert.Equal(t, "todo-events", *entry.EventBusName)
	assert.Equal(t, ports.EventTodoCreated, *entry.DetailType)
	assert.Equal(t, "todo-backend", *entry.Source)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(*entry.Detail), &decoded))
	assert.Equal(t, "abc", decoded["todoId"])
}

func TestPublish_ClientError(t *testing.T) {
	client := &fakeEventBridgeClient{
		putFn: func(*eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error) {
			return nil, errors.New("network down")
		},
	}
	p := NewPublisher(client, "todo-events", zap.NewNop())

	err := p.Publish(context.Background(), ports.EventTodoDeleted, struct{}{})
	assert.Error(t, err)
}

func TestPublish_RejectedEntries(t *testing.T) {
	client := &fakeEventBridgeClient{
		putFn: func(*eventbridge.PutEventsInput) (*eventbridge.PutEventsOutput, error) {
			return &eventbridge.PutEventsOutput{FailedEntryCount: 1}, nil
		},
	}
	p := NewPublisher(client, "todo-events", zap.NewNop())

	err := p.Publish(context.Background(), ports.EventTodoDeleted, struct{}{})
	assert.ErrorContains(t, err, "rejected")
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()
	assert.NoError(t, p.Publish(context.Background(), ports.EventTodoCreated, struct{}{}))
}
