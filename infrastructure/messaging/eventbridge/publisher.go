// Package eventbridge publishes TODO lifecycle notifications to an
// EventBridge bus. Publishing is optional: when no bus is configured the
// no-op publisher is wired instead, and the service emits nothing.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"todo-backend/application/ports"
)

const eventSource = "todo-backend"

// EventBridgeAPI is the subset of the EventBridge client the publisher uses.
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

var _ EventBridgeAPI = (*eventbridge.Client)(nil)

// Publisher sends events to a named EventBridge bus
type Publisher struct {
	client  EventBridgeAPI
	busName string
	logger  *zap.Logger
}

// NewPublisher creates a new Publisher
func NewPublisher(client EventBridgeAPI, busName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// Publish sends a single event to the bus
func (p *Publisher) Publish(ctx context.Context, detailType string, detail interface{}) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal event detail: %w", err)
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.busName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(detailType),
				Detail:       aws.String(string(payload)),
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to put event: %w", err)
	}
	if result.FailedEntryCount > 0 {
		return fmt.Errorf("event bus rejected %d entries", result.FailedEntryCount)
	}

	p.logger.Debug("Published event",
		zap.String("detailType", detailType),
		zap.String("bus", p.busName),
	)
	return nil
}

// NopPublisher discards all events. Wired when EVENT_BUS_NAME is unset.
type NopPublisher struct{}

// NewNopPublisher creates a publisher that discards events
func NewNopPublisher() ports.EventPublisher {
	return NopPublisher{}
}

// Publish implements ports.EventPublisher
func (NopPublisher) Publish(context.Context, string, interface{}) error {
	return nil
}
