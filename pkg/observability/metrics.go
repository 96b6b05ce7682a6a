// Package observability provides optional CloudWatch request metrics.
// Disabled by default so the function emits no custom metrics unless
// explicitly enabled; dashboards scrape the platform metrics instead.
package observability

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of the CloudWatch client the recorder uses.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

var _ CloudWatchAPI = (*cloudwatch.Client)(nil)

// Metrics records per-request counters. A disabled recorder is a no-op.
type Metrics struct {
	client    CloudWatchAPI
	namespace string
	enabled   bool
	logger    *zap.Logger
}

// NewMetrics creates a metrics recorder
func NewMetrics(client CloudWatchAPI, namespace string, enabled bool, logger *zap.Logger) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
		enabled:   enabled,
		logger:    logger,
	}
}

// RecordRequest emits a request count datum, plus an error count datum for
// 5xx statuses. Failures are logged and swallowed; metrics never fail a
// request.
func (m *Metrics) RecordRequest(ctx context.Context, method, route string, status int) {
	if m == nil || !m.enabled {
		return
	}

	dims := []types.Dimension{
		{Name: aws.String("Method"), Value: aws.String(method)},
		{Name: aws.String("Route"), Value: aws.String(route)},
	}

	data := []types.MetricDatum{
		{
			MetricName: aws.String("RequestCount"),
			Dimensions: dims,
			Value:      aws.Float64(1),
			Unit:       types.StandardUnitCount,
		},
	}
	if status >= 500 {
		data = append(data, types.MetricDatum{
			MetricName: aws.String("ErrorCount"),
			Dimensions: dims,
			Value:      aws.Float64(1),
			Unit:       types.StandardUnitCount,
		})
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to publish metrics", zap.Error(err))
	}
}
