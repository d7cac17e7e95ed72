package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace                = "POURTRAIT/API"
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      *cloudwatch.Client
	enabled     bool
	environment string
}

// NewClient creates a new CloudWatch metrics client
func NewClient(ctx context.Context, environment string) (*Client, error) {
	// Only enable in production
	if environment != "production" {
		log.Printf("CloudWatch metrics disabled (environment: %s)", environment)
		return &Client{
			enabled:     false,
			environment: environment,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false}, nil
	}

	client := cloudwatch.NewFromConfig(cfg)
	log.Printf("CloudWatch metrics enabled (namespace: %s)", namespace)

	return &Client{
		client:      client,
		enabled:     true,
		environment: environment,
	}, nil
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	go func() {
		ctx := context.Background()
		metricName := "APIRequests"
		if statusCode >= httpStatusServerError {
			metricName = "APIErrors"
		}

		dimensions := []types.Dimension{
			{
				Name:  aws.String("Endpoint"),
				Value: aws.String(endpoint),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}

		latencyMs := float64(duration.Milliseconds())
		if err := m.putMetric(ctx, "APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record APILatency metric: %v", err)
		}
	}()
}

// RecordGeneration records one recipe generation by generator key and source.
func (m *Client) RecordGeneration(generatorKey string, remote bool) {
	if !m.enabled {
		return
	}

	go func() {
		ctx := context.Background()
		source := "engine"
		if remote {
			source = "remote"
		}

		dimensions := []types.Dimension{
			{
				Name:  aws.String("GeneratorKey"),
				Value: aws.String(generatorKey),
			},
			{
				Name:  aws.String("Source"),
				Value: aws.String(source),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, "DrinkGenerations", 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record DrinkGenerations metric: %v", err)
		}
	}()
}

// RecordVote records one vote registration.
func (m *Client) RecordVote(drinkID string) {
	if !m.enabled {
		return
	}

	go func() {
		ctx := context.Background()
		dimensions := []types.Dimension{
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}
		_ = drinkID // not a dimension; unbounded cardinality

		if err := m.putMetric(ctx, "DrinkVotes", 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record DrinkVotes metric: %v", err)
		}
	}()
}

func (m *Client) putMetric(ctx context.Context, name string, value float64, unit types.StandardUnit, dimensions []types.Dimension) error {
	ctx, cancel := context.WithTimeout(ctx, cloudwatchTimeoutSeconds*time.Second)
	defer cancel()

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(value),
				Unit:       unit,
				Dimensions: dimensions,
				Timestamp:  aws.Time(time.Now()),
			},
		},
	})
	return err
}
