package ruddertyper

import (
	"context"
)

/**
 * IObservabilityClient lets users plug in their own metrics backend to watch
 * the calls a client forwards, rejects and flags.
 */
type IObservabilityClient interface {
	/**
	 * Init initializes the observability client with necessary configuration.
	 * The context parameter allows for cancellation and timeout control.
	 */
	Init(ctx context.Context) error

	/**
	 * Increment increments a counter metric.
	 * metricName: The name of the metric to increment.
	 * value: The value by which the counter should be incremented.
	 * tags: Optional map of tags for metric dimensions.
	 */
	Increment(metricName string, value int, tags map[string]interface{}) error

	/**
	 * Distribution records a distribution metric for tracking statistical data.
	 * metricName: The name of the metric to record.
	 * value: The recorded value for the distribution metric.
	 * tags: Optional map of tags that represent dimensions to associate with the metric.
	 */
	Distribution(metricName string, value float64, tags map[string]interface{}) error

	/**
	 * Shutdown shuts down the observability client.
	 */
	Shutdown(ctx context.Context) error
}
