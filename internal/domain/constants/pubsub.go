// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by configuration.
const (
	// PubSubProviderMemory runs welcome mail jobs on an in-process worker pool.
	PubSubProviderMemory = "memory"

	// PubSubProviderLocal posts push-format messages to a local worker endpoint.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
