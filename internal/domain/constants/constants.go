// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes over plain HTTP to a local push endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
