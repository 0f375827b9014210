// Package constants defines shared constant values used across layers.
package constants

const (
	// EnvDevelop is the environment name for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name for production deployments.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint (development).
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
