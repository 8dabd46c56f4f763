// Package constants holds shared string identifiers used across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Routing providers
const (
	RoutingProviderOSRM      = "osrm"
	RoutingProviderPMTiles   = "pmtiles"
	RoutingProviderHaversine = "haversine"
)
