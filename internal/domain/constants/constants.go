package constants

// Deployment environments
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

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Event attribute keys shared by publishers and the push worker
const (
	AttrRequestID = "request_id"
	AttrEventType = "event_type"
	AttrAppID     = "app_id"
)

// Event types
const (
	EventTypeAppDiscovered = "app.discovered"
)
