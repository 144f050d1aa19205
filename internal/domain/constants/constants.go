// Package constants holds identifiers shared across layers.
package constants

// Message bus providers
const (
	BusProviderMemory = "memory"
	BusProviderKafka  = "kafka"
	BusProviderGoogle = "google"
)

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Service names, also used as the producer header on every record
const (
	ServiceDistributor = "distributor"
	ServicePublisher   = "publisher"
)

// Record headers
const (
	HeaderEventType         = "event-type"
	HeaderContentType       = "content-type"
	HeaderProducer          = "producer"
	HeaderError             = "error"
	HeaderAttempts          = "attempts"
	HeaderOriginalPartition = "original-partition"
	HeaderOriginalOffset    = "original-offset"
	HeaderCorrelationID     = "correlation-id"

	ContentTypeJSON = "application/json"
)

// DeadLetterSuffix is appended to a topic name to form its dead-letter topic.
const DeadLetterSuffix = ".dlt"
