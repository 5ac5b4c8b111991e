// Package constants holds identifiers shared across layers.
package constants

// Mail queue providers.
const (
	MailQueueProviderInline   = ""
	MailQueueProviderLocal    = "local"
	MailQueueProviderGoogle   = "google"
	MailQueueProviderRabbitMQ = "rabbitmq"
)

// HeaderRequestID carries the request ID across HTTP hops.
const HeaderRequestID = "X-Request-Id"
