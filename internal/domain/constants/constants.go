// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

// Salon event types published after successful mutations.
const (
	SalonEventCreated = "salon.created"
	SalonEventUpdated = "salon.updated"
	SalonEventDeleted = "salon.deleted"
)
