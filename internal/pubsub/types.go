package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// Topics for the events published by the service.
const (
	TopicMatchRecorded = "match-recorded"
)
