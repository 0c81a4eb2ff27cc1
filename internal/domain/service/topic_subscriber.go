package service

import "context"

// TopicSubscriber subscribes push tokens to broadcast topics.
type TopicSubscriber interface {
	// SubscribeToTopic subscribes the tokens and returns how many failed.
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (failureCount int, err error)
}
