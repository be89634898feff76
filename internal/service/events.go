package service

import (
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/pkg/metrics"
)

// EventPublisher sends change events to the broker. *mq.Publisher and
// mq.NopPublisher both satisfy it.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// publish never fails the caller: the store mutation already happened.
func publish(log *zap.Logger, events EventPublisher, routingKey string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(routingKey, payload); err != nil {
		metrics.IncrementEventPublishFailure(routingKey)
		log.Warn("failed to publish event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}
