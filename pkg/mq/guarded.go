package mq

import (
	"github.com/heishia/bluroutine/pkg/circuitbreaker"
)

type publisher interface {
	Publish(routingKey string, payload any) error
	IsConnected() bool
}

// GuardedPublisher stops calling a broker that keeps failing, so requests
// do not each wait for the publish timeout.
type GuardedPublisher struct {
	inner   publisher
	breaker *circuitbreaker.CircuitBreaker
}

func NewGuardedPublisher(inner publisher, cfg circuitbreaker.Config) *GuardedPublisher {
	return &GuardedPublisher{inner: inner, breaker: circuitbreaker.New(cfg)}
}

func (g *GuardedPublisher) Publish(routingKey string, payload any) error {
	return g.breaker.Execute(func() error {
		return g.inner.Publish(routingKey, payload)
	})
}

func (g *GuardedPublisher) IsConnected() bool {
	return g.inner.IsConnected()
}

func (g *GuardedPublisher) State() circuitbreaker.State {
	return g.breaker.State()
}
