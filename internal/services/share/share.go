// Package share broadcasts roll results and other messages to peers
package share

//go:generate mockgen -destination=mock/mock_publisher.go -package=sharemock github.com/KirkDiggler/rpg-companion/internal/services/share Publisher

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

// Message types published by the companion
const (
	MessageRoll   = "companion.roll"
	MessageDamage = "companion.damage"
)

// Event context keys
const (
	keyPayload = "payload"
	keyTarget  = "target"
)

// Publisher sends a message to the peer channel. Delivery is fire and forget.
type Publisher interface {
	// Publish sends payload as msgType. An empty target broadcasts to everyone.
	Publish(ctx context.Context, msgType string, payload any, target string) error
}

// Message is what subscribers receive
type Message struct {
	Type    string
	Source  string
	Target  string
	Payload any
}

// Handler receives published messages
type Handler func(ctx context.Context, msg Message) error

// Config configures a bus-backed publisher
type Config struct {
	Bus events.EventBus
	// SourceID identifies this process to peers
	SourceID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	errors.ValidateRequired("SourceID", c.SourceID, vb)
	return vb.Build()
}

// BusPublisher publishes messages on an rpg-toolkit event bus
type BusPublisher struct {
	bus    events.EventBus
	source core.Entity

	mu   sync.Mutex
	subs map[string]struct{}
}

// NewBusPublisher creates a publisher on the given bus
func NewBusPublisher(cfg *Config) (*BusPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &BusPublisher{
		bus:    cfg.Bus,
		source: newPeer(cfg.SourceID),
		subs:   make(map[string]struct{}),
	}, nil
}

// Ensure BusPublisher implements Publisher
var _ Publisher = (*BusPublisher)(nil)

// Publish puts the message on the bus. Subscriber failures are logged and
// never returned to the caller.
func (p *BusPublisher) Publish(ctx context.Context, msgType string, payload any, target string) error {
	if msgType == "" {
		return errors.InvalidArgument("message type is required")
	}

	var to core.Entity
	if target != "" {
		to = newPeer(target)
	}

	event := events.NewGameEvent(msgType, p.source, to)
	event.Context().Set(keyPayload, payload)
	event.Context().Set(keyTarget, target)

	if err := p.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "share subscriber failed",
			"type", msgType,
			"target", target,
			"error", err)
	}
	return nil
}

// Subscribe registers fn for msgType and returns the subscription id
func (p *BusPublisher) Subscribe(msgType string, fn Handler) string {
	id := p.bus.SubscribeFunc(msgType, 0, func(ctx context.Context, e events.Event) error {
		msg := Message{Type: msgType}
		if src := e.Source(); src != nil {
			msg.Source = src.GetID()
		}
		if payload, ok := e.Context().Get(keyPayload); ok {
			msg.Payload = payload
		}
		if target, ok := e.Context().Get(keyTarget); ok {
			msg.Target, _ = target.(string)
		}
		return fn(ctx, msg)
	})

	p.mu.Lock()
	p.subs[id] = struct{}{}
	p.mu.Unlock()
	return id
}

// Unsubscribe removes a subscription made with Subscribe
func (p *BusPublisher) Unsubscribe(id string) error {
	p.mu.Lock()
	_, ok := p.subs[id]
	delete(p.subs, id)
	p.mu.Unlock()

	if !ok {
		return errors.NotFoundf("subscription %s not found", id)
	}
	if err := p.bus.Unsubscribe(id); err != nil {
		return errors.Wrapf(err, "failed to unsubscribe %s", id)
	}
	return nil
}

// Nop discards every message
type Nop struct{}

// Publish does nothing
func (Nop) Publish(context.Context, string, any, string) error { return nil }
