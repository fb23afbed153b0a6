package services

import (
	"context"
	"log/slog"
)

// Routing keys for the domain events emitted after successful writes.
const (
	EventUserRegistered  = "user.registered"
	EventCustomerCreated = "customer.created"
	EventInvoiceCreated  = "invoice.created"
	EventPlayerAssigned  = "player.assigned"
	EventTeamDeleted     = "team.deleted"
)

// EventPublisher delivers domain events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// publish is best effort: a broker outage never fails the request that
// already persisted its change.
func publish(ctx context.Context, events EventPublisher, routingKey string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, routingKey, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "routingKey", routingKey, "error", err)
	}
}
