package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicOrderCreated is the Watermill topic published when an Order is created.
const TopicOrderCreated = "order.created"

// OrderCreatedEvent is published after a new Order is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicOrderCreated).
type OrderCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OrderID    int64     `json:"order_id"`
	CustID     int64     `json:"cust_id"`
	Notes      string    `json:"notes"`
	Timestamp  int64     `json:"timestamp"`
	OccurredAt time.Time `json:"occurred_at"`
}
