package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when an Item is created.
const TopicItemCreated = "item.created"

// ItemCreatedEvent is published after a new Item and its Statistics are stored.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"eventId"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"` // Schema version; increment on breaking changes
	ItemID     string    `json:"itemId"`
	SellerID   int64     `json:"sellerId"`
	Title      string    `json:"title"`
	Price      int64     `json:"price"`
	OccurredAt time.Time `json:"occurredAt"`
}
