// Package listeners holds in-process subscribers to item domain events.
package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemmock/pkg/logger"
	itemevents "github.com/ghuser/itemmock/services/item/domain/events"
)

// Subscriber is the subset of events.EventBus a listener needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// ActivityLog counts item.created events per seller and logs one line per event.
// Duplicate deliveries of the same event id are counted once.
type ActivityLog struct {
	log logger.Logger

	mu       sync.RWMutex
	bySeller map[int64]int
	seen     map[string]struct{}
}

// NewActivityLog returns an empty ActivityLog.
func NewActivityLog(log logger.Logger) *ActivityLog {
	return &ActivityLog{
		log:      log,
		bySeller: make(map[int64]int),
		seen:     make(map[string]struct{}),
	}
}

// Register subscribes the log to item.created until ctx is done or the bus closes.
// Handler errors that survive the bus retries are logged.
func (a *ActivityLog) Register(ctx context.Context, bus Subscriber) error {
	errCh, err := bus.Subscribe(ctx, itemevents.TopicItemCreated, a.HandleItemCreated)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", itemevents.TopicItemCreated, err)
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.log.ErrorContext(ctx, "subscriber error",
				"topic", itemevents.TopicItemCreated,
				"error", err,
			)
		}
	}()

	a.log.Info("event subscribers registered", "topics", []string{itemevents.TopicItemCreated})
	return nil
}

// HandleItemCreated is the item.created handler. A payload that does not decode
// is returned as an error so the bus retries and then reports it.
func (a *ActivityLog) HandleItemCreated(ctx context.Context, msg *message.Message) error {
	var evt itemevents.ItemCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", itemevents.TopicItemCreated, err)
	}

	a.mu.Lock()
	key := evt.EventID.String()
	_, dup := a.seen[key]
	if !dup {
		a.seen[key] = struct{}{}
		a.bySeller[evt.SellerID]++
	}
	a.mu.Unlock()

	if !dup {
		a.log.InfoContext(ctx, "item listed",
			"item_id", evt.ItemID,
			"seller_id", evt.SellerID,
			"price", evt.Price,
		)
	}
	return nil
}

// SellerActivity returns how many items the seller has created so far.
func (a *ActivityLog) SellerActivity(sellerID int64) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bySeller[sellerID]
}
