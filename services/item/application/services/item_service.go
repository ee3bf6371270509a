package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/itemmock/pkg/logger"
	domainevents "github.com/ghuser/itemmock/services/item/domain/events"
	"github.com/ghuser/itemmock/services/item/domain/models"
	"github.com/ghuser/itemmock/services/item/domain/repositories"
)

const meterName = "github.com/ghuser/itemmock/services/item"

// Publisher is the subset of events.EventBus the service needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// ItemService orchestrates creation and retrieval of Items.
// ItemCreatedEvent is published after the repository commits; a failed
// publish is logged and never affects the caller.
type ItemService struct {
	repo      repositories.ItemRepository
	publisher Publisher
	log       logger.Logger

	created  metric.Int64Counter
	rejected metric.Int64Counter
	missed   metric.Int64Counter
}

// NewItemService returns an ItemService wired with the given repository and publisher.
// publisher may be nil, in which case no events are emitted.
// Counters and the items.stored gauge come from the global OTel meter provider,
// a no-op until telemetry.Setup runs.
func NewItemService(repo repositories.ItemRepository, publisher Publisher, log logger.Logger) *ItemService {
	meter := otel.Meter(meterName)
	created, _ := meter.Int64Counter("items.created",
		metric.WithDescription("Items stored"))
	rejected, _ := meter.Int64Counter("items.create.rejected",
		metric.WithDescription("Create requests rejected by validation"))
	missed, _ := meter.Int64Counter("items.lookups.missed",
		metric.WithDescription("Item or statistics lookups for an unknown id"))
	stored, _ := meter.Int64ObservableGauge("items.stored",
		metric.WithDescription("Items currently held by the store"))
	_, _ = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count items: %w", err)
		}
		o.ObserveInt64(stored, int64(n))
		return nil
	}, stored)

	return &ItemService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		created:   created,
		rejected:  rejected,
		missed:    missed,
	}
}

// Create persists a validated draft and publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, draft models.ItemDraft) (*models.Item, error) {
	item, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	s.created.Add(ctx, 1)

	if err := s.publishCreated(ctx, item); err != nil {
		s.log.WarnContext(ctx, "item created but event not published",
			"item_id", item.ID, "error", err)
	}
	return item, nil
}

// RecordRejected counts a create request that failed validation.
func (s *ItemService) RecordRejected(ctx context.Context, violations int) {
	s.rejected.Add(ctx, 1)
	s.log.DebugContext(ctx, "item rejected", "violations", violations)
}

// GetByID returns ErrItemNotFound (wrapped) when no item has the given id.
func (s *ItemService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.missed.Add(ctx, 1)
		return nil, fmt.Errorf("get item %q: %w", id, err)
	}
	return item, nil
}

// ListBySeller returns the seller's items in creation order; never nil.
func (s *ItemService) ListBySeller(ctx context.Context, sellerID int64) ([]*models.Item, error) {
	items, err := s.repo.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list items of seller %d: %w", sellerID, err)
	}
	return items, nil
}

// GetStatistics returns ErrStatisticsNotFound (wrapped) for an unknown item id.
func (s *ItemService) GetStatistics(ctx context.Context, itemID string) (*models.Statistics, error) {
	stats, err := s.repo.GetStatistics(ctx, itemID)
	if err != nil {
		s.missed.Add(ctx, 1)
		return nil, fmt.Errorf("get statistics %q: %w", itemID, err)
	}
	return stats, nil
}

func (s *ItemService) publishCreated(ctx context.Context, item *models.Item) error {
	if s.publisher == nil {
		return nil
	}
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		SellerID:   item.SellerID,
		Title:      item.Title,
		Price:      item.Price,
		OccurredAt: item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	return s.publisher.Publish(ctx, domainevents.TopicItemCreated, msg)
}
