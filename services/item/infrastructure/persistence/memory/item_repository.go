// Package memory is the process-local implementation of the item repository.
// Nothing survives a restart; every process starts with an empty catalogue.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	itemdomain "github.com/ghuser/itemmock/services/item/domain"
	"github.com/ghuser/itemmock/services/item/domain/models"
)

// Option configures an ItemRepository.
type Option func(*ItemRepository)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *ItemRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// ItemRepository implements repositories.ItemRepository with maps guarded by a
// single RWMutex. Create is the only writer, so an item and its statistics are
// published under one critical section.
type ItemRepository struct {
	mu       sync.RWMutex
	now      func() time.Time
	sequence uint64
	lastAt   time.Time
	items    map[string]*models.Item
	stats    map[string]*models.Statistics
	order    []string
	bySeller map[int64][]string
}

// NewItemRepository returns an empty repository.
func NewItemRepository(opts ...Option) *ItemRepository {
	r := &ItemRepository{
		now:      time.Now,
		items:    make(map[string]*models.Item),
		stats:    make(map[string]*models.Statistics),
		bySeller: make(map[int64][]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create stores draft under the next sequential id. Ids are decimal strings
// starting at "1"; creation times never go backwards even if the clock does.
func (r *ItemRepository) Create(ctx context.Context, draft models.ItemDraft) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence++
	id := strconv.FormatUint(r.sequence, 10)

	createdAt := models.NormalizeTime(r.now())
	if createdAt.Before(r.lastAt) {
		createdAt = r.lastAt
	}
	r.lastAt = createdAt

	item := models.NewItem(id, draft, createdAt)
	r.items[id] = item
	r.stats[id] = models.NewStatistics(id)
	r.order = append(r.order, id)
	r.bySeller[item.SellerID] = append(r.bySeller[item.SellerID], id)

	return copyItem(item), nil
}

// GetByID returns a copy of the item with the given id.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return copyItem(item), nil
}

// FindBySellerID returns copies of the seller's items, oldest first.
func (r *ItemRepository) FindBySellerID(ctx context.Context, sellerID int64) ([]*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySeller[sellerID]
	out := make([]*models.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyItem(r.items[id]))
	}
	return out, nil
}

// GetStatistics returns a copy of the statistics recorded for itemID.
func (r *ItemRepository) GetStatistics(ctx context.Context, itemID string) (*models.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stats[itemID]
	if !ok {
		return nil, itemdomain.ErrStatisticsNotFound
	}
	cp := *s
	return &cp, nil
}

// Count returns the number of stored items.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}

// Ping succeeds unless ctx is done; there is no backing connection to check.
func (r *ItemRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func copyItem(item *models.Item) *models.Item {
	cp := *item
	return &cp
}
